package projection

import (
	"errors"
	"fmt"

	"github.com/vgteam/saboten/biedged"
)

// ErrUnknownName indicates ProjectedName was asked to resolve an
// external sequence-node id that was never registered in the NameMap.
var ErrUnknownName = errors.New("projection: unknown external node name")

// NameMap relates original external (sequence-graph) integer ids back
// to their human-readable string names (spec §6 "Input... a name map
// that relates original integer ids back to external string names").
type NameMap struct {
	names map[uint64]string
}

// NewNameMap returns an empty NameMap.
func NewNameMap() *NameMap { return &NameMap{names: make(map[uint64]string)} }

// Set registers the external name for sequence-node id n.
func (nm *NameMap) Set(n uint64, name string) { nm.names[n] = name }

// Name returns the registered name for external id n, if any.
func (nm *NameMap) Name(n uint64) (string, bool) {
	name, ok := nm.names[n]

	return name, ok
}

// ProjectedName maps a surviving endpoint id back to an external string
// label (spec §6 "projected_node_name"): the name of the original
// sequence node that id's numeric value nominally belongs to
// (biedged.ToExternal), plus a trailing "_" disambiguator whenever id is
// a right-side endpoint (biedged.IsLeft(id) == false). By convention the
// left endpoint is every node's canonical identity; when contraction or
// merging leaves a lone right endpoint standing in as a representative,
// the suffix marks that the endpoint no longer corresponds to an intact,
// two-sided black edge under that plain name.
//
// id must already be a representative (the caller is expected to have
// called Map.Find first); ProjectedName does not resolve projections
// itself so that it can also be used to name un-contracted endpoints.
func ProjectedName(nm *NameMap, id biedged.ID) (string, error) {
	ext := biedged.ToExternal(id)
	name, ok := nm.Name(ext)
	if !ok {
		return "", fmt.Errorf("%w: external id %d", ErrUnknownName, ext)
	}

	if !biedged.IsLeft(id) {
		return name + "_", nil
	}

	return name, nil
}
