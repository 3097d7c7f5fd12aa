package snarl

import "github.com/vgteam/saboten/biedged"

// Boundary is the payload-free snarl kept inside an Index: only the
// boundary pair and type matter for lookup, matching
// original_source/src/snarls.rs's Snarl<()> usage inside SnarlMap.
type Boundary = Snarl[struct{}]

// Index accumulates snarls discovered while walking a bridge forest
// and indexes them by each boundary, plus which black edges each
// snarl is known to contain (spec.md §6 "SnarlIndex").
type Index struct {
	snarls   []Boundary
	lefts    map[biedged.ID][]int
	rights   map[biedged.ID][]int
	contains []map[biedged.ID]bool
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		lefts:  make(map[biedged.ID][]int),
		rights: make(map[biedged.ID][]int),
	}
}

// Insert adds snarl to the index unless a snarl with the same
// canonical boundary pair is already present, in which case it is a
// no-op. Returns the rank the snarl occupies (existing or new).
func (idx *Index) Insert(s Boundary) int {
	if rank, ok := idx.indexOf(s.Left, s.Right); ok {
		return rank
	}

	rank := len(idx.snarls)
	idx.snarls = append(idx.snarls, s)
	idx.contains = append(idx.contains, nil)
	idx.lefts[s.Left] = append(idx.lefts[s.Left], rank)
	idx.rights[s.Right] = append(idx.rights[s.Right], rank)

	return rank
}

// indexOf returns the rank of the snarl with canonical boundary
// (min(x,y), max(x,y)), if one has been inserted.
func (idx *Index) indexOf(x, y biedged.ID) (int, bool) {
	left, right := canonical(x, y)

	for _, li := range idx.lefts[left] {
		for _, ri := range idx.rights[right] {
			if li == ri {
				return li, true
			}
		}
	}

	return 0, false
}

// Lookup returns the snarl with boundary (x, y), if any.
func (idx *Index) Lookup(x, y biedged.ID) (Boundary, bool) {
	rank, ok := idx.indexOf(x, y)
	if !ok {
		return Boundary{}, false
	}

	return idx.snarls[rank], true
}

// WithBoundary returns every indexed snarl that has x as either
// boundary, in rank order (left-indexed matches first, then
// right-indexed matches), matching SnarlMapIter's iteration order.
func (idx *Index) WithBoundary(x biedged.ID) []Boundary {
	var out []Boundary
	for _, rank := range idx.lefts[x] {
		out = append(out, idx.snarls[rank])
	}
	for _, rank := range idx.rights[x] {
		out = append(out, idx.snarls[rank])
	}

	return out
}

// Mark records whether the black edge through endpoint bridge lies in
// the interior of the snarl with boundary (x, y) (spec.md §6
// "mark_snarl"). The endpoint is canonicalized to its left side before
// recording, since a black edge is identified by its endpoint pair, not
// by which side happens to touch the snarl. Returns false if no such
// snarl has been inserted.
func (idx *Index) Mark(x, y, bridge biedged.ID, contains bool) bool {
	rank, ok := idx.indexOf(x, y)
	if !ok {
		return false
	}

	if idx.contains[rank] == nil {
		idx.contains[rank] = make(map[biedged.ID]bool)
	}
	idx.contains[rank][biedged.Left(bridge)] = contains

	return true
}

// Contains returns the black-edge containment map (keyed by each black
// edge's left endpoint) for the snarl with boundary (x, y), if any.
func (idx *Index) Contains(x, y biedged.ID) (map[biedged.ID]bool, bool) {
	rank, ok := idx.indexOf(x, y)
	if !ok || idx.contains[rank] == nil {
		return nil, false
	}

	return idx.contains[rank], true
}

// InvertContains returns, for every black edge marked as contained in
// at least one snarl, the set of snarls that contain it (spec.md §6
// "invert_contains").
func (idx *Index) InvertContains() map[biedged.ID][]Boundary {
	res := make(map[biedged.ID][]Boundary)
	for rank, contained := range idx.contains {
		for bridge, yes := range contained {
			if yes {
				res[bridge] = append(res[bridge], idx.snarls[rank])
			}
		}
	}

	return res
}

// Len returns the number of distinct snarls inserted.
func (idx *Index) Len() int { return len(idx.snarls) }

// All returns every inserted snarl in rank (insertion) order.
func (idx *Index) All() []Boundary {
	out := make([]Boundary, len(idx.snarls))
	copy(out, idx.snarls)

	return out
}
