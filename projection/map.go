package projection

import "github.com/vgteam/saboten/biedged"

// Map is the projection map from an original endpoint id to its current
// representative. Entries are written once per key at the moment of a
// contraction/merge (spec §3 "Lifecycle") and read with path
// compression via Find.
//
// Unlike a textbook union-find, the winning root of a Record call is
// never chosen by rank: it is always `kept`, the id the biedged.Graph
// itself kept alive in ContractEdge/MergeVertices. Any other choice
// would let Find resolve to an id that no longer exists in the graph.
//
// The zero value is ready to use.
type Map struct {
	parent map[biedged.ID]biedged.ID
}

// New returns an empty projection map.
func New() *Map {
	return &Map{parent: make(map[biedged.ID]biedged.ID)}
}

// Record sets proj[merged]'s whole prior chain to resolve to kept, and
// proj[kept] := kept, matching spec §4.1/§4.2/§4.4: "Caller must update
// the projection map: proj[u] := u; proj[v] := u" where u is the
// surviving vertex returned by ContractEdge/MergeVertices.
// Complexity: amortized O(log n) (path compression without union by rank).
func (m *Map) Record(kept, merged biedged.ID) {
	if m.parent == nil {
		m.parent = make(map[biedged.ID]biedged.ID)
	}
	rootMerged := m.find(merged)
	if rootMerged != kept {
		m.parent[rootMerged] = kept
	}
	if _, ok := m.parent[kept]; !ok {
		m.parent[kept] = kept
	}
}

// find walks parent pointers to the root, compressing the path so every
// visited node points directly at the root afterward. A key absent from
// the map is its own root.
func (m *Map) find(x biedged.ID) biedged.ID {
	root := x
	for {
		p, ok := m.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}

	for x != root {
		next, ok := m.parent[x]
		if !ok {
			break
		}
		m.parent[x] = root
		x = next
	}

	return root
}

// Find returns the representative of x, applying path compression on
// the fly (spec §6 "find_projection"). If x was never recorded, x is
// its own representative. Find(Find(x)) == Find(x) always (spec §8,
// invariant 4).
// Complexity: amortized O(log n) per call.
func (m *Map) Find(x biedged.ID) biedged.ID {
	return m.find(x)
}
