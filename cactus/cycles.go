package cactus

import "github.com/vgteam/saboten/biedged"

// vertex visitation states for the ascending-order DFS, matching the
// teacher's three-color idiom (dfs/cycle.go's White/Gray/Black).
const (
	white = 0
	gray  = 1
	black = 2
)

// BuildView is Stage 3 (CactusView, spec.md §4.5): it walks the black
// multigraph left by ContractGrayEdges + MergeComponents with an
// ascending-order, three-color DFS and enumerates:
//
//   - (a) one cycle per DFS back-edge, the tree path from the back
//     edge's descendant up to its ancestor;
//   - (b) one length-1 self-loop cycle per unit of self-loop
//     multiplicity;
//   - (c) one length-2 cycle per unit of multiplicity beyond the first
//     on any tree edge (parallel black edges between the same pair).
//
// A tree edge of multiplicity 1 that is never closed by a back edge is
// a bridge. This is the design note's (a)-(b)-(c) recipe (spec.md §9),
// chosen over original_source/src/biedged_to_cactus.rs's find_cycles /
// find_cycles_ / find_loops, which that file itself documents as
// "two partial, experimental cycle finders" never called from its own
// production path.
//
// Complexity: O(V + E).
func BuildView(g *biedged.Graph) (*View, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrEmptyGraph
	}

	state := make(map[biedged.ID]int, len(verts))
	parent := make(map[biedged.ID]biedged.ID, len(verts))
	covered := make(map[[2]biedged.ID]bool)

	var cycles []Cycle

	var visit func(u biedged.ID)
	visit = func(u biedged.ID) {
		state[u] = gray

		for _, v := range g.Neighbors(u) {
			if v == u {
				w, _ := g.EdgeWeight(u, u)
				for i := uint32(0); i < w.Black; i++ {
					cycles = append(cycles, Cycle{Vertices: []biedged.ID{u}})
				}

				continue
			}

			switch state[v] {
			case white:
				w, _ := g.EdgeWeight(u, v)
				for i := uint32(0); i+1 < w.Black; i++ {
					cycles = append(cycles, Cycle{Vertices: []biedged.ID{u, v}})
				}
				parent[v] = u
				visit(v)
			case gray:
				if parent[u] == v {
					continue
				}
				// Genuine back edge u -> v: walk the tree path from u up
				// to v, marking every edge on it covered, including the
				// back edge itself.
				covered[treeKey(u, v)] = true
				path := []biedged.ID{u}
				cur := u
				for cur != v {
					next := parent[cur]
					covered[treeKey(cur, next)] = true
					path = append(path, next)
					cur = next
				}
				cycles = append(cycles, Cycle{Vertices: path})
			case black:
				continue
			}
		}

		state[u] = black
	}

	for _, v := range verts {
		if state[v] == white {
			visit(v)
		}
	}

	var bridges []biedged.Edge
	for _, e := range g.BlackEdges() {
		if e.From == e.To || e.Weight.Black != 1 {
			continue
		}
		if !covered[treeKey(e.From, e.To)] {
			bridges = append(bridges, e)
		}
	}

	return &View{Cycles: cycles, Bridges: bridges}, nil
}

func treeKey(a, b biedged.ID) [2]biedged.ID {
	if a < b {
		return [2]biedged.ID{a, b}
	}

	return [2]biedged.ID{b, a}
}
