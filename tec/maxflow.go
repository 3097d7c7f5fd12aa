package tec

import "math"

// maxFlow computes the maximum flow from source to sink in the residual
// graph g using Dinic's algorithm: repeated BFS level-graph construction
// followed by DFS blocking flow, mirroring the teacher's flow.Dinic
// control structure but operating on a dense []map[int]int64 residual
// graph instead of core.Graph string-keyed adjacency, since Gusfield's
// construction runs this N-1 times and string marshaling per call would
// dominate the cost (spec §4.3 "operates over integers directly, with
// no string marshaling").
//
// g is mutated in place to become the residual graph; callers that need
// the original capacities afterward must clone first.
func maxFlow(g *Graph, source, sink int) int64 {
	if source == sink {
		return 0
	}

	var total int64
	for {
		level := bfsLevels(g, source)
		if level[sink] < 0 {
			break
		}

		iter := make([]int, g.n)
		next := make([][]int, g.n)
		for u := 0; u < g.n; u++ {
			if level[u] < 0 {
				continue
			}
			for v, c := range g.cap[u] {
				if c > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		for {
			pushed := dfsPush(g, next, iter, level, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}

	return total
}

func bfsLevels(g *Graph, source int) []int {
	level := make([]int, g.n)
	for i := range level {
		level[i] = -1
	}
	level[source] = 0

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, c := range g.cap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

func dfsPush(g *Graph, next [][]int, iter []int, level []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}

	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := g.cap[u][v]
		if c <= 0 {
			continue
		}

		send := available
		if c < send {
			send = c
		}

		pushed := dfsPush(g, next, iter, level, v, sink, send)
		if pushed > 0 {
			g.cap[u][v] -= pushed
			g.cap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
