package tec_test

import (
	"testing"

	"github.com/vgteam/saboten/tec"
)

// benchSinkComponents prevents the dead-code eliminator from discarding
// BenchmarkComponents' result, mirroring core/bench_test.go's
// package-level benchmark-sink convention.
var benchSinkComponents [][]int

// BenchmarkComponents measures Components throughput on a chain of
// triangles joined end to end by single bridge edges — one Gomory-Hu
// construction's worth of max-flow calls per b.N iteration.
func BenchmarkComponents(b *testing.B) {
	const triangles = 20

	g := tec.NewGraph(triangles * 3)
	for t := 0; t < triangles; t++ {
		base := t * 3
		g.AddEdge(base, base+1, 1)
		g.AddEdge(base+1, base+2, 1)
		g.AddEdge(base, base+2, 1)
		if t > 0 {
			g.AddEdge(base, base-1, 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		comps, err := tec.Components(g)
		if err != nil {
			b.Fatal(err)
		}
		benchSinkComponents = comps
	}
}
