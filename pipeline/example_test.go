package pipeline_test

import (
	"fmt"
	"sort"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/pipeline"
)

// ExampleDecompose runs the full pipeline over a single diamond bubble
// (a->b, a->c, b->d, c->d): the bubble itself is a chain pair, and a's
// and d's own black edges form a bridge pair around it.
func ExampleDecompose() {
	g := biedged.NewGraph()

	node := func(n uint64) (left, right biedged.ID) {
		left, right = biedged.FromExternal(n)
		g.AddEdge(left, right, biedged.Weight{Black: 1})

		return left, right
	}

	_, aR := node(1)
	bL, bR := node(2)
	cL, cR := node(3)
	dL, _ := node(4)

	g.AddEdge(aR, bL, biedged.Weight{Gray: 1})
	g.AddEdge(aR, cL, biedged.Weight{Gray: 1})
	g.AddEdge(bR, dL, biedged.Weight{Gray: 1})
	g.AddEdge(cR, dL, biedged.Weight{Gray: 1})

	result, err := pipeline.Decompose(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	snarls := result.Index.All()
	sort.Slice(snarls, func(i, j int) bool { return snarls[i].Left < snarls[j].Left })

	for _, s := range snarls {
		fmt.Println(s.Ty)
	}
	// Output:
	// bridge-pair
	// chain-pair
}
