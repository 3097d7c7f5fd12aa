package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/cactus"
	"github.com/vgteam/saboten/projection"
	"github.com/vgteam/saboten/snarl"
)

// Decompose runs the full pipeline (spec.md §4) over g, mutating it in
// place: gray contraction, 3-edge-connected component merging, cactus
// view construction, bridge forest construction, and snarl discovery.
// g must satisfy the external-interface contract (spec.md §6): every
// black edge connects an id to its Opposite.
//
// Complexity: dominated by Stage 2's O(V) max-flow computations, each
// O(V*E); see package tec.
func Decompose(g *biedged.Graph, opts ...Option) (*Result, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	log := options.Logger

	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if err := validateInput(g); err != nil {
		return nil, err
	}

	originalBlack := g.BlackEdges()
	log.WithFields(logrus.Fields{
		"vertices":    g.VertexCount(),
		"black_edges": len(originalBlack),
		"gray_edges":  g.GrayEdgeCount(),
	}).Info("pipeline: starting decomposition")

	proj := projection.New()

	if err := cactus.ContractGrayEdges(g, proj); err != nil {
		return nil, fmt.Errorf("pipeline: gray contraction: %w", err)
	}
	log.WithFields(logrus.Fields{
		"vertices":    g.VertexCount(),
		"black_edges": g.BlackEdgeCount(),
	}).Info("pipeline: stage 1 complete (gray contraction)")

	if err := cactus.MergeComponents(g, proj); err != nil {
		return nil, fmt.Errorf("pipeline: component merging: %w", err)
	}
	log.WithField("vertices", g.VertexCount()).Info("pipeline: stage 2 complete (3ecc merge)")

	view, err := cactus.BuildView(g)
	if err != nil {
		return nil, fmt.Errorf("pipeline: cactus view: %w", err)
	}
	log.WithFields(logrus.Fields{
		"cycles":  len(view.Cycles),
		"bridges": len(view.Bridges),
	}).Info("pipeline: stage 3 complete (cactus view)")

	forest := cactus.BuildBridgeForest(view)
	log.WithField("bridge_edges", len(forest.Edges)).Info("pipeline: stage 4 complete (bridge forest)")

	index := snarl.NewIndex()
	candidates := append(chainPairs(view, proj, originalBlack), bridgePairs(forest)...)
	for _, c := range candidates {
		index.Insert(c.boundary)
	}
	log.WithField("snarls", index.Len()).Info("pipeline: stage 5 complete (snarl discovery)")

	markContains(index, candidates, proj, originalBlack)

	return &Result{Index: index, Projection: proj, View: view, Forest: forest}, nil
}

// validateInput checks the external-interface contract (spec.md §6,
// §7): every black edge must connect an id to its own Opposite.
func validateInput(g *biedged.Graph) error {
	for _, e := range g.BlackEdges() {
		if e.To != biedged.Opposite(e.From) {
			return fmt.Errorf("%w: black edge {%d,%d} is not a left/right pair", ErrInvalidGraph, e.From, e.To)
		}
	}

	return nil
}

// markContains implements spec.md §4.7 step 3: for every snarl and
// every original black edge, determine whether the edge's projected
// endpoints fall inside the snarl's span (its two boundaries plus, for
// a bridge pair, the forest junction between them) and record the
// verdict. An edge untouched by the snarl at either boundary is left
// unmarked.
func markContains(index *snarl.Index, candidates []candidate, proj *projection.Map, edges []biedged.Edge) {
	for _, c := range candidates {
		span := c.span()
		for _, e := range edges {
			pf, pt := proj.Find(e.From), proj.Find(e.To)

			switch {
			case span[pf] && span[pt]:
				index.Mark(c.boundary.Left, c.boundary.Right, e.From, true)
			case c.isBoundary(pf) || c.isBoundary(pt):
				index.Mark(c.boundary.Left, c.boundary.Right, e.From, false)
			}
		}
	}
}
