package pipeline

import (
	"github.com/vgteam/saboten/cactus"
	"github.com/vgteam/saboten/projection"
	"github.com/vgteam/saboten/snarl"
)

// Result bundles everything Decompose produces. Index is the primary
// deliverable (spec.md §6 "Output"); the rest is exposed for callers
// that want to render the cactus graph or resolve names (package
// render, package projection).
type Result struct {
	Index      *snarl.Index
	Projection *projection.Map
	View       *cactus.View
	Forest     *cactus.BridgeForest
}
