package render

import (
	"io"
	"text/template"

	"github.com/vgteam/saboten/cactus"
	"github.com/vgteam/saboten/snarl"
)

// dotTemplate renders a dotGraph as a Graphviz digraph: cactus-cycle
// edges solid, bridges dashed, and every vertex that is a snarl
// boundary drawn as a double circle.
var dotTemplate = template.Must(template.New("cactus.dot").Parse(`digraph cactus {
	rankdir=LR;
	node [shape=circle];
{{- range .Boundaries }}
	"{{ . }}" [shape=doublecircle];
{{- end }}
{{- range .Edges }}
	"{{ .From }}" -> "{{ .To }}" {{ if not .Cycle }}[style=dashed]{{ end }};
{{- end }}
{{- range .Snarls }}
	// snarl {{ .Ty }}: {{ .Left }} -- {{ .Right }}
{{- end }}
}
`))

// Render writes a DOT description of view to w, marking every boundary
// of a snarl recorded in index (if non-nil) as a double-circle node.
// Complexity: O(V + E + S) for the sort passes in buildGraph.
func Render(w io.Writer, view *cactus.View, index *snarl.Index) error {
	return dotTemplate.Execute(w, buildGraph(view, index))
}
