package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/pipeline"
	"github.com/vgteam/saboten/projection"
	"github.com/vgteam/saboten/render"
	"github.com/vgteam/saboten/seqgraph"
)

var (
	inputPath string
	dotPath   string
	verbose   bool
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Decompose a sequence graph file into its snarl index",
	RunE:  runDecompose,
}

func init() {
	decomposeCmd.Flags().StringVar(&inputPath, "input", "", "path to a sequence-graph file (required)")
	decomposeCmd.Flags().StringVar(&dotPath, "dot", "", "write a Graphviz DOT rendering of the cactus view to this path")
	decomposeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline stage")

	decomposeCmd.MarkFlagRequired("input")
}

func runDecompose(cmd *cobra.Command, args []string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	parsed, err := seqgraph.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	log := logrus.New()
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	result, err := pipeline.Decompose(parsed.Graph, pipeline.WithLogger(log))
	if err != nil {
		return fmt.Errorf("decompose: %w", err)
	}

	printSnarls(result, parsed.Names)

	if dotPath != "" {
		out, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", dotPath, err)
		}
		defer out.Close()

		if err := render.Render(out, result.View, result.Index); err != nil {
			return fmt.Errorf("rendering %s: %w", dotPath, err)
		}
	}

	return nil
}

// printSnarls writes one line per discovered snarl, using the external
// name map to resolve each boundary back to a human-readable label
// where possible (spec §6 "projected_node_name").
func printSnarls(result *pipeline.Result, names *projection.NameMap) {
	snarls := result.Index.All()
	sort.Slice(snarls, func(i, j int) bool {
		if snarls[i].Left != snarls[j].Left {
			return snarls[i].Left < snarls[j].Left
		}

		return snarls[i].Right < snarls[j].Right
	})

	fmt.Printf("%d snarls found\n", len(snarls))
	for _, s := range snarls {
		left := label(names, s.Left)
		right := label(names, s.Right)
		fmt.Printf("  %s [%s, %s]\n", s.Ty, left, right)
	}
}

// label resolves id to its external name, falling back to the raw
// numeric id when names is nil or the id was never registered (e.g.
// the graph was built directly rather than via seqgraph.Parse).
func label(names *projection.NameMap, id biedged.ID) string {
	if names != nil {
		if name, err := projection.ProjectedName(names, id); err == nil {
			return name
		}
	}

	return fmt.Sprintf("%d", id)
}
