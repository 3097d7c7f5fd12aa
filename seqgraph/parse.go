package seqgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vgteam/saboten/biedged"
	"github.com/vgteam/saboten/projection"
)

// Parsed bundles the two inputs spec §6 names: a pre-constructed
// biedged.Graph and the projection.NameMap relating its endpoint ids
// back to the external string names the file used.
type Parsed struct {
	Graph *biedged.Graph
	Names *projection.NameMap
}

// Parse reads the sequence-graph text format (package doc) from r,
// validating every record before it touches the graph — a line is
// never applied until it has been fully checked, matching
// builder/validators.go's validate-then-build shape.
// Complexity: O(lines).
func Parse(r io.Reader) (*Parsed, error) {
	g := biedged.NewGraph()
	names := projection.NewNameMap()
	ids := make(map[string]uint64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "node":
			if err := parseNode(fields, lineNo, g, names, ids); err != nil {
				return nil, err
			}
		case "edge":
			if err := parseEdge(fields, lineNo, g, ids); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRecord, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqgraph: reading input: %w", err)
	}

	return &Parsed{Graph: g, Names: names}, nil
}

// parseNode handles a "node <name>" record: registers name under a
// fresh external id and emits its black edge (spec §6: "a black edge
// {2n, 2n+1} of multiplicity 1").
func parseNode(fields []string, lineNo int, g *biedged.Graph, names *projection.NameMap, ids map[string]uint64) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: line %d: want \"node <name>\"", ErrBadRecord, lineNo)
	}
	name := fields[1]
	if _, exists := ids[name]; exists {
		return fmt.Errorf("%w: line %d: %q", ErrDuplicateNode, lineNo, name)
	}

	n := uint64(len(ids))
	ids[name] = n
	names.Set(n, name)

	left, right := biedged.FromExternal(n)
	g.AddEdge(left, right, biedged.Weight{Black: 1})

	return nil
}

// parseEdge handles an "edge <nameA> <L|R> <nameB> <L|R>" record: emits
// the gray edge {2u+s_u, 2v+s_v} spec §6 requires for an external edge
// connecting side s_u of u to side s_v of v.
func parseEdge(fields []string, lineNo int, g *biedged.Graph, ids map[string]uint64) error {
	if len(fields) != 5 {
		return fmt.Errorf("%w: line %d: want \"edge <nameA> <side> <nameB> <side>\"", ErrBadRecord, lineNo)
	}

	nameA, sideA, nameB, sideB := fields[1], fields[2], fields[3], fields[4]

	a, ok := ids[nameA]
	if !ok {
		return fmt.Errorf("%w: line %d: %q", ErrUnknownNode, lineNo, nameA)
	}
	b, ok := ids[nameB]
	if !ok {
		return fmt.Errorf("%w: line %d: %q", ErrUnknownNode, lineNo, nameB)
	}

	u, err := sideEndpoint(a, sideA, lineNo)
	if err != nil {
		return err
	}
	v, err := sideEndpoint(b, sideB, lineNo)
	if err != nil {
		return err
	}

	g.AddEdge(u, v, biedged.Weight{Gray: 1})

	return nil
}

// sideEndpoint resolves an external node id plus an "L"/"R" token to
// its endpoint id.
func sideEndpoint(n uint64, side string, lineNo int) (biedged.ID, error) {
	left, right := biedged.FromExternal(n)
	switch side {
	case "L":
		return left, nil
	case "R":
		return right, nil
	default:
		return 0, fmt.Errorf("%w: line %d: %q", ErrBadSide, lineNo, side)
	}
}
