package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ricci/builder"
	"github.com/katalvlaran/ricci/core"
	"github.com/pkg/errors"
)

// edgeList is the JSON form accepted by --edges. Nodes may be omitted, in
// which case it is one past the largest id.
type edgeList struct {
	Nodes int      `json:"nodes"`
	Edges [][2]int `json:"edges"`
}

// fixtureNames lists the --fixture values in help order.
var fixtureNames = []string{"cycle", "path", "star", "wheel", "complete", "chords", "grid", "random", "regular"}

// fixture builds the named deterministic graph on n vertices.
func fixture(name string, n int, seed int64, p float64, d int) (*core.Graph, error) {
	var cons []builder.Constructor
	switch name {
	case "cycle":
		cons = []builder.Constructor{builder.Cycle()}
	case "path":
		cons = []builder.Constructor{builder.Path()}
	case "star":
		cons = []builder.Constructor{builder.Star()}
	case "wheel":
		cons = []builder.Constructor{builder.Wheel()}
	case "complete":
		cons = []builder.Constructor{builder.Complete()}
	case "chords":
		cons = []builder.Constructor{builder.Cycle(), builder.Chords(2, 2)}
	case "grid":
		rows := 1
		for rows*rows < n {
			rows++
		}
		if n%rows != 0 {
			return nil, fmt.Errorf("grid fixture needs a multiple of %d nodes, got %d", rows, n)
		}
		cons = []builder.Constructor{builder.Grid(rows, n/rows)}
	case "random":
		cons = []builder.Constructor{builder.RandomSparse(p)}
	case "regular":
		cons = []builder.Constructor{builder.RandomRegular(d)}
	default:
		return nil, fmt.Errorf("unknown fixture %q (want one of %v)", name, fixtureNames)
	}

	return builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(seed)}, cons...)
}

// loadEdges reads an edge list file. Duplicate edges are skipped, loops
// and out-of-range ids are errors.
func loadEdges(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	var el edgeList
	if err = qjson.Unmarshal(raw, &el); err != nil {
		return nil, errors.Wrapf(err, "decoding %v", path)
	}

	n := el.Nodes
	if n == 0 {
		for _, e := range el.Edges {
			n = max(n, e[0]+1, e[1]+1)
		}
	}
	g := core.NewGraph(n)
	for i, e := range el.Edges {
		err = g.AddEdge(e[0], e[1])
		if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return nil, errors.Wrapf(err, "%v: edge #%d", path, i)
		}
	}

	return g, nil
}
