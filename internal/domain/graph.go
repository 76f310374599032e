package domain

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// IncludeGraph builds the directed include graph of a resolution. Vertices are
// canonical file paths; each edge is labelled with its directive kind and
// line. Cyclic includes appear as edges too.
func IncludeGraph(res m.Resolution) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed())

	addVertex := func(p m.Path) error {
		err := g.AddVertex(string(p), graph.VertexAttribute("label", filepath.Base(string(p))))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return fmt.Errorf("add vertex %s: %w", p, err)
		}

		return nil
	}

	for _, p := range res.Loaded {
		if err := addVertex(p); err != nil {
			return nil, err
		}
	}

	for _, edge := range res.Includes {
		if err := addVertex(edge.To); err != nil {
			return nil, err
		}

		label := fmt.Sprintf("%s:%d", edge.Kind, edge.Line)

		err := g.AddEdge(string(edge.From), string(edge.To), graph.EdgeAttribute("label", label))
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("add edge %s -> %s: %w", edge.From, edge.To, err)
		}
	}

	return g, nil
}

// WriteDOT renders the include graph of res in Graphviz DOT format.
func WriteDOT(res m.Resolution, w io.Writer) error {
	g, err := IncludeGraph(res)
	if err != nil {
		return err
	}

	return draw.DOT(g, w)
}
