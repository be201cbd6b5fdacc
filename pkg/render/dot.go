package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/view"
)

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// RankDir sets the Graphviz layout direction ("LR", "TB"). Defaults to LR
	// to match the layered layout's left-to-right columns.
	RankDir string
}

// ToDOT converts a canonical graph to Graphviz DOT format. Edge colors come
// from the same classification palette as the scene projection, so DOT and
// SVG output agree on color grouping.
//
// The resulting DOT string can be rasterized with [RasterizeSVG] or
// [RasterizePNG], or fed to any external Graphviz toolchain.
func ToDOT(g graph.Graph, opts DOTOptions) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.DisplayLabel())
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Classification != "" {
			fmt.Fprintf(&buf, "  %q -> %q [color=%q, label=%q, fontsize=9];\n",
				e.Source, e.Target, view.ClassColor(e.Classification), e.Classification)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RasterizeSVG renders a DOT graph to SVG using Graphviz.
func RasterizeSVG(ctx context.Context, dot string) ([]byte, error) {
	return rasterize(ctx, dot, graphviz.SVG)
}

// RasterizePNG renders a DOT graph to PNG using Graphviz.
func RasterizePNG(ctx context.Context, dot string) ([]byte, error) {
	return rasterize(ctx, dot, graphviz.PNG)
}

func rasterize(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
