package view

import (
	"hash/fnv"

	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/layout"
)

// NodeRadius is the unscaled node circle radius in layout pixels.
const NodeRadius = 12.0

// palette holds the classification colors. A classification hashes into the
// palette, so repeated classifications always render with the same color
// within one session.
var palette = []string{
	"#4e79a7", // blue
	"#f28e2b", // orange
	"#e15759", // red
	"#76b7b2", // teal
	"#59a14f", // green
	"#edc948", // yellow
	"#b07aa1", // purple
	"#ff9da7", // pink
	"#9c755f", // brown
	"#bab0ac", // gray
}

// ClassColor returns the deterministic palette color for a classification.
func ClassColor(classification string) string {
	h := fnv.New32a()
	h.Write([]byte(classification))
	return palette[int(h.Sum32())%len(palette)]
}

// PaletteSize returns the number of distinct classification colors.
func PaletteSize() int { return len(palette) }

// =============================================================================
// Drawable Primitives
// =============================================================================

// NodeMark is a drawable node: a circle plus label, already in screen space.
type NodeMark struct {
	X, Y     float64
	R        float64
	ID       string
	Label    string
	Selected bool
}

// EdgeLine is a drawable edge segment with a direction from (X1,Y1) to
// (X2,Y2). Highlighted is set when either endpoint is the current selection.
type EdgeLine struct {
	X1, Y1, X2, Y2 float64
	Classification string
	Color          string
	Highlighted    bool
}

// Scene is the full drawable primitive list for one frame.
type Scene struct {
	Width  float64
	Height float64
	Nodes  []NodeMark
	Edges  []EdgeLine
}

// Project maps a layout result and viewport state into drawable primitives.
// It is a pure function: no mutation, no side effects. Edges render before
// nodes, so the returned order is already paint order.
func Project(res layout.Result, g graph.Graph, vp *Viewport) Scene {
	t := vp.Transform()
	scene := Scene{
		Width:  res.Width,
		Height: res.Height,
		Nodes:  make([]NodeMark, 0, len(res.Positions)),
		Edges:  make([]EdgeLine, 0, len(res.Segments)),
	}

	for _, s := range res.Segments {
		x1, y1 := t.Apply(s.X1, s.Y1)
		x2, y2 := t.Apply(s.X2, s.Y2)
		scene.Edges = append(scene.Edges, EdgeLine{
			X1:             x1,
			Y1:             y1,
			X2:             x2,
			Y2:             y2,
			Classification: s.Classification,
			Color:          ClassColor(s.Classification),
			Highlighted:    vp.Selected != "" && (s.Source == vp.Selected || s.Target == vp.Selected),
		})
	}

	for i, n := range g.Nodes {
		if i >= len(res.Positions) {
			break
		}
		x, y := t.Apply(res.Positions[i].X, res.Positions[i].Y)
		scene.Nodes = append(scene.Nodes, NodeMark{
			X:        x,
			Y:        y,
			R:        NodeRadius * t.Scale,
			ID:       n.ID,
			Label:    n.DisplayLabel(),
			Selected: n.ID == vp.Selected,
		})
	}

	return scene
}
