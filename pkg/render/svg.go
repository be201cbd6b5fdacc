// Package render turns projected scenes and canonical graphs into output
// artifacts: an SVG sink for scenes and a Graphviz DOT sink with SVG/PNG
// rasterization for graphs.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/graphscape/graphscape/pkg/view"
)

const (
	svgBackground = "#ffffff"
	nodeFill      = "#dbe5f1"
	nodeStroke    = "#4a6785"
	selectedFill  = "#f9d877"
	labelColor    = "#1f2430"
)

// SVGOption configures scene rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showLabels bool
	arrowheads bool
}

// WithoutLabels suppresses node labels. Labels render by default.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = false } }

// WithoutArrows suppresses direction markers on edge lines. Arrowheads
// render by default.
func WithoutArrows() SVGOption { return func(r *svgRenderer) { r.arrowheads = false } }

// RenderSVG renders a projected scene to SVG bytes. Edges draw first, nodes
// on top, matching the scene's paint order. Highlighted edges get a heavier
// stroke; the selected node gets a distinct fill.
func RenderSVG(s view.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{showLabels: true, arrowheads: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", svgBackground)

	if r.arrowheads {
		renderArrowDefs(&buf, s)
	}

	for _, e := range s.Edges {
		width := 1.5
		opacity := 0.7
		if e.Highlighted {
			width = 3
			opacity = 1
		}
		marker := ""
		if r.arrowheads {
			marker = fmt.Sprintf(` marker-end="url(#arrow-%s)"`, colorID(e.Color))
		}
		fmt.Fprintf(&buf,
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"%s/>`+"\n",
			e.X1, e.Y1, e.X2, e.Y2, e.Color, width, opacity, marker)
	}

	for _, n := range s.Nodes {
		fill := nodeFill
		strokeWidth := 1.5
		if n.Selected {
			fill = selectedFill
			strokeWidth = 3
		}
		fmt.Fprintf(&buf,
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
			n.X, n.Y, n.R, fill, nodeStroke, strokeWidth)
		if r.showLabels {
			fmt.Fprintf(&buf,
				`<text x="%.2f" y="%.2f" text-anchor="middle" font-size="11" font-family="sans-serif" fill="%s">%s</text>`+"\n",
				n.X, n.Y+n.R+12, labelColor, escapeXML(n.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderArrowDefs emits one arrowhead marker per distinct edge color.
func renderArrowDefs(buf *bytes.Buffer, s view.Scene) {
	seen := make(map[string]bool)
	buf.WriteString("<defs>\n")
	for _, e := range s.Edges {
		if seen[e.Color] {
			continue
		}
		seen[e.Color] = true
		fmt.Fprintf(buf,
			`<marker id="arrow-%s" viewBox="0 0 10 10" refX="18" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/></marker>`+"\n",
			colorID(e.Color), e.Color)
	}
	buf.WriteString("</defs>\n")
}

func colorID(color string) string {
	return strings.TrimPrefix(color, "#")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
