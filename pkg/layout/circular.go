package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// Circular places node i of n at angle 2π·i/n around the canvas center.
//
// This is the baseline placement and also the deterministic seed for the
// force-directed strategy. The radius is min(width, height)/2 minus the
// margin, floored at MinRadius so small canvases still spread nodes apart.
func Circular(g graph.Graph, opts Options) Result {
	opts.SetDefaults()

	res := Result{
		Width:     opts.Width,
		Height:    opts.Height,
		Positions: make([]Point, len(g.Nodes)),
	}

	cx := opts.Width / 2
	cy := opts.Height / 2
	radius := math.Min(opts.Width, opts.Height)/2 - opts.Margin
	if radius < opts.MinRadius {
		radius = opts.MinRadius
	}

	// max(1, n) guards the n = 0 division; the loop body never runs then.
	step := 2 * math.Pi / math.Max(1, float64(len(g.Nodes)))
	for i := range g.Nodes {
		angle := float64(i) * step
		res.Positions[i] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}

	res.Segments = resolveSegments(g, g.Index(), res.Positions)
	return res
}
