package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// Force runs a fixed-iteration physical simulation: pairwise repulsion
// (F = kr/d²), Hookean attraction along edges (F = ka·Δ, no rest length),
// and a weak pull toward the canvas center that prevents drift.
//
// Positions are seeded from the circular layout, not random placement, so
// the result is deterministic for a given canonical graph. The pairwise
// repulsion makes each iteration O(n²); node counts above WarnNodeCount log
// a warning rather than silently degrading.
//
// Segments are resolved once from the final positions - intermediate
// iterations only move points.
func Force(g graph.Graph, opts Options) Result {
	opts.SetDefaults()

	res := Circular(g, opts)
	n := len(g.Nodes)
	if n == 0 {
		return res
	}
	if n > opts.WarnNodeCount {
		opts.Logger.Warn("force-directed layout is O(n²) per iteration",
			"nodes", n, "iterations", opts.Iterations)
	}

	index := g.Index()
	positions := res.Positions
	cx := opts.Width / 2
	cy := opts.Height / 2

	for iter := 0; iter < opts.Iterations; iter++ {
		// Per-call accumulators keep the simulation a pure function of its
		// inputs; nothing is shared between invocations.
		fx := make([]float64, n)
		fy := make([]float64, n)

		// Repulsion between every unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				distSq := dx*dx + dy*dy
				if distSq < opts.MinDistSq {
					distSq = opts.MinDistSq
				}
				dist := math.Sqrt(distSq)
				force := opts.Repulsion / distSq
				fx[i] += force * dx / dist
				fy[i] += force * dy / dist
				fx[j] -= force * dx / dist
				fy[j] -= force * dy / dist
			}
		}

		// Attraction along every resolvable edge.
		for _, e := range g.Edges {
			si, ok := index[e.Source]
			if !ok {
				continue
			}
			ti, ok := index[e.Target]
			if !ok {
				continue
			}
			dx := positions[ti].X - positions[si].X
			dy := positions[ti].Y - positions[si].Y
			fx[si] += opts.Attraction * dx
			fy[si] += opts.Attraction * dy
			fx[ti] -= opts.Attraction * dx
			fy[ti] -= opts.Attraction * dy
		}

		for i := 0; i < n; i++ {
			x := positions[i].X + fx[i]*opts.Step + (cx-positions[i].X)*opts.Centering
			y := positions[i].Y + fy[i]*opts.Step + (cy-positions[i].Y)*opts.Centering
			positions[i] = Point{
				X: clamp(x, opts.Inset, opts.Width-opts.Inset),
				Y: clamp(y, opts.Inset, opts.Height-opts.Inset),
			}
		}
	}

	res.Segments = resolveSegments(g, index, positions)
	return res
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
