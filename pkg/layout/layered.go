package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// Layered assigns nodes to vertical columns by longest-path distance from
// the in-degree-zero roots and spreads each column evenly over the canvas
// height.
//
// The layering is a breadth-first relaxation: popping a node pushes every
// successor to max(successor layer, popped layer + 1), re-enqueueing the
// successor only on strict improvement. Ties within a column keep original
// input order - there is no crossing-minimization pass, which is acceptable
// for small-to-medium exploratory graphs.
//
// Cyclic input never stalls the algorithm: a graph with no in-degree-zero
// node places everything at layer 0, and nodes unreachable from any root
// default to layer 0 as well.
func Layered(g graph.Graph, opts Options) Result {
	opts.SetDefaults()

	n := len(g.Nodes)
	res := Result{
		Width:     opts.Width,
		Height:    opts.Height,
		Positions: make([]Point, n),
	}
	index := g.Index()
	if n == 0 {
		res.Segments = resolveSegments(g, index, res.Positions)
		return res
	}

	layers := assignLayers(g, index)

	maxLayer := 0
	for _, l := range layers {
		if l > maxLayer {
			maxLayer = l
		}
	}

	// Group into columns by layer, preserving input order within a column.
	columns := make([][]int, maxLayer+1)
	for i, l := range layers {
		columns[l] = append(columns[l], i)
	}

	xStep := (opts.Width - 2*opts.Margin) / math.Max(1, float64(maxLayer))
	for l, column := range columns {
		if len(column) == 0 {
			continue
		}
		yStep := (opts.Height - 2*opts.Margin) / float64(len(column))
		for j, i := range column {
			res.Positions[i] = Point{
				X: opts.Margin + float64(l)*xStep,
				Y: opts.Margin + (float64(j)+0.5)*yStep,
			}
		}
	}

	res.Segments = resolveSegments(g, index, res.Positions)
	return res
}

// assignLayers computes the longest-path layer per node index.
func assignLayers(g graph.Graph, index map[string]int) []int {
	n := len(g.Nodes)
	adjacency := make([][]int, n)
	inDegree := make([]int, n)
	for _, e := range g.Edges {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		// A self loop would relax its own layer forever; it still renders
		// as a segment, it just doesn't participate in layering.
		if si == ti {
			continue
		}
		adjacency[si] = append(adjacency[si], ti)
		inDegree[ti]++
	}

	layers := make([]int, n)
	var frontier []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			frontier = append(frontier, i)
		}
	}
	// Entirely cyclic graph: no roots to relax from, everything stays at
	// layer 0.
	if len(frontier) == 0 {
		return layers
	}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, successor := range adjacency[current] {
			// Layers are capped at n-1 so cycles reachable from a root
			// terminate; acyclic relaxation never hits the cap.
			if l := layers[current] + 1; l > layers[successor] && l < n {
				layers[successor] = l
				frontier = append(frontier, successor)
			}
		}
	}
	return layers
}
