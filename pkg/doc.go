// Package pkg provides the core libraries for Graphscape graph exploration.
//
// # Overview
//
// Graphscape turns loosely-shaped graph descriptions into interactive 2D
// drawings. The pkg directory is organized around the data flow:
//
//	{nodes, edges} JSON
//	         ↓
//	    [graph] package (normalize to canonical form)
//	         ↓
//	    [layout] package (circular, layered, force-directed placement)
//	         ↓
//	    [view] package (viewport state + scene projection)
//	         ↓
//	    [render] package (SVG / DOT / PNG output)
//
// # Quick Start
//
// Normalize a graph and compute a layout:
//
//	g := graph.Normalize(data)
//	res, err := layout.Compute(layout.AlgorithmLayered, g, layout.Options{})
//	if err != nil {
//	    return err
//	}
//	scene := view.Project(res, g, view.New())
//	svg := render.RenderSVG(scene)
//
// # Main Packages
//
// [graph] - Canonical graph model and tolerant normalization. Accepts
// heterogeneous field spellings (source/from, target/to), assigns index
// identities to anonymous nodes, and never fails on malformed input.
//
// [layout] - The three placement strategies sharing one Result shape. All
// strategies are deterministic; the force-directed simulation seeds from the
// circular layout.
//
// [view] - Viewport state machine (bounded zoom, unbounded pan, single
// selection) and the pure projection into drawable primitives.
//
// [render] - Output sinks: SVG for projected scenes, Graphviz DOT with
// SVG/PNG rasterization for canonical graphs.
//
// [config] - TOML tuning file exposing every layout constant and the zoom
// bounds.
//
// [api] - Stateless HTTP layout service.
//
// [errors] - Structured errors with machine-readable codes shared by CLI
// and API.
//
// [graph]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/graph
// [layout]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/layout
// [view]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/view
// [render]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/render
// [config]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/config
// [api]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/api
// [errors]: https://pkg.go.dev/github.com/graphscape/graphscape/pkg/errors
package pkg
