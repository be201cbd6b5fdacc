// Package layout computes 2D node placements for canonical graphs.
//
// Three strategies share one contract: given a graph and canvas options,
// produce a Result with one position per node (index-aligned with the node
// list) and one segment per edge whose endpoints both resolve. Edges with an
// unresolvable endpoint are dropped silently - the normalizer upstream never
// validates them, so the drop happens exactly once, here.
//
// Every strategy is fully deterministic for a given canonical node order and
// edge list. The force-directed strategy seeds from the circular placement
// rather than random positions, which makes layout results reproducible and
// testable bit-for-bit.
package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/graph"
)

// Algorithm names accepted by Compute.
const (
	AlgorithmCircular = "circular"
	AlgorithmLayered  = "layered"
	AlgorithmForce    = "force"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Config
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin is the canvas margin used by the circular radius and the
	// layered column grid.
	DefaultMargin = 40.0

	// DefaultInset keeps force-directed positions this far inside the canvas.
	DefaultInset = 20.0

	// DefaultMinRadius is the lower bound on the circular layout radius, so
	// tiny canvases still produce a readable ring.
	DefaultMinRadius = 120.0

	// DefaultIterations is the fixed iteration budget for the force-directed
	// simulation.
	DefaultIterations = 100

	// DefaultRepulsion is the pairwise repulsion constant (kr in F = kr/d²).
	DefaultRepulsion = 8000.0

	// DefaultAttraction is the per-edge Hookean pull constant (ka).
	DefaultAttraction = 0.01

	// DefaultStep scales accumulated forces into position deltas.
	DefaultStep = 0.02

	// DefaultCentering is the weak pull toward the canvas center that
	// prevents drift.
	DefaultCentering = 0.001

	// DefaultMinDistSq floors squared pair distances so coincident nodes
	// don't divide by zero.
	DefaultMinDistSq = 0.01

	// DefaultWarnNodeCount is the node count above which the force-directed
	// strategy logs a cost warning. The O(n²·iterations) loop is fine for
	// tens to low hundreds of nodes and degrades visibly beyond that.
	DefaultWarnNodeCount = 300
)

// ValidAlgorithms is the set of supported layout algorithms.
var ValidAlgorithms = map[string]bool{
	AlgorithmCircular: true,
	AlgorithmLayered:  true,
	AlgorithmForce:    true,
}

// Algorithms returns the supported algorithm names in display order.
func Algorithms() []string {
	return []string{AlgorithmCircular, AlgorithmLayered, AlgorithmForce}
}

// ValidateAlgorithm checks that an algorithm name is supported.
func ValidateAlgorithm(name string) error {
	if !ValidAlgorithms[name] {
		return errors.New(errors.ErrCodeInvalidAlgorithm,
			"invalid algorithm: %q (must be one of: circular, layered, force)", name)
	}
	return nil
}

// =============================================================================
// Result Types
// =============================================================================

// Point is a node placement on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a resolved edge: both endpoints looked up against the node
// positions. Source and Target carry the identities through to the render
// stage for selection highlighting.
type Segment struct {
	X1             float64 `json:"x1"`
	Y1             float64 `json:"y1"`
	X2             float64 `json:"x2"`
	Y2             float64 `json:"y2"`
	Classification string  `json:"classification,omitempty"`
	Source         string  `json:"source"`
	Target         string  `json:"target"`
}

// Result is the output of one layout pass. Positions is index-aligned with
// the canonical node list: Positions[i] places Nodes[i]. A Result is
// recomputed in full when the graph or algorithm changes, never mutated
// incrementally.
type Result struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Positions []Point   `json:"positions"`
	Segments  []Segment `json:"segments"`
}

// =============================================================================
// Options
// =============================================================================

// Options carries the canvas size and the per-algorithm tuning constants.
// All constants are design parameters, exposed so they can be tuned without
// touching algorithm structure. Zero values are filled by SetDefaults.
type Options struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Margin float64 `json:"margin,omitempty"`

	// Force-directed tuning
	Iterations    int     `json:"iterations,omitempty"`
	Repulsion     float64 `json:"repulsion,omitempty"`
	Attraction    float64 `json:"attraction,omitempty"`
	Step          float64 `json:"step,omitempty"`
	Centering     float64 `json:"centering,omitempty"`
	MinDistSq     float64 `json:"-"`
	Inset         float64 `json:"-"`
	MinRadius     float64 `json:"-"`
	WarnNodeCount int     `json:"-"`

	// Logger receives the large-graph cost warning. Defaults to a discard
	// logger so library callers stay quiet.
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero-valued fields with the package defaults.
// This method is idempotent.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Repulsion == 0 {
		o.Repulsion = DefaultRepulsion
	}
	if o.Attraction == 0 {
		o.Attraction = DefaultAttraction
	}
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.Centering == 0 {
		o.Centering = DefaultCentering
	}
	if o.MinDistSq == 0 {
		o.MinDistSq = DefaultMinDistSq
	}
	if o.Inset == 0 {
		o.Inset = DefaultInset
	}
	if o.MinRadius == 0 {
		o.MinRadius = DefaultMinRadius
	}
	if o.WarnNodeCount == 0 {
		o.WarnNodeCount = DefaultWarnNodeCount
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// =============================================================================
// Compute - Algorithm Dispatch
// =============================================================================

// Compute runs the named algorithm over the graph. It is the single entry
// point used by the CLI, the HTTP API, and the terminal explorer.
func Compute(algorithm string, g graph.Graph, opts Options) (Result, error) {
	if err := ValidateAlgorithm(algorithm); err != nil {
		return Result{}, err
	}
	switch algorithm {
	case AlgorithmLayered:
		return Layered(g, opts), nil
	case AlgorithmForce:
		return Force(g, opts), nil
	default:
		return Circular(g, opts), nil
	}
}

// =============================================================================
// Edge Resolution
// =============================================================================

// resolveSegments looks up both endpoints of every edge in the identity
// index and returns one segment per fully-resolved edge. Edges with a
// missing endpoint are dropped, so len(segments) <= len(edges) always holds.
func resolveSegments(g graph.Graph, index map[string]int, positions []Point) []Segment {
	segments := make([]Segment, 0, len(g.Edges))
	for _, e := range g.Edges {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		segments = append(segments, Segment{
			X1:             positions[si].X,
			Y1:             positions[si].Y,
			X2:             positions[ti].X,
			Y2:             positions[ti].Y,
			Classification: e.Classification,
			Source:         e.Source,
			Target:         e.Target,
		})
	}
	return segments
}
