// Package view owns the interactive state over a layout: pan offset, zoom
// scale, and single-node selection, plus the pure projection of a layout
// result into drawable primitives.
//
// The viewport persists across layout recomputation - switching algorithms
// keeps the user's pan and zoom - and is only reset by an explicit fit-view
// action. It is mutated exclusively by input handlers; the layout algorithms
// never touch it.
package view

// Zoom defaults. The bounds and step are design parameters; callers with a
// tuning config override them on the Viewport.
const (
	DefaultMinScale = 0.3
	DefaultMaxScale = 3.0
	DefaultZoomStep = 0.1
)

// Viewport is the pan/zoom/selection state machine. Its three axes are
// independent: zoom is a bounded multiplicative scale, pan an unbounded 2D
// offset, and selection at most one node identity (empty string means none -
// normalized identities are never empty).
type Viewport struct {
	Scale    float64
	PanX     float64
	PanY     float64
	Selected string

	// Zoom bounds, overridable from config.
	MinScale float64
	MaxScale float64
	ZoomStep float64

	dragging     bool
	lastX, lastY float64
}

// New returns a viewport at identity transform with default zoom bounds.
func New() *Viewport {
	return &Viewport{
		Scale:    1,
		MinScale: DefaultMinScale,
		MaxScale: DefaultMaxScale,
		ZoomStep: DefaultZoomStep,
	}
}

// =============================================================================
// Zoom
// =============================================================================

// SetScale sets the zoom scale, clamped into [MinScale, MaxScale].
func (v *Viewport) SetScale(s float64) {
	if s < v.MinScale {
		s = v.MinScale
	}
	if s > v.MaxScale {
		s = v.MaxScale
	}
	v.Scale = s
}

// ZoomIn increases the scale by one step.
func (v *Viewport) ZoomIn() { v.SetScale(v.Scale + v.ZoomStep) }

// ZoomOut decreases the scale by one step.
func (v *Viewport) ZoomOut() { v.SetScale(v.Scale - v.ZoomStep) }

// SetZoomPercent maps a percentage control linearly onto the scale
// (100% → 1.0). The result is clamped by SetScale like every other zoom
// input, so the slider and the step inputs never fight.
func (v *Viewport) SetZoomPercent(percent float64) {
	v.SetScale(percent / 100)
}

// =============================================================================
// Pan
// =============================================================================

// StartDrag begins a drag gesture at the given pointer position.
func (v *Viewport) StartDrag(x, y float64) {
	v.dragging = true
	v.lastX = x
	v.lastY = y
}

// Drag accumulates the pointer delta into the pan offset while a drag is
// active. Deltas are in screen pixels: pan composes outside the scale, so
// dragging feels identical at every zoom level.
func (v *Viewport) Drag(x, y float64) {
	if !v.dragging {
		return
	}
	v.PanX += x - v.lastX
	v.PanY += y - v.lastY
	v.lastX = x
	v.lastY = y
}

// EndDrag ends the drag gesture (pointer up or pointer leaving the canvas).
func (v *Viewport) EndDrag() { v.dragging = false }

// Dragging reports whether a drag gesture is active.
func (v *Viewport) Dragging() bool { return v.dragging }

// Pan shifts the offset directly, for keyboard-driven panning.
func (v *Viewport) Pan(dx, dy float64) {
	v.PanX += dx
	v.PanY += dy
}

// =============================================================================
// Selection
// =============================================================================

// ToggleSelect selects the node, or deselects it if it is already the
// selection. At most one node is selected at a time.
func (v *Viewport) ToggleSelect(id string) {
	if v.Selected == id {
		v.Selected = ""
		return
	}
	v.Selected = id
}

// ClearSelection removes the current selection.
func (v *Viewport) ClearSelection() { v.Selected = "" }

// =============================================================================
// Transform
// =============================================================================

// Transform is the composite pan+zoom mapping from layout coordinates to
// screen coordinates. The order is fixed: translate by pan, then scale - so
// drawn content scales underneath while drags stay in screen-pixel units.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// Apply maps a layout-space point to screen space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TranslateX, y*t.Scale + t.TranslateY
}

// Transform returns the current composite transform.
func (v *Viewport) Transform() Transform {
	return Transform{TranslateX: v.PanX, TranslateY: v.PanY, Scale: v.Scale}
}

// Reset restores the identity transform and clears the selection.
// This is the explicit fit-view action; nothing else resets the viewport.
func (v *Viewport) Reset() {
	v.Scale = 1
	v.PanX = 0
	v.PanY = 0
	v.Selected = ""
	v.dragging = false
}
