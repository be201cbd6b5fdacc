package view

import (
	"math"
	"testing"
)

func TestViewport_ZoomClamped(t *testing.T) {
	v := New()

	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if v.Scale != DefaultMaxScale {
		t.Errorf("Scale = %g after repeated zoom in, want clamp %g", v.Scale, DefaultMaxScale)
	}

	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	if v.Scale != DefaultMinScale {
		t.Errorf("Scale = %g after repeated zoom out, want clamp %g", v.Scale, DefaultMinScale)
	}
}

func TestViewport_ZoomStep(t *testing.T) {
	v := New()

	v.ZoomIn()
	if math.Abs(v.Scale-1.1) > 1e-9 {
		t.Errorf("Scale = %g after one zoom in, want 1.1", v.Scale)
	}
	v.ZoomOut()
	v.ZoomOut()
	if math.Abs(v.Scale-0.9) > 1e-9 {
		t.Errorf("Scale = %g, want 0.9", v.Scale)
	}
}

func TestViewport_SetZoomPercent(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    float64
	}{
		{"Half", 50, 0.5},
		{"Identity", 100, 1.0},
		{"Double", 200, 2.0},
		{"BelowRangeClamps", 10, DefaultMinScale},
		{"AboveRangeClamps", 500, DefaultMaxScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.SetZoomPercent(tt.percent)
			if v.Scale != tt.want {
				t.Errorf("Scale = %g, want %g", v.Scale, tt.want)
			}
		})
	}
}

func TestViewport_DragAccumulates(t *testing.T) {
	v := New()

	v.StartDrag(100, 100)
	v.Drag(110, 95)
	v.Drag(130, 95)
	v.EndDrag()

	if v.PanX != 30 || v.PanY != -5 {
		t.Errorf("pan = (%g, %g), want (30, -5)", v.PanX, v.PanY)
	}

	// A second gesture adds to the existing offset.
	v.StartDrag(0, 0)
	v.Drag(-10, 10)
	v.EndDrag()

	if v.PanX != 20 || v.PanY != 5 {
		t.Errorf("pan = (%g, %g), want (20, 5)", v.PanX, v.PanY)
	}
}

func TestViewport_DragInactiveIsNoOp(t *testing.T) {
	v := New()

	v.Drag(500, 500)
	if v.PanX != 0 || v.PanY != 0 {
		t.Errorf("pan = (%g, %g), want (0, 0) without an active drag", v.PanX, v.PanY)
	}
	if v.Dragging() {
		t.Error("Dragging() = true, want false")
	}
}

func TestViewport_PanUnbounded(t *testing.T) {
	v := New()

	v.Pan(-1e6, 1e6)
	if v.PanX != -1e6 || v.PanY != 1e6 {
		t.Errorf("pan = (%g, %g), want unbounded (-1e6, 1e6)", v.PanX, v.PanY)
	}
}

func TestViewport_ToggleSelect(t *testing.T) {
	v := New()

	v.ToggleSelect("a")
	if v.Selected != "a" {
		t.Errorf("Selected = %q, want a", v.Selected)
	}

	// Toggling the same node deselects.
	v.ToggleSelect("a")
	if v.Selected != "" {
		t.Errorf("Selected = %q, want none after second toggle", v.Selected)
	}

	// Selecting a different node replaces, never accumulates.
	v.ToggleSelect("a")
	v.ToggleSelect("b")
	if v.Selected != "b" {
		t.Errorf("Selected = %q, want b", v.Selected)
	}

	v.ClearSelection()
	if v.Selected != "" {
		t.Errorf("Selected = %q, want none after clear", v.Selected)
	}
}

func TestTransform_TranslateThenScale(t *testing.T) {
	// The transform scales layout coordinates first, then adds the pan
	// offset in screen pixels.
	tr := Transform{TranslateX: 10, TranslateY: -20, Scale: 2}

	x, y := tr.Apply(100, 50)
	if x != 210 || y != 80 {
		t.Errorf("Apply(100, 50) = (%g, %g), want (210, 80)", x, y)
	}
}

func TestViewport_Reset(t *testing.T) {
	v := New()
	v.SetScale(2.5)
	v.Pan(40, 40)
	v.ToggleSelect("a")
	v.StartDrag(0, 0)

	v.Reset()

	if v.Scale != 1 || v.PanX != 0 || v.PanY != 0 {
		t.Errorf("transform = (scale %g, pan %g,%g), want identity", v.Scale, v.PanX, v.PanY)
	}
	if v.Selected != "" {
		t.Errorf("Selected = %q, want none", v.Selected)
	}
	if v.Dragging() {
		t.Error("Dragging() = true after reset")
	}
}
