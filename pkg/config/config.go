// Package config loads the optional TOML tuning file.
//
// Every layout constant and zoom bound is a design parameter, so the file
// exposes them rather than baking literals into the binary. A missing file
// is not an error - defaults mirror the built-in constants - but a file that
// exists and fails to parse is, because a silently ignored tuning file is
// worse than no file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/layout"
	"github.com/graphscape/graphscape/pkg/view"
)

// Config is the full tuning surface.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Force  Force  `toml:"force"`
	Zoom   Zoom   `toml:"zoom"`
}

// Canvas sets the drawing surface dimensions and layout margins.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// Force tunes the force-directed simulation.
type Force struct {
	Iterations    int     `toml:"iterations"`
	Repulsion     float64 `toml:"repulsion"`
	Attraction    float64 `toml:"attraction"`
	Step          float64 `toml:"step"`
	Centering     float64 `toml:"centering"`
	WarnNodeCount int     `toml:"warn_node_count"`
}

// Zoom sets the viewport scale bounds and wheel step.
type Zoom struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// Default returns the configuration matching the built-in constants.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  layout.DefaultWidth,
			Height: layout.DefaultHeight,
			Margin: layout.DefaultMargin,
		},
		Force: Force{
			Iterations:    layout.DefaultIterations,
			Repulsion:     layout.DefaultRepulsion,
			Attraction:    layout.DefaultAttraction,
			Step:          layout.DefaultStep,
			Centering:     layout.DefaultCentering,
			WarnNodeCount: layout.DefaultWarnNodeCount,
		},
		Zoom: Zoom{
			Min:  view.DefaultMinScale,
			Max:  view.DefaultMaxScale,
			Step: view.DefaultZoomStep,
		},
	}
}

// Load reads a TOML tuning file over the defaults. An empty path or a
// missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// LayoutOptions converts the config into layout options.
func (c Config) LayoutOptions() layout.Options {
	return layout.Options{
		Width:         c.Canvas.Width,
		Height:        c.Canvas.Height,
		Margin:        c.Canvas.Margin,
		Iterations:    c.Force.Iterations,
		Repulsion:     c.Force.Repulsion,
		Attraction:    c.Force.Attraction,
		Step:          c.Force.Step,
		Centering:     c.Force.Centering,
		WarnNodeCount: c.Force.WarnNodeCount,
	}
}

// Viewport builds a viewport with the configured zoom bounds.
func (c Config) Viewport() *view.Viewport {
	vp := view.New()
	if c.Zoom.Min > 0 {
		vp.MinScale = c.Zoom.Min
	}
	if c.Zoom.Max > 0 {
		vp.MaxScale = c.Zoom.Max
	}
	if c.Zoom.Step > 0 {
		vp.ZoomStep = c.Zoom.Step
	}
	return vp
}
