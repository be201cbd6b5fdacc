package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/config"
	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/layout"
	"github.com/graphscape/graphscape/pkg/render"
	"github.com/graphscape/graphscape/pkg/view"
)

// Output format names.
const (
	formatSVG = "svg"
	formatDOT = "dot"
	formatPNG = "png"
)

// newRenderCmd creates the render command for generating output artifacts.
func newRenderCmd() *cobra.Command {
	var (
		algorithm  string
		format     string
		output     string
		layoutPath string
		configPath string
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a graph layout to SVG, DOT, or PNG",
		Long: `Render a graph layout to SVG, DOT, or PNG.

The render command normalizes the graph, computes the chosen layout, and
writes the drawing. SVG output draws the computed positions directly; DOT
and PNG output go through Graphviz, which performs its own placement.

Pass --layout to reuse a layout.json artifact from a previous 'layout' run
instead of recomputing positions (SVG only).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], algorithm, format, output, layoutPath, configPath, width, height)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", layout.AlgorithmCircular,
		"layout algorithm: circular, layered, force")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg, dot, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "precomputed layout.json artifact to render")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML tuning file")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height")

	return cmd
}

func runRender(cmd *cobra.Command, input, algorithm, format, output, layoutPath, configPath string, width, height float64) error {
	logger := loggerFromContext(cmd.Context())

	g, err := readGraphArg(input)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := cfg.LayoutOptions()
	opts.Logger = logger
	if width > 0 {
		opts.Width = width
	}
	if height > 0 {
		opts.Height = height
	}

	var data []byte
	segments := g.EdgeCount()
	switch format {
	case formatSVG:
		var res layout.Result
		if layoutPath != "" {
			res, err = layout.ReadResultFile(layoutPath)
		} else {
			res, err = layout.Compute(algorithm, g, opts)
		}
		if err != nil {
			return err
		}
		segments = len(res.Segments)
		scene := view.Project(res, g, cfg.Viewport())
		data = render.RenderSVG(scene)
	case formatDOT:
		data = []byte(render.ToDOT(g, render.DOTOptions{}))
	case formatPNG:
		dot := render.ToDOT(g, render.DOTOptions{})
		data, err = render.RasterizePNG(cmd.Context(), dot)
		if err != nil {
			return fmt.Errorf("rasterize: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, dot, png)", format)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultRenderPath(input, format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete (%s)", format)
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), segments)

	return nil
}

func defaultRenderPath(input, format string) string {
	if input == "-" {
		return "graph." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
