package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/config"
	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/layout"
)

// newLayoutCmd creates the layout command for computing node positions.
func newLayoutCmd() *cobra.Command {
	var (
		algorithm  string
		output     string
		configPath string
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a 2D layout for a graph",
		Long: `Compute a 2D layout for a graph.

The layout command reads a graph JSON file ({"nodes": [...], "edges": [...]}),
normalizes it, and computes node positions under the chosen algorithm. Pass
"-" to read from stdin. The output is a layout.json artifact consumed by the
'render' and 'explore' commands.

Malformed input is not an error: anything that doesn't look like a graph
normalizes to an empty one, and edges referencing unknown nodes are dropped
from the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, args[0], algorithm, output, configPath, width, height)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", layout.AlgorithmCircular,
		"layout algorithm: circular, layered, force")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML tuning file")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height")

	return cmd
}

func runLayout(cmd *cobra.Command, input, algorithm, output, configPath string, width, height float64) error {
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

	res, err := layout.Compute(algorithm, g, opts)
	if err != nil {
		return err
	}
	logger.Debug("layout computed", "algorithm", algorithm,
		"nodes", g.NodeCount(), "segments", len(res.Segments))

	outputPath := output
	if outputPath == "" {
		outputPath = defaultLayoutPath(input)
	}
	if err := layout.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete (%s)", algorithm)
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), len(res.Segments))
	printNextStep("Render", "graphscape render "+input+" --layout "+outputPath)

	return nil
}

// readGraphArg reads and normalizes a graph from a file path or stdin ("-").
func readGraphArg(input string) (graph.Graph, error) {
	if input == "-" {
		return graph.ReadGraph(os.Stdin)
	}
	return graph.ReadGraphFile(input)
}

func defaultLayoutPath(input string) string {
	if input == "-" {
		return "graph.layout.json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
