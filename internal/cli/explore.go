package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/graphscape/graphscape/pkg/config"
	"github.com/graphscape/graphscape/pkg/graph"
	"github.com/graphscape/graphscape/pkg/layout"
	"github.com/graphscape/graphscape/pkg/view"
)

// panStep is the keyboard pan distance in screen pixels per key press.
const panStep = 20

// newExploreCmd creates the explore command for the interactive viewer.
func newExploreCmd() *cobra.Command {
	var (
		algorithm  string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "explore [graph.json]",
		Short: "Explore a graph interactively in the terminal",
		Long: `Explore a graph interactively in the terminal.

Keys:
  ←/↓/↑/→, hjkl   pan
  +/-             zoom in/out
  tab/shift+tab   cycle node selection
  enter           toggle selection of the focused node
  c/L/f           switch algorithm (circular, layered, force)
  0               fit view (reset pan, zoom, selection)
  q               quit

The viewport persists across algorithm switches; only the fit-view action
resets it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, args[0], algorithm, configPath)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", layout.AlgorithmCircular,
		"initial layout algorithm: circular, layered, force")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML tuning file")

	return cmd
}

func runExplore(cmd *cobra.Command, input, algorithm, configPath string) error {
	if err := layout.ValidateAlgorithm(algorithm); err != nil {
		return err
	}

	g, err := readGraphArg(input)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	m := newExploreModel(g, cfg, algorithm)
	m.logger = loggerFromContext(cmd.Context())
	m.recompute()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}

// =============================================================================
// ExploreModel - Interactive Graph Viewer
// =============================================================================

type exploreModel struct {
	g         graph.Graph
	cfg       config.Config
	logger    loggerIface
	algorithm string
	result    layout.Result
	vp        *view.Viewport

	cursor int // focused node index for selection cycling, -1 when unset
	width  int // terminal columns
	height int // terminal rows
}

// loggerIface is the slice of charmbracelet/log used here; it keeps the
// model testable without a real logger.
type loggerIface interface {
	Warn(msg any, keyvals ...any)
}

func newExploreModel(g graph.Graph, cfg config.Config, algorithm string) *exploreModel {
	return &exploreModel{
		g:         g,
		cfg:       cfg,
		algorithm: algorithm,
		vp:        cfg.Viewport(),
		cursor:    -1,
		width:     80,
		height:    24,
	}
}

// recompute runs the current algorithm over the graph. The viewport is
// deliberately left untouched - layout recomputation never resets pan, zoom,
// or selection.
func (m *exploreModel) recompute() {
	opts := m.cfg.LayoutOptions()
	res, err := layout.Compute(m.algorithm, m.g, opts)
	if err != nil {
		// Algorithm names are validated before the program starts; an error
		// here means a switch key mapped to a bad name, which is a bug.
		if m.logger != nil {
			m.logger.Warn("layout failed", "algorithm", m.algorithm, "err", err)
		}
		return
	}
	m.result = res
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.vp.Pan(panStep, 0)
	case "right", "l":
		m.vp.Pan(-panStep, 0)
	case "up", "k":
		m.vp.Pan(0, panStep)
	case "down", "j":
		m.vp.Pan(0, -panStep)
	case "+", "=":
		m.vp.ZoomIn()
	case "-", "_":
		m.vp.ZoomOut()
	case "tab":
		m.cycleSelection(1)
	case "shift+tab":
		m.cycleSelection(-1)
	case "enter", " ":
		if m.cursor >= 0 && m.cursor < len(m.g.Nodes) {
			m.vp.ToggleSelect(m.g.Nodes[m.cursor].ID)
		}
	case "x":
		m.vp.ClearSelection()
	case "c":
		m.switchAlgorithm(layout.AlgorithmCircular)
	case "f":
		m.switchAlgorithm(layout.AlgorithmForce)
	case "L":
		m.switchAlgorithm(layout.AlgorithmLayered)
	case "0":
		m.vp.Reset()
	}
	return m, nil
}

func (m *exploreModel) switchAlgorithm(name string) {
	if m.algorithm == name {
		return
	}
	m.algorithm = name
	m.recompute()
}

// cycleSelection moves the focus cursor and selects the focused node.
func (m *exploreModel) cycleSelection(delta int) {
	n := len(m.g.Nodes)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	id := m.g.Nodes[m.cursor].ID
	if m.vp.Selected != id {
		m.vp.ToggleSelect(id)
	}
}

// =============================================================================
// View - Scene → Character Grid
// =============================================================================

var (
	exploreNodeStyle     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	exploreSelectedStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	exploreEdgeDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

func (m *exploreModel) View() string {
	gridW := m.width
	gridH := m.height - 3 // leave room for the status and help lines
	if gridW < 10 || gridH < 5 {
		return "window too small"
	}

	scene := view.Project(m.result, m.g, m.vp)
	grid := make([]string, gridW*gridH)

	// Map canvas coordinates onto character cells. Terminal cells are about
	// twice as tall as wide; the projection divides y by the same canvas
	// extent so the aspect distortion stays uniform.
	cell := func(x, y float64) (int, int, bool) {
		cx := int(x / scene.Width * float64(gridW))
		cy := int(y / scene.Height * float64(gridH))
		if cx < 0 || cx >= gridW || cy < 0 || cy >= gridH {
			return 0, 0, false
		}
		return cx, cy, true
	}

	for _, e := range scene.Edges {
		style := exploreEdgeDimStyle
		mark := "·"
		if e.Highlighted {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Bold(true)
			mark = "•"
		} else if e.Classification != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color))
		}
		drawLine(grid, gridW, cell, e, style.Render(mark))
	}

	for _, n := range scene.Nodes {
		cx, cy, ok := cell(n.X, n.Y)
		if !ok {
			continue
		}
		mark := exploreNodeStyle.Render("●")
		if n.Selected {
			mark = exploreSelectedStyle.Render("◉")
		}
		grid[cy*gridW+cx] = mark
	}

	var b strings.Builder
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			if c := grid[y*gridW+x]; c != "" {
				b.WriteString(c)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render("hjkl/arrows pan · +/- zoom · tab select · enter toggle · c/L/f algorithm · 0 fit · q quit"))
	return b.String()
}

func (m *exploreModel) statusLine() string {
	selected := "none"
	if m.vp.Selected != "" {
		selected = m.vp.Selected
	}
	return StyleTitle.Render("graphscape") + StyleDim.Render(fmt.Sprintf(
		"  %s · zoom %.0f%% · selected %s · %d nodes · %d edges",
		m.algorithm, m.vp.Scale*100, selected, m.g.NodeCount(), len(m.result.Segments)))
}

// drawLine samples an edge segment into grid cells, skipping the endpoints
// so node marks stay visible.
func drawLine(grid []string, gridW int, cell func(float64, float64) (int, int, bool), e view.EdgeLine, mark string) {
	steps := 32
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := e.X1 + (e.X2-e.X1)*t
		y := e.Y1 + (e.Y2-e.Y1)*t
		if cx, cy, ok := cell(x, y); ok {
			idx := cy*gridW + cx
			if grid[idx] == "" {
				grid[idx] = mark
			}
		}
	}
}
