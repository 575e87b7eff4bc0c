package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/trace"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - accepted, success
	colorYellow = lipgloss.Color("220") // Amber - skipped, warnings
	colorRed    = lipgloss.Color("167") // Soft red - rejected, errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// styleFrame boxes one replay frame.
	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// actionStyle colors a step action by what it did to the solution.
func actionStyle(a trace.Action) lipgloss.Style {
	switch a {
	case prim_kruskal.ActionAccept, dijkstra.ActionProcessNode:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case prim_kruskal.ActionReject:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	case prim_kruskal.ActionSkip:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	case dijkstra.ActionUpdateDistances:
		return lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	}
}

// =============================================================================
// Status Output
// =============================================================================

func (c *CLI) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func (c *CLI) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

func (c *CLI) printKeyValue(key, value string) {
	fmt.Fprintln(c.out, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printStep prints one step as a single numbered line.
func (c *CLI) printStep(n int, action trace.Action, description string) {
	num := styleDim.Render(fmt.Sprintf("%3d", n))
	fmt.Fprintln(c.out, num+" "+actionStyle(action).Render(string(action))+" "+description)
}

func (c *CLI) printNewline() {
	fmt.Fprintln(c.out)
}

// num formats a weight or cost without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
