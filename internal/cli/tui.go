package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// replayModel - step-through trace viewer
// =============================================================================

// replayModel is the bubbletea model for stepping through a trace.
type replayModel struct {
	title  string
	frames []frame
	cursor int
}

// newReplayModel creates a model positioned at the first frame.
func newReplayModel(title string, frames []frame) replayModel {
	return replayModel{title: title, frames: frames}
}

func (m replayModel) Init() tea.Cmd {
	return nil
}

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.cursor < len(m.frames)-1 {
				m.cursor++
			}
		case "left", "h", "p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.frames) - 1
		}
	}
	return m, nil
}

func (m replayModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.frames) == 0 {
		b.WriteString(styleDim.Render("(empty trace)"))
		b.WriteString("\n")
		return b.String()
	}

	f := m.frames[m.cursor]
	header := actionStyle(f.action).Render(string(f.action)) + " " +
		styleDim.Render(fmt.Sprintf("[%d/%d]", m.cursor+1, len(m.frames)))
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		styleValue.Render(f.description),
		"",
		styleDim.Render(strings.Join(f.details, "\n")),
	)
	b.WriteString(styleFrame.Render(body))
	b.WriteString("\n")

	return b.String()
}
