package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refindorder/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	width := m.WindowSize.Width
	if width < 40 {
		width = 80
	}

	netWidth := width - 6
	leftWidth := netWidth / 3
	rightWidth := netWidth - leftWidth

	header := titleStyle.Render("refindorder — " + m.File.Path)

	if len(m.Orders) == 0 {
		return header + "\n\n  No scanfor/showtools directives with values found.\n\n" +
			dimStyle.Render("  Press q to quit.\n")
	}

	left := m.renderDirectivePanel(leftWidth)
	right := m.renderTokenPanel(rightWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(leftWidth).Render(left),
		panelStyle.Width(rightWidth).Render(right),
	)

	footer := dimStyle.Render("j/k move cursor · J/K move token · tab switch directive · " +
		"w type order · s save · q quit")
	if m.InputMode {
		footer = "New order (1-based positions): " + m.InputBuffer.View()
	}

	status := ""
	if m.StatusMsg != "" {
		status = statusStyle.Render(m.StatusMsg) + "\n"
	}

	return header + "\n\n" + body + "\n" + status + footer + "\n"
}

// renderDirectivePanel lists the detected directives.
func (m AppModel) renderDirectivePanel(width int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Directives"))
	b.WriteString("\n\n")

	for i, d := range m.File.Directives {
		icon := model.IconActive
		if m.Dirty[i] {
			icon = model.IconModified
		} else if d.Commented {
			icon = model.IconCommented
		}

		line := fmt.Sprintf("%s %s (line %d)", icon, d.Name, d.Line)
		if d.Commented {
			line += " (commented out)"
		}
		line = truncate(line, width-4)

		if i == m.SelectedIdx {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(dimStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTokenPanel shows the working order of the selected directive.
func (m AppModel) renderTokenPanel(width int) string {
	var b strings.Builder
	d := m.File.Directives[m.SelectedIdx]
	order := m.Orders[m.SelectedIdx]

	b.WriteString(panelTitleStyle.Render(d.Name + " order"))
	b.WriteString("\n\n")

	for i, token := range order {
		marker := " "
		if i == 0 {
			marker = model.IconFirst
		} else if i == len(order)-1 {
			marker = model.IconLast
		}

		line := truncate(fmt.Sprintf("%2d. %s %s", i+1, marker, token), width-4)

		if i == m.TokenIdx && !m.InputMode {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	// Description of the token under the cursor, when we know it.
	if m.TokenIdx < len(order) {
		if desc := model.TokenDescription(order[m.TokenIdx]); desc != "" {
			b.WriteString("\n")
			b.WriteString(descStyle.Render(truncate(desc, width-4)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max > 3 && len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}
