package tui

import (
	"fmt"

	"refindorder/internal/reorder"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.applyPermutation(m.InputBuffer.Value())
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.TokenIdx > 0 {
				m.TokenIdx--
			}
		case "down", "j":
			if n := m.tokenCount(); m.TokenIdx < n-1 {
				m.TokenIdx++
			}
		case "K", "shift+up":
			// Move the token itself toward the front.
			if m.TokenIdx > 0 {
				m.moveToken(m.TokenIdx, m.TokenIdx-1)
				m.TokenIdx--
			}
		case "J", "shift+down":
			if n := m.tokenCount(); m.TokenIdx < n-1 {
				m.moveToken(m.TokenIdx, m.TokenIdx+1)
				m.TokenIdx++
			}
		case "tab":
			if len(m.Orders) > 0 {
				m.SelectedIdx = (m.SelectedIdx + 1) % len(m.Orders)
				m.TokenIdx = 0
			}
		case "shift+tab":
			if len(m.Orders) > 0 {
				m.SelectedIdx = (m.SelectedIdx + len(m.Orders) - 1) % len(m.Orders)
				m.TokenIdx = 0
			}
		case "w":
			if m.tokenCount() > 0 {
				m.InputMode = true
				m.InputBuffer.Focus()
				m.InputBuffer.SetValue("")
				m.StatusMsg = ""
				return m, textinput.Blink
			}
		case "s":
			m.save()
		}
	}

	return m, cmd
}

func (m *AppModel) tokenCount() int {
	if m.SelectedIdx >= len(m.Orders) {
		return 0
	}
	return len(m.Orders[m.SelectedIdx])
}

// moveToken swaps the token at from with the one at to in the selected
// directive's working order.
func (m *AppModel) moveToken(from, to int) {
	order := m.Orders[m.SelectedIdx]
	order[from], order[to] = order[to], order[from]
	m.Dirty[m.SelectedIdx] = true
	m.StatusMsg = ""
}

// applyPermutation replaces the selected directive's working order
// with the permutation typed into the input buffer. Invalid input is
// reported in the status line and changes nothing.
func (m *AppModel) applyPermutation(response string) {
	order := m.Orders[m.SelectedIdx]
	indices, err := reorder.ParsePermutation(response, len(order))
	if err != nil {
		m.StatusMsg = fmt.Sprintf("Invalid order: %v", err)
		return
	}
	m.Orders[m.SelectedIdx] = reorder.Apply(order, indices)
	m.Dirty[m.SelectedIdx] = true
	m.StatusMsg = ""
}

// save rewrites every directive line from the working orders and
// writes the file back in one shot.
func (m *AppModel) save() {
	for i, order := range m.Orders {
		m.File.Rewrite(i, order)
	}
	if err := m.File.Save(); err != nil {
		m.StatusMsg = fmt.Sprintf("Save failed: %v", err)
		return
	}
	for i := range m.Dirty {
		m.Dirty[i] = false
	}
	m.StatusMsg = "Saved " + m.File.Path
}
