package tui

import (
	"refindorder/internal/conf"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	File   *conf.File
	Orders [][]string // Working copy of each directive's token order
	Dirty  []bool     // True once a directive's order differs from the file

	// UI State
	SelectedIdx int // Selected directive (left panel)
	TokenIdx    int // Token cursor within the selected directive
	WindowSize  tea.WindowSizeMsg
	StatusMsg   string

	// Permutation input ('w')
	InputMode   bool
	InputBuffer textinput.Model
}

// InitialModel returns the initial state for a loaded config file.
func InitialModel(f *conf.File) AppModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 3 1 2"
	ti.CharLimit = 60
	ti.Width = 24

	orders := make([][]string, len(f.Directives))
	for i, d := range f.Directives {
		orders[i] = append([]string(nil), d.Items...)
	}

	return AppModel{
		File:        f,
		Orders:      orders,
		Dirty:       make([]bool, len(f.Directives)),
		InputBuffer: ti,
	}
}
