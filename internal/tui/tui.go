package tui

import (
	"projectboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Options tune the interactive board.
type Options struct {
	// Theme forces the palette: light, dark, or auto (terminal detection).
	Theme string
}

// Run starts the interactive board on the given store. The store is owned by
// the caller; Run only attaches views to it.
func Run(b *store.Board, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(b)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
