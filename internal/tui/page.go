package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is a top-level screen (intro loader, portfolio).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// Leaver is implemented by pages that hold timers. Leave runs when the app
// switches away, so ticks already in flight are dropped instead of writing
// to a screen that is no longer shown.
type Leaver interface {
	Leave()
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
}
