package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all portfolio key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextSection key.Binding
	PrevSection key.Binding
	// Always-on variants that also work while a prompt has focus.
	NextSectionAlways key.Binding
	PrevSectionAlways key.Binding
	First             key.Binding
	Last              key.Binding
	Jump              key.Binding
	ScrollUp          key.Binding
	ScrollDown        key.Binding

	// Articles
	NextCategory key.Binding
	PrevCategory key.Binding

	// Prompts
	Submit   key.Binding
	Complete key.Binding
	Reset    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("right", "l", "n", "tab"),
			key.WithHelp("→/l", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("left", "h", "p", "shift+tab"),
			key.WithHelp("←/h", "prev section"),
		),
		NextSectionAlways: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+n"),
			key.WithHelp("pgdn/ctrl+n", "next section"),
		),
		PrevSectionAlways: key.NewBinding(
			key.WithKeys("pgup", "ctrl+p"),
			key.WithHelp("pgup/ctrl+p", "prev section"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first section"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "jump to section"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),

		NextCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "prev category"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "start over"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.PrevSection, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.NextSectionAlways, k.PrevSectionAlways},
		{k.First, k.Last, k.Jump, k.ScrollUp, k.ScrollDown},
		{k.NextCategory, k.PrevCategory},
		{k.Submit, k.Complete, k.Reset},
		{k.Help, k.Escape, k.Quit, k.ForceQuit},
	}
}

// articleKeys is the footer help shown on the articles section.
type articleKeys struct {
	KeyMap
}

func (k articleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.NextSection, k.PrevSection, k.Help, k.Quit}
}

// promptKeys is the footer help shown while a prompt has focus.
type promptKeys struct {
	KeyMap
	complete bool
}

func (k promptKeys) ShortHelp() []key.Binding {
	b := []key.Binding{k.Submit}
	if k.complete {
		b = append(b, k.Complete)
	} else {
		b = append(b, k.Reset)
	}
	return append(b, k.NextSectionAlways, k.PrevSectionAlways, k.ForceQuit)
}
