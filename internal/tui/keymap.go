package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	// Navigation
	NextPanel key.Binding
	PrevPanel key.Binding
	Left      key.Binding
	Right     key.Binding
	NextView  key.Binding

	// Chart type
	CycleType key.Binding
	Bar       key.Binding
	Line      key.Binding
	Area      key.Binding
	Pie       key.Binding

	// Actions
	Filter       key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
	ApplyFilter  key.Binding
	CancelFilter key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPanel: key.NewBinding(
			key.WithKeys("tab", "j", "down"),
			key.WithHelp("tab/j", "next chart"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab", "k", "up"),
			key.WithHelp("shift+tab/k", "previous chart"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous point"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next point"),
		),
		NextView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "switch view"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle chart type"),
		),
		Bar: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "bar"),
		),
		Line: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "line"),
		),
		Area: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "area"),
		),
		Pie: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "pie"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter locations"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ApplyFilter: key.NewBinding(
			key.WithKeys("enter"),
		),
		CancelFilter: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.CycleType, k.NextView, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.Left, k.Right},
		{k.CycleType, k.Bar, k.Line, k.Area, k.Pie},
		{k.NextView, k.Filter, k.Refresh, k.Help, k.Quit},
	}
}
