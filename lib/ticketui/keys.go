// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the ticketdesk TUI. Navigation
// and single-letter action keys apply only while the table has focus;
// while the form or the search bar has focus, printable keys go to
// the active input.
type KeyMap struct {
	// Navigation within the table.
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Focus switching between the intake form and the table.
	FocusToggle key.Binding

	// Actions on the selected ticket.
	Toggle key.Binding // Flip Open/Closed.
	Delete key.Binding // Delete after confirmation.

	// Collection actions.
	Export key.Binding

	// Filter controls.
	SearchActivate key.Binding // Enter search mode.
	CycleStatus    key.Binding // All -> Open -> Closed -> All.
	CyclePriority  key.Binding // All -> Low -> Medium -> High -> All.
	ClearFilters   key.Binding

	// Form submission (active while the form has focus).
	Submit key.Binding

	ThemeToggle key.Binding
	Quit        key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "close/reopen"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status filter"),
	),
	CyclePriority: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "priority filter"),
	),
	ClearFilters: key.NewBinding(
		key.WithKeys("c", "esc"),
		key.WithHelp("c", "clear filters"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "submit"),
	),
	ThemeToggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
