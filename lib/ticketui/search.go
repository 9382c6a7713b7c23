// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ticketdesk/ticketdesk/lib/tui"
)

// SearchBar owns the free-text query of the filter criteria. The
// query composes with the status and priority cycles: those choose
// exact-match constraints, the search narrows further by substring.
type SearchBar struct {
	// Input is the current query text.
	Input string

	// Active is true when the search bar has keyboard focus (the
	// user pressed / to start typing).
	Active bool
}

// HandleRune appends a typed character to the query.
func (bar *SearchBar) HandleRune(character rune) {
	bar.Input += string(character)
}

// HandleBackspace removes the last character from the query. Returns
// false when there was nothing to remove.
func (bar *SearchBar) HandleBackspace() bool {
	if len(bar.Input) == 0 {
		return false
	}
	runes := []rune(bar.Input)
	bar.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the bar.
func (bar *SearchBar) Clear() {
	bar.Input = ""
	bar.Active = false
}

// View renders the search segment of the filter bar. When active,
// shows the input with a block cursor. When inactive with text, shows
// the query as a subtle indicator. When inactive and empty, shows the
// activation hint.
func (bar *SearchBar) View(theme tui.Theme) string {
	if bar.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Render("/"+bar.Input) + cursor
	}
	if bar.Input != "" {
		return lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render("search: " + bar.Input)
	}
	return lipgloss.NewStyle().
		Foreground(theme.HelpText).
		Render("/ search")
}
