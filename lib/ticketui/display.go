// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// Row is the display descriptor for one visible ticket. Field values
// are carried raw; the rendering boundary draws them as literal
// text, never as markup, so a description containing terminal escape
// bytes or markup characters cannot inject anything.
type Row struct {
	ID          int64
	Date        string
	Name        string
	Email       string
	Category    string
	Description string

	// Priority and Status double as class-able tags: the renderer
	// colors by them via the theme.
	Priority schema.Priority
	Status   schema.Status

	// ToggleLabel is the action label for the status toggle:
	// "Reopen" for closed tickets, "Close" for open ones.
	ToggleLabel string
}

// Display is what the render boundary consumes: one row per visible
// ticket, or an empty-state message, plus the count summary.
type Display struct {
	Rows []Row

	// EmptyMessage is set only when Rows is empty. It distinguishes
	// "nothing stored yet" from "filters match nothing".
	EmptyMessage string

	// Summary is the count line: blank when nothing is stored,
	// "<n> ticket(s)" when everything is visible, otherwise
	// "Showing <shown> of <total> tickets".
	Summary string
}

// Empty-state messages.
const (
	emptyStoreMessage  = "No tickets yet. Submit one above to get started."
	emptyFilterMessage = "No tickets match your filters."
)

// BuildDisplay translates the full and filtered collections into the
// display representation. Pure: deterministic, no I/O, inputs
// unmodified.
func BuildDisplay(all, filtered []schema.Ticket) Display {
	display := Display{
		Summary: countSummary(len(all), len(filtered)),
	}

	if len(filtered) == 0 {
		if len(all) == 0 {
			display.EmptyMessage = emptyStoreMessage
		} else {
			display.EmptyMessage = emptyFilterMessage
		}
		return display
	}

	display.Rows = make([]Row, 0, len(filtered))
	for _, t := range filtered {
		display.Rows = append(display.Rows, Row{
			ID:          t.ID,
			Date:        t.Date,
			Name:        t.Name,
			Email:       t.Email,
			Category:    t.Category,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
			ToggleLabel: toggleLabel(t.Status),
		})
	}
	return display
}

// toggleLabel names the action the toggle performs, not the current
// state.
func toggleLabel(status schema.Status) string {
	if status == schema.StatusClosed {
		return "Reopen"
	}
	return "Close"
}

// countSummary renders the visible-count line.
func countSummary(total, shown int) string {
	switch {
	case total == 0:
		return ""
	case shown == total:
		return fmt.Sprintf("%d ticket(s)", total)
	default:
		return fmt.Sprintf("Showing %d of %d tickets", shown, total)
	}
}
