// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"strings"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// Criteria is the active filter state driving the visible subset of
// tickets. Empty fields mean "no constraint"; all non-empty fields
// must match (conjunction).
type Criteria struct {
	// Status keeps only tickets whose status matches exactly.
	Status string

	// Priority keeps only tickets whose priority matches exactly.
	Priority string

	// Query is a case-insensitive substring searched across the
	// ticket's text fields. Leading and trailing whitespace is
	// ignored.
	Query string
}

// IsZero reports whether the criteria constrain nothing.
func (c Criteria) IsZero() bool {
	return c.Status == "" && c.Priority == "" && strings.TrimSpace(c.Query) == ""
}

// Matches reports whether a single ticket satisfies every non-empty
// criterion. The search query matches against the lowercased
// space-joined concatenation of name, email, category, description,
// and date, so a query can span field boundaries the way it can in a
// rendered table row.
func (c Criteria) Matches(t schema.Ticket) bool {
	if c.Status != "" && string(t.Status) != c.Status {
		return false
	}
	if c.Priority != "" && string(t.Priority) != c.Priority {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(c.Query))
	if query != "" {
		haystack := strings.ToLower(strings.Join([]string{
			t.Name, t.Email, t.Category, t.Description, t.Date,
		}, " "))
		if !strings.Contains(haystack, query) {
			return false
		}
	}
	return true
}

// Filter returns the subsequence of tickets matching the criteria,
// preserving the original relative order. Zero criteria return the
// input unchanged (same backing array). Pure: no I/O, input never
// modified.
func Filter(tickets []schema.Ticket, criteria Criteria) []schema.Ticket {
	if criteria.IsZero() {
		return tickets
	}

	var result []schema.Ticket
	for _, t := range tickets {
		if criteria.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}
