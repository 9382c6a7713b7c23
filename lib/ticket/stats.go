// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// Stats summarizes a ticket collection for status lines and list
// output.
type Stats struct {
	Total  int
	Open   int
	Closed int

	// ByPriority counts tickets per priority, keyed by the enum
	// string value.
	ByPriority map[schema.Priority]int
}

// Summarize computes aggregate counts over a collection.
func Summarize(tickets []schema.Ticket) Stats {
	stats := Stats{
		Total:      len(tickets),
		ByPriority: make(map[schema.Priority]int),
	}
	for _, t := range tickets {
		switch t.Status {
		case schema.StatusOpen:
			stats.Open++
		case schema.StatusClosed:
			stats.Closed++
		}
		stats.ByPriority[t.Priority]++
	}
	return stats
}
