// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a ticket. Exactly two states exist;
// the toggle action flips between them. The string values are the wire
// and display form: they appear verbatim in the stored JSON, the CSV
// export, and the filter criteria.
type Status string

const (
	// StatusOpen is the state of every newly submitted ticket.
	StatusOpen Status = "Open"
	// StatusClosed marks a resolved ticket. Closed tickets can be
	// reopened by toggling again.
	StatusClosed Status = "Closed"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusClosed {
		return StatusOpen
	}
	return StatusClosed
}

// ParseStatus validates a status string. The empty string is not a
// valid status; callers that treat empty as "no filter" must check
// for it before parsing.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusOpen, StatusClosed:
		return Status(value), nil
	}
	return "", fmt.Errorf("ticket: unknown status %q (want Open or Closed)", value)
}

// Priority is the submitter-chosen urgency of a ticket. Immutable
// after creation. As with Status, the string values are the stored,
// exported, and displayed form.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists all priorities from least to most urgent. The TUI
// priority selector cycles through this slice in order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority validates a priority string.
func ParsePriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), nil
	}
	return "", fmt.Errorf("ticket: unknown priority %q (want Low, Medium, or High)", value)
}

// Ticket is a single help-desk record. Every field except Status is
// immutable after creation: there is no edit feature, so a stored
// ticket only ever changes by having its status flipped or by being
// removed from the collection entirely.
//
// ID doubles as the creation instant (milliseconds since epoch) and
// the primary key. NewID guarantees uniqueness within a collection by
// bumping past the current maximum when two submissions land in the
// same millisecond.
type Ticket struct {
	// ID is the unique, monotonically increasing primary key,
	// assigned once at creation and never reassigned.
	ID int64 `json:"id"`

	// Date is the human-readable creation timestamp, formatted with
	// DateFormat at submission time and stored as-is.
	Date string `json:"date"`

	// Name, Email, Category, and Description are the submitter's
	// free-text input, stored exactly as validated.
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Priority is one of Low, Medium, High.
	Priority Priority `json:"priority"`

	// Status is Open or Closed, the only mutable field.
	Status Status `json:"status"`
}

// DateFormat renders creation timestamps for display and storage.
const DateFormat = "Jan 2, 2006, 3:04 PM"

// NewID derives a ticket ID from the creation time, bumped past the
// current collection maximum so that two submissions within the same
// millisecond still get distinct, increasing IDs.
func NewID(now time.Time, existing []Ticket) int64 {
	id := now.UnixMilli()
	for _, t := range existing {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Validate checks the structural invariants of a stored ticket:
// positive ID and recognized enum values. This guards the single
// construction point (post-validation submit) and is re-checked by
// tests on anything read back from the store. Submission-time rules
// with user-facing messages live in ValidateSubmission.
func (t *Ticket) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("ticket: id must be positive, got %d", t.ID)
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if t.Date == "" {
		return fmt.Errorf("ticket %d: date is required", t.ID)
	}
	return nil
}
