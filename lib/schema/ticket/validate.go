// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"regexp"
	"strings"
)

// Submission is a candidate ticket as entered by the user, before an
// ID, date, or status has been assigned. All fields are raw strings
// straight from the input boundary (form fields or CLI flags).
type Submission struct {
	Name        string
	Email       string
	Category    string
	Priority    string
	Description string
}

// emailPattern accepts anything of the shape local@domain.tld where
// none of the three parts contains whitespace or a second @. This is
// deliberately loose; the goal is catching obvious typos, not
// RFC 5322 conformance.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission checks a candidate against the intake rules and
// returns a user-facing message for the first rule that fails, or the
// empty string if all pass. The rules run in a fixed order and
// short-circuit, so an entirely empty submission reports only
// "Name is required."
//
// No side effects; the submission is not modified (trimming here is
// for the check only; stored values keep the submitter's spacing).
func ValidateSubmission(candidate Submission) string {
	if strings.TrimSpace(candidate.Name) == "" {
		return "Name is required."
	}
	if strings.TrimSpace(candidate.Email) == "" {
		return "Email is required."
	}
	if !emailPattern.MatchString(candidate.Email) {
		return "Email looks invalid."
	}
	if candidate.Category == "" {
		return "Category is required."
	}
	if candidate.Priority == "" {
		return "Priority is required."
	}
	if strings.TrimSpace(candidate.Description) == "" {
		return "Description is required."
	}
	return ""
}
