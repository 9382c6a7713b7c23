// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket defines the Ticket record and its intake validation.
//
// A Ticket is a fixed-field record with enumerated Status and Priority
// types, constructed only at one place (the submit action, after
// ValidateSubmission passes) and mutated only by flipping Status.
// The JSON encoding of the struct is the persisted wire format; the
// enum string values appear verbatim in storage, CSV export, and
// filter criteria.
//
// This package depends on no other ticketdesk packages.
package ticket
