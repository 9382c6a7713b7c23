// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket holds the pure domain engines over ticket
// collections: the filter (visible-subset computation from Criteria),
// the CSV export formatter, and aggregate statistics.
//
// Everything here is deterministic and free of I/O: functions take a
// slice of tickets and return derived values without touching storage
// or the terminal. The record type itself lives in
// [github.com/ticketdesk/ticketdesk/lib/schema/ticket].
package ticket
