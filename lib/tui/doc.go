// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds the generic terminal UI building blocks shared by
// ticketdesk's bubbletea surfaces: the color [Theme] (one palette per
// persisted preference), the [ConfirmModal] yes/no overlay, and the
// ANSI-aware [SpliceOverlay] helper that places modal content on top
// of a rendered view.
//
// Ticket-specific rendering (the intake form, the table, the filter
// bar) lives in [github.com/ticketdesk/ticketdesk/lib/ticketui].
package tui
