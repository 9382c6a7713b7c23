// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketui implements the interactive terminal interface: an
// intake form, a filter bar, and the ticket table, composed into a
// single bubbletea [Model].
//
// The package separates pure display computation from rendering.
// [BuildDisplay] translates ticket collections into a [Display]
// (rows, empty-state message, count summary) with no I/O, and the
// View methods turn that into styled terminal output. State mutation
// goes through [github.com/ticketdesk/ticketdesk/lib/actions], which
// reloads from the store before every write; the tickets held by the
// model are only a render snapshot.
package ticketui
