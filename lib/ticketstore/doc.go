// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketstore is the persistence adapter for the ticket
// collection and the theme preference.
//
// The persisted layout is two string values in the key-value store:
// "tickets" holds the full collection as a JSON array, "theme" holds
// the literal "light" or "dark". Reads are tolerant: anything that
// is missing, unparsable, or not shaped as an array degrades to an
// empty collection without surfacing an error. Writes are whole-value
// and synchronous: every mutating action reloads the collection,
// mutates the transient snapshot, and writes it all back.
//
// The one failure callers must distinguish is capacity exhaustion
// ([ErrCapacityExceeded]): the write did not happen and retrying will
// not help, so the user-facing advice is to export and trim. All
// other write failures are wrapped and reported best-effort.
package ticketstore
