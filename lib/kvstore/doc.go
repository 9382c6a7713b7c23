// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package kvstore provides the durable key-value store underneath the
// ticket collection and the theme preference.
//
// The layout is deliberately primitive: one SQLite table mapping
// string keys to string values, whole values read and written
// atomically. The ticket collection lives under a single key as a
// JSON array; the theme preference under another as a bare literal.
// There is no per-ticket row, no diffing, and no caching: every
// logical operation re-reads the value it is about to mutate, which
// makes lost updates impossible within a single process.
//
// Built on zombiezen.com/go/sqlite with WAL journaling and
// synchronous=FULL, since this file is the only copy of the user's
// data. The package exposes [IsCapacityError] so callers can
// distinguish "the disk is full" (actionable: export and trim) from
// other write failures (logged, best-effort).
package kvstore
