// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of
// calling time.Now directly. In production, Real() provides standard
// library behavior. In tests, Fake() provides a deterministic clock
// that moves only when Advance or Set is called.
//
// # Wiring Pattern
//
// Constructors take a Clock parameter instead of reading the system
// clock themselves:
//
//	app := actions.New(store, clock.Real(), logger)
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	app := actions.New(store, c, nil)
//	c.Advance(time.Minute) // next submitted ticket gets a later ID
//
// This package has no ticketdesk-internal dependencies.
package clock
