// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package actions implements the user-intent handlers: submit,
// toggle, delete, export, list, and theme changes.
//
// Each handler is a synchronous transaction over the stored
// collection: load, mutate the transient snapshot, write the whole
// collection back. Nothing is cached between calls, so within one
// process no read-modify-write can interleave with another.
// Concurrent writers from a second process racing on the same store
// are an accepted limitation, mirrored by the silent no-op behavior
// on toggle/delete lookup misses.
//
// The handlers are surface-agnostic: the bubbletea TUI and the CLI
// subcommands both call the same [App]. User interaction that a
// handler needs mid-transaction (the delete confirmation) is passed
// in as a callback so each surface can prompt its own way.
package actions
