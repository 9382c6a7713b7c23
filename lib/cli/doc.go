// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the ticketdesk
// binary.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/ticketdesk and dispatched via [Command.Execute], which handles
// flag parsing, subcommand routing, and structured help output with
// examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Command handlers return [ToolError] values to classify failures
// (validation, not found, conflict, internal); main maps the category
// to the process exit code. [ExitError] covers the narrower case of a
// handler that already printed its own output and only needs a
// non-zero exit.
package cli
