// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the ticketdesk CLI command tree. The
// subcommands and the interactive TUI share the action handlers in
// lib/actions, so a ticket submitted from a script looks exactly like
// one submitted from the form.
package commands

import (
	"github.com/ticketdesk/ticketdesk/lib/cli"
)

// Root builds and returns the complete ticketdesk command tree.
// Running the binary with no subcommand launches the interactive TUI.
func Root() *cli.Command {
	root := tuiCommand()
	root.Name = "ticketdesk"
	root.Summary = ""
	root.Description = `Ticketdesk: a terminal ticket tracker.

Submit, browse, filter, and export support tickets stored in a local
database. Run without arguments for the interactive interface, or use
the subcommands for scripting.`
	root.Usage = "ticketdesk [command] [flags]"
	root.Subcommands = []*cli.Command{
		submitCommand(),
		listCommand(),
		toggleCommand(),
		deleteCommand(),
		exportCommand(),
		themeCommand(),
		tuiCommand(),
	}
	return root
}
