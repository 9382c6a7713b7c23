// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ticketdesk/ticketdesk/cmd/ticketdesk/commands"
	"github.com/ticketdesk/ticketdesk/lib/cli"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an exit error
		// with the desired code. Don't print a redundant "error:"
		// line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var tool *cli.ToolError
		if errors.As(err, &tool) {
			os.Exit(tool.Category.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}
