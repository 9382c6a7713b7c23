// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
)

func toggleCommand() *cli.Command {
	var configPath string
	var verbose bool

	return &cli.Command{
		Name:    "toggle",
		Summary: "Flip a ticket between Open and Closed",
		Usage:   "ticketdesk toggle TICKET_ID",
		Examples: []cli.Example{
			{
				Description: "Close (or reopen) ticket 1742031973000",
				Command:     "ticketdesk toggle 1742031973000",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("toggle", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("want exactly one ticket ID argument")
			}
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(configPath, "toggle", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			updated, found, err := s.app.Toggle(context.Background(), id)
			if err != nil {
				return saveError(err)
			}
			if !found {
				return cli.NotFound("no ticket with ID %d", id)
			}

			fmt.Printf("Ticket %d is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
}
