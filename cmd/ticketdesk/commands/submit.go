// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

func submitCommand() *cli.Command {
	var configPath string
	var verbose bool
	var candidate schema.Submission

	return &cli.Command{
		Name:    "submit",
		Summary: "File a new ticket",
		Description: `File a new ticket. All five fields are required and validated the
same way the interactive form validates them; the first failing rule
is reported.`,
		Usage: "ticketdesk submit --name NAME --email EMAIL --category CATEGORY --priority PRIORITY --description TEXT",
		Examples: []cli.Example{
			{
				Description: "File a high-priority hardware ticket",
				Command:     `ticketdesk submit --name "Ada Lovelace" --email ada@example.com --category Hardware --priority High --description "Engine jammed"`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("submit", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			flagSet.StringVar(&candidate.Name, "name", "", "submitter name")
			flagSet.StringVar(&candidate.Email, "email", "", "submitter email address")
			flagSet.StringVar(&candidate.Category, "category", "", "ticket category")
			flagSet.StringVar(&candidate.Priority, "priority", "", "priority (Low, Medium, High)")
			flagSet.StringVar(&candidate.Description, "description", "", "problem description")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			s, err := openSession(configPath, "submit", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			created, message, err := s.app.Submit(context.Background(), candidate)
			if message != "" {
				return cli.Validation("%s", message)
			}
			if err != nil {
				return saveError(err)
			}

			fmt.Printf("Submitted ticket %d (%s, %s)\n", created.ID, created.Priority, created.Status)
			return nil
		},
	}
}
