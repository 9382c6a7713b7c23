// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

func deleteCommand() *cli.Command {
	var configPath string
	var verbose bool
	var skipConfirm bool

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a ticket permanently",
		Description: `Delete a ticket. Asks for confirmation naming the submitter unless
--yes is given. There is no undo.`,
		Usage: "ticketdesk delete TICKET_ID [--yes]",
		Examples: []cli.Example{
			{
				Description: "Delete with confirmation prompt",
				Command:     "ticketdesk delete 1742031973000",
			},
			{
				Description: "Delete without prompting (scripts)",
				Command:     "ticketdesk delete 1742031973000 --yes",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			flagSet.BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")
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

			s, err := openSession(configPath, "delete", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			confirm := func(doomed schema.Ticket) bool {
				if skipConfirm {
					return true
				}
				fmt.Printf("Delete the ticket from %s? [y/N]: ", doomed.Name)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				return answer == "y" || answer == "yes"
			}

			deleted, err := s.app.Delete(context.Background(), id, confirm)
			if err != nil {
				return saveError(err)
			}
			if !deleted {
				// Declined, or the ticket was already gone. Both are
				// quiet successes; deletion of a missing ticket is a
				// no-op by contract.
				fmt.Println("Nothing deleted.")
				return nil
			}

			fmt.Printf("Deleted ticket %d\n", id)
			return nil
		},
	}
}
