// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticket"
)

func listCommand() *cli.Command {
	var configPath string
	var verbose bool
	var statusFilter string
	var priorityFilter string
	var search string
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "Print matching tickets",
		Description: `Print tickets matching the given filters. Filters combine: a ticket
must satisfy all of them. Order is submission order, oldest first.`,
		Usage: "ticketdesk list [--status STATUS] [--priority PRIORITY] [--search TEXT] [--json]",
		Examples: []cli.Example{
			{
				Description: "All open high-priority tickets",
				Command:     "ticketdesk list --status Open --priority High",
			},
			{
				Description: "Substring search across all fields, as JSON",
				Command:     "ticketdesk list --search printer --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			flagSet.StringVar(&statusFilter, "status", "", "filter by status (Open or Closed)")
			flagSet.StringVar(&priorityFilter, "priority", "", "filter by priority (Low, Medium, High)")
			flagSet.StringVar(&search, "search", "", "case-insensitive substring match across all fields")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if statusFilter != "" {
				if _, err := schema.ParseStatus(statusFilter); err != nil {
					return cli.Validation("%v", err)
				}
			}
			if priorityFilter != "" {
				if _, err := schema.ParsePriority(priorityFilter); err != nil {
					return cli.Validation("%v", err)
				}
			}

			s, err := openSession(configPath, "list", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			all, visible := s.app.List(context.Background(), ticket.Criteria{
				Status:   statusFilter,
				Priority: priorityFilter,
				Query:    search,
			})

			if asJSON {
				if visible == nil {
					visible = []schema.Ticket{}
				}
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(visible)
			}

			if len(all) == 0 {
				fmt.Println("No tickets yet. Submit one above to get started.")
				return nil
			}
			if len(visible) == 0 {
				fmt.Println("No tickets match your filters.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tNAME\tCATEGORY\tPRIORITY\tSTATUS\tDESCRIPTION")
			for _, entry := range visible {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					entry.ID, entry.Date, entry.Name, entry.Category,
					entry.Priority, entry.Status, entry.Description)
			}
			tw.Flush()

			stats := ticket.Summarize(all)
			if len(visible) == len(all) {
				fmt.Printf("\n%d ticket(s) (%d open, %d closed)\n",
					stats.Total, stats.Open, stats.Closed)
			} else {
				fmt.Printf("\nShowing %d of %d tickets (%d open, %d closed)\n",
					len(visible), stats.Total, stats.Open, stats.Closed)
			}
			return nil
		},
	}
}
