// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/actions"
	"github.com/ticketdesk/ticketdesk/lib/cli"
)

func exportCommand() *cli.Command {
	var configPath string
	var verbose bool
	var outputDir string

	return &cli.Command{
		Name:    "export",
		Summary: "Export all tickets to a CSV file",
		Description: `Export the full ticket collection to a CSV file named
tickets-YYYY-MM-DD.csv after today's date. The file starts with a
UTF-8 byte-order mark so spreadsheet applications detect the encoding.`,
		Usage: "ticketdesk export [--output DIR]",
		Examples: []cli.Example{
			{
				Description: "Export into the configured directory",
				Command:     "ticketdesk export",
			},
			{
				Description: "Export into a specific directory",
				Command:     "ticketdesk export --output ~/reports",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			flagSet.StringVar(&outputDir, "output", "", "output directory (default: from config)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			s, err := openSession(configPath, "export", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			directory := outputDir
			if directory == "" {
				directory = s.cfg.Paths.Export
			}

			path, count, err := s.app.Export(context.Background(), directory)
			if errors.Is(err, actions.ErrNoTickets) {
				fmt.Println("No tickets to export.")
				return &cli.ExitError{Code: 1}
			}
			if err != nil {
				return cli.Internal("%v", err)
			}

			fmt.Printf("Exported %d ticket(s) to %s\n", count, path)
			return nil
		},
	}
}
