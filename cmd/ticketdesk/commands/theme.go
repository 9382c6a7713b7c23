// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
	"github.com/ticketdesk/ticketdesk/lib/ticketstore"
)

func themeCommand() *cli.Command {
	return &cli.Command{
		Name:    "theme",
		Summary: "Show or set the color theme",
		Subcommands: []*cli.Command{
			themeShowCommand(),
			themeSetCommand(),
		},
	}
}

func themeShowCommand() *cli.Command {
	var configPath string
	var verbose bool

	return &cli.Command{
		Name:    "show",
		Summary: "Print the persisted theme preference",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			return flagSet
		},
		Run: func(args []string) error {
			s, err := openSession(configPath, "theme/show", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			name, found := s.app.ThemePreference(context.Background())
			if !found {
				fmt.Println("no preference saved (terminal background decides)")
				return nil
			}
			fmt.Println(name)
			return nil
		},
	}
}

func themeSetCommand() *cli.Command {
	var configPath string
	var verbose bool

	return &cli.Command{
		Name:    "set",
		Summary: "Persist a theme preference",
		Usage:   "ticketdesk theme set <light|dark>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("set", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			addVerboseFlag(flagSet, &verbose)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("want exactly one argument: light or dark")
			}
			name := args[0]
			if name != ticketstore.ThemeLight && name != ticketstore.ThemeDark {
				return cli.Validation("invalid theme %q: want light or dark", name)
			}

			s, err := openSession(configPath, "theme/set", verbose)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.app.SetTheme(context.Background(), name); err != nil {
				return saveError(err)
			}
			fmt.Printf("Theme set to %s\n", name)
			return nil
		},
	}
}
