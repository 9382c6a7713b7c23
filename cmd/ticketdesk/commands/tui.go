// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/cli"
	"github.com/ticketdesk/ticketdesk/lib/ticketui"
	"github.com/ticketdesk/ticketdesk/lib/tui"
)

func tuiCommand() *cli.Command {
	var configPath string
	var themeFlag string

	return &cli.Command{
		Name:    "tui",
		Summary: "Open the interactive terminal interface",
		Description: `Open the interactive interface: an intake form, a filterable ticket
table, and CSV export, all in the terminal.`,
		Usage: "ticketdesk tui [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("tui", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&themeFlag, "theme", "", "force a theme for this session (light or dark)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if themeFlag != "" && themeFlag != "light" && themeFlag != "dark" {
				return cli.Validation("invalid theme %q: want light or dark", themeFlag)
			}

			s, err := openQuietSession(configPath)
			if err != nil {
				return err
			}
			defer s.Close()

			// Theme resolution order: --theme flag, config file,
			// persisted preference, terminal background detection.
			themeName := themeFlag
			if themeName == "" {
				themeName = s.cfg.UI.Theme
			}
			if themeName == "" {
				if saved, found := s.app.ThemePreference(context.Background()); found {
					themeName = saved
				}
			}
			if themeName == "" {
				themeName = tui.DetectThemeName()
			}

			model := ticketui.NewModel(ticketui.Config{
				App:       s.app,
				ThemeName: themeName,
				ExportDir: s.cfg.Paths.Export,
			})
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
