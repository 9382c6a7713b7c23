// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ticketdesk/ticketdesk/lib/actions"
	"github.com/ticketdesk/ticketdesk/lib/cli"
	"github.com/ticketdesk/ticketdesk/lib/clock"
	"github.com/ticketdesk/ticketdesk/lib/config"
	"github.com/ticketdesk/ticketdesk/lib/kvstore"
	"github.com/ticketdesk/ticketdesk/lib/ticketstore"
)

// session bundles the open store and the action handlers for one
// command invocation.
type session struct {
	cfg    *config.Config
	app    *actions.App
	logger *slog.Logger

	kv *kvstore.Store
}

// addConfigFlag registers the shared --config flag.
func addConfigFlag(flagSet *pflag.FlagSet, configPath *string) {
	flagSet.StringVar(configPath, "config", "",
		"path to config file (default: $TICKETDESK_CONFIG, else built-in defaults)")
}

// addVerboseFlag registers the shared --verbose flag.
func addVerboseFlag(flagSet *pflag.FlagSet, verbose *bool) {
	flagSet.BoolVarP(verbose, "verbose", "v", false, "enable verbose logging")
}

// openSession loads configuration and opens the ticket store. The
// caller must Close the session when done.
func openSession(configPath, command string, verbose bool) (*session, error) {
	return openSessionWithLogger(configPath, cli.NewCommandLogger(verbose).With("command", command))
}

// openQuietSession opens a session that discards store logs. The
// interactive interface owns the terminal while the alt screen is
// active, so nothing may write to stderr underneath it.
func openQuietSession(configPath string) (*session, error) {
	return openSessionWithLogger(configPath, slog.New(slog.DiscardHandler))
}

func openSessionWithLogger(configPath string, logger *slog.Logger) (*session, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%v", err)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, cli.Internal("%v", err)
	}

	kv, err := kvstore.Open(kvstore.Config{Path: cfg.Paths.Data, Logger: logger})
	if err != nil {
		return nil, cli.Internal("opening ticket database %s: %v", cfg.Paths.Data, err)
	}

	return &session{
		cfg:    cfg,
		app:    actions.New(ticketstore.New(kv, logger), clock.Real(), logger),
		logger: logger,
		kv:     kv,
	}, nil
}

// Close releases the session's store.
func (s *session) Close() error {
	return s.kv.Close()
}

// parseTicketID parses a positional ticket ID argument.
func parseTicketID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, cli.Validation("invalid ticket ID %q: want a number", arg)
	}
	return id, nil
}

// saveError maps a store write failure to a categorized CLI error.
func saveError(err error) error {
	if errors.Is(err, ticketstore.ErrCapacityExceeded) {
		return cli.Conflict("storage is full: export your tickets and delete old ones to free space")
	}
	return cli.Internal("%v", err)
}
