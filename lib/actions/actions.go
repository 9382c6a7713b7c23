// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ticketdesk/ticketdesk/lib/clock"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticketstore"
)

// ErrNoTickets is returned by Export when the collection is empty.
// Not a system failure; the caller shows a notice and moves on.
var ErrNoTickets = errors.New("actions: no tickets to export")

// App bundles the components every user action composes: the
// persistence adapter, an injectable clock, and a logger. Both the
// TUI and the CLI subcommands drive the same App, so the transaction
// semantics (reload, mutate the snapshot, write everything back) are
// identical regardless of surface.
type App struct {
	store  *ticketstore.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New builds an App. A nil clk defaults to the real clock; a nil
// logger discards.
func New(store *ticketstore.Store, clk clock.Clock, logger *slog.Logger) *App {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{store: store, clock: clk, logger: logger}
}

// List loads the full collection and the subset visible under the
// given criteria. No persistence write.
func (app *App) List(ctx context.Context, criteria ticket.Criteria) (all, visible []schema.Ticket) {
	all = app.store.Load(ctx)
	return all, ticket.Filter(all, criteria)
}

// Submit validates a candidate and, if it passes, appends a new
// ticket to the stored collection. The returned string is the
// validation message: non-empty means the submission was rejected and
// nothing was stored. A non-nil error means validation passed but the
// write failed (capacity errors match ticketstore.ErrCapacityExceeded).
func (app *App) Submit(ctx context.Context, candidate schema.Submission) (schema.Ticket, string, error) {
	if message := schema.ValidateSubmission(candidate); message != "" {
		return schema.Ticket{}, message, nil
	}

	// Priority passed validation as non-empty; it must also be a
	// recognized enum value before it is persisted.
	priority, err := schema.ParsePriority(candidate.Priority)
	if err != nil {
		return schema.Ticket{}, "Priority is required.", nil
	}

	now := app.clock.Now()
	tickets := app.store.Load(ctx)

	created := schema.Ticket{
		ID:          schema.NewID(now, tickets),
		Date:        now.Format(schema.DateFormat),
		Name:        candidate.Name,
		Email:       candidate.Email,
		Category:    candidate.Category,
		Description: candidate.Description,
		Priority:    priority,
		Status:      schema.StatusOpen,
	}

	if err := app.store.Save(ctx, append(tickets, created)); err != nil {
		return schema.Ticket{}, "", err
	}

	app.logger.Info("ticket submitted", "id", created.ID, "priority", created.Priority)
	return created, "", nil
}

// Toggle flips the status of the ticket with the given id. A missing
// id is a silent no-op (found == false), not an error; the ticket
// may have been deleted by another process since the caller last
// looked.
func (app *App) Toggle(ctx context.Context, id int64) (schema.Ticket, bool, error) {
	tickets := app.store.Load(ctx)
	for i := range tickets {
		if tickets[i].ID != id {
			continue
		}
		tickets[i].Status = tickets[i].Status.Toggled()
		if err := app.store.Save(ctx, tickets); err != nil {
			return schema.Ticket{}, false, err
		}
		app.logger.Info("ticket toggled", "id", id, "status", tickets[i].Status)
		return tickets[i], true, nil
	}
	return schema.Ticket{}, false, nil
}

// Delete removes the ticket with the given id after the confirm
// callback approves it. The callback receives the ticket so the
// prompt can name the submitter. Returns false without error when the
// id is absent or the confirmation is declined; in both cases the
// stored collection is untouched.
func (app *App) Delete(ctx context.Context, id int64, confirm func(schema.Ticket) bool) (bool, error) {
	tickets := app.store.Load(ctx)
	for i := range tickets {
		if tickets[i].ID != id {
			continue
		}
		if confirm != nil && !confirm(tickets[i]) {
			return false, nil
		}
		remaining := append(tickets[:i:i], tickets[i+1:]...)
		if err := app.store.Save(ctx, remaining); err != nil {
			return false, err
		}
		app.logger.Info("ticket deleted", "id", id)
		return true, nil
	}
	return false, nil
}

// Export writes the full collection as CSV into directory, named
// tickets-<date>.csv after the current calendar date. Returns
// ErrNoTickets when there is nothing to export (precondition enforced
// here, not in the formatter).
func (app *App) Export(ctx context.Context, directory string) (path string, count int, err error) {
	tickets := app.store.Load(ctx)
	if len(tickets) == 0 {
		return "", 0, ErrNoTickets
	}

	name := ticket.ExportFileName(app.clock.Now())
	path = filepath.Join(directory, name)
	if err := os.WriteFile(path, []byte(ticket.CSV(tickets)), 0o644); err != nil {
		return "", 0, fmt.Errorf("actions: writing export: %w", err)
	}

	app.logger.Info("tickets exported", "path", path, "count", len(tickets))
	return path, len(tickets), nil
}

// ThemePreference returns the persisted theme, or false when none is
// stored.
func (app *App) ThemePreference(ctx context.Context) (string, bool) {
	return app.store.LoadTheme(ctx)
}

// SetTheme persists a theme preference.
func (app *App) SetTheme(ctx context.Context, theme string) error {
	return app.store.SaveTheme(ctx, theme)
}

// ToggleTheme flips and persists the theme, returning the new value.
// The current value is supplied by the caller, which knows the
// resolved theme even when no preference was persisted yet.
func (app *App) ToggleTheme(ctx context.Context, current string) (string, error) {
	next := ticketstore.ThemeDark
	if current == ticketstore.ThemeDark {
		next = ticketstore.ThemeLight
	}
	if err := app.store.SaveTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
