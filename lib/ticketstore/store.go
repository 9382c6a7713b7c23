// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ticketdesk/ticketdesk/lib/kvstore"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// Storage keys. The entire persisted state of the application is
// these two string values.
const (
	ticketsKey = "tickets"
	themeKey   = "theme"
)

// Theme preference literals, stored verbatim under themeKey.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrCapacityExceeded is returned by Save when the store cannot grow.
// The write did not complete; callers surface this with guidance to
// export and trim rather than retry.
var ErrCapacityExceeded = errors.New("ticketstore: storage capacity exceeded")

// Store is the persistence adapter between the ticket domain and the
// key-value store. The stored collection is the single source of
// truth: no in-memory cache is kept between operations, and every
// mutating action reloads before writing the whole collection back.
type Store struct {
	kv     *kvstore.Store
	logger *slog.Logger
}

// New wraps a key-value store. A nil logger discards.
func New(kv *kvstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, logger: logger}
}

// Load reads the ticket collection. It never fails: an absent key, a
// read error, corrupt JSON, or a value that is not a JSON array all
// degrade to an empty collection (logged, not surfaced; the user can
// keep working and the next Save repairs the stored value).
func (store *Store) Load(ctx context.Context) []schema.Ticket {
	raw, found, err := store.kv.Get(ctx, ticketsKey)
	if err != nil {
		store.logger.Warn("ticket load failed, treating as empty", "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var tickets []schema.Ticket
	if err := json.Unmarshal([]byte(raw), &tickets); err != nil {
		store.logger.Warn("stored tickets are corrupt, treating as empty",
			"error", err,
			"bytes", len(raw),
		)
		return nil
	}
	return tickets
}

// Save serializes and writes the full collection. On a capacity
// failure the returned error matches ErrCapacityExceeded (via
// errors.Is); any other failure is wrapped as-is.
func (store *Store) Save(ctx context.Context, tickets []schema.Ticket) error {
	// Marshal the empty collection as [] rather than null so a
	// freshly cleared store still holds a well-formed sequence.
	if tickets == nil {
		tickets = []schema.Ticket{}
	}
	data, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("ticketstore: encoding tickets: %w", err)
	}

	if err := store.kv.Set(ctx, ticketsKey, string(data)); err != nil {
		if kvstore.IsCapacityError(err) {
			return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return fmt.Errorf("ticketstore: saving tickets: %w", err)
	}
	return nil
}

// LoadTheme returns the persisted theme preference. The second result
// is false when no valid preference is stored (absent key, read
// error, or an unrecognized literal).
func (store *Store) LoadTheme(ctx context.Context) (string, bool) {
	value, found, err := store.kv.Get(ctx, themeKey)
	if err != nil {
		store.logger.Warn("theme load failed", "error", err)
		return "", false
	}
	if !found {
		return "", false
	}
	if value != ThemeLight && value != ThemeDark {
		store.logger.Warn("stored theme is not recognized", "value", value)
		return "", false
	}
	return value, true
}

// SaveTheme persists a theme preference. Only the two recognized
// literals are ever written.
func (store *Store) SaveTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("ticketstore: invalid theme %q (want %s or %s)", theme, ThemeLight, ThemeDark)
	}
	if err := store.kv.Set(ctx, themeKey, theme); err != nil {
		return fmt.Errorf("ticketstore: saving theme: %w", err)
	}
	return nil
}
