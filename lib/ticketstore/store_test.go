// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ticketdesk/ticketdesk/lib/kvstore"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

func openTestStore(t *testing.T) (*Store, *kvstore.Store) {
	t.Helper()
	kv, err := kvstore.Open(kvstore.Config{Path: filepath.Join(t.TempDir(), "tickets.db")})
	if err != nil {
		t.Fatalf("opening kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return New(kv, nil), kv
}

func sampleTickets() []schema.Ticket {
	return []schema.Ticket{
		{
			ID: 1700000000001, Date: "Mar 1, 2026, 9:00 AM",
			Name: "Ada Lovelace", Email: "ada@example.com",
			Category: "Hardware", Description: "Reader jams",
			Priority: schema.PriorityHigh, Status: schema.StatusOpen,
		},
		{
			ID: 1700000000002, Date: "Mar 2, 2026, 10:30 AM",
			Name: "Grace Hopper", Email: "grace@example.com",
			Category: "Software", Description: "Moth in relay",
			Priority: schema.PriorityLow, Status: schema.StatusClosed,
		},
	}
}

func TestLoadEmptyStore(t *testing.T) {
	store, _ := openTestStore(t)

	if tickets := store.Load(context.Background()); len(tickets) != 0 {
		t.Errorf("fresh store should load empty, got %d tickets", len(tickets))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	original := sampleTickets()

	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := store.Load(ctx)
	if len(loaded) != len(original) {
		t.Fatalf("round trip: got %d tickets, want %d", len(loaded), len(original))
	}
	for i := range original {
		if loaded[i] != original[i] {
			t.Errorf("ticket %d differs after round trip:\n got %+v\nwant %+v", i, loaded[i], original[i])
		}
	}
}

func TestLoadRecoversFromCorruptValue(t *testing.T) {
	store, kv := openTestStore(t)
	ctx := context.Background()

	// Corrupt JSON and a non-array shape must both degrade to an
	// empty collection, never an error or panic.
	for _, corrupt := range []string{"not json", "{}", `{"id":1}`, "42"} {
		if err := kv.Set(ctx, "tickets", corrupt); err != nil {
			t.Fatalf("seeding corrupt value: %v", err)
		}
		if tickets := store.Load(ctx); len(tickets) != 0 {
			t.Errorf("corrupt value %q loaded as %d tickets, want 0", corrupt, len(tickets))
		}
	}
}

func TestSaveRepairsCorruptValue(t *testing.T) {
	store, kv := openTestStore(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "tickets", "not json"); err != nil {
		t.Fatalf("seeding corrupt value: %v", err)
	}
	if err := store.Save(ctx, sampleTickets()); err != nil {
		t.Fatalf("Save over corrupt value: %v", err)
	}
	if tickets := store.Load(ctx); len(tickets) != 2 {
		t.Errorf("after repair: got %d tickets, want 2", len(tickets))
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	store, kv := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}

	raw, found, err := kv.Get(ctx, "tickets")
	if err != nil || !found {
		t.Fatalf("stored value missing: found=%v err=%v", found, err)
	}
	if raw != "[]" {
		t.Errorf("nil collection stored as %q, want []", raw)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if _, ok := store.LoadTheme(ctx); ok {
		t.Error("fresh store should have no theme preference")
	}

	if err := store.SaveTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}
	theme, ok := store.LoadTheme(ctx)
	if !ok || theme != ThemeDark {
		t.Errorf("LoadTheme = %q (ok %v), want dark", theme, ok)
	}
}

func TestThemeRejectsUnknownLiteral(t *testing.T) {
	store, kv := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveTheme(ctx, "solarized"); err == nil {
		t.Error("SaveTheme should reject unknown literals")
	}

	// A foreign value already in the store reads as absent.
	if err := kv.Set(ctx, "theme", "solarized"); err != nil {
		t.Fatalf("seeding theme: %v", err)
	}
	if _, ok := store.LoadTheme(ctx); ok {
		t.Error("unknown stored literal should read as absent")
	}
}
