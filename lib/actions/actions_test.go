// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ticketdesk/ticketdesk/lib/clock"
	"github.com/ticketdesk/ticketdesk/lib/kvstore"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticketstore"
)

func testApp(t *testing.T) (*App, *clock.FakeClock) {
	t.Helper()
	kv, err := kvstore.Open(kvstore.Config{Path: filepath.Join(t.TempDir(), "tickets.db")})
	if err != nil {
		t.Fatalf("opening kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	fake := clock.Fake(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	return New(ticketstore.New(kv, nil), fake, nil), fake
}

func validSubmission() schema.Submission {
	return schema.Submission{
		Name:        "A",
		Email:       "a@b.com",
		Category:    "Hardware",
		Priority:    "High",
		Description: "x",
	}
}

func TestSubmitStoresOpenTicket(t *testing.T) {
	app, fake := testApp(t)
	ctx := context.Background()

	created, message, err := app.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message != "" {
		t.Fatalf("Submit rejected valid candidate: %q", message)
	}

	all, _ := app.List(ctx, ticket.Criteria{})
	if len(all) != 1 {
		t.Fatalf("collection length = %d, want 1", len(all))
	}
	stored := all[0]
	if stored.Status != schema.StatusOpen {
		t.Errorf("status = %q, want Open", stored.Status)
	}
	if stored.ID != fake.Now().UnixMilli() {
		t.Errorf("id = %d, want %d", stored.ID, fake.Now().UnixMilli())
	}
	if stored.Date != fake.Now().Format(schema.DateFormat) {
		t.Errorf("date = %q, want formatted clock time", stored.Date)
	}
	if stored != created {
		t.Errorf("stored ticket %+v differs from returned %+v", stored, created)
	}
	if err := stored.Validate(); err != nil {
		t.Errorf("stored ticket invalid: %v", err)
	}
}

func TestSubmitRejectsInvalidWithoutMutating(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	_, message, err := app.Submit(ctx, schema.Submission{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message != "Name is required." {
		t.Errorf("message = %q, want %q", message, "Name is required.")
	}

	if all, _ := app.List(ctx, ticket.Criteria{}); len(all) != 0 {
		t.Errorf("rejected submission mutated the store: %d tickets", len(all))
	}
}

func TestSubmitRejectsUnknownPriority(t *testing.T) {
	app, _ := testApp(t)

	candidate := validSubmission()
	candidate.Priority = "Urgent"
	_, message, err := app.Submit(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if message == "" {
		t.Error("unknown priority should be rejected")
	}
}

func TestSubmitAssignsIncreasingIDs(t *testing.T) {
	app, fake := testApp(t)
	ctx := context.Background()

	first, _, _ := app.Submit(ctx, validSubmission())
	// Same millisecond: the second ID must still increase.
	second, _, _ := app.Submit(ctx, validSubmission())
	fake.Advance(time.Minute)
	third, _, _ := app.Submit(ctx, validSubmission())

	if !(first.ID < second.ID && second.ID < third.ID) {
		t.Errorf("ids not increasing: %d, %d, %d", first.ID, second.ID, third.ID)
	}
}

func TestToggleFlipsAndIsIdempotentInPairs(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	created, _, _ := app.Submit(ctx, validSubmission())

	toggled, found, err := app.Toggle(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("Toggle: found=%v err=%v", found, err)
	}
	if toggled.Status != schema.StatusClosed {
		t.Errorf("status after toggle = %q, want Closed", toggled.Status)
	}

	toggled, _, err = app.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if toggled.Status != schema.StatusOpen {
		t.Errorf("status after double toggle = %q, want Open", toggled.Status)
	}
}

func TestToggleMissingIDIsNoOp(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	app.Submit(ctx, validSubmission())

	_, found, err := app.Toggle(ctx, 42)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if found {
		t.Error("toggle of missing id reported found")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	created, _, _ := app.Submit(ctx, validSubmission())

	// Declined confirmation leaves the collection unchanged.
	var promptedFor string
	deleted, err := app.Delete(ctx, created.ID, func(t schema.Ticket) bool {
		promptedFor = t.Name
		return false
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Error("declined confirmation still deleted")
	}
	if promptedFor != "A" {
		t.Errorf("confirmation saw submitter %q, want %q", promptedFor, "A")
	}
	if all, _ := app.List(ctx, ticket.Criteria{}); len(all) != 1 {
		t.Errorf("collection length after declined delete = %d, want 1", len(all))
	}

	// Accepted confirmation removes the ticket.
	deleted, err = app.Delete(ctx, created.ID, func(schema.Ticket) bool { return true })
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	if all, _ := app.List(ctx, ticket.Criteria{}); len(all) != 0 {
		t.Errorf("collection length after delete = %d, want 0", len(all))
	}
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	app, _ := testApp(t)

	deleted, err := app.Delete(context.Background(), 42, func(schema.Ticket) bool {
		t.Error("confirmation callback ran for a missing id")
		return true
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Error("delete of missing id reported deleted")
	}
}

func TestExportEmptyCollection(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := app.Export(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNoTickets) {
		t.Errorf("Export of empty collection: err = %v, want ErrNoTickets", err)
	}
}

func TestExportWritesDatedCSV(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	directory := t.TempDir()

	app.Submit(ctx, validSubmission())

	path, count, err := app.Export(ctx, directory)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if filepath.Base(path) != "tickets-2026-03-14.csv" {
		t.Errorf("export file = %q, want tickets-2026-03-14.csv", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "\uFEFF") {
		t.Error("export should start with a byte order mark")
	}
	if !strings.Contains(text, "Date,Name,Email,Category,Priority,Status,Description") {
		t.Error("export is missing the header row")
	}
	if !strings.Contains(text, "a@b.com") {
		t.Error("export is missing the ticket row")
	}
}

func TestFilterChangeDoesNotWrite(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	app.Submit(ctx, validSubmission())

	all, visible := app.List(ctx, ticket.Criteria{Status: "Closed"})
	if len(all) != 1 || len(visible) != 0 {
		t.Errorf("List: all=%d visible=%d, want 1/0", len(all), len(visible))
	}

	// The stored collection is untouched by filtering.
	if again, _ := app.List(ctx, ticket.Criteria{}); len(again) != 1 {
		t.Errorf("collection changed after filter: %d tickets", len(again))
	}
}

func TestThemeToggle(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	if _, ok := app.ThemePreference(ctx); ok {
		t.Error("fresh app should have no theme preference")
	}

	next, err := app.ToggleTheme(ctx, ticketstore.ThemeLight)
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if next != ticketstore.ThemeDark {
		t.Errorf("toggle from light = %q, want dark", next)
	}

	stored, ok := app.ThemePreference(ctx)
	if !ok || stored != ticketstore.ThemeDark {
		t.Errorf("persisted theme = %q (ok %v), want dark", stored, ok)
	}

	next, _ = app.ToggleTheme(ctx, next)
	if next != ticketstore.ThemeLight {
		t.Errorf("toggle from dark = %q, want light", next)
	}
}

func TestFilterScenarioThreeTicketsByPriority(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	for _, priority := range []string{"High", "Low", "High"} {
		candidate := validSubmission()
		candidate.Priority = priority
		if _, msg, err := app.Submit(ctx, candidate); msg != "" || err != nil {
			t.Fatalf("Submit: msg=%q err=%v", msg, err)
		}
	}

	all, visible := app.List(ctx, ticket.Criteria{Priority: "High"})
	if len(all) != 3 || len(visible) != 2 {
		t.Fatalf("all=%d visible=%d, want 3/2", len(all), len(visible))
	}
	if !(visible[0].ID < visible[1].ID) {
		t.Error("filtered subset lost the original relative order")
	}
	for _, v := range visible {
		if v.Priority != schema.PriorityHigh {
			t.Errorf("filtered ticket %d has priority %q", v.ID, v.Priority)
		}
	}
}
