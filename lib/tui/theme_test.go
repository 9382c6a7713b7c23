// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

func TestThemeByName(t *testing.T) {
	if ThemeByName("light").Name != "light" {
		t.Error("ThemeByName(light) should return the light palette")
	}
	if ThemeByName("dark").Name != "dark" {
		t.Error("ThemeByName(dark) should return the dark palette")
	}
	// Unknown names fall back to the dark palette.
	if ThemeByName("solarized").Name != "dark" {
		t.Error("unknown theme name should fall back to dark")
	}
}

func TestStatusColorFallback(t *testing.T) {
	theme := DarkTheme
	if theme.StatusColor(schema.StatusOpen) != theme.StatusOpen {
		t.Error("open status color mismatch")
	}
	if theme.StatusColor(schema.Status("Pending")) != theme.FaintText {
		t.Error("unknown status should use FaintText")
	}
}

func TestPriorityColorFallback(t *testing.T) {
	theme := LightTheme
	if theme.PriorityColor(schema.PriorityHigh) != theme.PriorityHigh {
		t.Error("high priority color mismatch")
	}
	if theme.PriorityColor(schema.Priority("Urgent")) != theme.NormalText {
		t.Error("unknown priority should use NormalText")
	}
}
