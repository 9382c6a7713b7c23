// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNowStandsStill(t *testing.T) {
	initial := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := Fake(initial)

	if !c.Now().Equal(initial) {
		t.Errorf("Now() = %v, want %v", c.Now(), initial)
	}
	if !c.Now().Equal(initial) {
		t.Error("fake time moved without Advance")
	}
}

func TestFakeAdvance(t *testing.T) {
	initial := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	c := Fake(initial)

	c.Advance(90 * time.Second)

	want := initial.Add(90 * time.Second)
	if !c.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", c.Now(), want)
	}
}

func TestFakeSet(t *testing.T) {
	c := Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	target := time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC)

	c.Set(target)

	if !c.Now().Equal(target) {
		t.Errorf("Now() after Set = %v, want %v", c.Now(), target)
	}
}
