// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ticketdesk/ticketdesk/lib/tui"
)

func typeInto(form *FormModel, text string) {
	for _, character := range text {
		form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func pressEnter(form *FormModel) formEvent {
	event, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return event
}

// fillValidForm types a complete submission: name, email, category,
// priority (two right-arrows to Medium), description.
func fillValidForm(form *FormModel) {
	typeInto(form, "Ada Lovelace")
	pressEnter(form)
	typeInto(form, "ada@example.com")
	pressEnter(form)
	typeInto(form, "Hardware")
	pressEnter(form)
	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	pressEnter(form)
	typeInto(form, "Engine jammed")
}

func TestFormFocusTraversal(t *testing.T) {
	form := NewForm()
	if form.focusField != fieldName {
		t.Fatalf("initial focus = %d, want name field", form.focusField)
	}

	// Enter advances through every field.
	for _, want := range []int{fieldEmail, fieldCategory, fieldPriority, fieldDescription} {
		if event := pressEnter(&form); event != formEventNone {
			t.Fatalf("mid-form enter raised event %d", event)
		}
		if form.focusField != want {
			t.Fatalf("focus = %d, want %d", form.focusField, want)
		}
	}

	// Enter on the description field submits.
	if event := pressEnter(&form); event != formEventSubmit {
		t.Errorf("enter on description raised %d, want submit", event)
	}

	// Up stops at the first field.
	form.focusField = fieldName
	form.Update(tea.KeyMsg{Type: tea.KeyUp})
	if form.focusField != fieldName {
		t.Errorf("up from name field moved focus to %d", form.focusField)
	}
}

func TestFormSubmissionValues(t *testing.T) {
	form := NewForm()
	fillValidForm(&form)

	candidate := form.Submission()
	if candidate.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", candidate.Name)
	}
	if candidate.Email != "ada@example.com" {
		t.Errorf("Email = %q", candidate.Email)
	}
	if candidate.Category != "Hardware" {
		t.Errorf("Category = %q", candidate.Category)
	}
	if candidate.Priority != "Medium" {
		t.Errorf("Priority = %q, want Medium after two steps", candidate.Priority)
	}
	if candidate.Description != "Engine jammed" {
		t.Errorf("Description = %q", candidate.Description)
	}
}

func TestFormPriorityUnchosen(t *testing.T) {
	form := NewForm()
	if got := form.Submission().Priority; got != "" {
		t.Errorf("untouched priority = %q, want empty", got)
	}
}

func TestFormPriorityClamps(t *testing.T) {
	form := NewForm()
	form.focusField = fieldPriority

	// Left from unchosen lands on Low, not below.
	form.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := form.Submission().Priority; got != "Low" {
		t.Errorf("priority after left from unchosen = %q, want Low", got)
	}

	// Right past the end stays on High.
	for i := 0; i < 5; i++ {
		form.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := form.Submission().Priority; got != "High" {
		t.Errorf("priority after overrun = %q, want High", got)
	}
}

func TestFormSpaceStepsPriority(t *testing.T) {
	form := NewForm()
	form.focusField = fieldPriority

	form.Update(tea.KeyMsg{Type: tea.KeySpace})
	if got := form.Submission().Priority; got != "Low" {
		t.Errorf("priority after space = %q, want Low", got)
	}
}

func TestFormTypedLettersIgnoredOnPriority(t *testing.T) {
	form := NewForm()
	form.focusField = fieldPriority

	typeInto(&form, "abc")
	if got := form.Submission().Priority; got != "" {
		t.Errorf("priority after typed letters = %q, want unchosen", got)
	}
}

func TestFormReset(t *testing.T) {
	form := NewForm()
	fillValidForm(&form)

	form.Reset()

	candidate := form.Submission()
	if candidate.Name != "" || candidate.Email != "" || candidate.Category != "" ||
		candidate.Priority != "" || candidate.Description != "" {
		t.Errorf("Reset left values: %+v", candidate)
	}
	if form.focusField != fieldName {
		t.Errorf("focus after reset = %d, want name field", form.focusField)
	}
}

func TestFormView(t *testing.T) {
	form := NewForm()
	typeInto(&form, "Ada")

	view := ansi.Strip(form.View(tui.DarkTheme, 80))
	for _, label := range []string{"Name", "Email", "Category", "Priority", "Description"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing label %q", label)
		}
	}
	if !strings.Contains(view, "Ada") {
		t.Error("view missing typed value")
	}
	if !strings.Contains(view, "Low") || !strings.Contains(view, "High") {
		t.Error("view missing priority choices")
	}
}
