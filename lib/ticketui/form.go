// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
	"github.com/ticketdesk/ticketdesk/lib/tui"
)

// Form field positions, top to bottom. The priority selector sits
// between category and description and is not a text input.
const (
	fieldName = iota
	fieldEmail
	fieldCategory
	fieldPriority
	fieldDescription
	fieldCount
)

// textInputIndex maps a field position to its slot in the inputs
// array, or -1 for the priority selector.
var textInputIndex = [fieldCount]int{0, 1, 2, -1, 3}

// fieldLabels are the visible labels, in field order.
var fieldLabels = [fieldCount]string{"Name", "Email", "Category", "Priority", "Description"}

// FormModel is the ticket intake form: four text inputs and a
// priority selector. It owns keyboard focus movement between fields
// and produces the raw Submission handed to the submit action.
type FormModel struct {
	inputs [4]textinput.Model

	// focusField is the field position with keyboard focus.
	focusField int

	// priorityCursor indexes schema.Priorities, or -1 while the
	// submitter has not chosen one (so an untouched form still
	// trips the "Priority is required." rule).
	priorityCursor int

	// active is true when the form (rather than the table) has
	// focus.
	active bool
}

// NewForm builds an empty form with focus on the name field.
func NewForm() FormModel {
	form := FormModel{priorityCursor: -1, active: true}

	placeholders := [4]string{"Jane Doe", "jane@example.com", "Hardware", "What happened?"}
	for i := range form.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.Prompt = ""
		input.CharLimit = 0
		form.inputs[i] = input
	}
	form.inputs[0].Focus()
	return form
}

// Submission returns the raw field values for validation. No
// trimming: stored values keep the submitter's spacing.
func (form *FormModel) Submission() schema.Submission {
	priority := ""
	if form.priorityCursor >= 0 {
		priority = string(schema.Priorities[form.priorityCursor])
	}
	return schema.Submission{
		Name:        form.inputs[0].Value(),
		Email:       form.inputs[1].Value(),
		Category:    form.inputs[2].Value(),
		Priority:    priority,
		Description: form.inputs[3].Value(),
	}
}

// Reset clears every field and moves focus back to the name field,
// the post-submit state.
func (form *FormModel) Reset() {
	for i := range form.inputs {
		form.inputs[i].SetValue("")
		form.inputs[i].Blur()
	}
	form.priorityCursor = -1
	form.focusField = fieldName
	if form.active {
		form.inputs[0].Focus()
	}
}

// SetActive gives or takes the form's keyboard focus.
func (form *FormModel) SetActive(active bool) {
	form.active = active
	for i := range form.inputs {
		form.inputs[i].Blur()
	}
	if active {
		if idx := textInputIndex[form.focusField]; idx >= 0 {
			form.inputs[idx].Focus()
		}
	}
}

// focusNext moves focus to the following field, wrapping past the
// last. Returns true when the move wrapped (the user pressed enter on
// the description field, which submits).
func (form *FormModel) focusNext() bool {
	wrapped := false
	form.focusField++
	if form.focusField >= fieldCount {
		form.focusField = fieldName
		wrapped = true
	}
	form.refocus()
	return wrapped
}

// focusPrevious moves focus to the preceding field, stopping at the
// first.
func (form *FormModel) focusPrevious() {
	if form.focusField > 0 {
		form.focusField--
	}
	form.refocus()
}

func (form *FormModel) refocus() {
	for i := range form.inputs {
		form.inputs[i].Blur()
	}
	if idx := textInputIndex[form.focusField]; idx >= 0 {
		form.inputs[idx].Focus()
	}
}

// cyclePriority moves the priority selector by delta, clamping at the
// ends. A first press from the unchosen state lands on Low.
func (form *FormModel) cyclePriority(delta int) {
	next := form.priorityCursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(schema.Priorities) {
		next = len(schema.Priorities) - 1
	}
	form.priorityCursor = next
}

// formMsg distinguishes outcomes the parent model must act on.
type formEvent int

const (
	formEventNone formEvent = iota
	// formEventSubmit is raised when the user finished the last
	// field (or pressed the submit chord elsewhere in the form).
	formEventSubmit
)

// Update processes a key while the form has focus. The returned
// formEvent tells the parent whether the key completed the form.
func (form *FormModel) Update(message tea.KeyMsg) (formEvent, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		if form.focusField == fieldDescription {
			return formEventSubmit, nil
		}
		form.focusNext()
		return formEventNone, nil

	case tea.KeyDown:
		form.focusNext()
		return formEventNone, nil

	case tea.KeyUp:
		form.focusPrevious()
		return formEventNone, nil

	case tea.KeyLeft, tea.KeyRight:
		if form.focusField == fieldPriority {
			delta := 1
			if message.Type == tea.KeyLeft {
				delta = -1
			}
			form.cyclePriority(delta)
			return formEventNone, nil
		}

	case tea.KeySpace, tea.KeyRunes:
		if form.focusField == fieldPriority {
			// Space steps through the selector like right-arrow.
			if message.Type == tea.KeySpace {
				form.cyclePriority(1)
			}
			return formEventNone, nil
		}
	}

	if idx := textInputIndex[form.focusField]; idx >= 0 {
		var cmd tea.Cmd
		form.inputs[idx], cmd = form.inputs[idx].Update(message)
		return formEventNone, cmd
	}
	return formEventNone, nil
}

// View renders the form pane.
func (form *FormModel) View(theme tui.Theme, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(13)
	focusedLabelStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Width(13)

	inputWidth := width - 16
	if inputWidth < 10 {
		inputWidth = 10
	}

	var lines []string
	for field := 0; field < fieldCount; field++ {
		label := fieldLabels[field]
		style := labelStyle
		if form.active && field == form.focusField {
			style = focusedLabelStyle
		}

		var value string
		if field == fieldPriority {
			value = form.priorityView(theme)
		} else {
			idx := textInputIndex[field]
			form.inputs[idx].Width = inputWidth
			value = form.inputs[idx].View()
		}
		lines = append(lines, style.Render(label)+" "+value)
	}

	return strings.Join(lines, "\n")
}

// priorityView renders the selector as the three choices with the
// current one highlighted, or all dimmed while unchosen.
func (form *FormModel) priorityView(theme tui.Theme) string {
	dim := lipgloss.NewStyle().Foreground(theme.FaintText)

	var parts []string
	for i, priority := range schema.Priorities {
		if i == form.priorityCursor {
			chosen := lipgloss.NewStyle().
				Foreground(theme.PriorityColor(priority)).
				Bold(true)
			parts = append(parts, chosen.Render("["+string(priority)+"]"))
		} else {
			parts = append(parts, dim.Render(" "+string(priority)+" "))
		}
	}
	return strings.Join(parts, " ")
}
