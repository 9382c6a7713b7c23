// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a centered yes/no prompt rendered as an overlay on
// top of the main view. The owning model routes key input while the
// modal is active: y confirms, n or escape declines.
type ConfirmModal struct {
	// Question is the prompt text (e.g., the delete confirmation
	// naming the ticket's submitter).
	Question string

	theme Theme
}

// NewConfirmModal creates a ConfirmModal with the given prompt.
func NewConfirmModal(question string, theme Theme) ConfirmModal {
	return ConfirmModal{Question: question, theme: theme}
}

// Modal chrome: 2 columns border + 2 columns padding each side.
const confirmModalChromeWidth = 8

// Render produces the modal overlay lines for splicing onto the view,
// plus the anchor position (top-left corner in screen coordinates)
// that centers the modal.
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	maxTextWidth := screenWidth - confirmModalChromeWidth
	if maxTextWidth < 20 {
		maxTextWidth = 20
	}

	question := modal.Question
	if ansi.StringWidth(question) > maxTextWidth {
		question = ansi.Truncate(question, maxTextWidth-1, "…")
	}

	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ModalForeground).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	footer := "y confirm   n cancel"
	innerWidth := ansi.StringWidth(question)
	if w := ansi.StringWidth(footer); w > innerWidth {
		innerWidth = w
	}

	pad := func(line string, style lipgloss.Style) string {
		rendered := style.Render(line)
		if w := ansi.StringWidth(rendered); w < innerWidth {
			rendered += style.Render(strings.Repeat(" ", innerWidth-w))
		}
		return rendered
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground).
		Padding(0, 2)

	inner := pad(question, textStyle) + "\n" +
		pad("", textStyle) + "\n" +
		pad(footer, footerStyle)
	rendered := borderStyle.Render(inner)

	lines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(lines) > 0 {
		renderedWidth = ansi.StringWidth(lines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}
