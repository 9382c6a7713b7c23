// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
)

// Theme defines the color palette for the terminal UI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// Two built-in palettes exist, [DarkTheme] and [LightTheme], matching
// the persisted theme preference. The fields cover universal chrome
// (text, selection, borders) and the two semantic categories the
// ticket table colors by: priority and status.
type Theme struct {
	// Name is the persisted preference literal this palette
	// corresponds to ("dark" or "light").
	Name string

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Priority colors.
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color

	// Status colors.
	StatusOpen   lipgloss.Color
	StatusClosed lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	NoticeText lipgloss.Color
	ErrorText  lipgloss.Color

	// Modal overlays.
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// PriorityColor returns the color for a priority value. Unknown
// values fall back to NormalText.
func (theme Theme) PriorityColor(priority schema.Priority) lipgloss.Color {
	switch priority {
	case schema.PriorityLow:
		return theme.PriorityLow
	case schema.PriorityMedium:
		return theme.PriorityMedium
	case schema.PriorityHigh:
		return theme.PriorityHigh
	default:
		return theme.NormalText
	}
}

// StatusColor returns the color for a status value. Unknown values
// fall back to FaintText.
func (theme Theme) StatusColor(status schema.Status) lipgloss.Color {
	switch status {
	case schema.StatusOpen:
		return theme.StatusOpen
	case schema.StatusClosed:
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// DarkTheme is the palette for dark terminal backgrounds (the common
// case for development environments and tmux sessions).
var DarkTheme = Theme{
	Name: "dark",

	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	PriorityLow:    lipgloss.Color("245"), // gray
	PriorityMedium: lipgloss.Color("75"),  // blue
	PriorityHigh:   lipgloss.Color("208"), // orange

	StatusOpen:   lipgloss.Color("114"), // green
	StatusClosed: lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeText: lipgloss.Color("114"),
	ErrorText:  lipgloss.Color("196"),

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"),
}

// LightTheme is the palette for light terminal backgrounds.
var LightTheme = Theme{
	Name: "light",

	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	PriorityLow:    lipgloss.Color("243"), // gray
	PriorityMedium: lipgloss.Color("26"),  // blue
	PriorityHigh:   lipgloss.Color("166"), // orange

	StatusOpen:   lipgloss.Color("28"),  // green
	StatusClosed: lipgloss.Color("243"), // gray

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("246"),

	NoticeText: lipgloss.Color("28"),
	ErrorText:  lipgloss.Color("160"),

	ModalForeground: lipgloss.Color("235"),
	ModalBackground: lipgloss.Color("253"),
}

// ThemeByName maps a persisted preference literal to its palette.
// Unknown names return DarkTheme.
func ThemeByName(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// DetectThemeName queries the terminal background and returns the
// matching theme name. Used when no preference has been persisted
// yet; the answer becomes the session default but is not written
// back until the user toggles.
func DetectThemeName() string {
	if termenv.HasDarkBackground() {
		return DarkTheme.Name
	}
	return LightTheme.Name
}
