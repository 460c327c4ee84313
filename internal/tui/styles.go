// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     tui
// Description: Lipgloss styles built from the configured theme
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/pkg/core/config"
)

// displayWidth is the width of the display and tape boxes including their
// horizontal padding; lines inside are contentWidth wide.
const (
	displayWidth = 28
	contentWidth = displayWidth - 2
)

// Styles holds every style used by the views. It is rebuilt when the theme
// changes.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Display
	DisplayBox   lipgloss.Style
	DisplayText  lipgloss.Style
	DisplayError lipgloss.Style
	PendingText  lipgloss.Style

	// Key pad
	Key         lipgloss.Style
	OperatorKey lipgloss.Style
	EqualsKey   lipgloss.Style

	// Loan dialog
	DialogBox    lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Value        lipgloss.Style
	Error        lipgloss.Style

	// Tape
	TapeBox   lipgloss.Style
	TapeEntry lipgloss.Style

	Help lipgloss.Style
}

// NewStyles creates the styles for a theme
func NewStyles(theme config.ThemeConfig) Styles {
	var (
		colorPrimary   = lipgloss.Color(theme.Primary)
		colorSecondary = lipgloss.Color(theme.Secondary)
		colorAccent    = lipgloss.Color(theme.Accent)
		colorError     = lipgloss.Color(theme.Error)
		colorMuted     = lipgloss.Color(theme.Muted)
		colorSurface   = lipgloss.Color(theme.Surface)
		colorText      = lipgloss.Color(theme.Text)
	)

	key := lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Foreground(colorText).
		Background(colorSurface).
		MarginRight(1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		DisplayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			Width(displayWidth),

		DisplayText: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Right).
			Width(contentWidth),

		DisplayError: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError).
			Align(lipgloss.Right).
			Width(contentWidth),

		PendingText: lipgloss.NewStyle().
			Foreground(colorMuted).
			Align(lipgloss.Right).
			Width(contentWidth),

		Key: key,

		OperatorKey: key.
			Foreground(colorAccent).
			Bold(true),

		EqualsKey: key.
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true),

		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18),

		FocusedLabel: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Width(18),

		Value: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Align(lipgloss.Right).
			Width(16),

		Error: lipgloss.NewStyle().
			Foreground(colorError),

		TapeBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(displayWidth),

		TapeEntry: lipgloss.NewStyle().
			Foreground(colorMuted).
			Align(lipgloss.Right).
			Width(contentWidth),

		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
