// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Application version
	App = "1.0.0"

	// Component versions
	Calculator = "1.0.0"
	Finance    = "1.1.0"
	TUI        = "1.0.0"
)

// Set via -ldflags "-X github.com/msto63/rechenwerk/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "calculator":
		return Calculator
	case "finance", "mathx":
		return Finance
	case "tui":
		return TUI
	default:
		return App
	}
}

// String returns the full version line shown by the version command
func String() string {
	return fmt.Sprintf("Rechenwerk v%s (commit %s, built %s)", App, Commit, BuildDate)
}
