// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     tui
// Description: Messages sent into the program from outside
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package tui

import "github.com/msto63/rechenwerk/pkg/core/config"

// ConfigChangedMsg carries a reloaded configuration
type ConfigChangedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a configuration file that could not be reloaded
type ConfigErrorMsg struct {
	Err error
}
