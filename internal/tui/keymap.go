// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     tui
// Description: Key bindings and their translation into calculator events
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/rechenwerk/internal/calculator"
)

// KeyMap holds the bindings of the calculator view
type KeyMap struct {
	Digit      key.Binding
	Dot        key.Binding
	Operator   key.Binding
	Equals     key.Binding
	Backspace  key.Binding
	Clear      key.Binding
	ClearEntry key.Binding
	Negate     key.Binding
	Loan       key.Binding
	Tape       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the calculator bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Dot: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "decimal point"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+ - * /", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete digit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		ClearEntry: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear entry"),
		),
		Negate: key.NewBinding(
			key.WithKeys("n", "f9"),
			key.WithHelp("n", "±"),
		),
		Loan: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loan"),
		),
		Tape: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tape"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Operator, k.Equals, k.Clear, k.Loan, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Dot, k.Operator, k.Equals},
		{k.Backspace, k.Clear, k.ClearEntry, k.Negate},
		{k.Loan, k.Tape, k.Help, k.Quit},
	}
}

// Event translates a key press into a calculator event
func (k KeyMap) Event(msg tea.KeyMsg) (calculator.Event, bool) {
	switch {
	case key.Matches(msg, k.Digit):
		return calculator.DigitEvent(rune(msg.String()[0])), true
	case key.Matches(msg, k.Dot):
		return calculator.DotEvent(), true
	case key.Matches(msg, k.Operator):
		op, _ := calculator.ParseOperator(msg.String())
		return calculator.OperatorEvent(op), true
	case key.Matches(msg, k.Equals):
		return calculator.EqualsEvent(), true
	case key.Matches(msg, k.Backspace):
		return calculator.BackspaceEvent(), true
	case key.Matches(msg, k.Clear):
		return calculator.ClearEvent(), true
	case key.Matches(msg, k.ClearEntry):
		return calculator.ClearEntryEvent(), true
	case key.Matches(msg, k.Negate):
		return calculator.NegateEvent(), true
	}
	return calculator.Event{}, false
}

// LoanKeyMap holds the bindings of the loan dialog
type LoanKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Compute key.Binding
	Reset   key.Binding
	Close   key.Binding
}

// DefaultLoanKeyMap returns the loan dialog bindings
func DefaultLoanKeyMap() LoanKeyMap {
	return LoanKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Compute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compute"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear results"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k LoanKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Compute, k.Reset, k.Close}
}

// FullHelp implements help.KeyMap
func (k LoanKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
