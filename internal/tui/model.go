// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model of the calculator
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/internal/calculator"
	"github.com/msto63/rechenwerk/pkg/core/config"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
)

// View represents the views of the TUI
type View int

const (
	ViewCalculator View = iota
	ViewLoan
)

// tapeLines is the number of tape entries shown
const tapeLines = 8

// key pad layout, row by row
var keyPad = [][]string{
	{"C", "CE", "⌫", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"±", "0", ".", "="},
}

// Model is the main TUI model
type Model struct {
	view   View
	width  int
	height int

	calc     *calculator.State
	loan     loanModel
	keys     KeyMap
	help     help.Model
	styles   Styles
	showTape bool

	cfg    *config.Config
	logger *rwlog.Logger

	// status line, e.g. a failed config reload
	status string
}

// NewModel creates the model from a configuration. A nil logger discards.
func NewModel(cfg *config.Config, logger *rwlog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = rwlog.Discard()
	}

	return Model{
		view: ViewCalculator,
		calc: calculator.New(
			calculator.WithPrecision(cfg.Display.Precision),
			calculator.WithTapeSize(cfg.Display.TapeSize),
		),
		loan:   newLoanModel(cfg.Loan),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(cfg.Theme),
		cfg:    cfg,
		logger: logger.WithName("tui"),
	}
}

// Display returns the calculator display
func (m Model) Display() string {
	return m.calc.Display()
}

// CurrentView returns the active view
func (m Model) CurrentView() View {
	return m.view
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == ViewLoan {
			return m.updateLoanView(msg)
		}
		return m.updateCalculatorView(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case ConfigChangedMsg:
		if msg.Config != nil {
			m.cfg = msg.Config
			m.styles = NewStyles(msg.Config.Theme)
			m.status = ""
			m.logger.Info("Theme neu geladen", rwlog.String("path", msg.Config.Path()))
		}

	case ConfigErrorMsg:
		m.status = "Config: " + msg.Err.Error()
		m.logger.LogError(msg.Err)
	}

	return m, nil
}

func (m Model) updateCalculatorView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Loan):
		m.view = ViewLoan
		m.loan.updateFocus()
		return m, nil

	case key.Matches(msg, m.keys.Tape):
		m.showTape = !m.showTape
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	ev, ok := m.keys.Event(msg)
	if !ok {
		return m, nil
	}

	wasError := m.calc.IsError()
	m.calc.Dispatch(ev)
	m.logger.Trace("Taste verarbeitet", rwlog.Fields{
		"event":   ev.Kind.String(),
		"display": m.calc.Display(),
	})
	if err := m.calc.LastError(); err != nil && !wasError {
		m.logger.LogError(rwerror.Wrap(err, "Berechnung fehlgeschlagen"))
	}

	return m, nil
}

func (m Model) updateLoanView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	loan, cmd, closed := m.loan.update(msg)
	m.loan = loan
	if closed {
		m.view = ViewCalculator
		return m, nil
	}

	if key.Matches(msg, m.loan.keys.Compute) {
		if m.loan.err != nil {
			m.logger.LogError(m.loan.err)
		} else if m.loan.summary != nil {
			m.logger.Debug("Darlehen berechnet", rwlog.Float64("payment", m.loan.summary.Payment))
		}
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("Rechenwerk"))
	s.WriteString("\n")

	switch m.view {
	case ViewCalculator:
		s.WriteString(m.renderCalculatorView())
	case ViewLoan:
		s.WriteString(m.loan.view(m.styles, m.help.View(m.loan.keys)))
	}

	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(m.styles.Error.Render(m.status))
	}

	return s.String()
}

func (m Model) renderCalculatorView() string {
	sections := []string{m.renderDisplay(), m.renderKeyPad()}
	if m.showTape {
		sections = append(sections, m.renderTape())
	}
	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderDisplay() string {
	pending := ""
	if p, ok := m.calc.Pending(); ok {
		pending = calculator.FormatNumber(p.Left) + " " + p.Operator.Symbol()
	}

	display := m.styles.DisplayText.Render(m.calc.Display())
	if m.calc.IsError() {
		display = m.styles.DisplayError.Render(m.calc.Display())
	}

	return m.styles.DisplayBox.Render(lipgloss.JoinVertical(lipgloss.Right,
		m.styles.PendingText.Render(pending),
		display,
	))
}

func (m Model) renderKeyPad() string {
	rows := make([]string, 0, len(keyPad))
	for _, row := range keyPad {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			style := m.styles.Key
			switch label {
			case "=":
				style = m.styles.EqualsKey
			case "+", "-", "×", "÷", "C", "CE", "⌫":
				style = m.styles.OperatorKey
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTape() string {
	tape := m.calc.Tape()
	if len(tape) > tapeLines {
		tape = tape[len(tape)-tapeLines:]
	}

	if len(tape) == 0 {
		return m.styles.TapeBox.Render(m.styles.Subtitle.Render("tape is empty"))
	}

	lines := make([]string, 0, len(tape))
	for _, e := range tape {
		lines = append(lines, m.styles.TapeEntry.Render(e.String()))
	}
	return m.styles.TapeBox.Render(strings.Join(lines, "\n"))
}
