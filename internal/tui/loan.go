// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     tui
// Description: Modal loan calculator dialog
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/mathx"
)

// Loan dialog fields
const (
	FieldPrincipal = iota
	FieldRate
	FieldYears
	FieldPaymentsPerYear
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldPrincipal:       "Principal",
	FieldRate:            "Annual Rate (%)",
	FieldYears:           "Years",
	FieldPaymentsPerYear: "Payments/Year",
}

// loanModel is the state of the loan dialog. It never touches the calculator.
type loanModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	keys   LoanKeyMap

	summary *mathx.LoanSummary
	err     error
}

func newLoanModel(defaults config.LoanConfig) loanModel {
	m := loanModel{keys: DefaultLoanKeyMap()}

	values := [fieldCount]string{
		FieldPrincipal:       strconv.FormatFloat(defaults.Principal, 'f', -1, 64),
		FieldRate:            strconv.FormatFloat(defaults.RatePercent, 'f', 1, 64),
		FieldYears:           strconv.FormatFloat(defaults.Years, 'f', -1, 64),
		FieldPaymentsPerYear: strconv.Itoa(defaults.PaymentsPerYear),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 20
		ti.Width = 18
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.updateFocus()
	return m
}

func (m *loanModel) updateFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

// update handles a key press; closed reports that the dialog should go away
func (m loanModel) update(msg tea.KeyMsg) (loanModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m, nil, true

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % fieldCount
		m.updateFocus()
		return m, nil, false

	case key.Matches(msg, m.keys.Prev):
		if m.focus == 0 {
			m.focus = fieldCount - 1
		} else {
			m.focus--
		}
		m.updateFocus()
		return m, nil, false

	case key.Matches(msg, m.keys.Compute):
		m.compute()
		return m, nil, false

	case key.Matches(msg, m.keys.Reset):
		m.summary = nil
		m.err = nil
		return m, nil, false
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

// compute parses the fields and fills in the results or the error
func (m *loanModel) compute() {
	m.summary = nil
	m.err = nil

	principal, err := mathx.ParseAmount(fieldLabels[FieldPrincipal], m.inputs[FieldPrincipal].Value())
	if err != nil {
		m.err = err
		return
	}
	ratePercent, err := mathx.ParseAmount(fieldLabels[FieldRate], m.inputs[FieldRate].Value())
	if err != nil {
		m.err = err
		return
	}
	years, err := mathx.ParseAmount(fieldLabels[FieldYears], m.inputs[FieldYears].Value())
	if err != nil {
		m.err = err
		return
	}
	ppy, err := mathx.ParseCount(fieldLabels[FieldPaymentsPerYear], m.inputs[FieldPaymentsPerYear].Value())
	if err != nil {
		m.err = err
		return
	}

	summary, err := mathx.SummarizeLoan(principal, ratePercent/100, years, ppy)
	if err != nil {
		m.err = err
		return
	}
	m.summary = &summary
}

func (m loanModel) view(styles Styles, helpView string) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Loan Calculator"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := styles.Label
		if i == m.focus {
			label = styles.FocusedLabel
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), input.View()))
		b.WriteString("\n")
	}

	b.WriteString(styles.Subtitle.Render(strings.Repeat("─", 34)))
	b.WriteString("\n")

	var payment, interest, paid string
	if m.summary != nil {
		payment = mathx.FormatMoney(m.summary.Payment)
		interest = mathx.FormatMoney(m.summary.TotalInterest)
		paid = mathx.FormatMoney(m.summary.TotalPaid)
	}
	b.WriteString(styles.Label.Render("Payment / period") + styles.Value.Render(payment) + "\n")
	b.WriteString(styles.Label.Render("Total Interest") + styles.Value.Render(interest) + "\n")
	b.WriteString(styles.Label.Render("Total Paid") + styles.Value.Render(paid))

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.Error.Render("Error: " + m.err.Error()))
	}

	return styles.DialogBox.Render(b.String()) + "\n" + styles.Help.Render(helpView)
}
