package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/pkg/core/config"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestModel_Calculator(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"addition with enter", []string{"5", "+", "3", "enter"}, "8"},
		{"addition with equals", []string{"5", "+", "3", "="}, "8"},
		{"chaining", []string{"5", "+", "3", "+", "2", "enter"}, "10"},
		{"multiply and divide", []string{"6", "*", "7", "/", "2", "enter"}, "21"},
		{"decimal comma", []string{"1", ",", "5", "+", "1", "enter"}, "2.5"},
		{"division by zero", []string{"5", "/", "0", "enter"}, "Error"},
		{"recover after error", []string{"5", "/", "0", "enter", "7"}, "7"},
		{"escape clears", []string{"5", "+", "3", "esc"}, "0"},
		{"delete clears entry", []string{"5", "+", "9", "delete", "1", "enter"}, "6"},
		{"backspace", []string{"1", "2", "3", "backspace"}, "12"},
		{"negate", []string{"4", "n"}, "-4"},
		{"unknown key ignored", []string{"4", "x"}, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(NewModel(nil, nil), tt.keys...)
			if m.Display() != tt.want {
				t.Errorf("Display() = %q, want %q", m.Display(), tt.want)
			}
		})
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := NewModel(nil, nil).Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: Update() returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestModel_ViewShowsDisplayAndPending(t *testing.T) {
	m := send(NewModel(nil, nil), "1", "2", "+")

	view := m.View()
	if !strings.Contains(view, "12 +") {
		t.Errorf("View() does not show the pending operation:\n%s", view)
	}

	m = send(m, "0", "enter")
	m = send(m, "/", "0", "enter")
	if !strings.Contains(m.View(), "Error") {
		t.Errorf("View() does not show the error marker:\n%s", m.View())
	}
}

func TestModel_Tape(t *testing.T) {
	m := send(NewModel(nil, nil), "5", "+", "3", "enter")
	if strings.Contains(m.View(), "5 + 3 = 8") {
		t.Error("tape shown before it was toggled")
	}

	m = send(m, "t")
	if !strings.Contains(m.View(), "5 + 3 = 8") {
		t.Errorf("View() does not show the tape:\n%s", m.View())
	}
}

func TestModel_Loan(t *testing.T) {
	m := send(NewModel(nil, nil), "4", "2", "l")
	if m.CurrentView() != ViewLoan {
		t.Fatalf("CurrentView() = %v, want ViewLoan", m.CurrentView())
	}

	m = send(m, "enter")
	if m.loan.err != nil {
		t.Fatalf("loan error = %v", m.loan.err)
	}
	if m.loan.summary == nil {
		t.Fatal("loan summary is empty")
	}

	view := m.View()
	for _, want := range []string{"1,073.64", "186,511.57", "386,511.57"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m = send(m, "ctrl+r")
	if m.loan.summary != nil {
		t.Error("ctrl+r did not clear the results")
	}

	m = send(m, "esc")
	if m.CurrentView() != ViewCalculator {
		t.Errorf("CurrentView() = %v after esc, want ViewCalculator", m.CurrentView())
	}
	if m.Display() != "42" {
		t.Errorf("loan dialog changed the display to %q", m.Display())
	}
}

func TestModel_LoanErrors(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
		want  string
	}{
		{"principal not a number", FieldPrincipal, "abc", "Principal must be a number"},
		{"rate not a number", FieldRate, "five", "Annual Rate (%) must be a number"},
		{"payments not an integer", FieldPaymentsPerYear, "12.5", "Payments/Year must be an integer"},
		{"zero years", FieldYears, "0", "years must be > 0"},
		{"negative principal", FieldPrincipal, "-1", "principal must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(NewModel(nil, nil), "l")
			m.loan.inputs[tt.field].SetValue(tt.value)
			m = send(m, "enter")

			if m.loan.err == nil {
				t.Fatal("expected an error")
			}
			if m.loan.err.Error() != tt.want {
				t.Errorf("error = %q, want %q", m.loan.err.Error(), tt.want)
			}
			if m.CurrentView() != ViewLoan {
				t.Error("dialog closed after an error")
			}
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() does not show %q", tt.want)
			}
		})
	}
}

func TestModel_LoanFocusAndTyping(t *testing.T) {
	m := send(NewModel(nil, nil), "l")
	if m.loan.focus != FieldPrincipal {
		t.Fatalf("focus = %d, want %d", m.loan.focus, FieldPrincipal)
	}

	m = send(m, "tab")
	if m.loan.focus != FieldRate {
		t.Errorf("focus after tab = %d, want %d", m.loan.focus, FieldRate)
	}

	m = send(m, "shift+tab", "shift+tab")
	if m.loan.focus != FieldPaymentsPerYear {
		t.Errorf("focus after shift+tab = %d, want %d", m.loan.focus, FieldPaymentsPerYear)
	}

	m = send(m, "tab")
	m.loan.inputs[FieldPrincipal].SetValue("")
	m = send(m, "1", "2", "0", "0")
	if got := m.loan.inputs[FieldPrincipal].Value(); got != "1200" {
		t.Errorf("principal = %q, want 1200", got)
	}
	if m.Display() != "0" {
		t.Errorf("typing in the dialog reached the calculator: %q", m.Display())
	}
}

func TestModel_LoanDefaultsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Loan.Principal = 1200
	cfg.Loan.RatePercent = 0
	cfg.Loan.Years = 1

	m := send(NewModel(cfg, nil), "l", "enter")
	if m.loan.summary == nil {
		t.Fatalf("loan error = %v", m.loan.err)
	}
	if m.loan.summary.Payment != 100 {
		t.Errorf("Payment = %v, want 100", m.loan.summary.Payment)
	}
}

func TestModel_ConfigMessages(t *testing.T) {
	m := NewModel(nil, nil)

	cfg := config.Default()
	cfg.Theme.Primary = "#123456"
	next, _ := m.Update(ConfigChangedMsg{Config: cfg})
	m = next.(Model)

	if m.cfg != cfg {
		t.Error("ConfigChangedMsg did not replace the configuration")
	}
	if got := m.styles.Title.GetForeground(); got != lipgloss.Color("#123456") {
		t.Errorf("title color = %v, want #123456", got)
	}

	next, _ = m.Update(ConfigErrorMsg{Err: errTest("broken file")})
	m = next.(Model)
	if !strings.Contains(m.View(), "broken file") {
		t.Errorf("View() does not show the config error:\n%s", m.View())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
