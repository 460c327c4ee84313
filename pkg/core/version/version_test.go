package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"App", App},
		{"Calculator", Calculator},
		{"Finance", Finance},
		{"TUI", TUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"calculator", "calculator", Calculator},
		{"finance", "finance", Finance},
		{"mathx alias", "mathx", Finance},
		{"tui", "tui", TUI},
		{"unknown component", "unknown", App},
		{"empty component", "", App},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, "v"+App) {
		t.Errorf("String() = %q, want it to contain v%s", s, App)
	}
	if !strings.Contains(s, Commit) {
		t.Errorf("String() = %q, want it to contain commit %s", s, Commit)
	}
}
