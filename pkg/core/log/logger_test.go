package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "test",
	}), &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Trace("hidden")
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "also shown") {
		t.Errorf("output missing messages: %q", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger = logger.WithField("session", "abc").WithCorrelationID("corr-1")

	logger.Info("equals", Fields{"display": "8"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"message":        "equals",
		"level":          "info",
		"logger":         "test",
		"session":        "abc",
		"display":        "8",
		"correlation_id": "corr-1",
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("entry[%s] = %v, want %v", k, entry[k], want)
		}
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf, EnableCaller: true})

	logger.Info("where")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	caller, _ := entry["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestLogger_WithIsImmutable(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	_ = logger.WithField("extra", "x")
	_ = logger.WithName("other")

	logger.Info("plain")

	out := buf.String()
	if strings.Contains(out, "extra") || strings.Contains(out, "other") {
		t.Errorf("With* should not modify the original logger: %q", out)
	}
	if !strings.Contains(out, "logger=test") {
		t.Errorf("logfmt output missing logger name: %q", out)
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantField string
	}{
		{"low severity", rwerror.OutOfRange("op", "years", 0, "> 0"), "info", "years"},
		{"high severity", rwerror.New("broken config").WithCode(rwerror.CodeConfigError), "error", ""},
		{"standard error", errors.New("plain"), "warn", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if entry["error"] != tt.err.Error() {
				t.Errorf("error = %v, want %v", entry["error"], tt.err.Error())
			}
			if field, _ := entry["error_field"].(string); field != tt.wantField {
				t.Errorf("error_field = %q, want %q", field, tt.wantField)
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() should not enable error level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"INF", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !rwerror.HasCode(err, rwerror.CodeInvalidInput) {
				t.Errorf("ParseLevel() error code = %v, want INVALID_INPUT", rwerror.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeText_SortsFields(t *testing.T) {
	e := &Entry{
		Time:    time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC),
		Level:   LevelInfo,
		Message: "msg",
		Fields:  Fields{"b": 2, "a": 1},
	}

	if got := string(FormatText.encode(e)); got != "09:30:00 [INF] msg [a=1 b=2]\n" {
		t.Errorf("encode() = %q", got)
	}
}
