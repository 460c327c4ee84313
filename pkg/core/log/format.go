// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     log
// Description: Output formats (json, text, logfmt)
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// Format selects how entries are written
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatLogfmt
)

// String returns the format name as used in the config file
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses json, text or logfmt. Unknown input yields FormatJSON
// and an INVALID_INPUT error.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatJSON, FormatText, FormatLogfmt} {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return FormatJSON, rwerror.Newf("unknown log format %q", s).
		WithCode(rwerror.CodeInvalidInput).
		WithOperation("log.ParseFormat")
}

// encode renders one entry as a single line
func (f Format) encode(e *Entry) []byte {
	switch f {
	case FormatText:
		return encodeText(e)
	case FormatLogfmt:
		return encodeLogfmt(e)
	default:
		return encodeJSON(e)
	}
}

func encodeJSON(e *Entry) []byte {
	data := make(map[string]interface{}, len(e.Fields)+7)
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = e.Time.Format(time.RFC3339)
	data["level"] = e.Level.String()
	data["message"] = e.Message
	if e.Logger != "" {
		data["logger"] = e.Logger
	}
	if e.CorrelationID != "" {
		data["correlation_id"] = e.CorrelationID
	}
	if e.Caller != "" {
		data["caller"] = e.Caller
	}
	if e.Err != nil {
		data["error"] = e.Err.Error()
	}

	out, err := json.Marshal(data)
	if err != nil {
		// a field value json cannot encode; keep the message
		out, _ = json.Marshal(map[string]string{
			"timestamp": data["timestamp"].(string),
			"level":     e.Level.String(),
			"message":   e.Message,
			"log_error": err.Error(),
		})
	}
	return append(out, '\n')
}

func encodeText(e *Entry) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "%s [%s]", e.Time.Format("15:04:05"), e.Level.ShortString())
	if e.Logger != "" {
		fmt.Fprintf(&b, " {%s}", e.Logger)
	}
	b.WriteString(" " + e.Message)

	if len(e.Fields) > 0 {
		pairs := make([]string, 0, len(e.Fields))
		for _, k := range sortedKeys(e.Fields) {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Fields[k]))
		}
		b.WriteString(" [" + strings.Join(pairs, " ") + "]")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

func encodeLogfmt(e *Entry) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		e.Time.Format(time.RFC3339), e.Level, e.Message)
	if e.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", e.Logger)
	}
	if e.CorrelationID != "" {
		fmt.Fprintf(&b, " correlation_id=%s", e.CorrelationID)
	}
	for _, k := range sortedKeys(e.Fields) {
		if s, ok := e.Fields[k].(string); ok {
			fmt.Fprintf(&b, " %s=%q", k, s)
		} else {
			fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String())
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
