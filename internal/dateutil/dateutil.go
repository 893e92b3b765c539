// Package dateutil resolves "auto" date values for report periods and
// generation dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// AutoMonth resolves to the current reporting month, e.g. "March 2025".
const AutoMonth = "auto:month"

// dateTokens maps user-friendly tokens to Go time layout components.
// Longest tokens first so matching is greedy.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
}

// ParseDateFormat converts a token format string to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text inside brackets is kept
// literally and any other character passes through unchanged.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" values:
//   - "auto" gives the date in YYYY-MM-DD
//   - "auto:FORMAT" gives the date in a token format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" uses a named preset (iso, european, us, long, month)
//   - anything else is returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	formatPart := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	default:
		return value, nil
	}

	goFmt, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
