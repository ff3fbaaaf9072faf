// Package dateutil parses front-matter dates and formats them with
// user-friendly tokens.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidDate indicates a date value matching none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat renders dates as "January 2, 2006".
const DefaultDateFormat = "MMMM D, YYYY"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
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
}

// inputLayouts are tried in order when parsing front-matter dates.
var inputLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveFormat expands a preset name (case-insensitive) and converts the
// result to a Go layout.
func ResolveFormat(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// FormatDate renders t with a token format or preset name.
func FormatDate(t time.Time, format string) (string, error) {
	layout, err := ResolveFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// ParseDate converts a front-matter date value into a time.
// Strings are matched against 2006-01-02, 2006-01-02 15:04,
// 2006-01-02 15:04:05 and RFC3339; values without a zone are UTC.
// YAML timestamps decoded as time.Time are returned unchanged.
func ParseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
		}
		return *v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
		}
		for _, layout := range inputLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q does not match YYYY-MM-DD, YYYY-MM-DD HH:MM[:SS] or RFC3339", ErrInvalidDate, s)
	case nil:
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidDate, v, v)
	}
}
