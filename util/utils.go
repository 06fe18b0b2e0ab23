package util

import (
	"bytes"
	"strings"
	"time"
	"unicode"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

// Slugify lowercases a display name into a username-safe handle.
func Slugify(s string) string {
	var buf bytes.Buffer

	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r):
			buf.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r), r == '_', r == '-':
			buf.WriteRune(r)
		case unicode.IsSpace(r):
			buf.WriteRune('_')
		}
	}

	return buf.String()
}
