package sanitization

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SingleLine collapses every run of whitespace, line breaks included, into
// one space and trims the result. Values rendered into headers or one-line
// labels go through it so they cannot start a new line.
func SingleLine(input string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(normalizeControl(input), " "))
}

// normalizeControl turns every Unicode space (U+2028 and \v included) into
// an ASCII space and drops the remaining control characters.
func normalizeControl(input string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, input)
}
