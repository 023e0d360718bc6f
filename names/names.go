// Package names cleans raw name strings before they are placed on slides.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Gap is inserted between the two characters of a two-character name so it
// sits balanced in a centred text box.
const Gap = "  "

// Normalize strips surrounding whitespace and every space and tab from raw.
// A two-character result is re-expanded to c1 + Gap + c2. ok is false when
// nothing is left.
func Normalize(raw string) (name string, ok bool) {
	s := strings.TrimFunc(norm.NFC.String(raw), unicode.IsSpace)
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "", false
	}

	runes := []rune(s)
	if len(runes) == 2 {
		return string(runes[0]) + Gap + string(runes[1]), true
	}
	return s, true
}

// NormalizeAll normalizes raws in order, dropping entries that come out empty.
func NormalizeAll(raws []string) []string {
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		if name, ok := Normalize(raw); ok {
			out = append(out, name)
		}
	}
	return out
}

// ParseText splits pasted text into lines and normalizes each one.
func ParseText(text string) []string {
	return NormalizeAll(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}
