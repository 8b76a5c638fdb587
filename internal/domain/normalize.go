package domain

import (
	"strings"
	"unicode"
)

// NormalizeLabel prepares a custom mood label for storage: surrounding
// whitespace is trimmed and inner whitespace runs collapse to one space.
// Case is preserved.
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(label))
	prevSpace := false
	for _, r := range label {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
