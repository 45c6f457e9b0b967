package domain

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a community or source display name for storage.
// Control characters are dropped and whitespace runs collapse to one space.
// Case is preserved.
func NormalizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return strings.Join(strings.Fields(name), " ")
}
