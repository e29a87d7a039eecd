package types

import "unicode"

// IsName returns true if the string is a valid name: it starts with a letter,
// contains only letters, digits, hyphens and underscores, and does not end
// with a hyphen
func IsName(s string) bool {
	if s == "" {
		return false
	}
	var last rune
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
		last = r
	}
	return last != '-'
}
