package markup

import "strings"

// Sanitize turns arbitrary text into an identifier fragment. Whitespace runs
// become a single underscore (leading and trailing runs are dropped), then
// every rune outside [A-Za-z0-9_-] is removed. The result may be empty.
func Sanitize(text string) string {
	joined := strings.Join(strings.Fields(text), "_")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if isIdentifierRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isIdentifierRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}
