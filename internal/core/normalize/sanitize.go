package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops scraped noise before folding: NUL, ASCII controls other than
// newline/CR/tab, DEL, C1 controls (U+0080..U+009F) and invalid UTF-8 bytes.
// Returns s unchanged when it is already clean
func Sanitize(s string) string {
	if s == "" || isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, s)
}

func isClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !keepRune(r) {
			return false
		}
	}
	return true
}

// keepRune also rejects utf8.RuneError, which is how invalid bytes surface when ranging
func keepRune(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r < 0x20 || r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	case r == utf8.RuneError:
		return false
	}
	return true
}
