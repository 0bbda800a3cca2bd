package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make derives a URL-safe slug: lowercase, alphanumerics kept, every other
// run of characters collapsed to a single hyphen.
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// MakeUnique appends a timestamp suffix to resolve a slug collision.
func MakeUnique(base string) string {
	return fmt.Sprintf("%s-%d", base, time.Now().UnixNano())
}
