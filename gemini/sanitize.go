package gemini

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize strips ANSI escape sequences and control characters from reply
// text before it reaches the terminal. Tabs and newlines are kept; CRLF is
// normalized to LF and any remaining CR is dropped.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || (r > 0x1F && r != 0x7F) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
