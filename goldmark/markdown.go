// Package goldmark renders model replies, which are short markdown
// snippets, to ANSI-styled terminal text using goldmark for parsing and
// lipgloss for styling.
package goldmark

import "github.com/vibecod3rs/vibe"

// Render parses markdown source and returns ANSI-styled terminal output
// word-wrapped to width. Code blocks keep their line breaks.
func Render(source string, width int, theme vibe.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return newReplyRenderer(theme).render([]byte(source), width)
}
