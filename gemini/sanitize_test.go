package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vibecod3rs/vibe/gemini"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text unchanged", in: "30 ноября ⚡️", want: "30 ноября ⚡️"},
		{name: "strips color codes", in: "\x1b[31mhello\x1b[0m", want: "hello"},
		{name: "strips OSC title sequence", in: "\x1b]0;pwned\x07hi", want: "hi"},
		{name: "keeps tabs and newlines", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "removes control characters", in: "a\x01b\x02c\x07\x7f", want: "abc"},
		{name: "normalizes CRLF", in: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "drops lone CR", in: "50%\rdone", want: "50%done"},
		{name: "keeps markdown", in: "**Призы**\n- курс", want: "**Призы**\n- курс"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.Sanitize(tt.in))
		})
	}
}
