package bubbletea

import (
	"github.com/vibecod3rs/vibe"
	"github.com/vibecod3rs/vibe/goldmark"
)

var _ MessageBlock = (*ModelMessageBlock)(nil)

// modelLabel heads every reply from the assistant.
const modelLabel = "VIBE ⚡️"

// ModelMessageBlock renders an assistant reply as markdown.
type ModelMessageBlock struct {
	text   string
	theme  vibe.Theme
	styles Styles

	// Rendering is cached per width; replies never change once received.
	cached      string
	cachedWidth int
}

// NewModelMessageBlock creates a ModelMessageBlock.
func NewModelMessageBlock(text string, theme vibe.Theme, styles Styles) *ModelMessageBlock {
	return &ModelMessageBlock{text: text, theme: theme, styles: styles}
}

func (b *ModelMessageBlock) View(width int) string {
	if b.cached == "" || b.cachedWidth != width {
		b.cached = b.styles.ModelName.Render(modelLabel) + "\n" +
			goldmark.Render(b.text, width, b.theme)
		b.cachedWidth = width
	}
	return b.cached
}
