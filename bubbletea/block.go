package bubbletea

import "github.com/vibecod3rs/vibe"

// MessageBlock is a renderable element in the conversation.
// View takes a width parameter so the root model controls layout and
// blocks are testable in isolation.
type MessageBlock interface {
	View(width int) string
}

// newBlock picks the block type for a transcript message.
func newBlock(msg vibe.Message, theme vibe.Theme, styles Styles) MessageBlock {
	switch {
	case msg.Role == vibe.RoleUser:
		return NewUserMessageBlock(msg.Text, styles)
	case msg.IsError:
		return NewErrorBlock(msg.Text, styles)
	default:
		return NewModelMessageBlock(msg.Text, theme, styles)
	}
}
