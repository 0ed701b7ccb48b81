package bubbletea

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders a user message on a full-width tinted band.
type UserMessageBlock struct {
	text   string
	styles Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(text string, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, styles: styles}
}

func (b *UserMessageBlock) View(width int) string {
	return b.styles.UserBg.Width(width).Render(b.text)
}
