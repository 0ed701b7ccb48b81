// Package mock provides test doubles for vibe interfaces using function fields.
package mock

import (
	"context"

	"github.com/vibecod3rs/vibe"
)

// Interface compliance checks.
var (
	_ vibe.ChatProvider = (*ChatProvider)(nil)
	_ vibe.Chat         = (*Chat)(nil)
	_ vibe.Sender       = (*Sender)(nil)
)

// ChatProvider is a test double for vibe.ChatProvider.
// Set NewChatFn before calling NewChat.
type ChatProvider struct {
	NewChatFn func(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error)
}

// NewChat delegates to NewChatFn.
func (p *ChatProvider) NewChat(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error) {
	return p.NewChatFn(ctx, cfg)
}

// Chat is a test double for vibe.Chat.
// Set SendFn before calling Send.
type Chat struct {
	SendFn func(ctx context.Context, text string) (string, error)
}

// Send delegates to SendFn.
func (c *Chat) Send(ctx context.Context, text string) (string, error) {
	return c.SendFn(ctx, text)
}

// Sender is a test double for vibe.Sender.
// Set SendFn before calling Send.
type Sender struct {
	SendFn func(ctx context.Context, text string) string
}

// Send delegates to SendFn.
func (s *Sender) Send(ctx context.Context, text string) string {
	return s.SendFn(ctx, text)
}
