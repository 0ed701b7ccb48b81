package vibe

import (
	"context"
	"strings"
)

// Greeting is the model message a fresh chat widget opens with.
const Greeting = "Привет! Я VIBE ⚡️ Спрашивай про хакатон: треки, призы, даты старта."

// Conversation is the state behind the chat widget: visibility, the
// in-flight flag and the append-only transcript. At most one request is in
// flight; the flag is checked and set before the request starts.
//
// A Conversation is not safe for concurrent use. It is owned by the UI loop.
type Conversation struct {
	open       bool
	loading    bool
	transcript []Message
}

// NewConversation creates a closed, idle Conversation whose transcript
// starts with the given messages.
func NewConversation(initial ...Message) *Conversation {
	return &Conversation{transcript: append([]Message(nil), initial...)}
}

// IsOpen reports whether the widget is visible.
func (c *Conversation) IsOpen() bool { return c.open }

// IsLoading reports whether a reply is awaited.
func (c *Conversation) IsLoading() bool { return c.loading }

// Open shows the widget.
func (c *Conversation) Open() { c.open = true }

// Close hides the widget. An in-flight request is not cancelled and its
// reply is still appended when it arrives.
func (c *Conversation) Close() { c.open = false }

// Toggle flips widget visibility.
func (c *Conversation) Toggle() { c.open = !c.open }

// Len returns the number of transcript messages.
func (c *Conversation) Len() int { return len(c.transcript) }

// Transcript returns a copy of the transcript in chronological order.
func (c *Conversation) Transcript() []Message {
	return append([]Message(nil), c.transcript...)
}

// Begin starts a submission. It rejects empty or whitespace-only text and
// any submission while a reply is pending; otherwise it appends the user
// message, marks the conversation loading and returns the text to send.
func (c *Conversation) Begin(text string) (string, bool) {
	if c.loading || strings.TrimSpace(text) == "" {
		return "", false
	}
	c.transcript = append(c.transcript, UserMessage(text))
	c.loading = true
	return text, true
}

// Resolve completes the pending submission with the reply text and clears
// the loading flag. It reports false, changing nothing, when no submission
// is pending.
func (c *Conversation) Resolve(reply string) bool {
	if !c.loading {
		return false
	}
	c.transcript = append(c.transcript, ModelMessage(reply))
	c.loading = false
	return true
}

// Submit runs a whole submission synchronously: Begin, Send, Resolve.
// It reports whether the submission was accepted. The context is passed to
// the sender only; there is no way to abandon a submission once begun.
func (c *Conversation) Submit(ctx context.Context, s Sender, text string) bool {
	msg, ok := c.Begin(text)
	if !ok {
		return false
	}
	c.Resolve(s.Send(ctx, msg))
	return true
}
