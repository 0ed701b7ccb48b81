package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
	"github.com/vibecod3rs/vibe"
	bt "github.com/vibecod3rs/vibe/bubbletea"
	"github.com/vibecod3rs/vibe/mock"
)

func defaultConfig() bt.Config {
	return bt.Config{
		Event:   vibe.DefaultEvent(),
		Catalog: vibe.DefaultCatalog(),
		Theme:   vibe.DefaultTheme(),
	}
}

// newModel creates a model with a greeting-seeded conversation.
func newModel(sender vibe.Sender) bt.Model {
	conv := vibe.NewConversation(vibe.ModelMessage(vibe.Greeting))
	return bt.New(sender, conv, defaultConfig())
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, sender vibe.Sender) bt.Model {
	t.Helper()
	return initModelWithSize(t, sender, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, sender vibe.Sender, width, height int) bt.Model {
	t.Helper()
	return updateModel(t, newModel(sender), tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// typeText sends each rune of text as a key press.
func typeText(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	for _, r := range text {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// sendText delivers text as a single key event. teatest's Type splits a
// string into bytes, which garbles anything outside ASCII.
func sendText(tm *teatest.TestModel, text string) {
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// replySender answers every message with reply.
func replySender(reply string) *mock.Sender {
	return &mock.Sender{SendFn: func(_ context.Context, _ string) string {
		return reply
	}}
}

// unusedSender fails the test if a message is sent.
func unusedSender(t *testing.T) *mock.Sender {
	return &mock.Sender{SendFn: func(_ context.Context, text string) string {
		t.Errorf("unexpected send: %q", text)
		return ""
	}}
}
