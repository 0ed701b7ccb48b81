package vibe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecod3rs/vibe"
	"github.com/vibecod3rs/vibe/mock"
)

func echoSender() *mock.Sender {
	return &mock.Sender{
		SendFn: func(ctx context.Context, text string) string {
			return "re: " + text
		},
	}
}

func TestNewConversation(t *testing.T) {
	t.Parallel()
	c := vibe.NewConversation()
	assert.False(t, c.IsOpen())
	assert.False(t, c.IsLoading())
	assert.Equal(t, 0, c.Len())

	seeded := vibe.NewConversation(vibe.ModelMessage(vibe.Greeting))
	require.Equal(t, 1, seeded.Len())
	assert.Equal(t, vibe.RoleModel, seeded.Transcript()[0].Role)
	assert.False(t, seeded.Transcript()[0].IsError)
}

func TestConversation_Visibility(t *testing.T) {
	t.Parallel()
	c := vibe.NewConversation()
	c.Open()
	assert.True(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())
	c.Toggle()
	assert.True(t, c.IsOpen())
	c.Toggle()
	assert.False(t, c.IsOpen())
}

func TestConversation_Begin(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty and whitespace text", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		for _, text := range []string{"", " ", "\n\t "} {
			_, ok := c.Begin(text)
			assert.False(t, ok, "text %q", text)
		}
		assert.Equal(t, 0, c.Len())
		assert.False(t, c.IsLoading())
	})

	t.Run("echoes user text and starts loading", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		text, ok := c.Begin("привет")
		require.True(t, ok)
		assert.Equal(t, "привет", text)
		assert.True(t, c.IsLoading())
		assert.Equal(t, []vibe.Message{{Role: vibe.RoleUser, Text: "привет"}}, c.Transcript())
	})

	t.Run("rejects submission while loading", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		_, ok := c.Begin("first")
		require.True(t, ok)

		_, ok = c.Begin("second")
		assert.False(t, ok)
		assert.Equal(t, 1, c.Len())
		assert.True(t, c.IsLoading())
	})
}

func TestConversation_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("appends reply and clears loading", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		_, _ = c.Begin("hi")
		require.True(t, c.Resolve("hello"))
		assert.False(t, c.IsLoading())
		assert.Equal(t, vibe.Message{Role: vibe.RoleModel, Text: "hello"}, c.Transcript()[1])
	})

	t.Run("flags sentinel replies as errors", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		_, _ = c.Begin("hi")
		c.Resolve(vibe.SentinelSignalLost)
		assert.True(t, c.Transcript()[1].IsError)
		assert.False(t, c.IsLoading())
	})

	t.Run("ignored without pending submission", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		assert.False(t, c.Resolve("stray"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("reply after close is still appended", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		c.Open()
		_, _ = c.Begin("hi")
		c.Close()
		c.Resolve("late")
		assert.False(t, c.IsOpen())
		assert.Equal(t, 2, c.Len())
	})
}

func TestConversation_Transcript_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := vibe.NewConversation()
	c.Submit(context.Background(), echoSender(), "hi")
	got := c.Transcript()
	got[0].Text = "changed"
	assert.Equal(t, "hi", c.Transcript()[0].Text)
}

func TestConversation_Submit(t *testing.T) {
	t.Parallel()

	t.Run("transcript grows by two per accepted submit", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation(vibe.ModelMessage(vibe.Greeting))
		initial := c.Len()
		inputs := []string{"a", "b", "c", "d"}
		for _, in := range inputs {
			require.True(t, c.Submit(context.Background(), echoSender(), in))
		}

		msgs := c.Transcript()
		require.Len(t, msgs, initial+2*len(inputs))
		for i, in := range inputs {
			user := msgs[initial+2*i]
			model := msgs[initial+2*i+1]
			assert.Equal(t, vibe.UserMessage(in), user)
			assert.Equal(t, vibe.RoleModel, model.Role)
			assert.Equal(t, "re: "+in, model.Text)
		}
		assert.False(t, c.IsLoading())
	})

	t.Run("rejected submit leaves state unchanged", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		called := false
		s := &mock.Sender{SendFn: func(ctx context.Context, text string) string {
			called = true
			return ""
		}}
		assert.False(t, c.Submit(context.Background(), s, "   "))
		assert.False(t, called)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("submit while loading is a no-op", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		_, _ = c.Begin("pending")
		before := c.Len()

		called := false
		s := &mock.Sender{SendFn: func(ctx context.Context, text string) string {
			called = true
			return "x"
		}}
		assert.False(t, c.Submit(context.Background(), s, "again"))
		assert.False(t, called)
		assert.Equal(t, before, c.Len())
		assert.True(t, c.IsLoading())
	})
}

func TestConversation_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("answer with credential", func(t *testing.T) {
		t.Parallel()
		p := &mock.ChatProvider{
			NewChatFn: func(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error) {
				return &mock.Chat{
					SendFn: func(ctx context.Context, text string) (string, error) {
						return "30 ноября ⚡️", nil
					},
				}, nil
			},
		}
		c := vibe.NewConversation()
		c.Open()
		c.Submit(context.Background(), vibe.NewAssistant(p), "Когда хакатон?")

		assert.Equal(t, []vibe.Message{
			{Role: vibe.RoleUser, Text: "Когда хакатон?"},
			{Role: vibe.RoleModel, Text: "30 ноября ⚡️", IsError: false},
		}, c.Transcript())
		assert.False(t, c.IsLoading())
	})

	t.Run("offline without credential", func(t *testing.T) {
		t.Parallel()
		c := vibe.NewConversation()
		c.Open()
		c.Submit(context.Background(), vibe.NewAssistant(nil), "привет")

		assert.Equal(t, []vibe.Message{
			{Role: vibe.RoleUser, Text: "привет"},
			{Role: vibe.RoleModel, Text: vibe.SentinelOffline, IsError: true},
		}, c.Transcript())
		assert.False(t, c.IsLoading())
	})
}
