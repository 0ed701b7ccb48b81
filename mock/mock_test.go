package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecod3rs/vibe"
	"github.com/vibecod3rs/vibe/mock"
)

func TestChatProvider_NewChat(t *testing.T) {
	t.Parallel()
	t.Run("delegates to NewChatFn", func(t *testing.T) {
		t.Parallel()
		var c mock.Chat
		var got vibe.ChatConfig
		p := mock.ChatProvider{
			NewChatFn: func(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error) {
				got = cfg
				return &c, nil
			},
		}
		chat, err := p.NewChat(context.Background(), vibe.DefaultChatConfig())
		require.NoError(t, err)
		assert.Equal(t, &c, chat)
		assert.Equal(t, vibe.DefaultModel, got.Model)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("api error")
		p := mock.ChatProvider{
			NewChatFn: func(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error) {
				return nil, wantErr
			},
		}
		_, err := p.NewChat(context.Background(), vibe.ChatConfig{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when NewChatFn not set", func(t *testing.T) {
		t.Parallel()
		p := mock.ChatProvider{}
		assert.Panics(t, func() {
			_, _ = p.NewChat(context.Background(), vibe.ChatConfig{})
		})
	})
}

func TestChat_Send(t *testing.T) {
	t.Parallel()
	c := mock.Chat{
		SendFn: func(ctx context.Context, text string) (string, error) {
			return "echo: " + text, nil
		},
	}
	got, err := c.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", got)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()
	s := mock.Sender{
		SendFn: func(ctx context.Context, text string) string {
			return text + "!"
		},
	}
	assert.Equal(t, "hi!", s.Send(context.Background(), "hi"))
}
