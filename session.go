package vibe

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Sentinel replies stand in for every failure of Assistant.Send. They are
// shown to the user verbatim.
const (
	// SentinelOffline is returned when no API key is configured.
	SentinelOffline = "Системы оффлайн. (Отсутствует API Key)"

	// SentinelSignalLost is returned when the model could not be reached or
	// answered without text.
	SentinelSignalLost = "Сигнал потерян. Попробуйте позже."
)

// IsSentinel reports whether text is one of the sentinel replies.
func IsSentinel(text string) bool {
	return text == SentinelOffline || text == SentinelSignalLost
}

// SessionState indicates whether an Assistant holds a conversation.
type SessionState int

const (
	SessionUninitialized SessionState = iota // No conversation created yet.
	SessionActive                            // Conversation created; reused forever.
)

// Sender sends a user message and returns displayable reply text.
type Sender interface {
	Send(ctx context.Context, text string) string
}

// Interface compliance check.
var _ Sender = (*Assistant)(nil)

// Assistant owns at most one conversation with a ChatProvider and mediates
// every exchange through it. A nil provider means no credential is
// configured and the assistant is permanently offline.
type Assistant struct {
	provider ChatProvider
	config   ChatConfig
	logger   zerolog.Logger
	timeout  time.Duration

	// group collapses concurrent first calls into one construction.
	group singleflight.Group

	mu        sync.Mutex
	chat      Chat
	sessionID string
}

// AssistantOption configures an [Assistant].
type AssistantOption func(*Assistant)

// WithChatConfig overrides the model and system instruction.
func WithChatConfig(cfg ChatConfig) AssistantOption {
	return func(a *Assistant) { a.config = cfg }
}

// WithLogger sets the diagnostics logger. Default is a no-op logger.
func WithLogger(l zerolog.Logger) AssistantOption {
	return func(a *Assistant) { a.logger = l }
}

// WithTimeout bounds a single Send. Zero leaves it to the transport.
func WithTimeout(d time.Duration) AssistantOption {
	return func(a *Assistant) { a.timeout = d }
}

// NewAssistant creates an Assistant. Pass a nil provider when no credential
// is available.
func NewAssistant(provider ChatProvider, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		provider: provider,
		config:   DefaultChatConfig(),
		logger:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// State returns the current SessionState.
func (a *Assistant) State() SessionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.chat == nil {
		return SessionUninitialized
	}
	return SessionActive
}

// SessionID returns the correlation ID of the active conversation, or an
// empty string before one exists.
func (a *Assistant) SessionID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID
}

// EnsureSession returns the existing conversation or creates one. A failed
// creation is not cached; the next call tries again.
func (a *Assistant) EnsureSession(ctx context.Context) (Chat, error) {
	if a.provider == nil {
		return nil, ErrCredentialMissing
	}
	if chat := a.current(); chat != nil {
		return chat, nil
	}
	v, err, _ := a.group.Do("session", func() (any, error) {
		if chat := a.current(); chat != nil {
			return chat, nil
		}
		// Shared by every waiting caller, so one caller giving up must not
		// fail the others.
		chat, err := a.provider.NewChat(context.WithoutCancel(ctx), a.config)
		if err != nil {
			return nil, err
		}
		if chat == nil {
			return nil, fmt.Errorf("provider returned no session")
		}
		id := uuid.NewString()
		a.mu.Lock()
		a.chat = chat
		a.sessionID = id
		a.mu.Unlock()
		a.logger.Info().
			Str("session_id", id).
			Str("model", a.config.Model).
			Msg("chat session created")
		return chat, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return v.(Chat), nil
}

func (a *Assistant) current() Chat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chat
}

// Send delivers text to the model and returns its reply. It never fails:
// a missing credential yields SentinelOffline without contacting the
// provider, and any other failure or an empty reply is logged and yields
// SentinelSignalLost.
func (a *Assistant) Send(ctx context.Context, text string) string {
	if a.provider == nil {
		a.logger.Warn().
			Err(ErrCredentialMissing).
			Str("kind", "credential_missing").
			Msg("assistant offline")
		return SentinelOffline
	}

	chat, err := a.EnsureSession(ctx)
	if err != nil {
		a.logger.Error().
			Err(err).
			Str("kind", "session").
			Msg("chat session unavailable")
		return SentinelSignalLost
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	kind := "transport"
	reply, err := chat.Send(ctx, text)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = ErrEmptyResponse
		kind = "empty_response"
	}
	if err != nil {
		a.logger.Error().
			Err(err).
			Str("kind", kind).
			Str("session_id", a.SessionID()).
			Msg("send message failed")
		return SentinelSignalLost
	}
	return reply
}
