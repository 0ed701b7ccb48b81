package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vibecod3rs/vibe"
	"google.golang.org/genai"
)

// Interface compliance checks.
var (
	_ vibe.ChatProvider = (*Client)(nil)
	_ vibe.Chat         = (*chat)(nil)
)

// Client implements [vibe.ChatProvider] for the Google Gemini API.
type Client struct {
	client     *genai.Client
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Gemini [Client] with the given API key and options.
// It fails when the key is empty.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", vibe.ErrCredentialMissing)
	}
	c := &Client{model: vibe.DefaultModel}
	for _, o := range opts {
		o(c)
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c.client = gc
	return c, nil
}

// NewChat creates a chat session configured with the model and system
// instruction from cfg.
func (c *Client) NewChat(ctx context.Context, cfg vibe.ChatConfig) (vibe.Chat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = c.model
	}
	session, err := c.client.Chats.Create(ctx, model, BuildConfig(cfg), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &chat{session: session}, nil
}

// chat adapts a genai chat session to [vibe.Chat].
type chat struct {
	session *genai.Chat
}

// Send sends text as the next user turn and returns the sanitized reply
// text. A reply without text is returned as an empty string, not an error.
func (c *chat) Send(ctx context.Context, text string) (string, error) {
	resp, err := c.session.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return Sanitize(ResponseText(resp)), nil
}

// BuildConfig converts a ChatConfig to the genai generation config.
// Exported for testing.
func BuildConfig(cfg vibe.ChatConfig) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if cfg.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: cfg.SystemInstruction}},
		}
	}
	return config
}

// ResponseText concatenates the text parts of the first candidate,
// skipping thought summaries. Exported for testing.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range content.Parts {
		if p == nil || p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
