package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
	"github.com/vibecod3rs/vibe"
)

var _ tea.Model = Model{}

// inputLimit caps a chat message, counted in user-perceived characters.
const inputLimit = 500

// Config holds the static content the TUI presents.
type Config struct {
	// Context is passed to every send. Defaults to context.Background.
	Context context.Context
	Event   vibe.Event
	Catalog vibe.Catalog
	Theme   vibe.Theme
}

// Model is the Bubble Tea model for the hackathon TUI.
type Model struct {
	// Input is the chat input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable chat transcript. Exported for test access.
	Viewport viewport.Model

	ctx    context.Context
	sender vibe.Sender
	conv   *vibe.Conversation

	event     vibe.Event
	catalog   vibe.Catalog
	selection vibe.TrackSelection
	cursor    int // focused card in the catalog view

	theme  vibe.Theme
	styles Styles
	blocks []MessageBlock

	width int
	ready bool
}

// New creates a TUI Model. Replies for conv are requested from sender.
func New(sender vibe.Sender, conv *vibe.Conversation, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Спроси VIBE..."
	ti.Prompt = "› "

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return Model{
		Input:     ti,
		ctx:       ctx,
		sender:    sender,
		conv:      conv,
		event:     cfg.Event,
		catalog:   cfg.Catalog,
		selection: vibe.NewTrackSelection(cfg.Catalog),
		theme:     cfg.Theme,
		styles:    NewStyles(cfg.Theme),
	}
}

// Conversation returns the conversation driven by the model.
func (m Model) Conversation() *vibe.Conversation { return m.conv }

// Selected returns the track shown in the detail view, if any.
func (m Model) Selected() (vibe.Track, int, bool) { return m.selection.Selected() }

// Cursor returns the index of the focused card.
func (m Model) Cursor() int { return m.cursor }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReplyMsg:
		m.conv.Resolve(msg.Text)
		m = m.syncTranscript()
		return m, nil
	}

	if !m.conv.IsOpen() {
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.event, m.width, m.styles))
	b.WriteString("\n")

	switch track, i, ok := m.selection.Selected(); {
	case m.conv.IsOpen():
		b.WriteString(m.Viewport.View())
	case ok:
		b.WriteString(renderModal(track, i, m.catalog.Len(), m.width, m.styles))
	default:
		b.WriteString(renderCards(m.catalog, m.cursor, m.width, m.styles))
		if prizes := renderPrizes(m.event.Prizes, m.width, m.styles); prizes != "" {
			b.WriteString("\n\n")
			b.WriteString(prizes)
		}
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	if m.conv.IsOpen() {
		b.WriteString("\n")
		b.WriteString(m.Input.View())
	}
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 2
	inputH := 1
	statusHeight := 1
	vpHeight := max(msg.Height-headerHeight-inputH-statusHeight, 1)

	m.width = msg.Width
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = max(msg.Width-uniseg.StringWidth(m.Input.Prompt)-1, 1)
	m = m.syncTranscript()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlO:
		return m.toggleChat()
	}

	if m.conv.IsOpen() {
		return m.handleChatKey(msg)
	}
	if _, _, ok := m.selection.Selected(); ok {
		return m.handleModalKey(msg), nil
	}
	return m.handleCatalogKey(msg), nil
}

func (m Model) toggleChat() (tea.Model, tea.Cmd) {
	m.conv.Toggle()
	if !m.conv.IsOpen() {
		m.Input.Blur()
		return m, nil
	}
	m = m.syncTranscript()
	cmd := m.Input.Focus()
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.conv.Close()
		m.Input.Blur()
		return m, nil

	case tea.KeyEnter:
		text, ok := m.conv.Begin(strings.TrimSpace(m.Input.Value()))
		if !ok {
			return m, nil
		}
		m.Input.SetValue("")
		m = m.syncTranscript()
		return m, sendCmd(m.ctx, m.sender, text)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	// Character keys only feed the input; 'j'/'k' would otherwise scroll.
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	before := m.Input.Value()
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	if uniseg.GraphemeClusterCount(m.Input.Value()) > inputLimit {
		m.Input.SetValue(before)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleModalKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyLeft:
		m.selection.Prev()
	case tea.KeyRight:
		m.selection.Next()
	case tea.KeyEsc:
		m.selection.Clear()
		return m
	}
	if _, i, ok := m.selection.Selected(); ok {
		m.cursor = i
	}
	return m
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) Model {
	n := m.catalog.Len()
	if n == 0 {
		return m
	}
	switch msg.Type {
	case tea.KeyLeft:
		m.cursor = (m.cursor - 1 + n) % n
	case tea.KeyRight:
		m.cursor = (m.cursor + 1) % n
	case tea.KeyEnter:
		m.selection.Select(m.cursor)
	}
	return m
}

// syncTranscript appends blocks for transcript messages not yet rendered.
func (m Model) syncTranscript() Model {
	msgs := m.conv.Transcript()
	for i := len(m.blocks); i < len(msgs); i++ {
		m.blocks = append(m.blocks, newBlock(msgs[i], m.theme, m.styles))
	}
	if m.ready {
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
	}
	return m
}

func (m Model) renderContent() string {
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.conv.IsLoading():
		return m.styles.Highlight.Render("VIBE печатает...")
	case m.conv.IsOpen():
		return m.styles.Muted.Render("Enter отправить · Esc свернуть · Ctrl+C выход")
	}
	if _, _, ok := m.selection.Selected(); ok {
		return m.styles.Muted.Render("←/→ листать треки · Esc закрыть")
	}
	return m.styles.Muted.Render("←/→ выбрать трек · Enter подробнее · Ctrl+O чат с VIBE · Ctrl+C выход")
}
