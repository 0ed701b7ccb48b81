package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/vibecod3rs/vibe"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg     lipgloss.Style
	ModelName   lipgloss.Style
	Error       lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Highlight   lipgloss.Style
	UserBg      lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Modal       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t vibe.Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ansiColor(t.Muted)).
		Padding(0, 1)
	return Styles{
		UserMsg:     lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		ModelName:   lipgloss.NewStyle().Foreground(ansiColor(t.ModelMsg)).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Muted:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(ansiColor(t.Highlight)).Bold(true),
		UserBg:      lipgloss.NewStyle().Background(ansiColor(t.UserMsg)).PaddingLeft(1),
		Card:        card,
		CardFocused: card.BorderForeground(ansiColor(t.Highlight)),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ansiColor(t.Highlight)).
			Padding(0, 2),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
