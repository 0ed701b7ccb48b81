// Package bubbletea provides a Bubble Tea terminal front end for the
// hackathon: the track catalog with its detail view and the VIBE chat
// widget.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vibecod3rs/vibe"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The program quits when ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg delivers the text returned by the assistant for the pending
// submission.
type ReplyMsg struct {
	Text string
}

// sendCmd sends text in the background and reports the reply. The user
// cannot cancel it; ctx ends only when the program shuts down.
func sendCmd(ctx context.Context, sender vibe.Sender, text string) tea.Cmd {
	return func() tea.Msg {
		return ReplyMsg{Text: sender.Send(ctx, text)}
	}
}
