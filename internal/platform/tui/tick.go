// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the gravity loop.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-tetris/internal/session"
)

// UpdateMsg is sent when the session state changed outside Update,
// i.e. after a gravity step.
type UpdateMsg struct{}

// GravityStoppedMsg is sent when a gravity loop returns.
type GravityStoppedMsg struct {
	Gen int   // Loop generation; stale generations are ignored
	Err error // nil on game over, context error on cancellation
}

// waitForUpdate returns a command that waits for the next session update.
// It returns nil once ctx is done so the goroutine does not outlive the model.
func waitForUpdate(ctx context.Context, updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-updates:
			return UpdateMsg{}
		}
	}
}

// runGravity returns a command that runs the session's gravity loop until
// game over or cancellation.
func runGravity(ctx context.Context, sess *session.Session, clock clockwork.Clock, interval time.Duration, gen int) tea.Cmd {
	return func() tea.Msg {
		err := sess.Run(ctx, clock, interval)
		return GravityStoppedMsg{Gen: gen, Err: err}
	}
}
