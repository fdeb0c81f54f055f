package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

// Model is the Bubble Tea model for one game.
// Key events call the session directly; gravity runs in a command goroutine
// and reports back through UpdateMsg. The session's mutex serializes both.
type Model struct {
	sess   *session.Session
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	clock  clockwork.Clock
	logger *log.Logger

	ctx     context.Context    // Lives as long as the model
	stop    context.CancelFunc // Cancels ctx
	gravity context.CancelFunc // Cancels the current gravity loop
	gen     int                // Current gravity loop generation

	gravityCmd tea.Cmd // Launches the current gravity loop

	quitting bool
}

// screenshotDir is relative to the XDG data directory.
const screenshotDir = "tui-tetris/screenshots"

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces the wall clock that drives gravity.
func WithClock(c clockwork.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets the logger for model and session events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithContext ties the model's lifetime to ctx, e.g. an SSH session.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// NewModel creates a model and its session.
func NewModel(cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		clock:  clockwork.NewRealClock(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.ctx, m.stop = context.WithCancel(m.ctx)

	m.sess = session.New(session.Options{
		Width:  cfg.BoardW,
		Height: cfg.BoardH,
		Seed:   cfg.Seed,
		Logger: m.logger,
	})
	m.screen = core.NewScreen(cfg.ScreenW, m.boardAreaHeight(cfg.ScreenH))
	m.startGravity()
	return m
}

// Session exposes the underlying session.
func (m Model) Session() *session.Session {
	return m.sess
}

// boardAreaHeight reserves one line for the help footer when shown.
func (m Model) boardAreaHeight(screenH int) int {
	if m.config.ShowHelp {
		return max(screenH-1, 0)
	}
	return screenH
}

// stopGravity cancels the current gravity loop, if any.
func (m *Model) stopGravity() {
	if m.gravity != nil {
		m.gravity()
		m.gravity = nil
	}
}

// startGravity prepares a fresh cancellable context for the next loop.
func (m *Model) startGravity() {
	m.stopGravity()
	m.gen++
	var ctx context.Context
	ctx, m.gravity = context.WithCancel(m.ctx)
	m.gravityCmd = runGravity(ctx, m.sess, m.clock, m.config.Gravity, m.gen)
}

// Init starts the gravity loop and the update listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.gravityCmd, waitForUpdate(m.ctx, m.sess.Updates()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, m.boardAreaHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case UpdateMsg:
		return m, waitForUpdate(m.ctx, m.sess.Updates())

	case GravityStoppedMsg:
		if msg.Gen == m.gen && msg.Err == nil {
			m.logger.Debug("gravity stopped", "gen", msg.Gen)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.stop()
		return m, tea.Quit

	case core.ActionRestart:
		if !m.sess.GameOver() {
			return m, nil
		}
		// The old loop must not tick into the new game.
		m.stopGravity()
		m.sess.Reset()
		m.startGravity()
		return m, m.gravityCmd

	case core.ActionNone:
		return m, nil

	default:
		m.sess.Apply(action)
		return m, nil
	}
}

// saveScreenshot saves the current screen as plain text under the XDG
// data directory.
func (m *Model) saveScreenshot() {
	DrawGame(m.screen, m.sess.State(), m.config.Glyph)

	path, err := writeScreenshot(m.screen, time.Now())
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot writes the screen text to
// $XDG_DATA_HOME/tui-tetris/screenshots and returns the file path.
func writeScreenshot(screen *core.Screen, at time.Time) (string, error) {
	name := fmt.Sprintf("tetris_%s.txt", at.Format("20060102_150405"))
	path, err := xdg.DataFile(filepath.Join(screenshotDir, name))
	if err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.sess.State(), m.config.Glyph)
	out := RenderScreen(m.screen)
	if !m.config.ShowHelp {
		return out
	}
	return lipgloss.JoinVertical(lipgloss.Left, out, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game and blocks until the
// player quits.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.stop()
	return err
}
