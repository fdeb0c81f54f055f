// Package session serializes access to one engine between the gravity loop
// and the input stream.
package session

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Options configures a new Session.
type Options struct {
	Width  int           // Board columns; defaults to engine.DefaultWidth
	Height int           // Board rows; defaults to engine.DefaultHeight
	Seed   int64         // Seed for the default shape picker
	Picker engine.Picker // Overrides the seeded picker when set
	Logger *log.Logger   // Debug events; discarded when nil
}

// State is what a renderer needs after any update.
type State struct {
	engine.Snapshot
	Paused bool
	Lines  int // Rows cleared since the last reset
	Pieces int // Pieces locked since the last reset
}

// Session owns one engine behind a mutex. Every exported method takes the
// lock, so a move from the input path and a lock from the gravity path
// never interleave.
type Session struct {
	mu     sync.Mutex
	eng    *engine.Engine
	picker engine.Picker
	width  int
	height int
	paused bool
	lines  int
	pieces int
	round  int // Bumped by Reset; a Run loop only steps its own round

	updates chan struct{}
	logger  *log.Logger
}

// New creates a session and spawns the first piece.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = engine.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = engine.DefaultHeight
	}
	picker := opts.Picker
	if picker == nil {
		picker = rand.New(rand.NewSource(opts.Seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		picker:  picker,
		width:   opts.Width,
		height:  opts.Height,
		updates: make(chan struct{}, 1),
		logger:  logger,
	}
	s.eng = engine.New(s.width, s.height, s.picker)
	return s
}

// Updates delivers a signal after every state change. Signals coalesce:
// a slow reader sees at most one pending value.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

func (s *Session) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// Apply performs one input action and reports whether the state changed.
// Pause toggles even while paused; everything else is ignored while paused
// or after game over. Restart and Quit are driver concerns and do nothing.
func (s *Session) Apply(a core.Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == core.ActionPause {
		if s.eng.GameOver() {
			return false
		}
		s.paused = !s.paused
		s.logger.Debug("pause toggled", "paused", s.paused)
		s.notify()
		return true
	}
	if s.paused || s.eng.GameOver() {
		return false
	}

	changed := false
	if dRow, dCol, ok := a.Moves(); ok {
		changed = s.eng.AttemptMove(dRow, dCol)
	} else {
		switch a {
		case core.ActionRotate:
			changed = s.eng.AttemptRotate()
		case core.ActionHardDrop:
			rows, res := s.eng.HardDrop()
			s.logger.Debug("hard drop", "rows", rows)
			s.recordLock(res)
			changed = true
		}
	}
	if changed {
		s.notify()
	}
	return changed
}

// Gravity runs one fall step: move the piece down, or lock it and spawn
// the next one when it cannot move. Returns whether the game is over.
func (s *Session) Gravity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gravityLocked()
}

// gravityRound steps only if no Reset happened since round was read.
// A stale round reports true so its loop ends.
func (s *Session) gravityRound(round int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if round != s.round {
		return true
	}
	return s.gravityLocked()
}

func (s *Session) gravityLocked() bool {
	if s.eng.GameOver() {
		return true
	}
	if s.paused {
		return false
	}
	if !s.eng.AttemptMove(1, 0) {
		s.recordLock(s.eng.LockAndAdvance())
	}
	s.notify()
	return s.eng.GameOver()
}

// recordLock updates counters after a lock. Caller holds mu.
func (s *Session) recordLock(res engine.LockResult) {
	s.pieces++
	s.lines += res.Cleared
	if res.Cleared > 0 {
		s.logger.Debug("rows cleared", "count", res.Cleared, "total", s.lines)
	}
	if res.GameOver {
		s.logger.Info("game over", "pieces", s.pieces, "lines", s.lines)
	}
}

// Run drives gravity at the given interval until the game ends or ctx is
// cancelled. Returns nil on game over and ctx.Err() on cancellation.
// A nil clock means the wall clock.
func (s *Session) Run(ctx context.Context, clock clockwork.Clock, interval time.Duration) error {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	s.mu.Lock()
	round := s.round
	s.mu.Unlock()

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		if s.GameOver() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if s.gravityRound(round) {
				return nil
			}
		}
	}
}

// Reset starts a new game on a fresh board, continuing the shape sequence.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eng = engine.New(s.width, s.height, s.picker)
	s.round++
	s.paused = false
	s.lines = 0
	s.pieces = 0
	s.logger.Debug("session reset", "width", s.width, "height", s.height)
	s.notify()
}

// GameOver reports whether the current game has ended.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.GameOver()
}

// Paused reports whether gravity and input are suspended.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// State returns a consistent copy of the current game state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Snapshot: s.eng.Snapshot(),
		Paused:   s.paused,
		Lines:    s.lines,
		Pieces:   s.pieces,
	}
}
