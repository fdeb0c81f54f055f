package engine

import (
	"math/rand"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Picker selects the next shape index in [0, n).
// *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Piece is the active falling piece: a shape and the board position of its
// matrix's top-left cell.
type Piece struct {
	Shape Shape
	Row   int
	Col   int
}

// LockResult is returned by LockAndAdvance.
type LockResult struct {
	Cleared  int  // Rows removed by this lock
	GameOver bool // No new piece could be placed
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Width    int
	Height   int
	Board    [][]ShapeID
	Piece    Piece
	HasPiece bool // False once the game is over
	GameOver bool
}

// Engine owns the board, the active piece and the game-over flag.
// It is a plain state machine: every call runs to completion and leaves
// consistent state, but concurrent callers must provide their own locking.
type Engine struct {
	board    *Board
	piece    Piece
	picker   Picker
	gameOver bool
}

// New creates an engine with an empty width×height board and spawns the
// first piece. A nil picker uses a time-independent default source seeded
// with 1; drivers normally pass rand.New(rand.NewSource(seed)).
func New(width, height int, picker Picker) *Engine {
	if picker == nil {
		picker = rand.New(rand.NewSource(1))
	}
	e := &Engine{
		board:  NewBoard(width, height),
		picker: picker,
	}
	e.spawn()
	return e
}

// Width returns the board width.
func (e *Engine) Width() int { return e.board.Width() }

// Height returns the board height.
func (e *Engine) Height() int { return e.board.Height() }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Piece returns the active piece. Meaningless once the game is over.
func (e *Engine) Piece() Piece { return e.piece }

// Board exposes the grid for inspection. Callers must not mutate it while
// the game is running.
func (e *Engine) Board() *Board { return e.board }

// AttemptMove shifts the active piece by (dRow, dCol) if the destination
// fits. Returns false and changes nothing otherwise.
func (e *Engine) AttemptMove(dRow, dCol int) bool {
	if e.gameOver {
		return false
	}
	row, col := e.piece.Row+dRow, e.piece.Col+dCol
	if !e.board.Fits(e.piece.Shape, row, col) {
		return false
	}
	e.piece.Row, e.piece.Col = row, col
	return true
}

// AttemptRotate turns the active piece clockwise in place. There is no
// offset search: if the rotated shape does not fit at the same origin the
// piece is left as it was.
func (e *Engine) AttemptRotate() bool {
	if e.gameOver {
		return false
	}
	rotated := e.piece.Shape.Rotate()
	if !e.board.Fits(rotated, e.piece.Row, e.piece.Col) {
		return false
	}
	e.piece.Shape = rotated
	return true
}

// LockAndAdvance merges the active piece into the board, clears complete
// rows and spawns the next piece. Once the game is over it does nothing.
func (e *Engine) LockAndAdvance() LockResult {
	if e.gameOver {
		return LockResult{GameOver: true}
	}
	e.board.Merge(e.piece.Shape, e.piece.Row, e.piece.Col)
	cleared := e.board.ClearLines()
	e.spawn()
	return LockResult{Cleared: cleared, GameOver: e.gameOver}
}

// HardDrop moves the piece down until it rests, then locks it.
// Returns the number of rows dropped alongside the lock result.
func (e *Engine) HardDrop() (int, LockResult) {
	if e.gameOver {
		return 0, LockResult{GameOver: true}
	}
	rows := 0
	for e.AttemptMove(1, 0) {
		rows++
	}
	return rows, e.LockAndAdvance()
}

// spawn picks the next shape and centers it on row 0. A colliding spawn
// ends the game and leaves no piece placed.
func (e *Engine) spawn() {
	shape := canonical[e.picker.Intn(len(canonical))]
	next := Piece{
		Shape: shape,
		Row:   0,
		Col:   e.board.Width()/2 - shape.Cols()/2,
	}
	if !e.board.Fits(next.Shape, next.Row, next.Col) {
		e.gameOver = true
		e.piece = Piece{}
		return
	}
	e.piece = next
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Board:    e.board.Rows(),
		Piece:    e.piece,
		HasPiece: !e.gameOver,
		GameOver: e.gameOver,
	}
}

// Cell returns what a renderer should draw at (row, col): the active
// piece's cell if it covers the position, otherwise the board cell.
func (s Snapshot) Cell(row, col int) ShapeID {
	if s.HasPiece {
		if v := s.Piece.Shape.At(row-s.Piece.Row, col-s.Piece.Col); v != ShapeNone {
			return v
		}
	}
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return ShapeNone
	}
	return s.Board[row][col]
}
