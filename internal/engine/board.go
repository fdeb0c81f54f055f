package engine

// Board is the fixed-size grid of locked cells, row 0 at the top.
// Storage is flat and row-major.
type Board struct {
	width  int
	height int
	cells  []ShapeID
}

// NewBoard allocates an empty board. Dimensions must be positive.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]ShapeID, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

// InBounds reports whether (row, col) is a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the cell value, or ShapeNone outside the board.
func (b *Board) At(row, col int) ShapeID {
	if !b.InBounds(row, col) {
		return ShapeNone
	}
	return b.cells[b.index(row, col)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, v ShapeID) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[b.index(row, col)] = v
}

// Occupied reports whether the in-bounds cell holds a locked block.
func (b *Board) Occupied(row, col int) bool {
	return b.At(row, col) != ShapeNone
}

// Fits reports whether shape placed with its top-left cell at (row, col)
// is a legal position: every filled cell has a column in [0, width), a row
// below height, and, for rows on the board, an empty board cell.
// Cells above the top edge are always allowed.
func (b *Board) Fits(shape Shape, row, col int) bool {
	ok := true
	shape.Cells(func(r, c int) {
		if !ok {
			return
		}
		br, bc := row+r, col+c
		switch {
		case bc < 0 || bc >= b.width:
			ok = false
		case br >= b.height:
			ok = false
		case br >= 0 && b.Occupied(br, bc):
			ok = false
		}
	})
	return ok
}

// Merge writes the filled cells of shape at (row, col) into the grid.
// Cells above the top edge are dropped.
func (b *Board) Merge(shape Shape, row, col int) {
	shape.Cells(func(r, c int) {
		b.Set(row+r, col+c, shape.At(r, c))
	})
}

// RowComplete reports whether every column of row is occupied.
func (b *Board) RowComplete(row int) bool {
	for c := 0; c < b.width; c++ {
		if b.cells[b.index(row, c)] == ShapeNone {
			return false
		}
	}
	return true
}

// ClearLines removes complete rows in a single top-to-bottom scan and
// returns how many were removed. For each complete row, every row above it
// shifts down by one and row 0 becomes empty. Rows above the scan position
// have already been checked, so one pass leaves no complete row behind.
func (b *Board) ClearLines() int {
	cleared := 0
	for row := 0; row < b.height; row++ {
		if !b.RowComplete(row) {
			continue
		}
		// Shift rows [0, row) down by one in a single copy.
		copy(b.cells[b.width:b.index(row+1, 0)], b.cells[:b.index(row, 0)])
		clear(b.cells[:b.width])
		cleared++
	}
	return cleared
}

// Rows returns a deep copy of the grid as nested slices.
func (b *Board) Rows() [][]ShapeID {
	out := make([][]ShapeID, b.height)
	for r := range out {
		out[r] = make([]ShapeID, b.width)
		copy(out[r], b.cells[b.index(r, 0):b.index(r+1, 0)])
	}
	return out
}
