// Package engine implements the falling-block simulation: shapes, the board
// grid, collision checks, locking and line clearing.
// It has no I/O and no internal locking; callers serialize access.
package engine

import "strings"

// ShapeID tags a filled cell with the shape that produced it.
// Zero means empty.
type ShapeID uint8

const (
	ShapeNone ShapeID = iota
	ShapeI
	ShapeZ
	ShapeS
	ShapeJ
	ShapeL
	ShapeO
	ShapeT
)

// String returns the conventional single-letter name of the shape.
func (id ShapeID) String() string {
	switch id {
	case ShapeI:
		return "I"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	default:
		return "?"
	}
}

// Shape is an immutable matrix of cells. Filled cells carry the shape ID.
// Methods never modify the receiver; Rotate returns a new Shape.
type Shape struct {
	id    ShapeID
	rows  int
	cols  int
	cells []ShapeID
}

// NewShape builds a shape from a row-major matrix. Any non-zero value
// marks a filled cell and is stored as id.
func NewShape(id ShapeID, matrix [][]int) Shape {
	s := Shape{id: id, rows: len(matrix)}
	for _, row := range matrix {
		s.cols = max(s.cols, len(row))
	}
	s.cells = make([]ShapeID, s.rows*s.cols)
	for r, row := range matrix {
		for c, v := range row {
			if v > 0 {
				s.cells[r*s.cols+c] = id
			}
		}
	}
	return s
}

// ID returns the shape identifier.
func (s Shape) ID() ShapeID { return s.id }

// Rows returns the matrix height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the matrix width.
func (s Shape) Cols() int { return s.cols }

// At returns the cell at (row, col), or ShapeNone outside the matrix.
func (s Shape) At(row, col int) ShapeID {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return ShapeNone
	}
	return s.cells[row*s.cols+col]
}

// Filled reports whether the cell at (row, col) is part of the piece.
func (s Shape) Filled(row, col int) bool {
	return s.At(row, col) != ShapeNone
}

// Rotate returns the shape turned 90° clockwise. An R×C shape becomes C×R
// with new[c][R-1-r] = old[r][c].
func (s Shape) Rotate() Shape {
	out := Shape{
		id:    s.id,
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]ShapeID, len(s.cells)),
	}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			out.cells[c*out.cols+(s.rows-1-r)] = s.cells[r*s.cols+c]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.id != other.id || s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells calls fn for every filled cell with its offset inside the matrix.
func (s Shape) Cells(fn func(row, col int)) {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] != ShapeNone {
				fn(r, c)
			}
		}
	}
}

// String draws the shape with '#' for filled and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			if s.Filled(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// canonical holds the seven templates in ID order.
var canonical = [...]Shape{
	NewShape(ShapeI, [][]int{{1, 1, 1, 1}}),
	NewShape(ShapeZ, [][]int{{2, 2, 0}, {0, 2, 2}}),
	NewShape(ShapeS, [][]int{{0, 3, 3}, {3, 3, 0}}),
	NewShape(ShapeJ, [][]int{{4, 0, 0}, {4, 4, 4}}),
	NewShape(ShapeL, [][]int{{0, 0, 5}, {5, 5, 5}}),
	NewShape(ShapeO, [][]int{{6, 6}, {6, 6}}),
	NewShape(ShapeT, [][]int{{7, 7, 7}, {0, 7, 0}}),
}

// ShapeCount is the number of canonical shapes.
const ShapeCount = len(canonical)

// Shapes returns the canonical templates in ID order.
func Shapes() []Shape {
	out := make([]Shape, len(canonical))
	copy(out, canonical[:])
	return out
}

// ShapeByID returns the canonical template for id.
func ShapeByID(id ShapeID) (Shape, bool) {
	if id == ShapeNone || int(id) > len(canonical) {
		return Shape{}, false
	}
	return canonical[id-1], true
}
