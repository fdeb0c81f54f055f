package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalShapes(t *testing.T) {
	tests := []struct {
		id   ShapeID
		want string
	}{
		{ShapeI, "####"},
		{ShapeZ, "##.\n.##"},
		{ShapeS, ".##\n##."},
		{ShapeJ, "#..\n###"},
		{ShapeL, "..#\n###"},
		{ShapeO, "##\n##"},
		{ShapeT, "###\n.#."},
	}

	require.Len(t, Shapes(), ShapeCount)
	for _, tc := range tests {
		t.Run(tc.id.String(), func(t *testing.T) {
			s, ok := ShapeByID(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.want, s.String())
			assert.Equal(t, tc.id, s.ID())
			s.Cells(func(r, c int) {
				assert.Equal(t, tc.id, s.At(r, c), "filled cells carry the shape id")
			})
		})
	}

	_, ok := ShapeByID(ShapeNone)
	assert.False(t, ok)
	_, ok = ShapeByID(ShapeT + 1)
	assert.False(t, ok)
}

func TestRotateClockwise(t *testing.T) {
	// J: #..      ##
	//    ###  ->  #.
	//             #.
	j, _ := ShapeByID(ShapeJ)
	r := j.Rotate()

	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, 2, r.Cols())
	assert.Equal(t, "##\n#.\n#.", r.String())

	for row := 0; row < j.Rows(); row++ {
		for col := 0; col < j.Cols(); col++ {
			assert.Equal(t, j.At(row, col), r.At(col, j.Rows()-1-row),
				"cell (%d,%d) should land at (%d,%d)", row, col, col, j.Rows()-1-row)
		}
	}

	i, _ := ShapeByID(ShapeI)
	assert.Equal(t, "#\n#\n#\n#", i.Rotate().String())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.ID().String(), func(t *testing.T) {
			r := s.Rotate().Rotate().Rotate().Rotate()
			assert.True(t, s.Equal(r), "four rotations should restore\n%s\ngot\n%s", s, r)
		})
	}
}

func TestRotateDoesNotMutateTemplate(t *testing.T) {
	before := Shapes()
	for _, s := range Shapes() {
		_ = s.Rotate()
	}
	after := Shapes()
	for i := range before {
		assert.True(t, before[i].Equal(after[i]))
	}
}

func TestShapeAtOutside(t *testing.T) {
	o, _ := ShapeByID(ShapeO)
	assert.Equal(t, ShapeNone, o.At(-1, 0))
	assert.Equal(t, ShapeNone, o.At(0, 2))
	assert.False(t, o.Filled(2, 0))
}
