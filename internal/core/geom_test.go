package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 22, 22, NewRect(29, 1, 22, 22)},
		{"exact", NewRect(2, 3, 10, 5), 10, 5, NewRect(2, 3, 10, 5)},
		{"too large", NewRect(0, 0, 10, 10), 14, 12, NewRect(-2, -1, 14, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.outer.CenterIn(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("CenterIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestActionMoves(t *testing.T) {
	tests := []struct {
		action     Action
		dRow, dCol int
		ok         bool
	}{
		{ActionLeft, 0, -1, true},
		{ActionRight, 0, 1, true},
		{ActionSoftDrop, 1, 0, true},
		{ActionRotate, 0, 0, false},
		{ActionHardDrop, 0, 0, false},
		{ActionNone, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dRow, dCol, ok := tc.action.Moves()
			if dRow != tc.dRow || dCol != tc.dCol || ok != tc.ok {
				t.Errorf("Moves() = (%d, %d, %v), expected (%d, %d, %v)",
					dRow, dCol, ok, tc.dRow, tc.dCol, tc.ok)
			}
		})
	}
}
