package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

// always picks the same shape.
type always engine.ShapeID

func (a always) Intn(n int) int { return (int(a) - 1) % n }

// span returns the screen text in columns [from, to) of row y.
func span(s *core.Screen, y, from, to int) string {
	return string([]rune(s.Row(y))[from:to])
}

func oSession(w, h int) *session.Session {
	return session.New(session.Options{Width: w, Height: h, Picker: always(engine.ShapeO)})
}

func TestMinScreenSize(t *testing.T) {
	w, h := MinScreenSize(10, 20)
	assert.Equal(t, 38, w)
	assert.Equal(t, 22, h)
}

func TestDrawGameLayout(t *testing.T) {
	sess := oSession(10, 20)
	screen := core.NewScreen(38, 22)

	DrawGame(screen, sess.State(), "[]")

	assert.Equal(t, '┌', screen.Get(0, 0))
	assert.Equal(t, '┘', screen.Get(21, 21))

	// O spawns at columns 4 and 5 of the top two rows.
	assert.Equal(t, "[][]", span(screen, 1, 9, 13))
	assert.Equal(t, "[][]", span(screen, 2, 9, 13))
	assert.Equal(t, ShapeColor(engine.ShapeO), screen.GetCell(9, 1).Color)

	// Empty cells are dotted.
	assert.Equal(t, " .", span(screen, 1, 1, 3))
	assert.Equal(t, core.ColorGray, screen.GetCell(2, 1).Color)

	assert.Contains(t, screen.Row(1), "TETRIS")
	assert.Contains(t, screen.Row(3), "Lines  0")
	assert.Contains(t, screen.Row(4), "Pieces 0")
}

func TestDrawGameTooSmall(t *testing.T) {
	sess := oSession(10, 20)
	screen := core.NewScreen(30, 10)

	DrawGame(screen, sess.State(), "[]")

	out := screen.String()
	assert.Contains(t, out, "Terminal too small")
	assert.Contains(t, out, "need 38x22")
	assert.NotContains(t, out, "TETRIS")
}

func TestDrawGameBanners(t *testing.T) {
	sess := oSession(10, 20)
	screen := core.NewScreen(38, 22)

	sess.Apply(core.ActionPause)
	DrawGame(screen, sess.State(), "[]")
	assert.Contains(t, screen.String(), "PAUSED")

	over := oSession(4, 4)
	for !over.GameOver() {
		over.Apply(core.ActionHardDrop)
	}
	w, h := MinScreenSize(4, 4)
	screen = core.NewScreen(w, h)
	DrawGame(screen, over.State(), "##")
	out := screen.String()
	assert.Contains(t, out, "GAME OV", "banner is clipped to the board width")
	assert.NotContains(t, out, "PAUSED")
}

func TestDrawGameCustomGlyph(t *testing.T) {
	sess := oSession(10, 20)
	screen := core.NewScreen(38, 22)

	DrawGame(screen, sess.State(), "██")

	assert.Equal(t, "████", span(screen, 1, 9, 13))
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawColorText(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd")
	screen.DrawColorText(0, 1, "xyz", core.ColorCyan)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, lines[1], "xyz")
}

func TestShapeColor(t *testing.T) {
	seen := map[core.Color]bool{}
	for _, s := range engine.Shapes() {
		c := ShapeColor(s.ID())
		assert.NotEqual(t, core.ColorDefault, c, s.ID().String())
		seen[c] = true
	}
	assert.Len(t, seen, engine.ShapeCount)
	assert.Equal(t, core.ColorDefault, ShapeColor(engine.ShapeNone))
}
