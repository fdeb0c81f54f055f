package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// shapeColors gives each shape its conventional color.
var shapeColors = map[engine.ShapeID]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeZ: core.ColorRed,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeT: core.ColorMagenta,
}

// ShapeColor returns the display color for a shape.
func ShapeColor(id engine.ShapeID) core.Color {
	if c, ok := shapeColors[id]; ok {
		return c
	}
	return core.ColorDefault
}

// Layout constants for DrawGame.
const (
	cellWidth  = 2  // Characters per board cell
	panelWidth = 14 // Side panel to the right of the board
	panelGap   = 2
)

// MinScreenSize returns the smallest screen that fits a board of the given
// size together with its border and side panel.
func MinScreenSize(boardW, boardH int) (w, h int) {
	return boardW*cellWidth + 2 + panelGap + panelWidth, boardH + 2
}

// DrawGame draws the board, the active piece and the side panel into dst.
// glyph is the two-character string used for a filled cell.
func DrawGame(dst *core.Screen, st session.State, glyph string) {
	dst.Clear()

	minW, minH := MinScreenSize(st.Width, st.Height)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minW, minH))
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(minW, minH)
	box := core.NewRect(area.X, area.Y, st.Width*cellWidth+2, st.Height+2)
	dst.DrawBox(box)

	for row := 0; row < st.Height; row++ {
		for col := 0; col < st.Width; col++ {
			x := box.X + 1 + col*cellWidth
			y := box.Y + 1 + row
			id := st.Cell(row, col)
			if id == engine.ShapeNone {
				dst.DrawColorText(x, y, " .", core.ColorGray)
				continue
			}
			dst.DrawColorText(x, y, glyph, ShapeColor(id))
		}
	}

	panelX := box.Right() + panelGap
	dst.DrawText(panelX, box.Y+1, "TETRIS")
	dst.DrawText(panelX, box.Y+3, fmt.Sprintf("Lines  %d", st.Lines))
	dst.DrawText(panelX, box.Y+4, fmt.Sprintf("Pieces %d", st.Pieces))

	switch {
	case st.GameOver:
		drawBanner(dst, box, "GAME OVER", "r restart  q quit")
	case st.Paused:
		drawBanner(dst, box, "PAUSED", "p to resume")
	}
}

// drawBanner writes two centered lines across the middle of the board box.
func drawBanner(dst *core.Screen, box core.Rect, title, hint string) {
	y := box.Y + box.H/2 - 1
	for i, text := range []string{title, hint} {
		runes := []rune(text)
		w := core.Clamp(len(runes), 0, box.W-2)
		x := box.X + (box.W-w)/2
		dst.DrawColorText(x, y+i, string(runes[:w]), core.ColorWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
