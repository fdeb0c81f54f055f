package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"wasd left", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"vim right", runeKey('l'), core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"vim down", runeKey('j'), core.ActionSoftDrop},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"x rotates", runeKey('x'), core.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"pause", runeKey('p'), core.ActionPause},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())
	var n int
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 8, n, "every binding appears in full help")
}
