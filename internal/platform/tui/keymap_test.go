package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionUp, false},
		{"k", runeKey("k"), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"enter unbound", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
		{"esc unbound", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), want (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   t2048.Direction
	}{
		{core.ActionUp, t2048.DirUp},
		{core.ActionDown, t2048.DirDown},
		{core.ActionLeft, t2048.DirLeft},
		{core.ActionRight, t2048.DirRight},
		{core.ActionRestart, t2048.DirNone},
		{core.ActionNone, t2048.DirNone},
	}

	for _, tt := range tests {
		if got := DirectionFor(tt.action); got != tt.want {
			t.Errorf("DirectionFor(%v) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
