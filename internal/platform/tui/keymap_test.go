package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"space flaps", spaceKey, core.ActionJump, false},
		{"up flaps", upKey, core.ActionJump, false},
		{"w flaps", runeKey('w'), core.ActionJump, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", escKey, core.ActionBack, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"enter confirms", enterKey, core.ActionConfirm, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", ctrlC, core.ActionQuit, true},
		{"unbound key", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("got (%v, %v), expected (%v, %v)", action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(spaceKey, &frame) {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("expected jump in frame")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{upKey, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{leftKey, MenuActionLeft},
		{rightKey, MenuActionRight},
		{enterKey, MenuActionSelect},
		{spaceKey, MenuActionSelect},
		{escKey, MenuActionBack},
		{tabKey, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("%q: got %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
