package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/penguin-flap/internal/games/penguin"
	"github.com/vovakirdan/penguin-flap/internal/storage"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// containsPlain reports whether s contains want once styling is removed.
func containsPlain(s, want string) bool {
	return strings.Contains(ansiSeq.ReplaceAllString(s, ""), want)
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuThemeCycling(t *testing.T) {
	m := NewMenuModel(testRuntime)

	if got := m.ThemeFor(penguin.ID); got != penguin.DefaultThemeID {
		t.Fatalf("got theme %q, expected %q", got, penguin.DefaultThemeID)
	}

	next, _ := m.Update(rightKey)
	m = next.(MenuModel)
	if got := m.ThemeFor(penguin.ID); got != "dusk" {
		t.Errorf("got theme %q, expected dusk", got)
	}

	next, _ = m.Update(leftKey)
	next, _ = next.Update(leftKey)
	m = next.(MenuModel)
	if got := m.ThemeFor(penguin.ID); got != "night" {
		t.Errorf("got theme %q, expected night after wrapping", got)
	}

	if !containsPlain(m.View(), "Night") {
		t.Error("menu should show the chosen theme")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(testRuntime)

	next, _ := m.Update(enterKey)
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != penguin.ID {
		t.Fatalf("got %+v, expected penguin selected", m.Selected())
	}

	m = m.clearChoice()
	next, _ = m.Update(tabKey)
	m = next.(MenuModel)
	if m.Selected() != nil || !m.WantsScoreboard() {
		t.Error("tab should request the scoreboard only")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testRuntime, nil)

	m = sendSession(t, m, rightKey)
	m = sendSession(t, m, enterKey)
	if m.view != viewGame {
		t.Fatalf("got view %d, expected game", m.view)
	}
	if themer := m.gameModel.game.(*penguin.Game); themer.CurrentTheme() != "dusk" {
		t.Errorf("got theme %q, expected dusk", themer.CurrentTheme())
	}

	m = sendSession(t, m, spaceKey)
	for i := 0; i < maxTicks && !m.gameModel.State().GameOver; i++ {
		m = sendSession(t, m, TickMsg(time.Time{}))
	}
	if !m.gameModel.State().GameOver {
		t.Fatal("run never ended")
	}

	m = sendSession(t, m, escKey)
	if m.view != viewMenu {
		t.Fatalf("got view %d, expected menu", m.view)
	}
	if got := m.menu.ThemeFor(penguin.ID); got != "dusk" {
		t.Errorf("menu forgot theme choice, got %q", got)
	}

	m = sendSession(t, m, tabKey)
	if m.view != viewScoreboard {
		t.Fatalf("got view %d, expected scoreboard", m.view)
	}
	if n := len(m.scoreboard.Runs()); n != 1 {
		t.Errorf("got %d runs on the board, expected 1", n)
	}

	m = sendSession(t, m, escKey)
	if m.view != viewMenu {
		t.Errorf("got view %d, expected menu", m.view)
	}

	m = sendSession(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("expected session to quit")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := openStore(t)
	a := sendSession(t, NewSessionModel(store, testRuntime, nil), enterKey)
	b := sendSession(t, NewSessionModel(store, testRuntime, nil), enterKey)

	a = sendSession(t, a, spaceKey)
	a = sendSession(t, a, TickMsg(time.Time{}))
	b = sendSession(t, b, TickMsg(time.Time{}))

	if !a.gameModel.State().Started {
		t.Error("session a should be playing")
	}
	if b.gameModel.State().Started {
		t.Error("input in session a leaked into session b")
	}
}

func TestScoreboard(t *testing.T) {
	store := openStore(t)
	for i, score := range []int{3, 9} {
		_, err := store.SaveRun(storage.Run{
			RunID:     []string{"a", "b"}[i],
			GameID:    penguin.ID,
			Score:     score,
			Pairs:     score + 1,
			Duration:  time.Duration(score) * time.Second,
			EndReason: "hit",
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sb := NewScoreboardModel(store, 100, 30, nil)
	runs := sb.Runs()
	if len(runs) != 2 || runs[0].Score != 9 || runs[1].Score != 3 {
		t.Fatalf("got %+v, expected runs ordered 9, 3", runs)
	}

	view := sb.View()
	for _, want := range []string{"SESSION SCORES - Penguin Flap", "Runs: 2", "Best: 9", "hit obstacle"} {
		if !containsPlain(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	sb := NewScoreboardModel(nil, 60, 20, nil)
	if len(sb.Runs()) != 0 {
		t.Error("expected no runs without a store")
	}
	if !containsPlain(sb.View(), "No runs yet") {
		t.Error("expected empty message")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		sec      float64
		expected string
	}{
		{0, "0:00.0"},
		{5.5, "0:05.5"},
		{65.5, "1:05.5"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.sec); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.sec, got, tt.expected)
		}
	}
}

func TestEndLabel(t *testing.T) {
	tests := map[string]string{
		"hit":           "hit obstacle",
		"out_of_bounds": "left the sky",
		"":              "-",
		"other":         "other",
	}
	for in, expected := range tests {
		if got := endLabel(in); got != expected {
			t.Errorf("endLabel(%q) = %q, expected %q", in, got, expected)
		}
	}
}
