package penguin

import (
	"strings"
	"testing"

	"github.com/vovakirdan/penguin-flap/internal/core"
	"github.com/vovakirdan/penguin-flap/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")

	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	pg, ok := g.(*Game)
	if !ok {
		t.Fatalf("got %T, expected *Game", g)
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = 64
	cfg.Seed = 5
	pg.Reset(cfg)
	return pg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameLifecycle(t *testing.T) {
	g := newTestGame(t)

	if st := g.State(); st.Started || st.GameOver {
		t.Fatalf("got %+v, expected idle", st)
	}
	if _, ok := g.LastRun(); ok {
		t.Error("LastRun reported a run before any finished")
	}

	res := g.Step(input(core.ActionJump))
	if !res.State.Started || res.State.GameOver {
		t.Fatalf("got %+v, expected a started run", res.State)
	}

	g.Session().player.Vel.Y = -30000
	res = g.Step(input())
	if !res.State.GameOver {
		t.Fatalf("got %+v, expected game over", res.State)
	}

	run, ok := g.LastRun()
	if !ok {
		t.Fatal("expected a finished run")
	}
	if run.Reason != "out_of_bounds" || run.Pairs != 1 || run.RunID == "" {
		t.Errorf("got %+v", run)
	}

	res = g.Step(input(core.ActionRestart))
	if res.State.Started || res.State.GameOver || res.State.Score != 0 {
		t.Errorf("got %+v after restart, expected idle", res.State)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should be ignored before the run starts")
	}

	g.Step(input(core.ActionJump))
	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Frame()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionJump))
	}
	after := g.Frame()
	if before.Player.Bounds != after.Player.Bounds || g.Session().Pairs() != 1 {
		t.Error("simulation advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "PENGUIN FLAP") || !strings.Contains(out, "Score: 0") {
		t.Errorf("idle screen missing title or score:\n%s", out)
	}
	if !strings.ContainsRune(scr.Row(23), GroundChar) {
		t.Error("expected ground on the last row")
	}

	g.Step(input(core.ActionJump))
	g.Render(scr)
	if !strings.ContainsRune(scr.String(), PlayerBody) {
		t.Error("expected the player on screen")
	}

	g.Session().player.Vel.Y = -30000
	g.Step(input())
	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "GAME OVER") {
		t.Errorf("game over screen missing message:\n%s", out)
	}

	// The ragdoll comes to rest just above the ground.
	for i := 0; i < 200; i++ {
		g.Step(input())
	}
	g.Render(scr)
	if !strings.ContainsRune(scr.Row(21)+scr.Row(22), PlayerDead) {
		t.Errorf("expected the dead player resting on the floor:\n%s", scr.String())
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultThemeID)

	if SetTheme("lava") {
		t.Error("unknown theme accepted")
	}
	for _, th := range Themes() {
		if !SetTheme(th.ID) {
			t.Errorf("theme %q rejected", th.ID)
		}
	}

	g := newTestGame(t)
	if g.theme.ID != "night" {
		t.Errorf("got theme %q, expected the last one set", g.theme.ID)
	}
}

func TestUseTheme(t *testing.T) {
	defer SetTheme(DefaultThemeID)
	SetTheme(DefaultThemeID)

	g := newTestGame(t)
	if got := g.CurrentTheme(); got != DefaultThemeID {
		t.Fatalf("got theme %q, expected %q", got, DefaultThemeID)
	}
	if len(g.Themes()) != len(Themes()) {
		t.Errorf("got %d themes, expected %d", len(g.Themes()), len(Themes()))
	}

	if g.UseTheme("lava") {
		t.Error("unknown theme accepted")
	}
	if !g.UseTheme("dusk") {
		t.Fatal("dusk rejected")
	}

	// A later package default does not override the instance choice.
	SetTheme("night")
	g.Reset(core.DefaultConfig())
	if got := g.CurrentTheme(); got != "dusk" {
		t.Errorf("got theme %q after Reset, expected dusk", got)
	}

	other := newTestGame(t)
	if got := other.CurrentTheme(); got != "night" {
		t.Errorf("got theme %q for a fresh game, expected night", got)
	}
}
