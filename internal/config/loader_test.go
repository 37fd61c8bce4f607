package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultPenguinConfig()

	if cfg.Gap != def.Gap {
		t.Errorf("Gap = %+v, expected %+v", cfg.Gap, def.Gap)
	}
	if cfg.Spawn != def.Spawn || cfg.Physics != def.Physics || cfg.Idle != def.Idle {
		t.Error("Embedded spawn/physics/idle sections differ from built-in defaults")
	}
	if cfg.Visuals != def.Visuals {
		t.Errorf("Visuals = %+v, expected %+v", cfg.Visuals, def.Visuals)
	}
	for role, spec := range def.Colliders {
		if cfg.Colliders[role] != spec {
			t.Errorf("Collider %s = %+v, expected %+v", role, cfg.Colliders[role], spec)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Embedded defaults should validate: %v", err)
	}
}

func TestLoadPenguinCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
gap:
  base: 200
  min: 120
  max: 200
spawn:
  interval: 2s
colliders:
  player:
    kind: rect
    width_ratio: 0.5
    height_ratio: 0.5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadPenguin(path)
	if err != nil {
		t.Fatalf("LoadPenguin() failed: %v", err)
	}

	if cfg.Gap.Base != 200 || cfg.Gap.Min != 120 {
		t.Errorf("Gap not loaded: %+v", cfg.Gap)
	}
	// Unset fields keep defaults
	if cfg.Gap.ShrinkEvery != 5 || cfg.Gap.Margin != 40 {
		t.Errorf("Missing gap fields should keep defaults, got %+v", cfg.Gap)
	}
	if cfg.Spawn.Interval != 2*time.Second {
		t.Errorf("Interval = %s, expected 2s", cfg.Spawn.Interval)
	}
	if cfg.Colliders[RolePlayer].Kind != core.ColliderRect {
		t.Errorf("Player collider should be overridden to rect")
	}
	if _, ok := cfg.Colliders[RoleTop]; !ok {
		t.Error("Roles missing from the file should keep their default collider")
	}
}

func TestLoadPenguinMissingCustomPath(t *testing.T) {
	_, err := LoadPenguin(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadPenguin with a missing custom path should fail")
	}
}

func TestLoadPenguinBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gap: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadPenguin(path); err == nil {
		t.Error("LoadPenguin with malformed YAML should fail")
	}
}

func TestMarshalParse(t *testing.T) {
	cfg := DefaultPenguinConfig()
	cfg.Gap.Base = 205
	cfg.Spawn.Interval = 1200 * time.Millisecond

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back.Gap.Base != 205 || back.Spawn.Interval != 1200*time.Millisecond {
		t.Errorf("Marshaled config did not survive parsing: %+v %+v", back.Gap, back.Spawn)
	}
}

func TestDerivedPositions(t *testing.T) {
	cfg := DefaultPenguinConfig()

	if got := cfg.SpawnX(); got != 800+135+10 {
		t.Errorf("SpawnX() = %g, expected 945", got)
	}
	if got := cfg.PlayerStart(); got != (core.Vec{X: 200, Y: 300}) {
		t.Errorf("PlayerStart() = %+v, expected {200 300}", got)
	}
}
