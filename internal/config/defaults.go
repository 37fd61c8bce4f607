package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

//go:embed defaults/penguin.yaml
var defaultPenguinYAML []byte

// DefaultPenguinConfig returns the built-in configuration.
func DefaultPenguinConfig() PenguinConfig {
	return PenguinConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Gap: GapConfig{
			Base:        220,
			Min:         150,
			Max:         220,
			ShrinkEvery: 5,
			ShrinkBy:    1,
			Margin:      40,
		},
		Spawn: SpawnConfig{
			Interval: 1500 * time.Millisecond,
			Padding:  10,
		},
		Physics: PenguinPhysics{
			Gravity:       900,
			FlapImpulse:   340,
			ObstacleSpeed: 220,
			MaxFallSpeed:  0,
			Ragdoll:       true,
		},
		Idle: IdleConfig{
			BobAmplitude: 20,
			BobPeriod:    600 * time.Millisecond,
		},
		Player: PlayerConfig{
			StartXRatio: 0.25,
			StartYRatio: 0.5,
		},
		Visuals: VisualsConfig{
			Player:   core.Size{W: 72, H: 64},
			Obstacle: core.Size{W: 270, H: 519.75},
		},
		Colliders: map[string]core.ColliderSpec{
			RolePlayer: {Kind: core.ColliderCircle, RadiusRatio: 0.6},
			RoleTop:    {Kind: core.ColliderRect, WidthRatio: 0.4, HeightRatio: 1},
			RoleBottom: {Kind: core.ColliderRect, WidthRatio: 0.4, HeightRatio: 0.97},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPenguinYAML
}
