// Package config provides YAML-based game configuration loading,
// validation, and the difficulty function for the penguin game.
package config

import (
	"time"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

// Collider table keys, one per entity role.
const (
	RolePlayer = "player"
	RoleTop    = "top"
	RoleBottom = "bottom"
)

// PenguinConfig contains all startup constants of the simulation.
type PenguinConfig struct {
	Screen    ScreenConfig                 `yaml:"screen"`
	Gap       GapConfig                    `yaml:"gap"`
	Spawn     SpawnConfig                  `yaml:"spawn"`
	Physics   PenguinPhysics               `yaml:"physics"`
	Idle      IdleConfig                   `yaml:"idle"`
	Player    PlayerConfig                 `yaml:"player"`
	Visuals   VisualsConfig                `yaml:"visuals"`
	Colliders map[string]core.ColliderSpec `yaml:"colliders"`
}

// ScreenConfig defines the world dimensions in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GapConfig defines the gap between obstacle members and how it shrinks.
type GapConfig struct {
	Base        float64 `yaml:"base"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	ShrinkEvery int     `yaml:"shrink_every"` // Points per shrink step
	ShrinkBy    float64 `yaml:"shrink_by"`    // Pixels removed per step
	Margin      float64 `yaml:"margin"`       // Minimum distance from gap to screen edge
}

// SpawnConfig defines the obstacle spawn cadence and placement.
type SpawnConfig struct {
	Interval time.Duration `yaml:"interval"`
	Padding  float64       `yaml:"padding"` // Extra distance beyond the right edge
}

// PenguinPhysics defines motion parameters. Velocities are pixels per second.
type PenguinPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Upward speed set by a flap
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // Leftward obstacle speed
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // 0 disables the cap
	Ragdoll       bool    `yaml:"ragdoll"`        // Keep gravity on the player after game over
}

// IdleConfig defines the decorative bob shown before a run starts.
type IdleConfig struct {
	BobAmplitude float64       `yaml:"bob_amplitude"`
	BobPeriod    time.Duration `yaml:"bob_period"` // One way; the bob yoyos
}

// PlayerConfig defines the player spawn point as fractions of the screen.
type PlayerConfig struct {
	StartXRatio float64 `yaml:"start_x_ratio"`
	StartYRatio float64 `yaml:"start_y_ratio"`
}

// VisualsConfig holds the visual sizes supplied by the asset layer.
type VisualsConfig struct {
	Player   core.Size `yaml:"player"`
	Obstacle core.Size `yaml:"obstacle"`
}

// ColliderFor returns the collider spec for a role and whether it is present.
func (c PenguinConfig) ColliderFor(role string) (core.ColliderSpec, bool) {
	spec, ok := c.Colliders[role]
	return spec, ok
}

// PlayerStart returns the player's initial center position.
func (c PenguinConfig) PlayerStart() core.Vec {
	return core.Vec{
		X: c.Screen.Width * c.Player.StartXRatio,
		Y: c.Screen.Height * c.Player.StartYRatio,
	}
}

// SpawnX returns the horizontal center where obstacle pairs appear.
func (c PenguinConfig) SpawnX() float64 {
	return c.Screen.Width + c.Visuals.Obstacle.W/2 + c.Spawn.Padding
}
