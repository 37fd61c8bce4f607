package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/penguin-flap/internal/core"
)

// maxColliderRatio bounds collider ratios; anything larger is a typo.
const maxColliderRatio = 1.5

// Validate reports every configuration error that would prevent the
// spawner or the collider table from producing a valid layout.
func (c PenguinConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		add("screen: dimensions must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}

	g := c.Gap
	if g.Min < 0 || g.Max < 0 || g.Base < 0 || g.Margin < 0 {
		add("gap: sizes and margin must not be negative")
	}
	if g.Min > g.Max {
		add("gap: min %g exceeds max %g", g.Min, g.Max)
	}
	if g.Min == 0 {
		add("gap: min must be positive")
	}
	if g.ShrinkEvery < 0 || g.ShrinkBy < 0 {
		add("gap: shrink_every and shrink_by must not be negative")
	}
	if c.Screen.Height > 0 && g.Max+2*g.Margin > c.Screen.Height {
		add("gap: max %g plus margins %g does not fit screen height %g", g.Max, 2*g.Margin, c.Screen.Height)
	}

	if c.Spawn.Interval <= 0 {
		add("spawn: interval must be positive, got %s", c.Spawn.Interval)
	}
	if c.Spawn.Padding < 0 {
		add("spawn: padding must not be negative")
	}

	if c.Physics.Gravity < 0 || c.Physics.FlapImpulse < 0 || c.Physics.MaxFallSpeed < 0 {
		add("physics: gravity, flap_impulse and max_fall_speed must not be negative")
	}
	if c.Physics.ObstacleSpeed <= 0 {
		add("physics: obstacle_speed must be positive")
	}

	if c.Idle.BobAmplitude < 0 || c.Idle.BobPeriod < 0 {
		add("idle: bob settings must not be negative")
	}

	if c.Player.StartXRatio < 0 || c.Player.StartXRatio > 1 || c.Player.StartYRatio < 0 || c.Player.StartYRatio > 1 {
		add("player: start ratios must be within [0, 1]")
	}

	checkSize := func(name string, s core.Size) {
		if s.W <= 0 || s.H <= 0 {
			add("visuals.%s: dimensions must be positive, got %gx%g", name, s.W, s.H)
		}
	}
	checkSize(RolePlayer, c.Visuals.Player)
	checkSize("obstacle", c.Visuals.Obstacle)

	for _, role := range []string{RolePlayer, RoleTop, RoleBottom} {
		spec, ok := c.Colliders[role]
		if !ok {
			add("colliders: missing entry for %q", role)
			continue
		}
		if err := validateCollider(spec); err != nil {
			add("colliders.%s: %w", role, err)
		}
	}

	return errors.Join(errs...)
}

func validateCollider(spec core.ColliderSpec) error {
	inRange := func(r float64) bool { return r > 0 && r <= maxColliderRatio }

	switch spec.Kind {
	case core.ColliderCircle:
		if !inRange(spec.RadiusRatio) {
			return fmt.Errorf("radius_ratio %g out of range (0, %g]", spec.RadiusRatio, maxColliderRatio)
		}
	case core.ColliderRect:
		if !inRange(spec.WidthRatio) || !inRange(spec.HeightRatio) {
			return fmt.Errorf("width_ratio/height_ratio %g/%g out of range (0, %g]",
				spec.WidthRatio, spec.HeightRatio, maxColliderRatio)
		}
	default:
		return fmt.Errorf("unknown kind %v", spec.Kind)
	}
	return nil
}
