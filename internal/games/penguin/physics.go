package penguin

import (
	"github.com/vovakirdan/penguin-flap/internal/config"
)

// StepPlayer integrates the player for one tick. Gravity applies only when
// enabled and the player has left the idle state.
func StepPlayer(p *Player, phys config.PenguinPhysics, dt float64) {
	if p.Gravity && p.Alive != AliveIdle {
		p.Vel.Y += phys.Gravity * dt
		if phys.MaxFallSpeed > 0 && p.Vel.Y > phys.MaxFallSpeed {
			p.Vel.Y = phys.MaxFallSpeed
		}
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// StepObstacles moves obstacles by their constant velocity.
func StepObstacles(obs []Obstacle, dt float64) {
	for i := range obs {
		obs[i].Pos = obs[i].Pos.Add(obs[i].Vel.Scale(dt))
	}
}

// Prune drops obstacles whose right edge is past the left screen edge.
// It filters in place and returns the shortened slice.
func Prune(obs []Obstacle) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	clear(obs[len(kept):])
	return kept
}

// OutOfBounds reports whether the player's collider crosses the top or
// bottom of the screen.
func OutOfBounds(p *Player, screenH float64) bool {
	b := p.Shape().Bounds()
	return b.Min.Y < 0 || b.Max.Y > screenH
}

// restOnFloor keeps a falling player's collider above the bottom edge.
func restOnFloor(p *Player, screenH float64) {
	b := p.Shape().Bounds()
	if b.Max.Y > screenH {
		p.Pos.Y -= b.Max.Y - screenH
		if p.Vel.Y > 0 {
			p.Vel.Y = 0
		}
	}
}
