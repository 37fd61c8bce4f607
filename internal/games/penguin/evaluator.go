package penguin

import "github.com/vovakirdan/penguin-flap/internal/core"

// CheckHit reports whether the player's collider overlaps any obstacle.
func CheckHit(p *Player, obs []Obstacle) bool {
	ps := p.Shape()
	for i := range obs {
		if core.Overlap(ps, obs[i].Shape()) {
			return true
		}
	}
	return false
}

// ApplyScoring marks every unscored top obstacle the player has passed and
// returns the number of points earned. Only top members score, so a pair
// counts once.
func ApplyScoring(p *Player, obs []Obstacle) int {
	points := 0
	for i := range obs {
		o := &obs[i]
		if o.Role != RoleTop || o.Scored {
			continue
		}
		if p.Pos.X > o.Pos.X {
			o.Scored = true
			points++
		}
	}
	return points
}
