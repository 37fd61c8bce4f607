package penguin

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
)

// Spawner creates obstacle pairs off the right edge of the screen.
type Spawner struct {
	cfg        config.PenguinConfig
	rng        *rand.Rand
	topSpec    core.ColliderSpec
	bottomSpec core.ColliderSpec
	pairs      int
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(cfg config.PenguinConfig, seed int64) *Spawner {
	top, _ := cfg.ColliderFor(config.RoleTop)
	bottom, _ := cfg.ColliderFor(config.RoleBottom)
	return &Spawner{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(uint64(seed))),
		topSpec:    top,
		bottomSpec: bottom,
	}
}

// GapCenterRange returns the inclusive integer range the gap center is drawn
// from, keeping the whole gap at least Margin away from both screen edges.
// ok is false when no integer fits.
func (s *Spawner) GapCenterRange(gap float64) (lo, hi int, ok bool) {
	lo = int(math.Ceil(gap/2 + s.cfg.Gap.Margin))
	hi = int(math.Floor(s.cfg.Screen.Height - gap/2 - s.cfg.Gap.Margin))
	return lo, hi, hi >= lo
}

// SpawnPair creates the top and bottom obstacle of a new pair, sized for
// the given score.
func (s *Spawner) SpawnPair(score int) (top, bottom Obstacle) {
	gap := s.cfg.Gap.GapSize(score)

	var center float64
	if lo, hi, ok := s.GapCenterRange(gap); ok {
		center = float64(lo + s.rng.Intn(hi-lo+1))
	} else {
		center = s.cfg.Screen.Height / 2
	}

	x := s.cfg.SpawnX()
	vel := core.Vec{X: -s.cfg.Physics.ObstacleSpeed}
	visual := s.cfg.Visuals.Obstacle

	s.pairs++
	top = newObstacle(RoleTop, s.pairs, core.Vec{X: x, Y: center - gap/2}, vel, visual, s.topSpec)
	bottom = newObstacle(RoleBottom, s.pairs, core.Vec{X: x, Y: center + gap/2}, vel, visual, s.bottomSpec)
	return top, bottom
}

// Pairs returns how many pairs were spawned so far.
func (s *Spawner) Pairs() int {
	return s.pairs
}

// ResetCount restarts pair numbering. The RNG stream continues.
func (s *Spawner) ResetCount() {
	s.pairs = 0
}
