package penguin

import (
	"testing"

	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
)

// dt is a binary fraction so tick sums are exact.
const dt = 1.0 / 64

var startSignal = []core.Signal{core.SignalStart}

type recorder struct {
	flaps int
	hits  int
}

func (r *recorder) OnFlap() { r.flaps++ }
func (r *recorder) OnHit()  { r.hits++ }

// corridorConfig pins every gap center to the player's start height and
// turns gravity off, so a run never ends on its own.
func corridorConfig() config.PenguinConfig {
	cfg := config.DefaultPenguinConfig()
	cfg.Physics.Gravity = 0
	cfg.Gap.Margin = 190
	return cfg
}

func newTestSession(t *testing.T, cfg config.PenguinConfig, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}
