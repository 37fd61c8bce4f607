package penguin

import (
	"math"
	"testing"

	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
)

func TestStepPlayerGravity(t *testing.T) {
	phys := config.DefaultPenguinConfig().Physics

	tests := []struct {
		name   string
		alive  AliveState
		grav   bool
		startV float64
		expVel float64
	}{
		{"flying falls", AliveFlying, true, 0, 900 * dt},
		{"idle ignores gravity", AliveIdle, true, 0, 0},
		{"gravity disabled", AliveFlying, false, -50, -50},
		{"dead ragdoll falls", AliveDead, true, 10, 10 + 900*dt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{Pos: core.Vec{X: 200, Y: 300}, Vel: core.Vec{Y: tt.startV}, Alive: tt.alive, Gravity: tt.grav}
			StepPlayer(&p, phys, dt)
			if p.Vel.Y != tt.expVel {
				t.Errorf("got vy %v, expected %v", p.Vel.Y, tt.expVel)
			}
			if expY := 300 + tt.expVel*dt; p.Pos.Y != expY {
				t.Errorf("got y %v, expected %v", p.Pos.Y, expY)
			}
		})
	}
}

func TestStepPlayerMaxFallSpeed(t *testing.T) {
	phys := config.DefaultPenguinConfig().Physics
	phys.MaxFallSpeed = 400

	p := Player{Vel: core.Vec{Y: 395}, Alive: AliveFlying, Gravity: true}
	StepPlayer(&p, phys, dt)
	if p.Vel.Y != 400 {
		t.Errorf("got vy %v, expected cap 400", p.Vel.Y)
	}

	// Upward speed is never capped.
	p.Vel.Y = -1000
	StepPlayer(&p, phys, dt)
	if p.Vel.Y >= -900 {
		t.Errorf("got vy %v, expected upward speed kept", p.Vel.Y)
	}
}

func TestPruneAtLeftEdge(t *testing.T) {
	cfg := config.DefaultPenguinConfig()
	spec, _ := cfg.ColliderFor(config.RoleTop)
	halfW := cfg.Visuals.Obstacle.W / 2
	step := 1.0 / 60
	travel := cfg.Physics.ObstacleSpeed * step

	vel := core.Vec{X: -cfg.Physics.ObstacleSpeed}
	gone := newObstacle(RoleTop, 1, core.Vec{X: -5 - halfW + travel, Y: 200}, vel, cfg.Visuals.Obstacle, spec)
	kept := newObstacle(RoleTop, 2, core.Vec{X: 5 - halfW + travel, Y: 200}, vel, cfg.Visuals.Obstacle, spec)
	far := newObstacle(RoleTop, 3, core.Vec{X: 500, Y: 200}, vel, cfg.Visuals.Obstacle, spec)

	obs := []Obstacle{gone, kept, far}
	StepObstacles(obs, step)

	if r := obs[0].Right(); math.Abs(r+5) > 1e-9 {
		t.Fatalf("setup: expected right edge -5, got %v", r)
	}

	obs = Prune(obs)
	if len(obs) != 2 {
		t.Fatalf("got %d obstacles, expected 2", len(obs))
	}
	if obs[0].Pair != 2 || obs[1].Pair != 3 {
		t.Errorf("got pairs %d,%d, expected order 2,3", obs[0].Pair, obs[1].Pair)
	}
}

func TestPruneKeepsTouchingEdge(t *testing.T) {
	cfg := config.DefaultPenguinConfig()
	spec, _ := cfg.ColliderFor(config.RoleBottom)
	o := newObstacle(RoleBottom, 1, core.Vec{X: -cfg.Visuals.Obstacle.W / 2}, core.Vec{}, cfg.Visuals.Obstacle, spec)

	if got := Prune([]Obstacle{o}); len(got) != 1 {
		t.Error("obstacle with right edge at 0 should be kept")
	}
}

func TestOutOfBounds(t *testing.T) {
	cfg := config.DefaultPenguinConfig()

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"middle", 300, false},
		{"near top", 22, false},
		{"past top", 20, true},
		{"near bottom", 578, false},
		{"past bottom", 580, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer(cfg)
			p.Pos.Y = tt.y
			if got := OutOfBounds(&p, cfg.Screen.Height); got != tt.expected {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRestOnFloor(t *testing.T) {
	cfg := config.DefaultPenguinConfig()
	p := newPlayer(cfg)
	p.Pos.Y = 700
	p.Vel.Y = 300

	restOnFloor(&p, cfg.Screen.Height)

	if b := p.Shape().Bounds(); math.Abs(b.Max.Y-cfg.Screen.Height) > 1e-9 {
		t.Errorf("got collider bottom %v, expected %v", b.Max.Y, cfg.Screen.Height)
	}
	if p.Vel.Y != 0 {
		t.Errorf("got vy %v, expected 0", p.Vel.Y)
	}
}
