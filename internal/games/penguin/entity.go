// Package penguin implements the endless gated-obstacle game: a gravity
// driven penguin must pass through gaps between top and bottom obstacles.
//
// The Session type is the whole simulation. It is advanced by an external
// frame loop and never blocks, sleeps or spawns goroutines.
package penguin

import (
	"github.com/vovakirdan/penguin-flap/internal/config"
	"github.com/vovakirdan/penguin-flap/internal/core"
)

// Role tells the two members of an obstacle pair apart.
type Role int

const (
	RoleTop Role = iota
	RoleBottom
)

// String returns the collider table key of the role.
func (r Role) String() string {
	switch r {
	case RoleTop:
		return config.RoleTop
	case RoleBottom:
		return config.RoleBottom
	default:
		return "unknown"
	}
}

// AliveState is the player's life cycle tag.
type AliveState int

const (
	AliveIdle AliveState = iota
	AliveFlying
	AliveDead
)

// Sprite is a visual hint for the render layer.
type Sprite int

const (
	SpriteIdle Sprite = iota
	SpriteJump
	SpriteDead
)

// Player is the penguin. Pos is the center of its visual bounds.
type Player struct {
	Pos      core.Vec
	Vel      core.Vec
	Visual   core.Size
	Collider core.Collider
	Alive    AliveState
	Sprite   Sprite
	Gravity  bool
}

func newPlayer(cfg config.PenguinConfig) Player {
	spec, _ := cfg.ColliderFor(config.RolePlayer)
	return Player{
		Pos:      cfg.PlayerStart(),
		Visual:   cfg.Visuals.Player,
		Collider: core.NewCollider(spec, cfg.Visuals.Player),
		Alive:    AliveIdle,
		Sprite:   SpriteIdle,
	}
}

// TopLeft returns the top-left corner of the visual bounds.
func (p *Player) TopLeft() core.Vec {
	return core.Vec{X: p.Pos.X - p.Visual.W/2, Y: p.Pos.Y - p.Visual.H/2}
}

// Shape returns the collider in world space.
func (p *Player) Shape() core.Shape {
	return p.Collider.Shape(p.TopLeft())
}

// Obstacle is one member of a pair.
// Pos.X is the horizontal center. Pos.Y is the edge facing the gap: the
// bottom edge of a top obstacle, the top edge of a bottom obstacle.
type Obstacle struct {
	Pos      core.Vec
	Vel      core.Vec
	Visual   core.Size
	Collider core.Collider
	Role     Role
	Pair     int
	Scored   bool // Only meaningful on the top member
}

// newObstacle is the only way obstacles are built, so every obstacle
// carries a resolved collider.
func newObstacle(role Role, pair int, pos, vel core.Vec, visual core.Size, spec core.ColliderSpec) Obstacle {
	return Obstacle{
		Pos:      pos,
		Vel:      vel,
		Visual:   visual,
		Collider: core.NewCollider(spec, visual),
		Role:     role,
		Pair:     pair,
	}
}

// TopLeft returns the top-left corner of the visual bounds.
func (o *Obstacle) TopLeft() core.Vec {
	x := o.Pos.X - o.Visual.W/2
	if o.Role == RoleTop {
		return core.Vec{X: x, Y: o.Pos.Y - o.Visual.H}
	}
	return core.Vec{X: x, Y: o.Pos.Y}
}

// Right returns the x coordinate of the right visual edge.
func (o *Obstacle) Right() float64 {
	return o.Pos.X + o.Visual.W/2
}

// Shape returns the collider in world space.
func (o *Obstacle) Shape() core.Shape {
	return o.Collider.Shape(o.TopLeft())
}

// Pose is what the render layer needs to draw an entity.
type Pose struct {
	Bounds   core.Box   // Visual bounds
	Collider core.Shape // Collider in world space
}

// PlayerPose is the per-frame view of the player.
type PlayerPose struct {
	Pose
	Vel    core.Vec
	Alive  AliveState
	Sprite Sprite
}

// ObstaclePose is the per-frame view of an obstacle.
type ObstaclePose struct {
	Pose
	Role Role
	Pair int
}

func (p *Player) pose() PlayerPose {
	tl := p.TopLeft()
	return PlayerPose{
		Pose: Pose{
			Bounds:   core.NewBox(tl.X, tl.Y, p.Visual.W, p.Visual.H),
			Collider: p.Shape(),
		},
		Vel:    p.Vel,
		Alive:  p.Alive,
		Sprite: p.Sprite,
	}
}

func (o *Obstacle) pose() ObstaclePose {
	tl := o.TopLeft()
	return ObstaclePose{
		Pose: Pose{
			Bounds:   core.NewBox(tl.X, tl.Y, o.Visual.W, o.Visual.H),
			Collider: o.Shape(),
		},
		Role: o.Role,
		Pair: o.Pair,
	}
}
