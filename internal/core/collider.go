package core

import (
	"fmt"
	"strings"
)

// ColliderKind selects the collider shape of an entity.
type ColliderKind int

const (
	ColliderRect ColliderKind = iota
	ColliderCircle
)

// String returns the configuration name of the kind.
func (k ColliderKind) String() string {
	switch k {
	case ColliderRect:
		return "rect"
	case ColliderCircle:
		return "circle"
	default:
		return fmt.Sprintf("ColliderKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ColliderKind) MarshalText() ([]byte, error) {
	switch k {
	case ColliderRect, ColliderCircle:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("core: unknown collider kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ColliderKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "rect", "rectangle", "box":
		*k = ColliderRect
	case "circle":
		*k = ColliderCircle
	default:
		return fmt.Errorf("core: unknown collider kind %q", string(text))
	}
	return nil
}

// ColliderSpec declares a collider relative to an entity's visual bounds.
// Rect colliders use WidthRatio/HeightRatio, circle colliders RadiusRatio.
// Offsets are fixed pixel shifts applied after centering.
type ColliderSpec struct {
	Kind        ColliderKind `yaml:"kind"`
	WidthRatio  float64      `yaml:"width_ratio,omitempty"`
	HeightRatio float64      `yaml:"height_ratio,omitempty"`
	RadiusRatio float64      `yaml:"radius_ratio,omitempty"`
	OffsetX     float64      `yaml:"offset_x"`
	OffsetY     float64      `yaml:"offset_y"`
}

// Collider is a collider resolved against concrete visual dimensions.
// Offset is measured from the visual top-left corner: for rects it locates
// the collider's top-left corner, for circles its center.
type Collider struct {
	Kind   ColliderKind
	Offset Vec
	Size   Size
	Radius float64
}

// NewCollider derives a collider from its spec and the visual size.
func NewCollider(spec ColliderSpec, visual Size) Collider {
	switch spec.Kind {
	case ColliderCircle:
		r := spec.RadiusRatio * visual.W / 2
		return Collider{
			Kind:   ColliderCircle,
			Offset: Vec{X: visual.W/2 + spec.OffsetX, Y: visual.H/2 + spec.OffsetY},
			Radius: r,
		}
	case ColliderRect:
		size := Size{W: spec.WidthRatio * visual.W, H: spec.HeightRatio * visual.H}
		return Collider{
			Kind: ColliderRect,
			Offset: Vec{
				X: (visual.W-size.W)/2 + spec.OffsetX,
				Y: (visual.H-size.H)/2 + spec.OffsetY,
			},
			Size: size,
		}
	default:
		panic(fmt.Sprintf("core: collider with unknown kind %v", spec.Kind))
	}
}

// Shape places the collider at the given visual top-left corner.
func (c Collider) Shape(topLeft Vec) Shape {
	switch c.Kind {
	case ColliderCircle:
		return Circle{Center: topLeft.Add(c.Offset), Radius: c.Radius}
	case ColliderRect:
		p := topLeft.Add(c.Offset)
		return NewBox(p.X, p.Y, c.Size.W, c.Size.H)
	default:
		panic(fmt.Sprintf("core: collider with unknown kind %v", c.Kind))
	}
}
