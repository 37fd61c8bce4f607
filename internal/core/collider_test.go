package core

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewColliderCircle(t *testing.T) {
	spec := ColliderSpec{Kind: ColliderCircle, RadiusRatio: 0.6, OffsetX: 10, OffsetY: 10}
	c := NewCollider(spec, Size{W: 100, H: 80})

	if c.Radius != 30 {
		t.Errorf("Radius = %f, expected 30", c.Radius)
	}
	if c.Offset != (Vec{60, 50}) {
		t.Errorf("Offset = %+v, expected {60 50}", c.Offset)
	}

	shape, ok := c.Shape(Vec{100, 200}).(Circle)
	if !ok {
		t.Fatalf("Shape() should return a Circle")
	}
	if shape.Center != (Vec{160, 250}) {
		t.Errorf("Center = %+v, expected {160 250}", shape.Center)
	}
}

func TestNewColliderRect(t *testing.T) {
	spec := ColliderSpec{Kind: ColliderRect, WidthRatio: 0.4, HeightRatio: 0.5, OffsetX: 5}
	c := NewCollider(spec, Size{W: 200, H: 100})

	if c.Size != (Size{W: 80, H: 50}) {
		t.Errorf("Size = %+v, expected {80 50}", c.Size)
	}
	// Centered: (200-80)/2 + 5 = 65, (100-50)/2 = 25
	if c.Offset != (Vec{65, 25}) {
		t.Errorf("Offset = %+v, expected {65 25}", c.Offset)
	}

	box, ok := c.Shape(Vec{0, 0}).(Box)
	if !ok {
		t.Fatalf("Shape() should return a Box")
	}
	if box != NewBox(65, 25, 80, 50) {
		t.Errorf("Box = %+v", box)
	}
}

func TestNewColliderUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCollider with unknown kind should panic")
		}
	}()
	NewCollider(ColliderSpec{Kind: ColliderKind(42)}, Size{W: 1, H: 1})
}

func TestColliderKindYAML(t *testing.T) {
	var spec ColliderSpec
	if err := yaml.Unmarshal([]byte("kind: circle\nradius_ratio: 0.5\n"), &spec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if spec.Kind != ColliderCircle || math.Abs(spec.RadiusRatio-0.5) > 1e-9 {
		t.Errorf("Unexpected spec: %+v", spec)
	}

	out, err := yaml.Marshal(ColliderSpec{Kind: ColliderRect, WidthRatio: 0.4, HeightRatio: 1})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back ColliderSpec
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal of marshaled spec failed: %v", err)
	}
	if back.Kind != ColliderRect {
		t.Errorf("Kind round trip = %v, expected rect", back.Kind)
	}

	if err := yaml.Unmarshal([]byte("kind: triangle\n"), &spec); err == nil {
		t.Error("Unknown kind should fail to unmarshal")
	}
}
