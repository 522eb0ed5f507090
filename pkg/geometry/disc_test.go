package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDiscHit(t *testing.T) {
	// Create a disc at origin facing up with radius 1
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1.0)

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
		frontFace bool
	}{
		{
			name:      "Ray hits center of disc",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
			frontFace: true,
		},
		{
			name:      "Ray hits edge of disc",
			ray:       core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(0, -1, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
			frontFace: true,
		},
		{
			name:      "Ray misses disc (outside radius)",
			ray:       core.NewRay(core.NewVec3(1.1, 1, 0), core.NewVec3(0, -1, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to disc plane",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray hits from below",
			ray:       core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
			frontFace: false,
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
			tMin:      0.001,
			tMax:      4.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, didHit := disc.Hit(tt.ray, tt.tMin, tt.tMax)

			if didHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, didHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected front face %v, got %v", tt.frontFace, hit.FrontFace)
			}
			if !hit.Normal.Equals(disc.Normal) {
				t.Errorf("Expected outward normal %v, got %v", disc.Normal, hit.Normal)
			}
		})
	}
}

func TestDiscHit_CenterUV(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 2.0)
	hit, isHit := disc.Hit(core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), 0.001, 10)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.UV.X-0.5) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected center UV (0.5, 0.5), got %v", hit.UV)
	}
}

func TestDiscBasisIsOrthonormal(t *testing.T) {
	normals := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-0.3, 0.2, -0.9),
	}

	for _, n := range normals {
		disc := NewDisc(core.Vec3{}, n, 1)
		if math.Abs(disc.Right.Dot(disc.Normal)) > 1e-9 ||
			math.Abs(disc.Up.Dot(disc.Normal)) > 1e-9 ||
			math.Abs(disc.Right.Dot(disc.Up)) > 1e-9 {
			t.Errorf("Basis not orthogonal for normal %v", n)
		}
		if math.Abs(disc.Right.Length()-1) > 1e-9 || math.Abs(disc.Up.Length()-1) > 1e-9 {
			t.Errorf("Basis not unit length for normal %v", n)
		}
	}
}
