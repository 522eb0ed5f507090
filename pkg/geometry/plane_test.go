package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Create a horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 1.0
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected hit point at origin, got %v", hit.Point)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from above")
	}
}

func TestPlane_Hit_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Ray parallel to the plane
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss for parallel ray, but got hit at t=%f", hit.T)
	}
}

func TestPlane_Hit_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Ray shooting up from above (intersection behind ray origin)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", hit.T)
	}
}

func TestPlane_NormalIsNormalized(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 5))
	if !plane.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected unit normal, got %v", plane.Normal)
	}
}

func TestPlane_Hit_UVInUnitRange(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	for _, x := range []float64{-3.7, -0.2, 0, 0.4, 12.9} {
		ray := core.NewRay(core.NewVec3(x, 1, x*0.5), core.NewVec3(0, -1, 0))
		hit, isHit := plane.Hit(ray, 0.001, 1000.0)
		if !isHit {
			t.Fatalf("Expected hit at x=%f", x)
		}
		if hit.UV.X < 0 || hit.UV.X >= 1 || hit.UV.Y < 0 || hit.UV.Y >= 1 {
			t.Errorf("UV %v out of [0,1) at x=%f", hit.UV, x)
		}
	}
}
