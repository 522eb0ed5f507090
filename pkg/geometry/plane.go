package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal

	right, up core.Vec3 // In-plane basis for texture coordinates
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	n := normal.Normalize()
	right, up := tangentBasis(n)
	return &Plane{
		Point:  point,
		Normal: n,
		right:  right,
		up:     up,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitRecord := &HitRecord{
		T:     t,
		Point: hitPoint,
	}
	hitRecord.setOutwardNormal(ray, p.Normal)

	// Texture repeats once per world unit
	local := hitPoint.Subtract(p.Point)
	hitRecord.UV = core.NewVec2(fract(local.Dot(p.right)), fract(local.Dot(p.up)))

	return hitRecord, true
}

// tangentBasis returns two unit vectors spanning the plane perpendicular to n
func tangentBasis(n core.Vec3) (core.Vec3, core.Vec3) {
	var helper core.Vec3
	if math.Abs(n.X) > 0.1 {
		helper = core.NewVec3(0, 1, 0)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}
	right := helper.Cross(n).Normalize()
	up := n.Cross(right).Normalize()
	return right, up
}

// fract returns the fractional part of x in [0, 1)
func fract(x float64) float64 {
	return x - math.Floor(x)
}
