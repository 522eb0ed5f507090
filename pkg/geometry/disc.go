package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Normal vector (pointing "up" from the disc)
	Radius float64   // Radius of the disc
	Right  core.Vec3 // Right vector (perpendicular to normal)
	Up     core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	normalNormalized := normal.Normalize()
	right, up := tangentBasis(normalNormalized)

	return &Disc{
		Center: center,
		Normal: normalNormalized,
		Radius: radius,
		Right:  right,
		Up:     up,
	}
}

// Hit implements the Shape interface
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return nil, false // Outside disc
	}

	hitRecord := &HitRecord{
		Point: hitPoint,
		T:     t,
	}
	hitRecord.setOutwardNormal(ray, d.Normal)

	// Map the disc onto the unit square it is inscribed in
	u := 0.5 + centerToHit.Dot(d.Right)/(2*d.Radius)
	v := 0.5 + centerToHit.Dot(d.Up)/(2*d.Radius)
	hitRecord.UV = core.NewVec2(u, v)

	return hitRecord, true
}
