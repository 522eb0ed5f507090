package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite cylinder shape, optionally closed by end caps
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Capped     bool

	// Cached derived values
	axis   core.Vec3 // Unit vector from base to top
	height float64   // Distance between base and top
	right  core.Vec3 // Reference direction for the angular texture coordinate
	up     core.Vec3
}

// NewCylinder creates a new cylinder
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	axis := axisVector.Normalize()
	right, up := tangentBasis(axis)

	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Capped:     capped,
		axis:       axis,
		height:     axisVector.Length(),
		right:      right,
		up:         up,
	}
}

// Hit tests if a ray intersects with the cylinder
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	closest, closestT := c.hitBody(ray, tMin, tMax), tMax
	if closest != nil {
		closestT = closest.T
	}

	if c.Capped {
		if hit := hitCap(ray, c.BaseCenter, c.axis.Negate(), c.Radius, tMin, closestT); hit != nil {
			closest, closestT = hit, hit.T
		}
		if hit := hitCap(ray, c.TopCenter, c.axis, c.Radius, tMin, closestT); hit != nil {
			closest = hit
		}
	}

	return closest, closest != nil
}

func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) *HitRecord {
	// Vector from ray origin to base center
	delta := ray.Origin.Subtract(c.BaseCenter)

	DV := ray.Direction.Dot(c.axis) // D · V̂
	deltaV := delta.Dot(c.axis)     // Δ · V̂

	// Quadratic equation coefficients: at² + bt + cc = 0
	// a = |D|² - (D·V̂)²
	// b = 2[Δ·D - (Δ·V̂)(D·V̂)]
	// cc = |Δ|² - (Δ·V̂)² - r²
	a := ray.Direction.LengthSquared() - DV*DV
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*DV)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	// Ray is parallel to cylinder axis and never meets the side
	if math.Abs(a) < 1e-8 {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	// Roots in increasing order; the first one within both the ray range
	// and the height bounds wins
	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		// Normal points radially outward from the axis
		axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		outwardNormal := point.Subtract(axisPoint).Normalize()

		hitRecord := &HitRecord{
			T:     t,
			Point: point,
		}
		hitRecord.setOutwardNormal(ray, outwardNormal)

		angle := math.Atan2(outwardNormal.Dot(c.up), outwardNormal.Dot(c.right))
		hitRecord.UV = core.NewVec2(0.5+angle/(2*math.Pi), h/c.height)
		return hitRecord
	}

	return nil
}

// hitCap checks for intersection with a circular end cap
func hitCap(ray core.Ray, center, normal core.Vec3, radius, tMin, tMax float64) *HitRecord {
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < 1e-8 {
		return nil
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil
	}

	point := ray.At(t)
	offset := point.Subtract(center)
	if offset.LengthSquared() > radius*radius {
		return nil
	}

	hitRecord := &HitRecord{
		T:     t,
		Point: point,
	}
	hitRecord.setOutwardNormal(ray, normal)

	right, up := tangentBasis(normal)
	hitRecord.UV = core.NewVec2(0.5+offset.Dot(right)/(2*radius), 0.5+offset.Dot(up)/(2*radius))

	return hitRecord
}
