package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone represents a finite cone or frustum shape
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for pointed cone, >0 for frustum
	Capped     bool    // Whether to include circular end cap(s)

	// Cached derived values
	axis     core.Vec3 // Unit vector from base to top
	height   float64   // Distance between base and top
	tanAngle float64   // tan(cone angle) = (BaseRadius - TopRadius) / height
	apex     core.Vec3 // Apex of the infinite cone extended from frustum
	right    core.Vec3
	up       core.Vec3
}

// NewCone creates a new cone or frustum
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius for a cone (got base=%f, top=%f). Use Cylinder for equal radii", baseRadius, topRadius)
	}

	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive (base and top centers cannot be the same)")
	}

	axis := axisVector.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	// For a pointed cone the top center is the apex. For a frustum the apex
	// lies beyond the top, where the radius would shrink to 0.
	apex := topCenter
	if topRadius > 0 {
		dFromTop := topRadius * height / (baseRadius - topRadius)
		apex = topCenter.Add(axis.Multiply(dFromTop))
	}
	right, up := tangentBasis(axis)

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		Capped:     capped,
		axis:       axis,
		height:     height,
		tanAngle:   tanAngle,
		apex:       apex,
		right:      right,
		up:         up,
	}, nil
}

// Hit tests if a ray intersects with the cone (body and optionally caps)
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	closest, closestT := c.hitBody(ray, tMin, tMax), tMax
	if closest != nil {
		closestT = closest.T
	}

	if c.Capped {
		if hit := hitCap(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius, tMin, closestT); hit != nil {
			closest, closestT = hit, hit.T
		}
		// Only frustums have a top cap
		if c.TopRadius > 0 {
			if hit := hitCap(ray, c.TopCenter, c.axis, c.TopRadius, tMin, closestT); hit != nil {
				closest = hit
			}
		}
	}

	return closest, closest != nil
}

// hitBody checks for intersection with the cone body (curved surface)
func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) *HitRecord {
	CO := ray.Origin.Subtract(c.apex)

	DdotV := ray.Direction.Dot(c.axis)
	COdotV := CO.Dot(c.axis)

	// k = tan²(α)
	k := c.tanAngle * c.tanAngle

	// a = D·D - (1 + k)·DdotV²
	// b = 2[D·CO - (1 + k)·DdotV·COdotV]
	// cc = CO·CO - (1 + k)·COdotV²
	a := ray.Direction.LengthSquared() - (1+k)*DdotV*DdotV
	b := 2.0 * (ray.Direction.Dot(CO) - (1+k)*DdotV*COdotV)
	cc := CO.LengthSquared() - (1+k)*COdotV*COdotV

	if math.Abs(a) < 1e-8 {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	t0, t1 := (-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	for _, t := range [2]float64{t0, t1} {
		if !c.validateIntersection(ray, t, tMin, tMax) {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		radial := point.Subtract(c.BaseCenter.Add(c.axis.Multiply(h)))

		// The side slopes back toward the axis by tanAngle per unit of radius
		outwardNormal := radial.Normalize().Add(c.axis.Multiply(c.tanAngle)).Normalize()

		hitRecord := &HitRecord{
			T:     t,
			Point: point,
		}
		hitRecord.setOutwardNormal(ray, outwardNormal)

		angle := math.Atan2(radial.Dot(c.up), radial.Dot(c.right))
		hitRecord.UV = core.NewVec2(0.5+angle/(2*math.Pi), max(0, min(1, h/c.height)))
		return hitRecord
	}

	return nil
}

// validateIntersection checks if an intersection at parameter t is valid
func (c *Cone) validateIntersection(ray core.Ray, t, tMin, tMax float64) bool {
	const epsilon = 1e-8

	if t < tMin || t > tMax {
		return false
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	if h < -epsilon || h > c.height+epsilon {
		return false
	}

	// Reject the mirrored nappe on the far side of the apex
	return point.Subtract(c.apex).Dot(c.axis) <= epsilon
}
