package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NoHit is the ray parameter recorded when a ray meets nothing
const NoHit = math.MaxFloat64

// minHitT rejects intersections at (or numerically at) the ray origin
const minHitT = 1e-9

// HitRecord contains information about a ray-object intersection.
// Point, Normal, Material and UV are only meaningful when IsHit reports true.
type HitRecord struct {
	T         float64           // Parameter t along the ray, NoHit when nothing was hit
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Outward surface normal at intersection
	FrontFace bool              // Whether the ray arrived against the outward normal
	UV        core.Vec2         // Surface parametric coordinates in [0, 1]
	Material  material.Material // Material of the hit object
	Texture   material.Texture  // Optional texture, nil when the surface is untextured
	Shape     Shape             // Shape that produced the hit
}

// Miss returns the record of a ray that hit nothing
func Miss() HitRecord {
	return HitRecord{T: NoHit}
}

// IsHit reports whether the record describes an actual intersection
func (h HitRecord) IsHit() bool {
	return h.T != NoHit
}

// FaceForward flips the normal when it does not oppose the incoming ray
func (h *HitRecord) FaceForward(ray core.Ray) {
	if !h.IsHit() {
		return
	}
	toOrigin := ray.Origin.Subtract(h.Point)
	if h.Normal.Dot(toOrigin) < 0 {
		h.Normal = h.Normal.Negate()
	}
}

// setOutwardNormal records the geometric normal and which side the ray came from
func (h *HitRecord) setOutwardNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.Normal = outwardNormal
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}

// VisibleShape pairs a shape with the surface properties used for shading
type VisibleShape struct {
	Shape    Shape
	Material material.Material
	Texture  material.Texture
}

// NewVisibleShape creates an untextured visible shape
func NewVisibleShape(shape Shape, mat material.Material) *VisibleShape {
	return &VisibleShape{Shape: shape, Material: mat}
}

// NewTexturedShape creates a visible shape whose color is blended with a texture
func NewTexturedShape(shape Shape, mat material.Material, texture material.Texture) *VisibleShape {
	return &VisibleShape{Shape: shape, Material: mat, Texture: texture}
}

// FindClosestIntersection returns the nearest hit of ray among objects,
// or a record with T == NoHit
func FindClosestIntersection(ray core.Ray, objects []*VisibleShape) HitRecord {
	closest := Miss()
	closestSoFar := NoHit
	if ray.Direction.IsZero() {
		return closest
	}

	for _, obj := range objects {
		if obj == nil || obj.Shape == nil {
			continue
		}
		hit, isHit := obj.Shape.Hit(ray, minHitT, closestSoFar)
		if !isHit || hit.T >= closestSoFar {
			continue
		}
		closestSoFar = hit.T
		closest = *hit
		closest.Material = obj.Material
		closest.Texture = obj.Texture
		closest.Shape = obj.Shape
	}

	return closest
}
