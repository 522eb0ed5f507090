package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// InShadow casts a shadow feeler from point toward lightPos and reports
// whether an opaque object blocks it before it reaches the light
func InShadow(lightPos, point, normal core.Vec3, opaque []*geometry.VisibleShape) bool {
	toLight := lightPos.Subtract(point)
	lightDistance := toLight.Length()
	if lightDistance == 0 {
		return false
	}

	// Offset along the normal so the feeler does not hit its own surface
	feeler := core.NewRay(point.Add(normal.Multiply(core.Epsilon)), toLight.Normalize())
	hit := geometry.FindClosestIntersection(feeler, opaque)
	if !hit.IsHit() {
		return false
	}

	return hit.Point.Distance(point) < lightDistance
}
