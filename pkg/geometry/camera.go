package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PerspectiveCamera generates rays through a pinhole at the eye position
type PerspectiveCamera struct {
	frame         core.Frame
	fovY          float64 // Vertical field of view in radians
	width, height int
	distToPlane   float64 // Distance from eye to the projection plane
	aspectRatio   float64
}

// NewPerspectiveCamera creates a camera at eye looking toward lookAt with the
// given vertical field of view (radians) and image size in pixels
func NewPerspectiveCamera(eye, lookAt, up core.Vec3, fovY float64, width, height int) *PerspectiveCamera {
	aspectRatio := 1.0
	if width > 0 && height > 0 {
		aspectRatio = float64(width) / float64(height)
	}

	return &PerspectiveCamera{
		frame:       core.NewLookAtFrame(eye, lookAt, up),
		fovY:        fovY,
		width:       width,
		height:      height,
		distToPlane: 1.0 / math.Tan(fovY/2),
		aspectRatio: aspectRatio,
	}
}

// GetRay generates a ray through continuous pixel coordinates (x, y) where
// 0 <= x <= width and 0 <= y <= height, with y increasing upward. The
// returned direction is normalized.
func (c *PerspectiveCamera) GetRay(x, y float64) core.Ray {
	// Map pixel coordinates onto the projection plane: [-aspect, aspect] x [-1, 1]
	u := (2*x/float64(c.width) - 1) * c.aspectRatio
	v := 2*y/float64(c.height) - 1

	local := core.NewVec3(u, v, -c.distToPlane)
	direction := c.frame.ToWorldVector(local).Normalize()

	return core.NewRay(c.frame.Origin, direction)
}

// GetFrame returns the eye frame
func (c *PerspectiveCamera) GetFrame() core.Frame {
	return c.frame
}

// Width returns the image width the camera was built for
func (c *PerspectiveCamera) Width() int {
	return c.width
}

// Height returns the image height the camera was built for
func (c *PerspectiveCamera) Height() int {
	return c.height
}
