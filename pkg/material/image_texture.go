package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture provides a color for surface parametric coordinates u,v in [0, 1]
type Texture interface {
	GetPixelUV(u, v float64) core.Vec3
}

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// GetPixelUV samples the texture using nearest-neighbor filtering.
// Coordinates outside [0, 1] wrap around.
func (t *ImageTexture) GetPixelUV(u, v float64) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return core.Vec3{}
	}

	u = wrapUnit(u)
	v = wrapUnit(v)

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}

// wrapUnit maps any coordinate to [0, 1], keeping exactly 1 at the top edge
func wrapUnit(c float64) float64 {
	if c >= 0 && c <= 1 {
		return c
	}
	c -= float64(int(c))
	if c < 0 {
		c += 1.0
	}
	return c
}
