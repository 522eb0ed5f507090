package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameBuffer receives the final color of each pixel. Pixel (0, 0) is the
// bottom-left corner. SetColor is called concurrently for distinct pixels.
type FrameBuffer interface {
	Width() int
	Height() int
	SetColor(x, y int, c core.Vec3)
}

// ImageBuffer is an in-memory FrameBuffer of linear colors
type ImageBuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewImageBuffer creates a black buffer of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	width, height = max(0, width), max(0, height)
	return &ImageBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (b *ImageBuffer) Width() int  { return b.width }
func (b *ImageBuffer) Height() int { return b.height }

// SetColor stores the color of pixel (x, y); out of range writes are ignored
func (b *ImageBuffer) SetColor(x, y int, c core.Vec3) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = c
}

// ColorAt returns the stored color of pixel (x, y), black when out of range
func (b *ImageBuffer) ColorAt(x, y int) core.Vec3 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return core.Vec3{}
	}
	return b.pixels[y*b.width+x]
}

// Image converts the buffer to an RGBA image. Rows are flipped so the bottom
// row of the buffer becomes the last row of the image.
func (b *ImageBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, b.height-1-y, vec3ToColor(b.ColorAt(x, y)))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
