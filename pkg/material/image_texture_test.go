package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TestImageTextureGetPixelUV tests basic texture sampling
func TestImageTextureGetPixelUV(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
		{"u=1 clamps to last column", 1.0, 0.9, black},
		{"v=1 is the top row", 0.1, 1.0, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.GetPixelUV(tt.u, tt.v)
			if !result.Equals(tt.expected) {
				t.Errorf("UV(%.1f,%.1f): expected %v, got %v", tt.u, tt.v, tt.expected, result)
			}
		})
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
	}
	texture := NewImageTexture(2, 1, pixels)

	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)

	testCases := []struct {
		u, v     float64
		expected core.Vec3
	}{
		{0.25, 0.5, red},
		{1.25, 0.5, red},
		{-0.25, 0.5, green},
		{2.75, 3.7, green},
	}

	for _, tc := range testCases {
		result := texture.GetPixelUV(tc.u, tc.v)
		if !result.Equals(tc.expected) {
			t.Errorf("UV(%.2f,%.2f): expected %v, got %v", tc.u, tc.v, tc.expected, result)
		}
	}
}

func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.GetPixelUV(0.5, 0.5); !got.IsZero() {
		t.Errorf("Expected black from empty texture, got %v", got)
	}
}

func TestCheckerboardTexture(t *testing.T) {
	texture := NewCheckerboardTexture(4, 4, 2, White, Black)

	if got := texture.GetPixelUV(0.1, 0.9); !got.Equals(White) {
		t.Errorf("Top-left check should be white, got %v", got)
	}
	if got := texture.GetPixelUV(0.9, 0.9); !got.Equals(Black) {
		t.Errorf("Top-right check should be black, got %v", got)
	}
	if got := texture.GetPixelUV(0.9, 0.1); !got.Equals(White) {
		t.Errorf("Bottom-right check should be white, got %v", got)
	}
}

func TestMaterialWithAlpha(t *testing.T) {
	base := NewSolidMaterial(Red)
	if base.Alpha != 1.0 {
		t.Fatalf("New materials should be opaque, got alpha %f", base.Alpha)
	}

	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		if got := base.WithAlpha(tt.in).Alpha; got != tt.want {
			t.Errorf("WithAlpha(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if base.Alpha != 1.0 {
		t.Error("WithAlpha must not modify the receiver")
	}
}
