package loaders

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestLoadImage writes a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nested", "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // Top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // Top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // Bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // Bottom-right: blue

	if err := SavePNG(testFile, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	texture, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", texture.Width, texture.Height)
	}

	// Row-major order, top row first
	want := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	if diff := cmp.Diff(want, texture.Pixels, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}

	// v = 1 is the top of the image
	if diff := cmp.Diff(want[1], texture.GetPixelUV(0.9, 0.9), cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("GetPixelUV top-right mismatch (-want +got):\n%s", diff)
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nonexistent.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(testFile, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadImage(testFile); !errors.Is(err, image.ErrFormat) {
		t.Errorf("Expected image.ErrFormat, got %v", err)
	}
}
