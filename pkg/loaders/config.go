package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"gopkg.in/yaml.v3"
)

// RenderConfig describes one render of a built-in scene
type RenderConfig struct {
	Scene       string                `yaml:"scene"`
	Width       int                   `yaml:"width"`
	Height      int                   `yaml:"height"`
	Depth       int                   `yaml:"depth"`        // Reflection bounces
	Samples     int                   `yaml:"samples"`      // Samples per axis, N² per pixel
	Workers     int                   `yaml:"workers"`      // Concurrent tiles, 0 uses every CPU
	Out         string                `yaml:"out"`          // Output PNG path, timestamped under output/ when empty
	Texture     string                `yaml:"texture"`      // Image replacing the default checkerboard
	CameraAngle float64               `yaml:"camera_angle"` // Orbit angle in degrees (texture scene)
	DebugPixel  *[2]int               `yaml:"debug_pixel"`
	Background  *[3]float64           `yaml:"background"` // Replaces the scene background
	Lights      []scene.LightOverride `yaml:"lights"`
}

// DefaultRenderConfig returns the configuration used when no file is given
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Scene:   "full",
		Width:   400,
		Height:  300,
		Depth:   2,
		Samples: 2,
	}
}

// LoadRenderConfig reads a YAML render configuration. Fields missing from the
// file keep their default values; unknown fields are rejected.
func LoadRenderConfig(filename string) (RenderConfig, error) {
	cfg := DefaultRenderConfig()

	file, err := os.Open(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting
func (c RenderConfig) Validate() error {
	if _, ok := sceneNames()[c.Scene]; !ok {
		return fmt.Errorf("scene %q: %w (known: %v)", c.Scene, scene.ErrUnknownScene, scene.Names())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must be non-negative, got %d", c.Depth)
	}
	if c.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Samples)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if p := c.DebugPixel; p != nil && (p[0] < 0 || p[1] < 0 || p[0] >= c.Width || p[1] >= c.Height) {
		return fmt.Errorf("debug pixel (%d, %d) outside %dx%d image", p[0], p[1], c.Width, c.Height)
	}
	return nil
}

// SceneOptions returns the options for building the configured scene,
// loading the texture image if one is set
func (c RenderConfig) SceneOptions() (scene.Options, error) {
	opts := scene.Options{
		Width:       c.Width,
		Height:      c.Height,
		CameraAngle: c.CameraAngle,
	}
	if c.Texture != "" {
		texture, err := LoadImage(c.Texture)
		if err != nil {
			return opts, err
		}
		opts.Texture = texture
	}
	return opts, nil
}

func sceneNames() map[string]struct{} {
	names := make(map[string]struct{})
	for _, name := range scene.Names() {
		names[name] = struct{}{}
	}
	return names
}
