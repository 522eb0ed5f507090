package renderer

import (
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// DefaultReflectionWeight scales the contribution of each reflection bounce
	DefaultReflectionWeight = 0.3
	// DefaultTextureBlend is the share of the texel in a textured surface color
	DefaultTextureBlend = 0.5
	// DefaultTileSize is the edge length in pixels of a render tile
	DefaultTileSize = 64
)

var (
	ErrInvalidDepth   = errors.New("recursion depth must be non-negative")
	ErrInvalidSamples = errors.New("samples per axis must be at least 1")
	ErrNilFrameBuffer = errors.New("frame buffer is nil")
	ErrNilScene       = errors.New("scene or scene camera is nil")
	ErrNonFiniteColor = errors.New("pixel color is not finite")
)

// RayTracer renders scenes with direct Phong lighting, shadow feelers,
// mirror reflection and alpha-blended transparent surfaces
type RayTracer struct {
	defaultColor     core.Vec3
	logger           core.Logger
	workers          int
	tileSize         int
	reflectionWeight float64
	textureBlend     float64
	debugPixel       *image.Point
}

// Option configures a RayTracer
type Option func(*RayTracer)

// WithLogger sets the logger used for progress and debug output
func WithLogger(logger core.Logger) Option {
	return func(rt *RayTracer) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithWorkers sets how many tiles are rendered concurrently
func WithWorkers(workers int) Option {
	return func(rt *RayTracer) {
		if workers > 0 {
			rt.workers = workers
		}
	}
}

// WithTileSize sets the tile edge length in pixels
func WithTileSize(tileSize int) Option {
	return func(rt *RayTracer) {
		if tileSize > 0 {
			rt.tileSize = tileSize
		}
	}
}

// WithReflectionWeight sets the weight of each reflection bounce
func WithReflectionWeight(weight float64) Option {
	return func(rt *RayTracer) {
		if weight >= 0 {
			rt.reflectionWeight = weight
		}
	}
}

// WithTextureBlend sets the share of the texel in a textured surface color,
// from 0 (texture ignored) to 1 (texture only)
func WithTextureBlend(blend float64) Option {
	return func(rt *RayTracer) {
		if blend >= 0 && blend <= 1 {
			rt.textureBlend = blend
		}
	}
}

// WithDebugPixel logs every sample of pixel (x, y) while rendering
func WithDebugPixel(x, y int) Option {
	return func(rt *RayTracer) {
		rt.debugPixel = &image.Point{X: x, Y: y}
	}
}

// NewRayTracer creates a ray tracer that uses defaultColor for rays that hit
// nothing
func NewRayTracer(defaultColor core.Vec3, opts ...Option) *RayTracer {
	rt := &RayTracer{
		defaultColor:     defaultColor,
		logger:           NewDefaultLogger(),
		workers:          runtime.NumCPU(),
		tileSize:         DefaultTileSize,
		reflectionWeight: DefaultReflectionWeight,
		textureBlend:     DefaultTextureBlend,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// sample is the outcome of tracing one supersample ray
type sample struct {
	color        core.Vec3
	kind         sampleKind
	opaqueT      float64
	transparentT float64
}

// Render computes every pixel of fb from s using samplesPerAxis² samples per
// pixel and depth reflection bounces. The scene must not change during the
// call.
func (rt *RayTracer) Render(fb FrameBuffer, depth int, s *scene.Scene, samplesPerAxis int) (RenderStats, error) {
	if depth < 0 {
		return RenderStats{}, fmt.Errorf("invalid depth %d: %w", depth, ErrInvalidDepth)
	}
	if samplesPerAxis < 1 {
		return RenderStats{}, fmt.Errorf("invalid samples per axis %d: %w", samplesPerAxis, ErrInvalidSamples)
	}
	if fb == nil {
		return RenderStats{}, ErrNilFrameBuffer
	}
	if s == nil || s.Camera == nil {
		return RenderStats{}, ErrNilScene
	}

	startTime := time.Now()
	frame := s.Camera.GetFrame()
	tiles := NewTileGrid(fb.Width(), fb.Height(), rt.tileSize)
	workers := max(1, min(rt.workers, len(tiles)))

	rt.logger.Printf("Rendering %dx%d, depth %d, %d samples/pixel, %d objects, %d lights, %d tiles on %d workers\n",
		fb.Width(), fb.Height(), depth, samplesPerAxis*samplesPerAxis,
		s.GetPrimitiveCount(), len(s.Lights), len(tiles), workers)

	// Each tile owns one slot, so no locking is required
	tileStats := make([]RenderStats, len(tiles))
	err := renderTiles(tiles, workers, func(tile *Tile) error {
		return rt.renderTile(fb, tile, depth, s, frame, samplesPerAxis, &tileStats[tile.ID])
	})

	stats := RenderStats{
		SamplesPerPixel: samplesPerAxis * samplesPerAxis,
		Tiles:           len(tiles),
		Workers:         workers,
	}
	for _, ts := range tileStats {
		stats.merge(ts)
	}
	stats.Duration = time.Since(startTime)

	if err != nil {
		return stats, err
	}
	rt.logger.Printf("Render complete: %v\n", stats)
	return stats, nil
}

// renderTile renders all pixels within a tile's bounds
func (rt *RayTracer) renderTile(fb FrameBuffer, tile *Tile, depth int, s *scene.Scene, frame core.Frame, samplesPerAxis int, stats *RenderStats) error {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := rt.renderPixel(x, y, depth, s, frame, samplesPerAxis, stats)
			if !isFinite(c) {
				return fmt.Errorf("pixel (%d, %d) = %v: %w", x, y, c, ErrNonFiniteColor)
			}
			fb.SetColor(x, y, c)
			stats.TotalPixels++
		}
	}
	return nil
}

// renderPixel averages samplesPerAxis² samples on a regular sub-pixel grid
func (rt *RayTracer) renderPixel(x, y, depth int, s *scene.Scene, frame core.Frame, samplesPerAxis int, stats *RenderStats) core.Vec3 {
	debug := rt.debugPixel != nil && rt.debugPixel.X == x && rt.debugPixel.Y == y
	n := float64(samplesPerAxis)

	var total core.Vec3
	for i := 0; i < samplesPerAxis; i++ {
		for j := 0; j < samplesPerAxis; j++ {
			px := float64(x) + (float64(j)+0.5)/n
			py := float64(y) + (float64(i)+0.5)/n
			smp := rt.shadeSample(s.Camera.GetRay(px, py), s, frame, depth)
			stats.record(smp.kind)
			total = total.Add(smp.color)

			if debug {
				rt.logger.Printf("debug pixel (%d, %d) sample %d: %v, opaque t %s, transparent t %s, color %v\n",
					x, y, i*samplesPerAxis+j, smp.kind, formatT(smp.opaqueT), formatT(smp.transparentT), smp.color)
			}
		}
	}

	return total.Multiply(1.0 / (n * n))
}

// shadeSample composites the opaque and transparent hits of one primary ray
func (rt *RayTracer) shadeSample(ray core.Ray, s *scene.Scene, frame core.Frame, depth int) sample {
	hit := geometry.FindClosestIntersection(ray, s.Opaque)
	transHit := geometry.FindClosestIntersection(ray, s.Transparent)
	hit.FaceForward(ray)
	transHit.FaceForward(ray)

	smp := sample{opaqueT: hit.T, transparentT: transHit.T}
	switch {
	case !hit.IsHit() && !transHit.IsHit():
		smp.kind = sampleBackground
		smp.color = rt.defaultColor

	case !transHit.IsHit():
		smp.kind = sampleOpaque
		smp.color = rt.textured(hit, rt.shadeHit(ray, hit, s, frame, depth))

	case !hit.IsHit():
		// Nothing behind the transparent surface but empty space
		smp.kind = sampleTransparentOnly
		smp.color = DirectLight(transHit, s, frame).Add(rt.defaultColor)

	case hit.T < transHit.T:
		smp.kind = sampleOpaqueInFront
		smp.color = rt.textured(hit, rt.shadeHit(ray, hit, s, frame, depth))

	default:
		smp.kind = sampleBlended
		alpha := transHit.Material.Alpha
		dst := DirectLight(hit, s, frame)
		src := transHit.Material.Ambient
		smp.color = rt.textured(hit, dst.Multiply(1-alpha).Add(src.Multiply(alpha)))
	}

	return smp
}

// TraceRay returns the color seen along ray through opaque objects with up to
// level reflection bounces. Rays that hit nothing are black.
func (rt *RayTracer) TraceRay(ray core.Ray, s *scene.Scene, level int) core.Vec3 {
	hit := geometry.FindClosestIntersection(ray, s.Opaque)
	if !hit.IsHit() {
		return core.Vec3{}
	}
	hit.FaceForward(ray)
	return rt.shadeHit(ray, hit, s, s.Camera.GetFrame(), level)
}

// shadeHit adds weighted reflection bounces to the direct light at hit
func (rt *RayTracer) shadeHit(ray core.Ray, hit geometry.HitRecord, s *scene.Scene, frame core.Frame, level int) core.Vec3 {
	color := DirectLight(hit, s, frame)
	if level <= 0 {
		return color
	}

	reflected := core.NewRay(hit.Point.Add(hit.Normal.Multiply(core.Epsilon)), core.Reflect(ray.Direction, hit.Normal))
	next := geometry.FindClosestIntersection(reflected, s.Opaque)
	if !next.IsHit() {
		return color
	}
	next.FaceForward(reflected)

	bounce := rt.shadeHit(reflected, next, s, frame, level-1)
	return color.Add(bounce.Multiply(rt.reflectionWeight))
}

// DirectLight sums the contribution of every light at hit, testing each one
// for shadows cast by the opaque objects of s
func DirectLight(hit geometry.HitRecord, s *scene.Scene, frame core.Frame) core.Vec3 {
	var color core.Vec3
	for _, light := range s.Lights {
		if light == nil || !light.IsOn() {
			continue
		}
		inShadow := lights.InShadow(light.ActualPosition(frame), hit.Point, hit.Normal, s.Opaque)
		color = color.Add(light.Illuminate(hit.Point, hit.Normal, hit.Material, frame, inShadow))
	}
	return color
}

// textured blends the hit's texture into c, if the hit carries one
func (rt *RayTracer) textured(hit geometry.HitRecord, c core.Vec3) core.Vec3 {
	if hit.Texture == nil {
		return c
	}
	texel := hit.Texture.GetPixelUV(hit.UV.X, hit.UV.Y)
	return c.Lerp(texel, rt.textureBlend)
}

func isFinite(c core.Vec3) bool {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func formatT(t float64) string {
	if t == geometry.NoHit {
		return "miss"
	}
	return fmt.Sprintf("%.4f", t)
}
