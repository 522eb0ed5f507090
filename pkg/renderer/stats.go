package renderer

import (
	"fmt"
	"time"
)

// sampleKind identifies which compositing branch produced a sample
type sampleKind int

const (
	sampleBackground      sampleKind = iota // No opaque or transparent hit
	sampleOpaque                            // Opaque hit, no transparent hit
	sampleOpaqueInFront                     // Opaque hit nearer than a transparent hit
	sampleBlended                           // Transparent hit nearer than an opaque hit
	sampleTransparentOnly                   // Transparent hit, no opaque hit
)

func (k sampleKind) String() string {
	switch k {
	case sampleBackground:
		return "background"
	case sampleOpaque:
		return "opaque"
	case sampleOpaqueInFront:
		return "opaque-in-front"
	case sampleBlended:
		return "blended"
	case sampleTransparentOnly:
		return "transparent-only"
	}
	return fmt.Sprintf("sampleKind(%d)", int(k))
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int // Total number of pixels rendered
	TotalSamples    int // Total number of samples taken
	SamplesPerPixel int // Samples per pixel (samples per axis squared)
	Tiles           int // Number of tiles the image was split into
	Workers         int // Number of tiles rendered concurrently

	// Samples per compositing branch
	BackgroundSamples      int
	OpaqueSamples          int
	OpaqueInFrontSamples   int
	BlendedSamples         int
	TransparentOnlySamples int

	Duration time.Duration // Wall time of the render call
}

// record counts one sample of the given kind
func (s *RenderStats) record(kind sampleKind) {
	s.TotalSamples++
	switch kind {
	case sampleBackground:
		s.BackgroundSamples++
	case sampleOpaque:
		s.OpaqueSamples++
	case sampleOpaqueInFront:
		s.OpaqueInFrontSamples++
	case sampleBlended:
		s.BlendedSamples++
	case sampleTransparentOnly:
		s.TransparentOnlySamples++
	}
}

// merge adds the pixel and sample counts of a tile into s
func (s *RenderStats) merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
	s.BackgroundSamples += tile.BackgroundSamples
	s.OpaqueSamples += tile.OpaqueSamples
	s.OpaqueInFrontSamples += tile.OpaqueInFrontSamples
	s.BlendedSamples += tile.BlendedSamples
	s.TransparentOnlySamples += tile.TransparentOnlySamples
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples (%d/pixel) in %d tiles on %d workers, took %v "+
		"[background=%d opaque=%d opaque-in-front=%d blended=%d transparent-only=%d]",
		s.TotalPixels, s.TotalSamples, s.SamplesPerPixel, s.Tiles, s.Workers, s.Duration,
		s.BackgroundSamples, s.OpaqueSamples, s.OpaqueInFrontSamples, s.BlendedSamples, s.TransparentOnlySamples)
}
