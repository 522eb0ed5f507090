package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LightColor holds the color a light contributes to each term of the
// shading model
type LightColor struct {
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// NewLightColor creates a light color that uses one color for every term
func NewLightColor(c core.Vec3) LightColor {
	return LightColor{Ambient: c, Diffuse: c, Specular: c}
}

// PureWhiteLight is a white light with no separate ambient tint
var PureWhiteLight = NewLightColor(core.NewVec3(1, 1, 1))

// AttenuationParams defines inverse-distance falloff:
// factor(d) = 1 / (Constant + Linear·d + Quadratic·d²)
type AttenuationParams struct {
	Constant  float64 `yaml:"constant"`
	Linear    float64 `yaml:"linear"`
	Quadratic float64 `yaml:"quadratic"`
}

// DefaultAttenuation is linear falloff with distance
var DefaultAttenuation = AttenuationParams{Constant: 0, Linear: 1, Quadratic: 0}

// Factor returns the multiplier applied to the diffuse and specular terms at
// distance d. A non-positive denominator is treated as no falloff.
func (a AttenuationParams) Factor(d float64) float64 {
	denominator := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denominator <= 0 {
		return 1.0
	}
	return 1.0 / denominator
}

// Light is a light source evaluated by the local illumination model
type Light interface {
	// Illuminate returns the color this light contributes at point. The
	// frame is the camera frame used to resolve camera-relative lights and
	// the viewing direction.
	Illuminate(point, normal core.Vec3, mat material.Material, frame core.Frame, inShadow bool) core.Vec3

	// ActualPosition returns the light position in world coordinates
	ActualPosition(frame core.Frame) core.Vec3

	IsOn() bool
}
