package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PositionalLight is a point light radiating equally in all directions
type PositionalLight struct {
	On            bool
	Position      core.Vec3 // World coordinates, or camera coordinates when TiedToWorld is false
	TiedToWorld   bool
	AttenuationOn bool
	Attenuation   AttenuationParams
	Color         LightColor
}

// NewPositionalLight creates a light that is on, fixed in world coordinates
// and unattenuated
func NewPositionalLight(position core.Vec3, color LightColor) *PositionalLight {
	return &PositionalLight{
		On:          true,
		Position:    position,
		TiedToWorld: true,
		Attenuation: DefaultAttenuation,
		Color:       color,
	}
}

// IsOn reports whether the light contributes anything
func (pl *PositionalLight) IsOn() bool {
	return pl.On
}

// ActualPosition returns the light position in world coordinates
func (pl *PositionalLight) ActualPosition(frame core.Frame) core.Vec3 {
	if pl.TiedToWorld {
		return pl.Position
	}
	return frame.ToWorldCoords(pl.Position)
}

// Illuminate implements the Light interface
func (pl *PositionalLight) Illuminate(point, normal core.Vec3, mat material.Material, frame core.Frame, inShadow bool) core.Vec3 {
	return pl.illuminateFrom(pl.ActualPosition(frame), point, normal, mat, frame, inShadow)
}

// illuminateFrom shades point using an already resolved world position
func (pl *PositionalLight) illuminateFrom(lightPos, point, normal core.Vec3, mat material.Material, frame core.Frame, inShadow bool) core.Vec3 {
	if !pl.On {
		return core.Vec3{}
	}
	if inShadow {
		return AmbientColor(mat.Ambient, pl.Color.Ambient)
	}

	v := frame.Origin.Subtract(point).Normalize()
	return TotalColor(mat, pl.Color, v, normal, lightPos, point, pl.AttenuationOn, pl.Attenuation)
}

func (pl *PositionalLight) String() string {
	return fmt.Sprintf("positional %s at %v (%s, attenuation %s)",
		onOff(pl.On), pl.Position, coordSystem(pl.TiedToWorld), pl.attenuationString())
}

func (pl *PositionalLight) attenuationString() string {
	if !pl.AttenuationOn {
		return "off"
	}
	a := pl.Attenuation
	return fmt.Sprintf("%.3g/%.3g/%.3g", a.Constant, a.Linear, a.Quadratic)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func coordSystem(tiedToWorld bool) string {
	if tiedToWorld {
		return "world"
	}
	return "camera"
}
