package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SpotLight is a positional light restricted to a cone
type SpotLight struct {
	PositionalLight
	Direction core.Vec3 // Unit cone axis, in camera coordinates when TiedToWorld is false
	FOV       float64   // Full cone angle in radians
}

// NewSpotLight creates a spotlight pointing along direction
func NewSpotLight(position, direction core.Vec3, fov float64, color LightColor) *SpotLight {
	return &SpotLight{
		PositionalLight: *NewPositionalLight(position, color),
		Direction:       direction.Normalize(),
		FOV:             fov,
	}
}

// SetDirection points the cone along (dx, dy, dz)
func (sl *SpotLight) SetDirection(dx, dy, dz float64) {
	sl.Direction = core.NewVec3(dx, dy, dz).Normalize()
}

// ActualVector returns the cone axis in world coordinates
func (sl *SpotLight) ActualVector(frame core.Frame) core.Vec3 {
	if sl.TiedToWorld {
		return sl.Direction
	}
	return frame.ToWorldVector(sl.Direction)
}

// Illuminate implements the Light interface. Points outside the cone receive
// nothing, not even ambient light.
func (sl *SpotLight) Illuminate(point, normal core.Vec3, mat material.Material, frame core.Frame, inShadow bool) core.Vec3 {
	lightPos := sl.ActualPosition(frame)
	if !InCone(lightPos, sl.ActualVector(frame), sl.FOV, point) {
		return core.Vec3{}
	}
	return sl.illuminateFrom(lightPos, point, normal, mat, frame, inShadow)
}

func (sl *SpotLight) String() string {
	return fmt.Sprintf("spot %s at %v dir %v fov %.1f° (%s, attenuation %s)",
		onOff(sl.On), sl.Position, sl.Direction, sl.FOV*180/math.Pi,
		coordSystem(sl.TiedToWorld), sl.attenuationString())
}

// InCone reports whether point lies strictly inside the cone with apex
// spotPos, axis spotDir and full angle fov
func InCone(spotPos, spotDir core.Vec3, fov float64, point core.Vec3) bool {
	toPoint := point.Subtract(spotPos)
	axis := spotDir.Normalize()
	if toPoint.IsZero() || axis.IsZero() {
		return false
	}

	cosAngle := toPoint.Normalize().Dot(axis)
	return cosAngle > math.Cos(fov/2)
}
