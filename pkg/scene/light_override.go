package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// LightOverride adjusts one light of a scene. Nil fields leave the light's
// current setting in place.
type LightOverride struct {
	Index       int                       `yaml:"index"`
	On          *bool                     `yaml:"on"`
	TiedToWorld *bool                     `yaml:"tied_to_world"`
	Attenuation *bool                     `yaml:"attenuation"`
	Params      *lights.AttenuationParams `yaml:"params"`
	Position    *[3]float64               `yaml:"position"`
	Direction   *[3]float64               `yaml:"direction"`   // Spotlights only
	FOVDegrees  *float64                  `yaml:"fov_degrees"` // Spotlights only
}

// ApplyLightOverrides applies each override to the light at its index
func (s *Scene) ApplyLightOverrides(overrides []LightOverride) error {
	for _, o := range overrides {
		if o.Index < 0 || o.Index >= len(s.Lights) {
			return fmt.Errorf("light override index %d out of range [0, %d)", o.Index, len(s.Lights))
		}
		if err := o.apply(s.Lights[o.Index]); err != nil {
			return fmt.Errorf("light %d: %w", o.Index, err)
		}
	}
	return nil
}

func (o LightOverride) apply(light lights.Light) error {
	var pl *lights.PositionalLight
	spot, isSpot := light.(*lights.SpotLight)

	switch l := light.(type) {
	case *lights.SpotLight:
		pl = &l.PositionalLight
	case *lights.PositionalLight:
		pl = l
	default:
		return fmt.Errorf("unsupported light type %T", light)
	}

	if o.On != nil {
		pl.On = *o.On
	}
	if o.TiedToWorld != nil {
		pl.TiedToWorld = *o.TiedToWorld
	}
	if o.Attenuation != nil {
		pl.AttenuationOn = *o.Attenuation
	}
	if o.Params != nil {
		pl.Attenuation = *o.Params
	}
	if o.Position != nil {
		pl.Position = core.NewVec3(o.Position[0], o.Position[1], o.Position[2])
	}

	if o.Direction == nil && o.FOVDegrees == nil {
		return nil
	}
	if !isSpot {
		return fmt.Errorf("direction and fov apply only to spotlights")
	}
	if o.Direction != nil {
		d := core.NewVec3(o.Direction[0], o.Direction[1], o.Direction[2])
		if d.IsZero() {
			return fmt.Errorf("spotlight direction must be non-zero")
		}
		spot.SetDirection(d.X, d.Y, d.Z)
	}
	if o.FOVDegrees != nil {
		if *o.FOVDegrees <= 0 || *o.FOVDegrees > 360 {
			return fmt.Errorf("spotlight fov must be in (0, 360] degrees, got %v", *o.FOVDegrees)
		}
		spot.FOV = *o.FOVDegrees * math.Pi / 180
	}
	return nil
}
