package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ptr[T any](v T) *T {
	return &v
}

func overrideScene() *Scene {
	s := New(nil)
	s.AddLight(lights.NewPositionalLight(core.NewVec3(10, 10, 10), lights.PureWhiteLight))
	s.AddLight(lights.NewSpotLight(core.NewVec3(3, 5, 3), core.NewVec3(0, -1, 0), math.Pi/4, lights.PureWhiteLight))
	return s
}

func TestApplyLightOverrides(t *testing.T) {
	s := overrideScene()

	err := s.ApplyLightOverrides([]LightOverride{
		{
			Index:       0,
			On:          ptr(false),
			TiedToWorld: ptr(false),
			Attenuation: ptr(true),
			Params:      &lights.AttenuationParams{Constant: 1, Quadratic: 0.5},
			Position:    &[3]float64{1, 2, 3},
		},
		{
			Index:      1,
			Direction:  &[3]float64{0, 0, -4},
			FOVDegrees: ptr(90.0),
		},
	})
	if err != nil {
		t.Fatalf("ApplyLightOverrides failed: %v", err)
	}

	want := &lights.PositionalLight{
		On:            false,
		Position:      core.NewVec3(1, 2, 3),
		TiedToWorld:   false,
		AttenuationOn: true,
		Attenuation:   lights.AttenuationParams{Constant: 1, Quadratic: 0.5},
		Color:         lights.PureWhiteLight,
	}
	if diff := cmp.Diff(want, s.Lights[0]); diff != "" {
		t.Errorf("Positional light mismatch (-want +got):\n%s", diff)
	}

	spot := s.Lights[1].(*lights.SpotLight)
	if diff := cmp.Diff(core.NewVec3(0, 0, -1), spot.Direction, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Spot direction mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(spot.FOV-math.Pi/2) > 1e-12 {
		t.Errorf("Expected fov π/2, got %v", spot.FOV)
	}
	if !spot.On {
		t.Error("Untouched fields should keep their values")
	}
}

func TestApplyLightOverrides_Errors(t *testing.T) {
	tests := []struct {
		name     string
		override LightOverride
		wantErr  string
	}{
		{"index out of range", LightOverride{Index: 2}, "out of range"},
		{"negative index", LightOverride{Index: -1}, "out of range"},
		{"direction on positional light", LightOverride{Index: 0, Direction: &[3]float64{0, -1, 0}}, "only to spotlights"},
		{"zero direction", LightOverride{Index: 1, Direction: &[3]float64{0, 0, 0}}, "non-zero"},
		{"bad fov", LightOverride{Index: 1, FOVDegrees: ptr(0.0)}, "fov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := overrideScene().ApplyLightOverrides([]LightOverride{tt.override})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
