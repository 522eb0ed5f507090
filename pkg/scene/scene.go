package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is populated once
// and must not be modified while a render is in progress.
type Scene struct {
	Camera      core.Camera              // Shared with the caller, not owned
	Opaque      []*geometry.VisibleShape // Objects that block light and rays
	Transparent []*geometry.VisibleShape // Alpha-blended objects, never occluders
	Lights      []lights.Light           // Lights in the scene
	Background  core.Vec3                // Suggested default color for rays that hit nothing
}

// New creates an empty scene viewed through camera
func New(camera core.Camera) *Scene {
	return &Scene{
		Camera:     camera,
		Background: material.LightGray,
	}
}

// AddOpaqueObject appends an opaque object
func (s *Scene) AddOpaqueObject(obj *geometry.VisibleShape) {
	s.Opaque = append(s.Opaque, obj)
}

// AddTransparentObject appends a transparent object blended with weight alpha.
// The object is copied so the caller's material is left untouched.
func (s *Scene) AddTransparentObject(obj *geometry.VisibleShape, alpha float64) {
	transparent := *obj
	transparent.Material = obj.Material.WithAlpha(alpha)
	s.Transparent = append(s.Transparent, &transparent)
}

// AddLight appends a light
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Opaque) + len(s.Transparent)
}
