package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Options configures the built-in scenes
type Options struct {
	Width, Height int
	Texture       material.Texture // Surface texture; a checkerboard is used when nil
	CameraAngle   float64          // Orbit angle in degrees for the texture scene camera
	ClearPlaneZ   float64          // Z offset of the transparent plane in the full scene
}

func (o Options) texture() material.Texture {
	if o.Texture != nil {
		return o.Texture
	}
	return material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
}

// cylinderY builds a cylinder around a vertical axis centered at center
func cylinderY(center core.Vec3, radius, height float64, capped bool) *geometry.Cylinder {
	half := core.NewVec3(0, height/2, 0)
	return geometry.NewCylinder(center.Subtract(half), center.Add(half), radius, capped)
}

// NewRaytraceScene creates the basic ray tracing scene: a floor plane, two
// spheres and a pair of disks under a single positional light
func NewRaytraceScene(opts Options) *Scene {
	camera := geometry.NewPerspectiveCamera(
		core.NewVec3(0, 5, 10), // Camera position
		core.NewVec3(0, 5, 0),  // Look straight ahead
		core.NewVec3(0, 1, 0),
		math.Pi/2,
		opts.Width, opts.Height,
	)

	s := New(camera)
	s.Background = material.LightGray

	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0)), material.Tin))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 2), material.Silver))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewSphere(core.NewVec3(-2, 0, -8), 2), material.Bronze))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewSphere(core.NewVec3(4, 0, 3), 1.5), material.RedPlastic))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewDisc(core.NewVec3(15, 0, 0), core.NewVec3(0, 0, 1), 5), material.CyanPlastic))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewDisc(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 1), 2), material.Gold))

	s.AddLight(lights.NewPositionalLight(core.NewVec3(10, 10, 10), lights.PureWhiteLight))

	return s
}

// NewFullScene creates the complete scene: every primitive type, a textured
// cylinder, a transparent red plane and both light types
func NewFullScene(opts Options) *Scene {
	camera := geometry.NewPerspectiveCamera(
		core.NewVec3(6, 6, 6),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		120*math.Pi/180,
		opts.Width, opts.Height,
	)

	s := New(camera)
	s.Background = material.LightGray

	clearRed := material.NewMaterial(material.Red, material.Red, material.Red, 0)
	clearPlane := geometry.NewPlane(core.NewVec3(0, 0, opts.ClearPlaneZ), core.NewVec3(0, 0, -1))

	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0)), material.Tin))
	s.AddTransparentObject(geometry.NewVisibleShape(clearPlane, clearRed), 0.25)

	// Disk facing down, seen from behind by the camera
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewDisc(core.NewVec3(4, 4, 4), core.NewVec3(0, -1, 0), 2), material.Gold))
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewSphere(core.NewVec3(0, 4, 0), 2), material.Gold))
	s.AddOpaqueObject(geometry.NewTexturedShape(cylinderY(core.NewVec3(-20, -2, 10), 4, 10, false), material.Tin, opts.texture()))
	s.AddOpaqueObject(geometry.NewVisibleShape(cylinderY(core.NewVec3(-5, 0, 7), 2, 4, true), material.CyanPlastic))

	cone, err := geometry.NewCone(core.NewVec3(6, -2, 0), 2, core.NewVec3(6, 0, 0), 0, false)
	if err == nil {
		s.AddOpaqueObject(geometry.NewVisibleShape(cone, material.GreenPlastic))
	}

	// Cylinder lying along Z
	zCylinder := geometry.NewCylinder(core.NewVec3(5, 3, -4.5), core.NewVec3(5, 3, -1.5), 2, false)
	s.AddOpaqueObject(geometry.NewVisibleShape(zCylinder, material.RedPlastic))

	s.AddLight(lights.NewPositionalLight(core.NewVec3(10, 10, 10), lights.PureWhiteLight))
	s.AddLight(lights.NewSpotLight(core.NewVec3(3, 5, 3), core.NewVec3(0, -1, 0), 45*math.Pi/180, lights.PureWhiteLight))

	return s
}

// NewTextureScene creates a scene of textured disks and a cylinder, viewed by
// a camera orbiting the origin at opts.CameraAngle
func NewTextureScene(opts Options) *Scene {
	const orbitRadius = 9.0
	rads := opts.CameraAngle * math.Pi / 180
	eye := core.NewVec3(orbitRadius*math.Cos(-rads), orbitRadius, orbitRadius*math.Sin(-rads))

	camera := geometry.NewPerspectiveCamera(eye, core.Vec3{}, core.NewVec3(0, 1, 0), math.Pi/2, opts.Width, opts.Height)

	s := New(camera)
	s.Background = material.White

	texture := opts.texture()
	s.AddOpaqueObject(geometry.NewVisibleShape(geometry.NewDisc(core.NewVec3(-10, 0, -3), core.NewVec3(0, 0, 1), 4), material.NewSolidMaterial(material.Red)))
	s.AddOpaqueObject(geometry.NewTexturedShape(geometry.NewDisc(core.NewVec3(-8, 0, 3), core.NewVec3(0, 0, 1), 3), material.Gold, texture))
	s.AddOpaqueObject(geometry.NewTexturedShape(cylinderY(core.Vec3{}, 3, 4, false), material.RedPlastic, texture))

	s.AddLight(lights.NewPositionalLight(core.NewVec3(-10, 5, 15), lights.PureWhiteLight))

	return s
}
