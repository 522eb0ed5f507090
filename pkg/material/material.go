package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to the ambient, diffuse and
// specular components of a light
type Material struct {
	Ambient   core.Vec3 // Reflectance under ambient fill light
	Diffuse   core.Vec3 // Lambertian reflectance
	Specular  core.Vec3 // Phong highlight color
	Shininess float64   // Phong exponent
	Alpha     float64   // Opacity, 1.0 is fully opaque
}

// NewMaterial creates an opaque material
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Alpha:     1.0,
	}
}

// NewSolidMaterial creates a material that uses one color for every component
func NewSolidMaterial(color core.Vec3) Material {
	return NewMaterial(color, color, color, 128)
}

// WithAlpha returns a copy of the material with the given opacity, clamped to [0, 1]
func (m Material) WithAlpha(alpha float64) Material {
	m.Alpha = max(0, min(1, alpha))
	return m
}

// String formats the material for debug logging
func (m Material) String() string {
	return fmt.Sprintf("amb=%v dif=%v spec=%v shin=%.4g alpha=%.3g",
		m.Ambient, m.Diffuse, m.Specular, m.Shininess, m.Alpha)
}

// Basic colors
var (
	Black     = core.NewVec3(0, 0, 0)
	White     = core.NewVec3(1, 1, 1)
	Gray      = core.NewVec3(0.5, 0.5, 0.5)
	LightGray = core.NewVec3(0.75, 0.75, 0.75)
	DarkGray  = core.NewVec3(0.25, 0.25, 0.25)
	Red       = core.NewVec3(1, 0, 0)
	Green     = core.NewVec3(0, 1, 0)
	Blue      = core.NewVec3(0, 0, 1)
	Yellow    = core.NewVec3(1, 1, 0)
	Cyan      = core.NewVec3(0, 1, 1)
	Magenta   = core.NewVec3(1, 0, 1)
)

// Classic OpenGL material table (shininess already scaled by 128)
var (
	Brass = NewMaterial(
		core.NewVec3(0.329412, 0.223529, 0.027451),
		core.NewVec3(0.780392, 0.568627, 0.113725),
		core.NewVec3(0.992157, 0.941176, 0.807843),
		27.8974)
	Bronze = NewMaterial(
		core.NewVec3(0.2125, 0.1275, 0.054),
		core.NewVec3(0.714, 0.4284, 0.18144),
		core.NewVec3(0.393548, 0.271906, 0.166721),
		25.6)
	Chrome = NewMaterial(
		core.NewVec3(0.25, 0.25, 0.25),
		core.NewVec3(0.4, 0.4, 0.4),
		core.NewVec3(0.774597, 0.774597, 0.774597),
		76.8)
	Copper = NewMaterial(
		core.NewVec3(0.19125, 0.0735, 0.0225),
		core.NewVec3(0.7038, 0.27048, 0.0828),
		core.NewVec3(0.256777, 0.137622, 0.086014),
		12.8)
	Gold = NewMaterial(
		core.NewVec3(0.24725, 0.1995, 0.0745),
		core.NewVec3(0.75164, 0.60648, 0.22648),
		core.NewVec3(0.628281, 0.555802, 0.366065),
		51.2)
	Silver = NewMaterial(
		core.NewVec3(0.19225, 0.19225, 0.19225),
		core.NewVec3(0.50754, 0.50754, 0.50754),
		core.NewVec3(0.508273, 0.508273, 0.508273),
		51.2)
	Tin = NewMaterial(
		core.NewVec3(0.105882, 0.058824, 0.113725),
		core.NewVec3(0.427451, 0.470588, 0.541176),
		core.NewVec3(0.333333, 0.333333, 0.521569),
		9.84615)
	CyanPlastic = NewMaterial(
		core.NewVec3(0.0, 0.1, 0.06),
		core.NewVec3(0.0, 0.50980392, 0.50980392),
		core.NewVec3(0.50196078, 0.50196078, 0.50196078),
		32)
	GreenPlastic = NewMaterial(
		core.NewVec3(0.0, 0.0, 0.0),
		core.NewVec3(0.1, 0.35, 0.1),
		core.NewVec3(0.45, 0.55, 0.45),
		32)
	RedPlastic = NewMaterial(
		core.NewVec3(0.0, 0.0, 0.0),
		core.NewVec3(0.5, 0.0, 0.0),
		core.NewVec3(0.7, 0.6, 0.6),
		32)
	YellowPlastic = NewMaterial(
		core.NewVec3(0.0, 0.0, 0.0),
		core.NewVec3(0.5, 0.5, 0.0),
		core.NewVec3(0.6, 0.6, 0.5),
		32)
)
