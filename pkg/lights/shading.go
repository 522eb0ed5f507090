package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// AmbientColor computes the ambient term of a single light
func AmbientColor(matAmbient, lightAmbient core.Vec3) core.Vec3 {
	return matAmbient.MultiplyVec(lightAmbient).Clamp(0, 1)
}

// DiffuseColor computes the diffuse term of a single light. l and n must be
// unit vectors. The cosine is not clamped first; clamping the product keeps a
// light behind the surface at black.
func DiffuseColor(matDiffuse, lightDiffuse, l, n core.Vec3) core.Vec3 {
	return matDiffuse.MultiplyVec(lightDiffuse).Multiply(l.Dot(n)).Clamp(0, 1)
}

// SpecularColor computes the Phong highlight of a single light, where r is the
// reflected light vector and v points toward the viewer.
func SpecularColor(matSpecular, lightSpecular core.Vec3, shininess float64, r, v core.Vec3) core.Vec3 {
	rv := max(0, min(1, r.Dot(v)))
	return matSpecular.MultiplyVec(lightSpecular).Multiply(math.Pow(rv, shininess)).Clamp(0, 1)
}

// TotalColor computes the color a single unshadowed light produces at point.
// v is the unit vector toward the viewer and n the unit surface normal.
func TotalColor(mat material.Material, lightColor LightColor, v, n, lightPos, point core.Vec3,
	attenuationOn bool, params AttenuationParams) core.Vec3 {

	ambient := AmbientColor(mat.Ambient, lightColor.Ambient)

	toLight := lightPos.Subtract(point)
	if toLight.IsZero() {
		// No light direction exists at the light itself
		return ambient
	}

	l := toLight.Normalize()
	r := n.Multiply(2 * l.Dot(n)).Subtract(l)

	direct := DiffuseColor(mat.Diffuse, lightColor.Diffuse, l, n).
		Add(SpecularColor(mat.Specular, lightColor.Specular, mat.Shininess, r, v))
	if attenuationOn {
		direct = direct.Multiply(params.Factor(toLight.Length()))
	}

	return ambient.Add(direct).Clamp(0, 1)
}
