// Package lighting provides the Phong light and material types consumed
// by the lighting shader.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaxPointLights is the point light array size compiled into the shader.
const MaxPointLights = 4

// Material holds the Phong surface response colors and specular
// exponent.
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// DirLight is a directional light: parallel rays, no attenuation.
type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// PointLight is a positional light with quadratic distance attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// SpotLight is a cone light carried by the camera. CutOff and
// OuterCutOff store cosines of the inner and outer cone angles; the
// fragment shader blends between them for a soft edge.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32
}
