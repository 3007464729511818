package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rig is the complete light set for a frame: one directional light, a
// fixed bank of point lights and a camera-mounted spotlight.
type Rig struct {
	Dir    DirLight
	Points [MaxPointLights]PointLight
	Spot   SpotLight
}

// DefaultRig returns the scene's light setup: a dim directional fill,
// four white point lights placed around the origin, and a flashlight
// style spotlight that follows the camera.
func DefaultRig() *Rig {
	pointPositions := [MaxPointLights]mgl32.Vec3{
		{0.7, 0.2, 2.0},
		{2.3, -3.3, -4.0},
		{-4.0, 2.0, -12.0},
		{0.0, 0.0, -3.0},
	}

	r := &Rig{
		Dir: DirLight{
			Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		},
		Spot: SpotLight{
			Ambient:     mgl32.Vec3{0.0, 0.0, 0.0},
			Diffuse:     mgl32.Vec3{1.0, 1.0, 1.0},
			Specular:    mgl32.Vec3{1.0, 1.0, 1.0},
			Constant:    1.0,
			Linear:      0.09,
			Quadratic:   0.032,
			CutOff:      cosDeg(12.5),
			OuterCutOff: cosDeg(15.0),
		},
	}

	for i, pos := range pointPositions {
		r.Points[i] = PointLight{
			Position:  pos,
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		}
	}

	return r
}

// DefaultMaterial returns the blue-tinted surface the morphing shape is
// shaded with.
func DefaultMaterial() Material {
	return Material{
		Ambient:   mgl32.Vec3{0.05, 0.1, 0.3},
		Diffuse:   mgl32.Vec3{0.2, 0.5, 0.8},
		Specular:  mgl32.Vec3{0.7, 0.9, 1.0},
		Shininess: 32.0,
	}
}

// FollowCamera re-anchors the spotlight to the camera pose for this
// frame.
func (r *Rig) FollowCamera(position, front mgl32.Vec3) {
	r.Spot.Position = position
	r.Spot.Direction = front
}

// PointPositions returns point light positions as a flat float32 slice
// for glUniform3fv upload: [x0, y0, z0, x1, y1, z1, ...].
func (r *Rig) PointPositions() []float32 {
	return r.flatVec3(func(p *PointLight) mgl32.Vec3 { return p.Position })
}

// PointAmbients returns point light ambient colors as a flat slice.
func (r *Rig) PointAmbients() []float32 {
	return r.flatVec3(func(p *PointLight) mgl32.Vec3 { return p.Ambient })
}

// PointDiffuses returns point light diffuse colors as a flat slice.
func (r *Rig) PointDiffuses() []float32 {
	return r.flatVec3(func(p *PointLight) mgl32.Vec3 { return p.Diffuse })
}

// PointSpeculars returns point light specular colors as a flat slice.
func (r *Rig) PointSpeculars() []float32 {
	return r.flatVec3(func(p *PointLight) mgl32.Vec3 { return p.Specular })
}

// PointAttenuations returns the constant, linear and quadratic falloff
// terms as three parallel slices for glUniform1fv upload.
func (r *Rig) PointAttenuations() (constant, linear, quadratic []float32) {
	constant = make([]float32, MaxPointLights)
	linear = make([]float32, MaxPointLights)
	quadratic = make([]float32, MaxPointLights)
	for i := range r.Points {
		constant[i] = r.Points[i].Constant
		linear[i] = r.Points[i].Linear
		quadratic[i] = r.Points[i].Quadratic
	}
	return constant, linear, quadratic
}

func (r *Rig) flatVec3(field func(*PointLight) mgl32.Vec3) []float32 {
	result := make([]float32, MaxPointLights*3)
	for i := range r.Points {
		v := field(&r.Points[i])
		result[i*3+0] = v.X()
		result[i*3+1] = v.Y()
		result[i*3+2] = v.Z()
	}
	return result
}

// cosDeg is the cosine of an angle given in degrees.
func cosDeg(deg float32) float32 {
	return math32.Cos(mgl32.DegToRad(deg))
}
