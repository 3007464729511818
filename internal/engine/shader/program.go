package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked GL program with a uniform location cache so
// per-frame Set calls skip the GetUniformLocation round trip.
type Program struct {
	id   uint32
	locs map[string]int32
}

// NewProgram compiles and links the given GLSL sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:   id,
		locs: make(map[string]int32),
	}, nil
}

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// ID returns the underlying GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.locs[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.loc(name), 1, false, &m[0])
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.loc(name), v.X(), v.Y(), v.Z())
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.loc(name), value)
}

// SetInt uploads an int uniform (also used for sampler bindings).
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.loc(name), value)
}

// SetVec3Array uploads a vec3 array uniform from a flat
// [x0, y0, z0, x1, ...] slice.
func (p *Program) SetVec3Array(name string, flat []float32) {
	gl.Uniform3fv(p.loc(name), int32(len(flat)/3), &flat[0])
}

// SetFloatArray uploads a float array uniform.
func (p *Program) SetFloatArray(name string, values []float32) {
	gl.Uniform1fv(p.loc(name), int32(len(values)), &values[0])
}

// Destroy deletes the GL program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
