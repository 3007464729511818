// Package scene owns the morphing superellipsoid scene: the surface
// mesh and its spawned copies, the light rig, and the two shader
// passes that draw them.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/morphoid/internal/config"
	"github.com/Faultbox/morphoid/internal/engine/lighting"
	"github.com/Faultbox/morphoid/internal/engine/mesh"
	"github.com/Faultbox/morphoid/internal/engine/shader"
	"github.com/Faultbox/morphoid/internal/engine/texture"
	"github.com/Faultbox/morphoid/internal/logger"
	"github.com/Faultbox/morphoid/internal/scene/shaders"
)

// Rotation speeds in radians per second.
const (
	primarySpin = 0.5
	spawnedSpin = 0.2
)

const spawnedScale = 0.5
const markerScale = 0.2

// Scene holds everything drawn each frame. Create with New on the GL
// thread, after the context exists.
type Scene struct {
	phong *shader.Program
	lamp  *shader.Program

	surface *mesh.Dynamic
	marker  *mesh.Static
	diffuse uint32

	rig      *lighting.Rig
	material lighting.Material
	registry *SpawnRegistry

	stacks, slices int
	vertices       []mesh.Vertex
	indices        []uint32
}

// New compiles the shader passes, builds the initial surface (a unit
// sphere, before the first morph), and loads the diffuse texture. A
// missing or unreadable texture is not fatal: the scene falls back to
// a plain white map and logs the path.
func New(cfg *config.Config) (*Scene, error) {
	phong, err := shader.NewProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compile surface shader: %w", err)
	}

	lamp, err := shader.NewProgram(shaders.LampVertexShader, shaders.LampFragmentShader)
	if err != nil {
		phong.Destroy()
		return nil, fmt.Errorf("compile lamp shader: %w", err)
	}

	s := &Scene{
		phong:    phong,
		lamp:     lamp,
		rig:      lighting.DefaultRig(),
		material: lighting.DefaultMaterial(),
		registry: NewSpawnRegistry(),
		stacks:   cfg.Mesh.Stacks,
		slices:   cfg.Mesh.Slices,
	}

	s.vertices, s.indices = mesh.Generate(mesh.Params{A: 1, B: 1, C: 1, N1: 1, N2: 1}, s.stacks, s.slices)
	s.surface, err = mesh.NewDynamic(s.vertices, s.indices)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("create surface mesh: %w", err)
	}

	s.marker, err = mesh.NewStatic(mesh.MarkerCube())
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("create light marker mesh: %w", err)
	}

	s.diffuse, err = texture.Load(cfg.Scene.TexturePath)
	if err != nil {
		logger.Warn("texture failed to load, using white fallback",
			zap.String("path", cfg.Scene.TexturePath),
			zap.Error(err))
		s.diffuse = texture.White()
	}

	logger.Info("scene ready",
		zap.Int("stacks", s.stacks),
		zap.Int("slices", s.slices),
		zap.Int("vertices", len(s.vertices)),
		zap.Int("indices", len(s.indices)))

	return s, nil
}

// Update regenerates the surface for time t and uploads it into the
// existing GPU buffers. The tessellation never changes, so the buffer
// sizes always match.
func (s *Scene) Update(t float32) error {
	n1, n2 := MorphExponents(t)
	p := mesh.Params{A: 1, B: 1, C: 1, N1: n1, N2: n2}
	mesh.GenerateInto(s.vertices, s.indices, p, s.stacks, s.slices)
	return s.surface.Update(s.vertices, s.indices)
}

// TrySpawn places a new surface copy in front of the camera on the
// rising edge of the spawn key. Call once per frame.
func (s *Scene) TrySpawn(pressed bool, eye, forward mgl32.Vec3) {
	inst, ok := s.registry.TrySpawn(pressed, eye, forward)
	if !ok {
		return
	}
	logger.Info("superellipsoid spawned",
		zap.Float32("x", inst.Position.X()),
		zap.Float32("y", inst.Position.Y()),
		zap.Float32("z", inst.Position.Z()),
		zap.Int("count", s.registry.Len()))
}

// Render draws the lit surfaces and the light markers. The spotlight
// is re-aimed along the camera before its uniforms upload, so it
// always acts as a headlight.
func (s *Scene) Render(view, projection mgl32.Mat4, camPos, camFront mgl32.Vec3, t float32) {
	s.rig.FollowCamera(camPos, camFront)

	s.phong.Use()
	s.phong.SetMat4("uView", view)
	s.phong.SetMat4("uProjection", projection)
	s.phong.SetVec3("uViewPos", camPos)
	s.setLightUniforms()

	s.phong.SetInt("uDiffuseMap", 0)
	texture.Bind(s.diffuse, 0)

	s.phong.SetMat4("uModel", mgl32.HomogRotate3DY(primarySpin*t))
	s.surface.Draw()

	spawnedRot := mgl32.HomogRotate3DY(spawnedSpin * t)
	scale := mgl32.Scale3D(spawnedScale, spawnedScale, spawnedScale)
	s.registry.ForEach(func(inst Instance) {
		model := mgl32.Translate3D(inst.Position.X(), inst.Position.Y(), inst.Position.Z()).
			Mul4(spawnedRot).Mul4(scale)
		s.phong.SetMat4("uModel", model)
		s.surface.Draw()
	})

	s.lamp.Use()
	s.lamp.SetMat4("uView", view)
	s.lamp.SetMat4("uProjection", projection)
	markerShrink := mgl32.Scale3D(markerScale, markerScale, markerScale)
	for i := range s.rig.Points {
		pos := s.rig.Points[i].Position
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(markerShrink)
		s.lamp.SetMat4("uModel", model)
		s.marker.Draw()
	}
}

// setLightUniforms uploads the material, the directional light, the
// point light bank as flat arrays, and the camera spotlight.
func (s *Scene) setLightUniforms() {
	s.phong.SetVec3("uMaterialAmbient", s.material.Ambient)
	s.phong.SetVec3("uMaterialDiffuse", s.material.Diffuse)
	s.phong.SetVec3("uMaterialSpecular", s.material.Specular)
	s.phong.SetFloat("uMaterialShininess", s.material.Shininess)

	s.phong.SetVec3("uDirLightDirection", s.rig.Dir.Direction)
	s.phong.SetVec3("uDirLightAmbient", s.rig.Dir.Ambient)
	s.phong.SetVec3("uDirLightDiffuse", s.rig.Dir.Diffuse)
	s.phong.SetVec3("uDirLightSpecular", s.rig.Dir.Specular)

	s.phong.SetVec3Array("uPointLightPositions", s.rig.PointPositions())
	s.phong.SetVec3Array("uPointLightAmbients", s.rig.PointAmbients())
	s.phong.SetVec3Array("uPointLightDiffuses", s.rig.PointDiffuses())
	s.phong.SetVec3Array("uPointLightSpeculars", s.rig.PointSpeculars())
	constants, linears, quadratics := s.rig.PointAttenuations()
	s.phong.SetFloatArray("uPointLightConstants", constants)
	s.phong.SetFloatArray("uPointLightLinears", linears)
	s.phong.SetFloatArray("uPointLightQuadratics", quadratics)

	s.phong.SetVec3("uSpotPosition", s.rig.Spot.Position)
	s.phong.SetVec3("uSpotDirection", s.rig.Spot.Direction)
	s.phong.SetVec3("uSpotAmbient", s.rig.Spot.Ambient)
	s.phong.SetVec3("uSpotDiffuse", s.rig.Spot.Diffuse)
	s.phong.SetVec3("uSpotSpecular", s.rig.Spot.Specular)
	s.phong.SetFloat("uSpotConstant", s.rig.Spot.Constant)
	s.phong.SetFloat("uSpotLinear", s.rig.Spot.Linear)
	s.phong.SetFloat("uSpotQuadratic", s.rig.Spot.Quadratic)
	s.phong.SetFloat("uSpotCutOff", s.rig.Spot.CutOff)
	s.phong.SetFloat("uSpotOuterCutOff", s.rig.Spot.OuterCutOff)
}

// InstanceCount reports how many spawned copies exist.
func (s *Scene) InstanceCount() int {
	return s.registry.Len()
}

// Destroy releases all GPU resources. Safe to call on a partially
// constructed scene.
func (s *Scene) Destroy() {
	if s.phong != nil {
		s.phong.Destroy()
	}
	if s.lamp != nil {
		s.lamp.Destroy()
	}
	if s.surface != nil {
		s.surface.Destroy()
	}
	if s.marker != nil {
		s.marker.Destroy()
	}
	if s.diffuse != 0 {
		texture.Delete(s.diffuse)
	}
}
