package scene

import "github.com/go-gl/mathgl/mgl32"

// SpawnDistance is how far in front of the camera new instances appear.
const SpawnDistance = 2.0

// Instance is a spawned copy of the morphing shape. Only the anchor
// position is stored; orientation and scale are derived from scene time
// when drawn.
type Instance struct {
	Position mgl32.Vec3
}

// SpawnRegistry collects spawned instances for the lifetime of the
// process. Spawning is edge triggered: holding the spawn key down adds
// a single instance, not one per frame.
type SpawnRegistry struct {
	instances []Instance
	heldLast  bool
}

// NewSpawnRegistry creates an empty registry.
func NewSpawnRegistry() *SpawnRegistry {
	return &SpawnRegistry{
		instances: make([]Instance, 0, 16),
	}
}

// TrySpawn samples the spawn key state for the current frame. On a
// rising edge it appends an instance SpawnDistance units along forward
// from eye and returns it with true. Must be called exactly once per
// frame, pressed or not, so the edge detector stays in sync.
func (r *SpawnRegistry) TrySpawn(pressed bool, eye, forward mgl32.Vec3) (Instance, bool) {
	rising := pressed && !r.heldLast
	r.heldLast = pressed
	if !rising {
		return Instance{}, false
	}

	inst := Instance{Position: eye.Add(forward.Mul(SpawnDistance))}
	r.instances = append(r.instances, inst)
	return inst, true
}

// ForEach visits every instance in spawn order. Iteration is
// restartable; repeated calls yield the same sequence.
func (r *SpawnRegistry) ForEach(visit func(Instance)) {
	for _, inst := range r.instances {
		visit(inst)
	}
}

// Len returns the number of spawned instances.
func (r *SpawnRegistry) Len() int {
	return len(r.instances)
}
