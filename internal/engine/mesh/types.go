// Package mesh provides procedural surface generation and GPU buffer management.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single vertex as laid out in the vertex buffer:
// position at byte offset 0, normal at 12, texcoord at 24 (32 bytes total).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}
