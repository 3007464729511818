package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Dynamic is an indexed triangle mesh whose geometry is rewritten in
// place every frame. Both buffers are allocated once with DYNAMIC_DRAW
// and never resized; updates must keep the initial slice lengths.
type Dynamic struct {
	vao uint32
	vbo uint32
	ebo uint32

	vertexCount int
	indexCount  int
}

// NewDynamic allocates GPU buffers sized for the given mesh and uploads
// the initial geometry.
func NewDynamic(vertices []Vertex, indices []uint32) (*Dynamic, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("dynamic mesh: empty geometry")
	}
	d := &Dynamic{
		vertexCount: len(vertices),
		indexCount:  len(indices),
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)
	return d, nil
}

// Update overwrites both buffers in place with BufferSubData. The slice
// lengths must match the initial allocation.
func (d *Dynamic) Update(vertices []Vertex, indices []uint32) error {
	if len(vertices) != d.vertexCount || len(indices) != d.indexCount {
		return fmt.Errorf("dynamic mesh: update size %d/%d, buffer allocated for %d/%d",
			len(vertices), len(indices), d.vertexCount, d.indexCount)
	}

	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]))
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, unsafe.Pointer(&indices[0]))
	gl.BindVertexArray(0)
	return nil
}

// Draw issues the indexed draw call. The caller binds the program and
// sets uniforms first.
func (d *Dynamic) Draw() {
	gl.BindVertexArray(d.vao)
	gl.DrawElements(gl.TRIANGLES, int32(d.indexCount), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices drawn per call.
func (d *Dynamic) IndexCount() int {
	return d.indexCount
}

// Destroy releases the GPU resources.
func (d *Dynamic) Destroy() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
		d.ebo = 0
	}
}

// Static is an unindexed position-only mesh uploaded once with
// STATIC_DRAW, used for the light marker cubes.
type Static struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewStatic uploads position-only vertex data, three floats per vertex.
func NewStatic(positions []float32) (*Static, error) {
	if len(positions) == 0 || len(positions)%3 != 0 {
		return nil, fmt.Errorf("static mesh: want xyz triples, got %d floats", len(positions))
	}
	s := &Static{vertexCount: int32(len(positions) / 3)}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return s, nil
}

// Draw issues the unindexed draw call.
func (s *Static) Draw() {
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU resources.
func (s *Static) Destroy() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
}
