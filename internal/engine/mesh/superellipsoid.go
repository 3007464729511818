package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Params controls the superellipsoid surface. A, B, C are the semi-axis
// scales; N1 and N2 are the latitudinal and longitudinal squareness
// exponents. Exponents near 0 give boxy shapes, 1 gives an ellipsoid,
// 2 gives a pinched octahedral look.
type Params struct {
	A, B, C float32
	N1, N2  float32
}

// Counts returns the slice lengths Generate produces for the given
// resolution: (stacks+1)*(slices+1) vertices and 6*stacks*slices indices.
func Counts(stacks, slices int) (numVertex, numIndex int) {
	return (stacks + 1) * (slices + 1), 6 * stacks * slices
}

// Generate builds a superellipsoid triangle mesh at the given resolution.
// Output is deterministic; the slice lengths depend only on stacks and
// slices, never on the shape parameters. Panics on non-positive
// parameters or resolution.
func Generate(p Params, stacks, slices int) ([]Vertex, []uint32) {
	numVertex, numIndex := Counts(stacks, slices)
	vertices := make([]Vertex, numVertex)
	indices := make([]uint32, numIndex)
	GenerateInto(vertices, indices, p, stacks, slices)
	return vertices, indices
}

// GenerateInto regenerates the surface into caller-owned slices so a
// per-frame caller does not allocate. Both slices must have exactly the
// lengths reported by Counts.
func GenerateInto(vertices []Vertex, indices []uint32, p Params, stacks, slices int) {
	if stacks < 1 || slices < 1 {
		panic(fmt.Sprintf("mesh: invalid superellipsoid resolution %dx%d", stacks, slices))
	}
	if p.A <= 0 || p.B <= 0 || p.C <= 0 || p.N1 <= 0 || p.N2 <= 0 {
		panic(fmt.Sprintf("mesh: invalid superellipsoid params %+v", p))
	}
	numVertex, numIndex := Counts(stacks, slices)
	if len(vertices) != numVertex || len(indices) != numIndex {
		panic(fmt.Sprintf("mesh: superellipsoid output size %d/%d, want %d/%d",
			len(vertices), len(indices), numVertex, numIndex))
	}

	// Latitude u sweeps pole to pole, longitude v wraps the equator.
	// The seam column (j == slices) duplicates j == 0 so texcoords stay
	// continuous.
	vi := 0
	for i := 0; i <= stacks; i++ {
		u := -math32.Pi/2 + float32(i)/float32(stacks)*math32.Pi
		cu, su := math32.Cos(u), math32.Sin(u)
		for j := 0; j <= slices; j++ {
			v := -math32.Pi + float32(j)/float32(slices)*2*math32.Pi
			cv, sv := math32.Cos(v), math32.Sin(v)

			x := p.A * sgnpow(cu, p.N1) * sgnpow(cv, p.N2)
			y := p.B * sgnpow(cu, p.N1) * sgnpow(sv, p.N2)
			z := p.C * sgnpow(su, p.N1)

			// Ellipsoid-gradient normal. Not the exact superellipsoid
			// gradient, but close enough for shading and free of the
			// pole singularities the exact form has at low exponents.
			normal := mgl32.Vec3{x / (p.A * p.A), y / (p.B * p.B), z / (p.C * p.C)}.Normalize()

			vertices[vi] = Vertex{
				Position: mgl32.Vec3{x, y, z},
				Normal:   normal,
				TexCoord: mgl32.Vec2{float32(j) / float32(slices), float32(i) / float32(stacks)},
			}
			vi++
		}
	}

	ii := 0
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			first := uint32(i*(slices+1) + j)
			second := first + uint32(slices) + 1

			indices[ii+0] = first
			indices[ii+1] = second
			indices[ii+2] = first + 1

			indices[ii+3] = second
			indices[ii+4] = second + 1
			indices[ii+5] = first + 1
			ii += 6
		}
	}
}

// sgnpow is the signed power |base|^exp carrying the sign of base,
// which keeps the superellipsoid equations odd across quadrants.
func sgnpow(base, exp float32) float32 {
	p := math32.Pow(math32.Abs(base), exp)
	if base < 0 {
		return -p
	}
	return p
}
