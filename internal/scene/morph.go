package scene

import "github.com/chewxy/math32"

// Morph exponent bounds. Values near the low end read as boxy, the high
// end as pinched.
const (
	morphMin float32 = 0.2
	morphMax float32 = 2.0
)

// MorphExponents returns the superellipsoid squareness exponents at
// scene time t (seconds). Both oscillate inside [0.2, 2.0], the
// latitudinal one on a sine and the longitudinal one on a cosine of a
// different frequency, so the shape drifts through the whole family.
func MorphExponents(t float32) (n1, n2 float32) {
	n1 = morphMin + (morphMax-morphMin)*(0.5+0.5*math32.Sin(1.2*t))
	n2 = morphMin + (morphMax-morphMin)*(0.5+0.5*math32.Cos(0.8*t))
	return n1, n2
}
