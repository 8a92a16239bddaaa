// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Vec3 is a column vector in R³.
type Vec3 [3]float64

// Zero is the zero vector.
var Zero = Vec3{}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v − o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Neg returns −v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the inner product v·o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v/|v|. The zero vector yields ErrSingular.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Zero, fmt.Errorf("Normalize: %w", ErrSingular)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Zero, fmt.Errorf("Normalize: %w", ErrNaNInf)
	}

	return v.Scale(1 / n), nil
}

// IsFinite reports whether every component is finite.
func (v Vec3) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// AllClose reports whether |v[i]−o[i]| ≤ atol + rtol·|o[i]| for every i.
// Negative tolerances are taken by absolute value.
func (v Vec3) AllClose(o Vec3, rtol, atol float64) bool {
	for i := range v {
		if !closeTo(v[i], o[i], rtol, atol) {
			return false
		}
	}

	return true
}

// String renders v as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// closeTo is the scalar kernel shared by Vec3.AllClose and Mat3.AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true // covers equal infinities
	}

	return math.Abs(a-b) <= math.Abs(atol)+math.Abs(rtol)*math.Abs(b)
}
