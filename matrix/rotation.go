// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// RotationX returns the right-handed rotation about +X by theta radians.
func RotationX(theta float64) Mat3 {
	s, c := math.Sincos(theta)

	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the right-handed rotation about +Y by theta radians.
func RotationY(theta float64) Mat3 {
	s, c := math.Sincos(theta)

	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the right-handed rotation about +Z by theta radians.
func RotationZ(theta float64) Mat3 {
	s, c := math.Sincos(theta)

	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// AxisAngle returns the right-handed rotation about axis by theta radians. It agrees
// with RotationX/Y/Z for the coordinate axes. The axis need not be unit length;
// a zero axis yields ErrSingular.
func AxisAngle(axis Vec3, theta float64) (Mat3, error) {
	u, err := axis.Normalize()
	if err != nil {
		return Mat3{}, fmt.Errorf("AxisAngle: %w", err)
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return Mat3{}, fmt.Errorf("AxisAngle: %w", ErrNaNInf)
	}

	// Rodrigues: R = cosθ·I + (1−cosθ)·uuᵀ + sinθ·[u]×
	s, c := math.Sincos(theta)
	k := 1 - c
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = k * u[i] * u[j]
		}
		out[i][i] += c
	}

	return out.Add(Skew(u).Scale(s)), nil
}

// RotationVector returns the rotation described by the rotation vector
// r (axis·angle). For |r| below 1e-8 the first-order form I + [r]× is used,
// which is exact to machine precision there.
func RotationVector(r Vec3) Mat3 {
	theta := r.Norm()
	if theta < 1e-8 {
		return Identity().Add(Skew(r))
	}
	m, _ := AxisAngle(r, theta) // r is non-zero and finite here

	return m
}

// Skew returns the cross-product matrix [v]× such that [v]×·x = v × x.
func Skew(v Vec3) Mat3 {
	return Mat3{
		{0, -v[2], v[1]},
		{v[2], 0, -v[0]},
		{-v[1], v[0], 0},
	}
}

// Orthonormalize returns the closest proper rotation to m using two
// Gram–Schmidt passes over its rows. Non-finite input yields ErrNaNInf and a
// rank-deficient one ErrNotOrthonormal.
func Orthonormalize(m Mat3) (Mat3, error) {
	if !m.IsFinite() {
		return Mat3{}, fmt.Errorf("Orthonormalize: %w", ErrNaNInf)
	}
	x, err := m.Row(0).Normalize()
	if err != nil {
		return Mat3{}, fmt.Errorf("Orthonormalize: %w", ErrNotOrthonormal)
	}
	y := m.Row(1)
	y = y.Sub(x.Scale(x.Dot(y)))
	if y, err = y.Normalize(); err != nil {
		return Mat3{}, fmt.Errorf("Orthonormalize: %w", ErrNotOrthonormal)
	}
	z := x.Cross(y)

	return Mat3{x, y, z}, nil
}
