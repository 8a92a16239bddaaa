// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Mat3 is a row-major 3×3 matrix: m[row][col].
type Mat3 [3][3]float64

// Identity returns the 3×3 identity.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns the diagonal matrix with the given entries.
func Diag(a, b, c float64) Mat3 {
	return Mat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Mul returns the product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}

	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Add returns m + o.
func (m Mat3) Add(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + o[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = s * m[i][j]
		}
	}

	return out
}

// T returns the transpose of m.
func (m Mat3) T() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m⁻¹ via the adjugate.
//
// Errors:
//   - ErrNaNInf if any entry is non-finite.
//   - ErrSingular if |det(m)| < SingularEps.
func (m Mat3) Inverse() (Mat3, error) {
	if !m.IsFinite() {
		return Mat3{}, fmt.Errorf("Inverse: %w", ErrNaNInf)
	}
	det := m.Det()
	if math.Abs(det) < SingularEps {
		return Mat3{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}

	inv := 1 / det
	// Cofactor matrix, transposed in place of assignment (adjugate).
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, nil
}

// IsFinite reports whether every entry is finite.
func (m Mat3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if !Vec3(m[i]).IsFinite() {
			return false
		}
	}

	return true
}

// IsOrthonormal reports whether m·mᵀ ≈ I and det(m) ≈ +1 within OrthonormalTol.
func (m Mat3) IsOrthonormal() bool {
	if !m.Mul(m.T()).AllClose(Identity(), 0, OrthonormalTol) {
		return false
	}

	return math.Abs(m.Det()-1) <= OrthonormalTol
}

// AllClose reports element-wise closeness, see Vec3.AllClose.
func (m Mat3) AllClose(o Mat3, rtol, atol float64) bool {
	for i := 0; i < 3; i++ {
		if !Vec3(m[i]).AllClose(Vec3(o[i]), rtol, atol) {
			return false
		}
	}

	return true
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 { return Vec3(m[i]) }

// Col returns column j as a vector.
func (m Mat3) Col(j int) Vec3 { return Vec3{m[0][j], m[1][j], m[2][j]} }
