package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/matrix"
)

const tol = 1e-12

func TestVec3Algebra(t *testing.T) {
	a := matrix.Vec3{1, 2, 3}
	b := matrix.Vec3{4, -5, 6}

	assert.Equal(t, matrix.Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, matrix.Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, matrix.Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, matrix.Vec3{-1, -2, -3}, a.Neg())
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, matrix.Vec3{27, 6, -13}, a.Cross(b))
	assert.InDelta(t, math.Sqrt(14), a.Norm(), tol)

	u, err := a.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Norm(), tol)

	_, err = matrix.Zero.Normalize()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestVec3AllClose(t *testing.T) {
	a := matrix.Vec3{1, 2, 3}
	assert.True(t, a.AllClose(matrix.Vec3{1 + 1e-13, 2, 3}, 0, 1e-12))
	assert.False(t, a.AllClose(matrix.Vec3{1.1, 2, 3}, 0, 1e-12))
	assert.True(t, a.AllClose(matrix.Vec3{1.01, 2, 3}, 0.02, 0))
	assert.False(t, a.AllClose(matrix.Vec3{math.NaN(), 2, 3}, 1, 1))
}

func TestMat3InverseAndDet(t *testing.T) {
	m := matrix.Mat3{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).AllClose(matrix.Identity(), 0, tol))
	assert.True(t, inv.Mul(m).AllClose(matrix.Identity(), 0, tol))
	assert.InDelta(t, 25.0, m.Det(), tol)

	_, err = matrix.Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Mat3{{math.Inf(1), 0, 0}, {0, 1, 0}, {0, 0, 1}}.Inverse()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMat3TransposeMulVec(t *testing.T) {
	m := matrix.Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, matrix.Mat3{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, m.T())
	assert.Equal(t, matrix.Vec3{14, 32, 50}, m.MulVec(matrix.Vec3{1, 2, 3}))
	assert.Equal(t, matrix.Vec3{4, 5, 6}, m.Row(1))
	assert.Equal(t, matrix.Vec3{2, 5, 8}, m.Col(1))
}

func TestRotationZQuarterTurn(t *testing.T) {
	r := matrix.RotationZ(math.Pi / 2)
	got := r.MulVec(matrix.Vec3{1, 0, 0})
	assert.True(t, got.AllClose(matrix.Vec3{0, 1, 0}, 0, tol), got.String())
	assert.True(t, r.IsOrthonormal())
}

func TestAxisAngleMatchesElementary(t *testing.T) {
	theta := 0.7
	cases := []struct {
		axis matrix.Vec3
		want matrix.Mat3
	}{
		{matrix.Vec3{1, 0, 0}, matrix.RotationX(theta)},
		{matrix.Vec3{0, 2, 0}, matrix.RotationY(theta)},
		{matrix.Vec3{0, 0, 5}, matrix.RotationZ(theta)},
	}
	for _, tc := range cases {
		got, err := matrix.AxisAngle(tc.axis, theta)
		require.NoError(t, err)
		assert.True(t, got.AllClose(tc.want, 0, tol), "axis %v", tc.axis)
	}

	_, err := matrix.AxisAngle(matrix.Zero, 1)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRotationVectorSmallAndLarge(t *testing.T) {
	small := matrix.Vec3{1e-10, -2e-10, 3e-10}
	r := matrix.RotationVector(small)
	assert.True(t, r.Mul(r.T()).AllClose(matrix.Identity(), 0, 1e-15))

	big := matrix.Vec3{0, 0, 0.3}
	assert.True(t, matrix.RotationVector(big).AllClose(matrix.RotationZ(0.3), 0, tol))
}

func TestSkewIsCross(t *testing.T) {
	v := matrix.Vec3{0.3, -1.2, 2}
	x := matrix.Vec3{5, 1, -4}
	assert.True(t, matrix.Skew(v).MulVec(x).AllClose(v.Cross(x), 0, tol))
}

func TestOrthonormalize(t *testing.T) {
	r := matrix.RotationX(0.2).Mul(matrix.RotationZ(1.1))
	noisy := r.Add(matrix.Mat3{{1e-7, 0, 0}, {0, -1e-7, 0}, {0, 0, 0}})
	assert.False(t, noisy.IsOrthonormal())

	fixed, err := matrix.Orthonormalize(noisy)
	require.NoError(t, err)
	assert.True(t, fixed.IsOrthonormal())
	assert.True(t, fixed.AllClose(r, 0, 1e-6))

	_, err = matrix.Orthonormalize(matrix.Mat3{})
	require.ErrorIs(t, err, matrix.ErrNotOrthonormal)
}

func TestNotOrthonormal(t *testing.T) {
	assert.False(t, matrix.Diag(1, 1, -1).IsOrthonormal())
	assert.False(t, matrix.Diag(2, 1, 1).IsOrthonormal())
	assert.True(t, matrix.Identity().IsOrthonormal())
}
