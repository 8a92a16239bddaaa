package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

var (
	f0 = frame.Frame{Kind: "F0"}
	f1 = frame.Frame{Kind: "F1"}
	f2 = frame.Frame{Kind: "F2"}
	f3 = frame.Frame{Kind: "F3"}

	t2020 = epoch.FromYear(2020)
)

// requireVecClose checks got against want within 1e-9 relative to |want|.
func requireVecClose(t *testing.T, want, got matrix.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	tol := 1e-9 * math.Max(1, want.Norm())
	require.True(t, got.AllClose(want, 0, tol), append([]interface{}{"want %v got %v", want, got}, msgAndArgs...)...)
}

func requireMatClose(t *testing.T, want, got matrix.Mat3) {
	t.Helper()
	require.True(t, got.AllClose(want, 0, 1e-9), "want %v got %v", want, got)
}

// sampleParams exercises every kinematic term.
func sampleParams() transform.KinematicParams {
	return transform.KinematicParams{
		Translation:          matrix.Vec3{120, -45, 30},
		Velocity:             matrix.Vec3{0.5, -1.5, 2},
		Acceleration:         matrix.Vec3{1e-3, 2e-3, -5e-4},
		Rotation:             matrix.RotationZ(0.4).Mul(matrix.RotationX(-0.3)),
		RotationRate:         matrix.Vec3{1e-3, -2e-3, 7.29e-5},
		RotationAcceleration: matrix.Vec3{1e-6, 0, -2e-6},
	}
}

func constParams(p transform.KinematicParams) transform.ParamsFunc {
	return func(epoch.Epoch) (transform.KinematicParams, error) { return p, nil }
}

func mustTransform(t *testing.T, f transform.Factory, e epoch.Epoch) transform.Transform {
	t.Helper()
	tr, err := f.Transform(e)
	require.NoError(t, err)

	return tr
}

func mustRotation(t *testing.T, from, to frame.Frame, r matrix.Mat3, cost float64) transform.Factory {
	t.Helper()
	f, err := transform.NewRotation(from, to, r, cost)
	require.NoError(t, err)

	return f
}
