package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

// threeStages returns F0→F1→F2→F3 with distinct kinematics.
func threeStages(t *testing.T) (a, b, c transform.Factory) {
	p := sampleParams()
	a = transform.NewKinematic(f0, f1, transform.Constant(1), constParams(p))
	b = mustRotation(t, f1, f2, matrix.RotationY(0.9), 2)
	c, err := transform.NewSpin(f2, f3, transform.SpinParams{
		Axis: matrix.Vec3{1, 1, 0}, Angle0: 0.1, Rate: 2e-4, Reference: t2020,
	}, 4)
	require.NoError(t, err)

	return a, b, c
}

func TestCompose_CostIsSum(t *testing.T) {
	a, b, c := threeStages(t)
	ab, err := transform.Compose(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, ab.Cost(t2020))
	assert.Equal(t, f0, ab.From())
	assert.Equal(t, f2, ab.To())

	abc, err := transform.ChainFactory(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, 7.0, abc.Cost(t2020))

	// Only the general kinematic stage adds inverse overhead.
	assert.Equal(t, 7.0+transform.InverseOverhead, abc.Inverse().Cost(t2020))
	assert.Equal(t, f3, abc.Inverse().From())
}

func TestCompose_FrameMismatch(t *testing.T) {
	a, _, c := threeStages(t)
	_, err := transform.Compose(a, c)
	require.ErrorIs(t, err, transform.ErrFrameMismatch)

	_, err = transform.Compose(a, nil)
	require.ErrorIs(t, err, transform.ErrNilFactory)

	_, err = transform.ChainFactory()
	require.ErrorIs(t, err, transform.ErrEmptyChain)
}

func TestThen_AppliesInOrder(t *testing.T) {
	rz := mustRotation(t, f0, f1, matrix.RotationZ(math.Pi/2), 1)
	tx, err := transform.NewTranslation(f1, f2, matrix.Vec3{10, 0, 0}, 1)
	require.NoError(t, err)

	tr, err := transform.Then(mustTransform(t, rz, t2020), mustTransform(t, tx, t2020))
	require.NoError(t, err)
	// Rotate first: (1,0,0) → (0,1,0), then shift: (10,1,0).
	requireVecClose(t, matrix.Vec3{10, 1, 0}, tr.Position(matrix.Vec3{1, 0, 0}))
	assert.Equal(t, f0, tr.From())
	assert.Equal(t, f2, tr.To())
	assert.Len(t, transform.Stages(tr), 2)
}

func TestThen_Mismatches(t *testing.T) {
	a, b, c := threeStages(t)
	ta := mustTransform(t, a, t2020)

	_, err := transform.Then(ta, mustTransform(t, c, t2020))
	require.ErrorIs(t, err, transform.ErrFrameMismatch)

	_, err = transform.Then(ta, mustTransform(t, b, epoch.FromYear(2021)))
	require.ErrorIs(t, err, transform.ErrEpochMismatch)
}

func TestThen_Associative(t *testing.T) {
	a, b, c := threeStages(t)
	ta, tb, tc := mustTransform(t, a, t2020), mustTransform(t, b, t2020), mustTransform(t, c, t2020)

	ab, err := transform.Then(ta, tb)
	require.NoError(t, err)
	left, err := transform.Then(ab, tc)
	require.NoError(t, err)

	bc, err := transform.Then(tb, tc)
	require.NoError(t, err)
	right, err := transform.Then(ta, bc)
	require.NoError(t, err)

	p := matrix.Vec3{4e6, 3e6, -2e6}
	v := matrix.Vec3{100, -200, 300}
	a0 := matrix.Vec3{1, 2, 3}
	requireVecClose(t, left.Position(p), right.Position(p))
	requireVecClose(t, left.Velocity(p, v), right.Velocity(p, v))
	requireVecClose(t, left.Acceleration(p, v, a0), right.Acceleration(p, v, a0))
	requireMatClose(t, left.Orientation(matrix.Identity()), right.Orientation(matrix.Identity()))
	assert.Len(t, transform.Stages(left), 3)
	assert.Len(t, transform.Stages(right), 3)
}

func TestComposite_RoundTrip(t *testing.T) {
	a, b, c := threeStages(t)
	tr, err := transform.Chain(t2020, a, b, c)
	require.NoError(t, err)

	back, err := tr.Inverse()
	require.NoError(t, err)
	assert.Equal(t, f3, back.From())
	assert.Equal(t, f0, back.To())
	assert.True(t, back.Epoch().Equal(t2020))

	p := matrix.Vec3{-3e6, 5.5e6, 1e6}
	v := matrix.Vec3{7000, 250, -1300}
	p3, v3 := tr.Position(p), tr.Velocity(p, v)
	requireVecClose(t, p, back.Position(p3))
	requireVecClose(t, v, back.Velocity(p3, v3))
}

func TestComposite_VelocityUsesIntermediatePosition(t *testing.T) {
	// The second spin's ω×r term must see the position already rotated by
	// the first spin.
	spin, err := transform.NewSpin(f0, f1, transform.SpinParams{
		Axis: matrix.Vec3{0, 0, 1}, Rate: 1e-3, Reference: t2020,
	}, 1)
	require.NoError(t, err)
	spin2, err := transform.NewSpin(f1, f2, transform.SpinParams{
		Axis: matrix.Vec3{1, 0, 0}, Rate: 2e-3, Reference: t2020,
	}, 1)
	require.NoError(t, err)

	chained, err := transform.Chain(t2020, spin, spin2)
	require.NoError(t, err)
	composed, err := transform.ChainFactory(spin, spin2)
	require.NoError(t, err)

	p := matrix.Vec3{1e3, 2e3, 3e3}
	manual := mustTransform(t, spin2, t2020).Velocity(
		mustTransform(t, spin, t2020).Position(p),
		mustTransform(t, spin, t2020).Velocity(p, matrix.Zero),
	)
	requireVecClose(t, manual, chained.Velocity(p, matrix.Zero))
	requireVecClose(t, manual, mustTransform(t, composed, t2020).Velocity(p, matrix.Zero))
}

func TestChain_Errors(t *testing.T) {
	_, err := transform.Chain(t2020)
	require.ErrorIs(t, err, transform.ErrEmptyChain)

	a, b, _ := threeStages(t)
	_, err = transform.Chain(t2020, a, nil)
	require.ErrorIs(t, err, transform.ErrNilFactory)

	bounded, err := transform.Bounded(b, epoch.FromYear(2000), epoch.FromYear(2010))
	require.NoError(t, err)
	_, err = transform.Chain(t2020, a, bounded)
	require.ErrorIs(t, err, transform.ErrInvalidEpoch)

	composed, err := transform.Compose(a, bounded)
	require.NoError(t, err)
	_, err = composed.Transform(t2020)
	require.ErrorIs(t, err, transform.ErrInvalidEpoch)
	assert.True(t, math.IsInf(composed.Cost(t2020), 1))
}

func TestIdentity(t *testing.T) {
	id := transform.Identity(f0)
	assert.Equal(t, f0, id.From())
	assert.Equal(t, f0, id.To())
	assert.Zero(t, id.Cost(t2020))
	assert.Equal(t, id, id.Inverse())

	tr := mustTransform(t, id, t2020)
	p, v, a := matrix.Vec3{1, 2, 3}, matrix.Vec3{4, 5, 6}, matrix.Vec3{7, 8, 9}
	q := matrix.RotationX(0.3)
	assert.Equal(t, p, tr.Position(p))
	assert.Equal(t, v, tr.Velocity(p, v))
	assert.Equal(t, a, tr.Acceleration(p, v, a))
	assert.Equal(t, q, tr.Orientation(q))
	assert.Equal(t, v, tr.OrientationRate(q, v))

	inv, err := tr.Inverse()
	require.NoError(t, err)
	assert.Equal(t, p, inv.Position(p))
}
