package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

// sampleHelmert is shaped like a published ITRF-to-ITRF set, with small
// rotations added so every term is exercised.
func sampleHelmert() transform.HelmertParams {
	return transform.HelmertFromIERS(
		[3]float64{-1.4, -0.9, 1.4}, -0.42, [3]float64{0.1, -0.2, 0.3},
		[3]float64{0.0, -0.1, 0.2}, 0.0, [3]float64{0.01, 0, -0.02},
		epoch.FromYear(2010),
	)
}

func TestHelmertFromIERS_Units(t *testing.T) {
	p := transform.HelmertFromIERS(
		[3]float64{1, 2, 3}, 1, [3]float64{1, 0, 0},
		[3]float64{1, 0, 0}, 1, [3]float64{0, 0, 1},
		epoch.FromYear(2010),
	)
	requireVecClose(t, matrix.Vec3{1e-3, 2e-3, 3e-3}, p.Translation)
	assert.InDelta(t, 1e-9, p.Scale, 1e-24)
	assert.InDelta(t, 4.84813681109536e-9, p.Rotation[0], 1e-20)
	assert.InDelta(t, 1e-3/epoch.SecondsPerJulianYear, p.TranslationRate[0], 1e-24)
	assert.InDelta(t, 1e-9/epoch.SecondsPerJulianYear, p.ScaleRate, 1e-30)
	assert.InDelta(t, 4.84813681109536e-9/epoch.SecondsPerJulianYear, p.RotationRate[2], 1e-28)
}

func TestHelmert_TranslationOnly(t *testing.T) {
	p := transform.HelmertParams{Translation: matrix.Vec3{1, 2, 3}, Reference: epoch.J2000}
	f, err := transform.NewHelmert(frame.ITRF(2014), frame.ITRF(2008), p)
	require.NoError(t, err)
	assert.Equal(t, transform.DefaultHelmertCost, f.Cost(t2020))
	assert.Equal(t, transform.DefaultHelmertCost, f.Inverse().Cost(t2020))

	tr := mustTransform(t, f, t2020)
	x := matrix.Vec3{4e6, 1e6, 4.8e6}
	requireVecClose(t, matrix.Vec3{4e6 + 1, 1e6 + 2, 4.8e6 + 3}, tr.Position(x))
}

func TestHelmert_RoundTrip(t *testing.T) {
	f, err := transform.NewHelmert(frame.ITRF(2014), frame.ITRF(2008), sampleHelmert())
	require.NoError(t, err)

	for _, year := range []int{1995, 2010, 2024} {
		e := epoch.FromYear(year)
		fwd := mustTransform(t, f, e)
		back, err := fwd.Inverse()
		require.NoError(t, err)
		assert.Equal(t, frame.ITRF(2008), back.From())

		x := matrix.Vec3{4027893.7, 307045.6, 4919475.2}
		v := matrix.Vec3{-0.0136, 0.0175, 0.0106}
		a := matrix.Vec3{1e-9, -2e-9, 0}
		x1, v1, a1 := fwd.Position(x), fwd.Velocity(x, v), fwd.Acceleration(x, v, a)

		requireVecClose(t, x, back.Position(x1), year)
		requireVecClose(t, v, back.Velocity(x1, v1), year)
		requireVecClose(t, a, back.Acceleration(x1, v1, a1), year)

		q := matrix.RotationZ(0.4)
		w := matrix.Vec3{0, 0, 7.29e-5}
		requireMatClose(t, q, back.Orientation(fwd.Orientation(q)))
		requireVecClose(t, w, back.OrientationRate(fwd.Orientation(q), fwd.OrientationRate(q, w)))
	}
}

func TestHelmert_VelocityMatchesDrift(t *testing.T) {
	// Position is linear in time, so a finite difference over a year is exact
	// up to rounding.
	f, err := transform.NewHelmert(frame.ITRF(2014), frame.ITRF(2008), sampleHelmert())
	require.NoError(t, err)

	x := matrix.Vec3{4027893.7, 307045.6, 4919475.2}
	lo, hi := epoch.FromYear(2015), epoch.FromYear(2016)
	want := mustTransform(t, f, hi).Position(x).Sub(mustTransform(t, f, lo).Position(x)).Scale(1 / hi.Sub(lo))
	got := mustTransform(t, f, lo).Velocity(x, matrix.Zero)

	require.True(t, got.AllClose(want, 0, 1e-12), "want %v got %v", want, got)
}

func TestHelmert_RejectsNonFinite(t *testing.T) {
	p := sampleHelmert()
	p.Scale = math.NaN()
	_, err := transform.NewHelmert(frame.ITRF(2014), frame.ITRF(2008), p)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestHelmert_CustomCost(t *testing.T) {
	f, err := transform.NewHelmert(frame.ITRF(2014), frame.ITRF(2008), sampleHelmert(), transform.WithHelmertCost(7))
	require.NoError(t, err)
	assert.Equal(t, 7.0, f.Cost(t2020))
	assert.Panics(t, func() { transform.WithHelmertCost(math.NaN()) })
}
