package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
)

func TestEqualityIsKindAndRealization(t *testing.T) {
	assert.Equal(t, frame.ITRF(2014), frame.ITRF(2014))
	assert.NotEqual(t, frame.ITRF(2014), frame.ITRF(2008))
	assert.NotEqual(t, frame.ITRF(2014), frame.ETRF(2014))

	set := map[frame.Frame]bool{frame.GCRF(): true}
	assert.True(t, set[frame.GCRF()])
}

func TestNewAndRealized(t *testing.T) {
	_, err := frame.New("")
	require.ErrorIs(t, err, frame.ErrEmptyKind)

	f, err := frame.New("MOON_PA")
	require.NoError(t, err)
	assert.Equal(t, "MOON_PA", f.String())
	assert.False(t, f.IsRealized())

	r, err := frame.Realized(frame.KindITRF, 2020)
	require.NoError(t, err)
	assert.Equal(t, frame.ITRF(2020), r)

	_, err = frame.Realized(frame.KindITRF, 0)
	require.ErrorIs(t, err, frame.ErrBadFrame)
}

func TestNew_RejectsAmbiguousNames(t *testing.T) {
	// Each of these would print the same as another frame, or not parse back.
	for _, kind := range []frame.Kind{"ITRF2014", frame.KindITRF, "etrf", "gcrf", " MOON"} {
		_, err := frame.New(kind)
		assert.ErrorIs(t, err, frame.ErrBadFrame, string(kind))
	}

	for _, tc := range []struct {
		kind frame.Kind
		year int
	}{
		{frame.KindITRF, 14},
		{frame.KindITRF, 20141},
		{"MOON_PA", 2020},
	} {
		_, err := frame.Realized(tc.kind, tc.year)
		assert.ErrorIs(t, err, frame.ErrBadFrame, "%s %d", tc.kind, tc.year)
	}
}

func TestValidate(t *testing.T) {
	for _, f := range []frame.Frame{frame.GCRF(), frame.ITRF(2014), frame.ETRF(2000), {Kind: "MOON_PA"}} {
		assert.NoError(t, f.Validate(), f.String())
	}

	assert.ErrorIs(t, frame.Frame{}.Validate(), frame.ErrEmptyKind)
	assert.ErrorIs(t, frame.Frame{Kind: "ITRF2014"}.Validate(), frame.ErrBadFrame)
	assert.ErrorIs(t, frame.Frame{Kind: frame.KindITRF}.Validate(), frame.ErrBadFrame)
	assert.ErrorIs(t, frame.ITRF(14).Validate(), frame.ErrBadFrame)
}

func TestRealizationEpoch(t *testing.T) {
	e, ok := frame.ITRF(2014).RealizationEpoch()
	require.True(t, ok)
	assert.Equal(t, epoch.FromYear(2014), e)

	_, ok = frame.GCRF().RealizationEpoch()
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want frame.Frame
	}{
		{"ITRF2014", frame.ITRF(2014)},
		{"itrf2008", frame.ITRF(2008)},
		{"ETRF2000", frame.ETRF(2000)},
		{"GCRF", frame.GCRF()},
		{"eme2000", frame.EME2000()},
		{" TIRS ", frame.TIRS()},
		{"MOON_PA", frame.Frame{Kind: "MOON_PA"}},
	}
	for _, tc := range cases {
		got, err := frame.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, got, frame.MustParse(got.String()))
	}

	for _, bad := range []string{"", "ITRF", "ITRF14", "ITRFabcd", "ITRF20141"} {
		_, err := frame.Parse(bad)
		assert.ErrorIs(t, err, frame.ErrBadFrame, bad)
	}
	assert.Panics(t, func() { frame.MustParse("ITRF1") })
}

func TestPredicates(t *testing.T) {
	assert.True(t, frame.Exact(frame.GCRF())(frame.GCRF()))
	assert.False(t, frame.Exact(frame.GCRF())(frame.ICRF()))

	itrf := frame.OfKind(frame.KindITRF)
	assert.True(t, itrf(frame.ITRF(2008)))
	assert.False(t, itrf(frame.ETRF(2008)))

	assert.True(t, frame.Realization(frame.KindITRF, 2008)(frame.ITRF(2008)))
	assert.False(t, frame.Realization(frame.KindITRF, 2008)(frame.ITRF(2014)))

	either := frame.Any(frame.Exact(frame.GCRF()), itrf)
	assert.True(t, either(frame.GCRF()))
	assert.True(t, either(frame.ITRF(2020)))
	assert.False(t, either(frame.CIRS()))
	assert.False(t, frame.Any()(frame.GCRF()))
}
