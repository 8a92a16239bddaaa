package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/state"
)

// DefaultHelmertCost is the traversal cost of a Helmert factory, both ways.
const DefaultHelmertCost = 45.0

// Unit conversions for IERS-published parameters.
const (
	mm  = 1e-3
	ppb = 1e-9
	mas = math.Pi / (180 * 3600 * 1000)
)

// HelmertParams are the 14 parameters of a time-dependent similarity
// transform in SI units: metres, unitless scale, radians, and their rates
// per second, all valid at Reference.
//
//	x₁ = T + (1+D)·x₀ + R×x₀
//
// R holds the small rotation angles (R1, R2, R3) about X, Y and Z.
type HelmertParams struct {
	Translation     matrix.Vec3
	Scale           float64
	Rotation        matrix.Vec3
	TranslationRate matrix.Vec3
	ScaleRate       float64
	RotationRate    matrix.Vec3
	Reference       epoch.Epoch
}

// HelmertFromIERS builds HelmertParams from values in the units the IERS
// publishes them: translations in mm, scale in ppb, rotations in mas, and
// rates per Julian year.
func HelmertFromIERS(
	t [3]float64, d float64, r [3]float64,
	tRate [3]float64, dRate float64, rRate [3]float64,
	reference epoch.Epoch,
) HelmertParams {
	perYear := 1 / epoch.SecondsPerJulianYear

	return HelmertParams{
		Translation:     matrix.Vec3(t).Scale(mm),
		Scale:           d * ppb,
		Rotation:        matrix.Vec3(r).Scale(mas),
		TranslationRate: matrix.Vec3(tRate).Scale(mm * perYear),
		ScaleRate:       dRate * ppb * perYear,
		RotationRate:    matrix.Vec3(rRate).Scale(mas * perYear),
		Reference:       reference,
	}
}

// HelmertOption configures NewHelmert.
type HelmertOption func(*helmertFactory)

// WithHelmertCost overrides DefaultHelmertCost. Panics on a negative or NaN cost.
func WithHelmertCost(c float64) HelmertOption {
	if err := ValidateCost(c); err != nil {
		panic(err.Error())
	}

	return func(h *helmertFactory) {
		h.cost = c
	}
}

// NewHelmert returns the Helmert factory from → to. The inverse direction
// solves the similarity exactly through a 3×3 inverse rather than flipping
// parameter signs.
func NewHelmert(from, to frame.Frame, p HelmertParams, opts ...HelmertOption) (Factory, error) {
	if !p.Translation.IsFinite() || !p.Rotation.IsFinite() ||
		!p.TranslationRate.IsFinite() || !p.RotationRate.IsFinite() ||
		math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) ||
		math.IsNaN(p.ScaleRate) || math.IsInf(p.ScaleRate, 0) {
		return nil, fmt.Errorf("helmert %s→%s: %w", from, to, matrix.ErrNaNInf)
	}

	h := &helmertFactory{from: from, to: to, p: p, cost: DefaultHelmertCost}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

type helmertFactory struct {
	from, to frame.Frame
	p        HelmertParams
	cost     float64
	inverted bool
}

func (h *helmertFactory) From() frame.Frame        { return h.from }
func (h *helmertFactory) To() frame.Frame          { return h.to }
func (h *helmertFactory) Cost(epoch.Epoch) float64 { return h.cost }

func (h *helmertFactory) Inverse() Factory {
	inv := *h
	inv.from, inv.to = h.to, h.from
	inv.inverted = !h.inverted

	return &inv
}

// Transform evaluates the parameters at e:
// M = (1+D)·I + [R]×, Ṁ = Ḋ·I + [Ṙ]×.
func (h *helmertFactory) Transform(e epoch.Epoch) (Transform, error) {
	dt := e.Sub(h.p.Reference)
	d := h.p.Scale + h.p.ScaleRate*dt
	r := h.p.Rotation.Add(h.p.RotationRate.Scale(dt))

	t := &helmertTransform{
		factory: h,
		epoch:   e,
		t:       h.p.Translation.Add(h.p.TranslationRate.Scale(dt)),
		tDot:    h.p.TranslationRate,
		m:       matrix.Identity().Scale(1 + d).Add(matrix.Skew(r)),
		mDot:    matrix.Identity().Scale(h.p.ScaleRate).Add(matrix.Skew(h.p.RotationRate)),
		rot:     matrix.RotationVector(r),
		rotRate: h.p.RotationRate,
	}
	if h.inverted {
		mInv, err := t.m.Inverse()
		if err != nil {
			return nil, fmt.Errorf("%w: helmert %s at %s: %v", ErrInvalidEpoch, Name(h), e, err)
		}
		t.mInv = mInv
	}

	return t, nil
}

// helmertTransform holds the forward quantities; the inverted direction
// solves them for the source coordinates.
type helmertTransform struct {
	factory *helmertFactory
	epoch   epoch.Epoch
	t, tDot matrix.Vec3
	m, mDot matrix.Mat3
	mInv    matrix.Mat3 // set only when factory.inverted
	rot     matrix.Mat3 // orientation part of m
	rotRate matrix.Vec3
}

func (t *helmertTransform) From() frame.Frame  { return t.factory.from }
func (t *helmertTransform) To() frame.Frame    { return t.factory.to }
func (t *helmertTransform) Epoch() epoch.Epoch { return t.epoch }
func (t *helmertTransform) Factory() Factory   { return t.factory }

func (t *helmertTransform) Inverse() (Transform, error) {
	return t.factory.Inverse().Transform(t.epoch)
}

func (t *helmertTransform) Position(x matrix.Vec3) matrix.Vec3 {
	if t.factory.inverted {
		return t.mInv.MulVec(x.Sub(t.t))
	}

	return t.t.Add(t.m.MulVec(x))
}

// Velocity differentiates the similarity: v₁ = Ṫ + Ṁ·x₀ + M·v₀.
func (t *helmertTransform) Velocity(x, v matrix.Vec3) matrix.Vec3 {
	if t.factory.inverted {
		x0 := t.Position(x)

		return t.mInv.MulVec(v.Sub(t.tDot).Sub(t.mDot.MulVec(x0)))
	}

	return t.tDot.Add(t.mDot.MulVec(x)).Add(t.m.MulVec(v))
}

// Acceleration: a₁ = M·a₀ + 2Ṁ·v₀ (rates are constant).
func (t *helmertTransform) Acceleration(x, v, a matrix.Vec3) matrix.Vec3 {
	if t.factory.inverted {
		v0 := t.Velocity(x, v)

		return t.mInv.MulVec(a.Sub(t.mDot.MulVec(v0).Scale(2)))
	}

	return t.m.MulVec(a).Add(t.mDot.MulVec(v).Scale(2))
}

func (t *helmertTransform) Orientation(q matrix.Mat3) matrix.Mat3 {
	if t.factory.inverted {
		return t.rot.T().Mul(q)
	}

	return t.rot.Mul(q)
}

func (t *helmertTransform) OrientationRate(_ matrix.Mat3, w matrix.Vec3) matrix.Vec3 {
	if t.factory.inverted {
		return t.rot.T().MulVec(w.Sub(t.rotRate))
	}

	return t.rot.MulVec(w).Add(t.rotRate)
}

func (t *helmertTransform) State(s state.State) state.State { return applyState(t, s) }
