package transform

import (
	"fmt"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/state"
)

// InverseOverhead is the cost added to the inverse direction of a kinematic
// factory built with NewKinematic.
const InverseOverhead = 198.0

// KinematicParams describe frame F1 relative to F0 at one epoch:
//
//	r₁ = R·(r₀ + T)
//	v₁ = R·(v₀ + V + ω×(r₀+T))
//	a₁ = R·(a₀ + A + 2ω×(v₀+V) + α×(r₀+T) + ω×(ω×(r₀+T)))
//	q₁ = R·q₀
//	w₁ = R·(w₀ + ω)
//
// V and A are the first and second time derivatives of T. ω and α are
// expressed in F0 axes and satisfy dR/dt = R·[ω]×, dω/dt = α.
type KinematicParams struct {
	Translation          matrix.Vec3 // T
	Velocity             matrix.Vec3 // V
	Acceleration         matrix.Vec3 // A
	Rotation             matrix.Mat3 // R
	RotationRate         matrix.Vec3 // ω
	RotationAcceleration matrix.Vec3 // α
}

// IdentityParams returns parameters with R = I and everything else zero.
func IdentityParams() KinematicParams {
	return KinematicParams{Rotation: matrix.Identity()}
}

// Inverse returns the parameters of the opposite direction (F1 → F0) in closed form.
//
//	Rᵢ = Rᵀ          Tᵢ = −R·T
//	ωᵢ = −R·ω        Vᵢ = −R·(V + ω×T)
//	αᵢ = −R·α        Aᵢ = −R·(A + 2ω×V + α×T + ω×(ω×T))
func (p KinematicParams) Inverse() KinematicParams {
	R, T, V, A := p.Rotation, p.Translation, p.Velocity, p.Acceleration
	w, alpha := p.RotationRate, p.RotationAcceleration

	wxT := w.Cross(T)
	acc := A.Add(w.Cross(V).Scale(2)).Add(alpha.Cross(T)).Add(w.Cross(wxT))

	return KinematicParams{
		Translation:          R.MulVec(T).Neg(),
		Velocity:             R.MulVec(V.Add(wxT)).Neg(),
		Acceleration:         R.MulVec(acc).Neg(),
		Rotation:             R.T(),
		RotationRate:         R.MulVec(w).Neg(),
		RotationAcceleration: R.MulVec(alpha).Neg(),
	}
}

// ParamsFunc yields the kinematic parameters valid at an epoch.
type ParamsFunc func(e epoch.Epoch) (KinematicParams, error)

// KinematicOption configures NewKinematic.
type KinematicOption func(*kinematicFactory)

// WithInverseOverhead overrides the cost added in the inverse direction.
// Panics on a negative or NaN overhead.
func WithInverseOverhead(overhead float64) KinematicOption {
	if err := ValidateCost(overhead); err != nil {
		panic(err.Error())
	}

	return func(k *kinematicFactory) {
		k.overhead = overhead
	}
}

// NewKinematic returns the factory F0 → F1 described by params. Its inverse
// evaluates the same params and inverts them with KinematicParams.Inverse,
// at cost(e) + InverseOverhead.
func NewKinematic(from, to frame.Frame, cost CostFunc, params ParamsFunc, opts ...KinematicOption) Factory {
	k := &kinematicFactory{
		from:     from,
		to:       to,
		cost:     cost,
		params:   params,
		overhead: InverseOverhead,
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// NewRotation returns a constant-rotation factory: r₁ = R·r₀. Inverting a
// rotation is a transpose, so no inverse overhead applies.
func NewRotation(from, to frame.Frame, r matrix.Mat3, cost float64) (Factory, error) {
	if !r.IsOrthonormal() {
		return nil, fmt.Errorf("rotation %s→%s: %w", from, to, matrix.ErrNotOrthonormal)
	}
	if err := ValidateCost(cost); err != nil {
		return nil, err
	}
	p := KinematicParams{Rotation: r}

	return NewKinematic(from, to, Constant(cost), func(epoch.Epoch) (KinematicParams, error) {
		return p, nil
	}, WithInverseOverhead(0)), nil
}

// NewTranslation returns a constant-offset factory: r₁ = r₀ + t.
func NewTranslation(from, to frame.Frame, t matrix.Vec3, cost float64) (Factory, error) {
	if !t.IsFinite() {
		return nil, fmt.Errorf("translation %s→%s: %w", from, to, matrix.ErrNaNInf)
	}
	if err := ValidateCost(cost); err != nil {
		return nil, err
	}
	p := KinematicParams{Translation: t, Rotation: matrix.Identity()}

	return NewKinematic(from, to, Constant(cost), func(epoch.Epoch) (KinematicParams, error) {
		return p, nil
	}, WithInverseOverhead(0)), nil
}

// SpinParams describe a uniform rotation about a fixed axis:
// angle(e) = Angle0 + Rate·(e − Reference), with Rate in rad/s.
type SpinParams struct {
	Axis      matrix.Vec3
	Angle0    float64
	Rate      float64
	Reference epoch.Epoch
}

// NewSpin returns the factory of a frame spinning about p.Axis relative to
// from. The rate enters velocities and angular rates through ω = Rate·axis.
func NewSpin(from, to frame.Frame, p SpinParams, cost float64) (Factory, error) {
	axis, err := p.Axis.Normalize()
	if err != nil {
		return nil, fmt.Errorf("spin %s→%s: %w", from, to, err)
	}
	if err = ValidateCost(cost); err != nil {
		return nil, err
	}
	omega := axis.Scale(p.Rate)

	return NewKinematic(from, to, Constant(cost), func(e epoch.Epoch) (KinematicParams, error) {
		angle := p.Angle0 + p.Rate*e.Sub(p.Reference)
		r, err := matrix.AxisAngle(axis, angle)
		if err != nil {
			return KinematicParams{}, fmt.Errorf("%w: %v", ErrInvalidEpoch, err)
		}

		return KinematicParams{Rotation: r, RotationRate: omega}, nil
	}, WithInverseOverhead(0)), nil
}

type kinematicFactory struct {
	from, to frame.Frame
	cost     CostFunc
	params   ParamsFunc
	overhead float64
	inverted bool
}

func (k *kinematicFactory) From() frame.Frame { return k.from }
func (k *kinematicFactory) To() frame.Frame   { return k.to }

func (k *kinematicFactory) Cost(e epoch.Epoch) float64 {
	c := k.cost(e)
	if k.inverted {
		c += k.overhead
	}

	return c
}

func (k *kinematicFactory) Transform(e epoch.Epoch) (Transform, error) {
	p, err := k.params(e)
	if err != nil {
		return nil, err
	}
	if k.inverted {
		p = p.Inverse()
	}

	return &kinematicTransform{factory: k, epoch: e, p: p}, nil
}

func (k *kinematicFactory) Inverse() Factory {
	inv := *k
	inv.from, inv.to = k.to, k.from
	inv.inverted = !k.inverted

	return &inv
}

type kinematicTransform struct {
	factory *kinematicFactory
	epoch   epoch.Epoch
	p       KinematicParams
}

func (t *kinematicTransform) From() frame.Frame  { return t.factory.from }
func (t *kinematicTransform) To() frame.Frame    { return t.factory.to }
func (t *kinematicTransform) Epoch() epoch.Epoch { return t.epoch }
func (t *kinematicTransform) Factory() Factory   { return t.factory }

func (t *kinematicTransform) Inverse() (Transform, error) {
	return t.factory.Inverse().Transform(t.epoch)
}

// Params returns the parameters this transform applies.
func (t *kinematicTransform) Params() KinematicParams { return t.p }

func (t *kinematicTransform) Position(r matrix.Vec3) matrix.Vec3 {
	return t.p.Rotation.MulVec(r.Add(t.p.Translation))
}

func (t *kinematicTransform) Velocity(r, v matrix.Vec3) matrix.Vec3 {
	rt := r.Add(t.p.Translation)
	vt := v.Add(t.p.Velocity).Add(t.p.RotationRate.Cross(rt))

	return t.p.Rotation.MulVec(vt)
}

func (t *kinematicTransform) Acceleration(r, v, a matrix.Vec3) matrix.Vec3 {
	w := t.p.RotationRate
	rt := r.Add(t.p.Translation)
	vt := v.Add(t.p.Velocity)

	at := a.Add(t.p.Acceleration).
		Add(w.Cross(vt).Scale(2)).
		Add(t.p.RotationAcceleration.Cross(rt)).
		Add(w.Cross(w.Cross(rt)))

	return t.p.Rotation.MulVec(at)
}

func (t *kinematicTransform) Orientation(q matrix.Mat3) matrix.Mat3 {
	return t.p.Rotation.Mul(q)
}

func (t *kinematicTransform) OrientationRate(_ matrix.Mat3, w matrix.Vec3) matrix.Vec3 {
	return t.p.Rotation.MulVec(w.Add(t.p.RotationRate))
}

func (t *kinematicTransform) State(s state.State) state.State { return applyState(t, s) }
