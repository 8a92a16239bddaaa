package transform

import (
	"math"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/state"
)

// Factory produces transforms between a fixed pair of frames.
//
// Cost must be cheap, deterministic, free of side effects and ≥ 0 at every
// epoch; +Inf means the factory cannot be used at that epoch. Transform may
// fail with ErrInvalidEpoch. Inverse().Inverse() behaves like the receiver.
type Factory interface {
	From() frame.Frame
	To() frame.Frame
	Cost(e epoch.Epoch) float64
	Transform(e epoch.Epoch) (Transform, error)
	Inverse() Factory
}

// Transform maps quantities expressed in From() into To() at Epoch().
//
// Quantity methods are total: they never fail and never mutate arguments.
type Transform interface {
	From() frame.Frame
	To() frame.Frame
	Epoch() epoch.Epoch
	Factory() Factory

	Position(p matrix.Vec3) matrix.Vec3
	Velocity(p, v matrix.Vec3) matrix.Vec3
	Acceleration(p, v, a matrix.Vec3) matrix.Vec3
	Orientation(q matrix.Mat3) matrix.Mat3
	OrientationRate(q matrix.Mat3, w matrix.Vec3) matrix.Vec3
	State(s state.State) state.State

	// Inverse returns Factory().Inverse().Transform(Epoch()).
	Inverse() (Transform, error)
}

// CostFunc computes a factory cost at an epoch.
type CostFunc func(e epoch.Epoch) float64

// Constant returns a CostFunc that ignores the epoch.
func Constant(c float64) CostFunc {
	return func(epoch.Epoch) float64 { return c }
}

// Impassable is the cost of a factory that cannot be used.
var Impassable = math.Inf(1)

// Name renders a factory as "FROM→TO" for logs and errors.
func Name(f Factory) string {
	if f == nil {
		return "<nil>"
	}

	return f.From().String() + "→" + f.To().String()
}

// applyState maps a full state through t's quantity methods.
func applyState(t Transform, s state.State) state.State {
	out := state.State{
		Kinematic: state.Kinematic{
			Position:     t.Position(s.Position),
			Velocity:     t.Velocity(s.Position, s.Velocity),
			Acceleration: t.Acceleration(s.Position, s.Velocity, s.Acceleration),
		},
	}
	if s.Attitude != nil {
		out.Attitude = &state.Attitude{
			Orientation: t.Orientation(s.Attitude.Orientation),
			Rate:        t.OrientationRate(s.Attitude.Orientation, s.Attitude.Rate),
		}
	}

	return out
}
