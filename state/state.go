// Package state holds the physical quantities that frame transforms act on.
//
// Kinematic carries translational state (position, velocity, acceleration) and
// Attitude carries rotational state (orientation, angular rate). State bundles
// both; a nil Attitude means only translational state is present.
//
// Units are whatever the caller uses consistently (SI by convention: m, m/s,
// m/s², rad/s). Nothing in this package validates them.
package state

import "github.com/katalvlaran/refframe/matrix"

// Kinematic is translational state expressed in some frame.
type Kinematic struct {
	Position     matrix.Vec3
	Velocity     matrix.Vec3
	Acceleration matrix.Vec3
}

// Attitude is rotational state expressed in some frame.
//
// Orientation maps body axes into frame axes. Rate is the body angular
// velocity expressed in frame axes.
type Attitude struct {
	Orientation matrix.Mat3
	Rate        matrix.Vec3
}

// State is the composite quantity accepted by transform.Transform.State.
type State struct {
	Kinematic
	Attitude *Attitude
}

// NewPosVel returns a translational state with zero acceleration.
func NewPosVel(p, v matrix.Vec3) State {
	return State{Kinematic: Kinematic{Position: p, Velocity: v}}
}

// WithAttitude returns a copy of s carrying a.
func (s State) WithAttitude(a Attitude) State {
	s.Attitude = &a

	return s
}

// AllClose reports whether a and b agree within rtol/atol, component by
// component. Attitudes are compared only when both are present; a state with
// attitude never matches one without.
func AllClose(a, b State, rtol, atol float64) bool {
	if !a.Position.AllClose(b.Position, rtol, atol) ||
		!a.Velocity.AllClose(b.Velocity, rtol, atol) ||
		!a.Acceleration.AllClose(b.Acceleration, rtol, atol) {
		return false
	}
	if (a.Attitude == nil) != (b.Attitude == nil) {
		return false
	}
	if a.Attitude == nil {
		return true
	}

	return a.Attitude.Orientation.AllClose(b.Attitude.Orientation, rtol, atol) &&
		a.Attitude.Rate.AllClose(b.Attitude.Rate, rtol, atol)
}
