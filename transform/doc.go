// Package transform defines how coordinates move between two reference frames.
//
// Two contracts carry the model:
//
//   - Factory knows the relationship between a pair of frames (F0 → F1) over
//     time. It reports a non-negative traversal Cost at an epoch, produces the
//     Transform valid at that epoch, and provides the Factory of the opposite
//     direction.
//   - Transform is bound to exactly one (factory, epoch). It maps position,
//     velocity, acceleration, orientation and angular rate from F0 to F1.
//     Velocity and acceleration take the lower-order quantities too, because a
//     rotating frame mixes them.
//
// Inverse of a Transform is always obtained through its factory:
// t.Inverse() == t.Factory().Inverse().Transform(t.Epoch()). Transforms never
// invert their own numbers.
//
// Combinators:
//
//	f, _ := transform.Compose(f01, f12)   // F0 → F2, cost = c01 + c12
//	t, _ := transform.Then(t01, t12)      // apply t01, then t12
//	t, _ := transform.Chain(e, f01, f12, f23)
//
// Building blocks shipped here:
//
//   - Identity          pass-through, cost 0.
//   - NewKinematic      rotating, translating frame with a closed-form inverse.
//   - NewRotation       constant rotation.
//   - NewSpin           uniform rotation about a fixed axis.
//   - NewHelmert        14-parameter similarity between terrestrial realizations.
//   - Bounded           restricts any factory to an epoch window.
//
// Physical models of specific frames (precession, nutation, Earth rotation)
// are out of scope; they plug in as Factory implementations.
package transform
