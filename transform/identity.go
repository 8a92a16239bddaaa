package transform

import (
	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/state"
)

// Identity returns the factory mapping f onto itself. It costs 0, is valid at
// every epoch and is its own inverse.
func Identity(f frame.Frame) Factory {
	return identityFactory{f: f}
}

type identityFactory struct {
	f frame.Frame
}

func (i identityFactory) From() frame.Frame        { return i.f }
func (i identityFactory) To() frame.Frame          { return i.f }
func (i identityFactory) Cost(epoch.Epoch) float64 { return 0 }
func (i identityFactory) Inverse() Factory         { return i }
func (i identityFactory) Transform(e epoch.Epoch) (Transform, error) {
	return identityTransform{f: i.f, e: e}, nil
}

type identityTransform struct {
	f frame.Frame
	e epoch.Epoch
}

func (t identityTransform) From() frame.Frame           { return t.f }
func (t identityTransform) To() frame.Frame             { return t.f }
func (t identityTransform) Epoch() epoch.Epoch          { return t.e }
func (t identityTransform) Factory() Factory            { return identityFactory{f: t.f} }
func (t identityTransform) Inverse() (Transform, error) { return t, nil }

func (identityTransform) Position(p matrix.Vec3) matrix.Vec3           { return p }
func (identityTransform) Velocity(_, v matrix.Vec3) matrix.Vec3        { return v }
func (identityTransform) Acceleration(_, _, a matrix.Vec3) matrix.Vec3 { return a }
func (identityTransform) Orientation(q matrix.Mat3) matrix.Mat3        { return q }

func (identityTransform) OrientationRate(_ matrix.Mat3, w matrix.Vec3) matrix.Vec3 { return w }

func (t identityTransform) State(s state.State) state.State { return applyState(t, s) }
