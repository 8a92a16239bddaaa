package transform

import (
	"fmt"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/state"
)

// Compose returns the factory of f0 followed by f1 (F0 → F1 → F2).
// Its cost is the sum of both costs and its inverse is
// Compose(f1.Inverse(), f0.Inverse()).
func Compose(f0, f1 Factory) (Factory, error) {
	if f0 == nil || f1 == nil {
		return nil, ErrNilFactory
	}
	if f0.To() != f1.From() {
		return nil, fmt.Errorf("%w: %s then %s", ErrFrameMismatch, Name(f0), Name(f1))
	}

	return &compositeFactory{first: f0, second: f1}, nil
}

// ChainFactory folds factories with Compose, left to right.
func ChainFactory(factories ...Factory) (Factory, error) {
	if len(factories) == 0 {
		return nil, ErrEmptyChain
	}
	acc := factories[0]
	if acc == nil {
		return nil, ErrNilFactory
	}
	var err error
	for _, f := range factories[1:] {
		if acc, err = Compose(acc, f); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Then returns the transform applying t0 and then t1. Both must be bound to
// the same epoch and t0.To() must equal t1.From(). The result holds both
// stages; nothing is recomputed.
func Then(t0, t1 Transform) (Transform, error) {
	if t0 == nil || t1 == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrNilFactory)
	}
	if t0.To() != t1.From() {
		return nil, fmt.Errorf("%w: %s→%s then %s→%s",
			ErrFrameMismatch, t0.From(), t0.To(), t1.From(), t1.To())
	}
	if !t0.Epoch().Equal(t1.Epoch()) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrEpochMismatch, t0.Epoch(), t1.Epoch())
	}

	return &compositeTransform{
		first:   t0,
		second:  t1,
		factory: &compositeFactory{first: t0.Factory(), second: t1.Factory()},
	}, nil
}

// Chain evaluates every factory at e and folds the transforms with Then.
// The first error is returned unchanged, so ErrInvalidEpoch from any stage
// stays matchable.
func Chain(e epoch.Epoch, factories ...Factory) (Transform, error) {
	if len(factories) == 0 {
		return nil, ErrEmptyChain
	}

	var acc Transform
	for i, f := range factories {
		if f == nil {
			return nil, fmt.Errorf("%w: stage %d", ErrNilFactory, i)
		}
		t, err := f.Transform(e)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = t
			continue
		}
		if acc, err = Then(acc, t); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Stages flattens a transform into its elementary stages in application order.
func Stages(t Transform) []Transform {
	c, ok := t.(*compositeTransform)
	if !ok {
		return []Transform{t}
	}

	return append(Stages(c.first), Stages(c.second)...)
}

type compositeFactory struct {
	first, second Factory
}

func (c *compositeFactory) From() frame.Frame { return c.first.From() }
func (c *compositeFactory) To() frame.Frame   { return c.second.To() }

func (c *compositeFactory) Cost(e epoch.Epoch) float64 {
	return c.first.Cost(e) + c.second.Cost(e)
}

func (c *compositeFactory) Transform(e epoch.Epoch) (Transform, error) {
	t0, err := c.first.Transform(e)
	if err != nil {
		return nil, err
	}
	t1, err := c.second.Transform(e)
	if err != nil {
		return nil, err
	}

	return &compositeTransform{first: t0, second: t1, factory: c}, nil
}

func (c *compositeFactory) Inverse() Factory {
	return &compositeFactory{first: c.second.Inverse(), second: c.first.Inverse()}
}

type compositeTransform struct {
	first, second Transform
	factory       Factory
}

func (c *compositeTransform) From() frame.Frame  { return c.first.From() }
func (c *compositeTransform) To() frame.Frame    { return c.second.To() }
func (c *compositeTransform) Epoch() epoch.Epoch { return c.first.Epoch() }
func (c *compositeTransform) Factory() Factory   { return c.factory }

func (c *compositeTransform) Inverse() (Transform, error) {
	return c.factory.Inverse().Transform(c.Epoch())
}

func (c *compositeTransform) Position(p matrix.Vec3) matrix.Vec3 {
	return c.second.Position(c.first.Position(p))
}

// Velocity needs the intermediate position for the second stage.
func (c *compositeTransform) Velocity(p, v matrix.Vec3) matrix.Vec3 {
	return c.second.Velocity(c.first.Position(p), c.first.Velocity(p, v))
}

func (c *compositeTransform) Acceleration(p, v, a matrix.Vec3) matrix.Vec3 {
	return c.second.Acceleration(
		c.first.Position(p),
		c.first.Velocity(p, v),
		c.first.Acceleration(p, v, a),
	)
}

func (c *compositeTransform) Orientation(q matrix.Mat3) matrix.Mat3 {
	return c.second.Orientation(c.first.Orientation(q))
}

func (c *compositeTransform) OrientationRate(q matrix.Mat3, w matrix.Vec3) matrix.Vec3 {
	return c.second.OrientationRate(c.first.Orientation(q), c.first.OrientationRate(q, w))
}

func (c *compositeTransform) State(s state.State) state.State {
	return c.second.State(c.first.State(s))
}
