package transform

import (
	"fmt"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
)

// Bounded restricts f to epochs in [from, to]. Outside the window Cost is
// Impassable, so a graph search routes around it, and Transform fails with
// ErrInvalidEpoch. A graph query whose every route needs such an edge
// reports ErrInvalidEpoch as well. The inverse is bounded by the same window.
func Bounded(f Factory, from, to epoch.Epoch) (Factory, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: window %s .. %s is empty", ErrInvalidEpoch, from, to)
	}

	return &boundedFactory{inner: f, from: from, to: to}, nil
}

type boundedFactory struct {
	inner    Factory
	from, to epoch.Epoch
}

func (b *boundedFactory) From() frame.Frame { return b.inner.From() }
func (b *boundedFactory) To() frame.Frame   { return b.inner.To() }

func (b *boundedFactory) contains(e epoch.Epoch) bool {
	return !e.Before(b.from) && !e.After(b.to)
}

func (b *boundedFactory) Cost(e epoch.Epoch) float64 {
	if !b.contains(e) {
		return Impassable
	}

	return b.inner.Cost(e)
}

func (b *boundedFactory) Transform(e epoch.Epoch) (Transform, error) {
	if !b.contains(e) {
		return nil, fmt.Errorf("%w: %s outside %s .. %s for %s", ErrInvalidEpoch, e, b.from, b.to, Name(b))
	}
	t, err := b.inner.Transform(e)
	if err != nil {
		return nil, err
	}

	return &boundedTransform{Transform: t, factory: b}, nil
}

func (b *boundedFactory) Inverse() Factory {
	return &boundedFactory{inner: b.inner.Inverse(), from: b.from, to: b.to}
}

// boundedTransform reports the bounded factory as its origin so that
// Inverse stays inside the window.
type boundedTransform struct {
	Transform
	factory *boundedFactory
}

func (t *boundedTransform) Factory() Factory { return t.factory }

func (t *boundedTransform) Inverse() (Transform, error) {
	return t.factory.Inverse().Transform(t.Epoch())
}
