package framegraph

import (
	"fmt"

	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/transform"
)

// Child describes a frame defined relative to a parent frame. Building a
// Child has no side effects; Adopt registers it.
type Child interface {
	Frame() frame.Frame
	Parent() frame.Frame
	ParentToChild() transform.Factory
}

// InverseProvider is implemented by a Child that supplies its own
// child → parent factory instead of relying on ParentToChild().Inverse().
type InverseProvider interface {
	ChildToParent() transform.Factory
}

// Adopt registers c under its parent and returns the child frame.
func (g *Graph) Adopt(c Child) (frame.Frame, error) {
	if g == nil {
		return frame.Frame{}, ErrNilGraph
	}
	if c == nil {
		return frame.Frame{}, g.reject(fmt.Errorf("%w: nil child", ErrInconsistentRegistration))
	}

	var inverse transform.Factory
	if ip, ok := c.(InverseProvider); ok {
		inverse = ip.ChildToParent()
	}
	if err := g.Register(c.Parent(), c.Frame(), c.ParentToChild(), inverse); err != nil {
		return frame.Frame{}, err
	}

	return c.Frame(), nil
}

// Definition is a plain Child value.
type Definition struct {
	Child    frame.Frame
	Of       frame.Frame
	Forward  transform.Factory // Of → Child
	Backward transform.Factory // Child → Of; nil derives Forward.Inverse()
}

func (d Definition) Frame() frame.Frame               { return d.Child }
func (d Definition) Parent() frame.Frame              { return d.Of }
func (d Definition) ParentToChild() transform.Factory { return d.Forward }
func (d Definition) ChildToParent() transform.Factory { return d.Backward }

// Realization defines the realization of kind labelled year as a Helmert
// child of parent. The Helmert reference epoch defaults to the realization
// epoch (year-01-01 12:00 TT) when p.Reference is zero.
func Realization(parent frame.Frame, kind frame.Kind, year int, p transform.HelmertParams, opts ...transform.HelmertOption) (Definition, error) {
	child, err := frame.Realized(kind, year)
	if err != nil {
		return Definition{}, err
	}
	if p.Reference.IsZero() {
		p.Reference, _ = child.RealizationEpoch()
	}
	f, err := transform.NewHelmert(parent, child, p, opts...)
	if err != nil {
		return Definition{}, err
	}

	return Definition{Child: child, Of: parent, Forward: f}, nil
}
