package framegraph

import (
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/transform"
)

// Edge is a directed connection From → To carrying the factory that maps
// between them.
type Edge struct {
	From    frame.Frame
	To      frame.Frame
	Factory transform.Factory
}

// Path is a route chosen by a query: the edges in traversal order and the
// total cost at the query epoch. A path between a frame and itself has no
// edges and cost 0.
type Path struct {
	Edges []Edge
	Cost  float64
}

// Len returns the number of hops.
func (p Path) Len() int { return len(p.Edges) }

// Frames returns the visited frames including both endpoints. It is nil for
// an empty path.
func (p Path) Frames() []frame.Frame {
	if len(p.Edges) == 0 {
		return nil
	}
	out := make([]frame.Frame, 0, len(p.Edges)+1)
	out = append(out, p.Edges[0].From)
	for _, e := range p.Edges {
		out = append(out, e.To)
	}

	return out
}

// Factories returns the edge factories in traversal order.
func (p Path) Factories() []transform.Factory {
	out := make([]transform.Factory, len(p.Edges))
	for i, e := range p.Edges {
		out[i] = e.Factory
	}

	return out
}

// String renders the path as "GCRF→ITRF2014→ITRF2008".
func (p Path) String() string {
	fs := p.Frames()
	if len(fs) == 0 {
		return "<empty>"
	}
	s := fs[0].String()
	for _, f := range fs[1:] {
		s += "→" + f.String()
	}

	return s
}

// clone returns a copy whose Edges slice is not shared with p.
func (p Path) clone() Path {
	return Path{Edges: append([]Edge(nil), p.Edges...), Cost: p.Cost}
}
