package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/refframe/dijkstra"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the walk never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option[V comparable, E any] func(*Options[V, E])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable, E any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterArc can skip arcs by returning false.
	FilterArc func(from V, a dijkstra.Arc[V, E]) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions[V comparable, E any]() Options[V, E] {
	return Options[V, E]{
		Ctx:       context.Background(),
		OnVisit:   func(V, int) error { return nil },
		FilterArc: func(V, dijkstra.Arc[V, E]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable, E any](ctx context.Context) Option[V, E] {
	return func(o *Options[V, E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable, E any](fn func(v V, depth int) error) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable, E any](d int) Option[V, E] {
	return func(o *Options[V, E]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc[V comparable, E any](fn func(from V, a dijkstra.Arc[V, E]) bool) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[V comparable, E any] struct {
	Start  V
	Order  []V
	Depth  map[V]int
	Parent map[V]dijkstra.Arc[V, E] // arc into the vertex, To is the predecessor
}

// PathTo returns the arcs from the start vertex to dest, each with To set to
// the vertex it reaches. The path to the start itself is empty.
func (r *Result[V, E]) PathTo(dest V) ([]dijkstra.Arc[V, E], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	var path []dijkstra.Arc[V, E]
	for cur := dest; cur != r.Start; {
		in := r.Parent[cur]
		path = append(path, dijkstra.Arc[V, E]{To: cur, Edge: in.Edge})
		cur = in.To
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
