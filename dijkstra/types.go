package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a weight function returned a negative or NaN value.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable under the current weights.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrPathNotRecorded indicates PathTo was called without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors were not recorded")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would make every arc, zero-weight ones included, impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Arc is an outgoing connection to vertex To carrying payload Edge.
type Arc[V comparable, E any] struct {
	To   V
	Edge E
}

// Graph is the read-only view the search walks.
//
// Arcs must return the outgoing arcs of v in a stable order; the search does
// not retain or modify the slice. Implementations guard their own concurrency.
type Graph[V comparable, E any] interface {
	HasVertex(v V) bool
	Arcs(v V) []Arc[V, E]
}

// WeightFunc computes the traversal cost of an edge payload.
type WeightFunc[E any] func(E) float64

// Options configures one search.
//
// ReturnPath       – record predecessors for Result.PathTo.
// MaxDistance      – vertices farther than this are never settled. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ threshold are skipped. Default +Inf.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the distance explored. Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks arcs with weight ≥ threshold as impassable.
// Panics if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults: no path recording, no distance cap,
// only +Inf weights impassable.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of a single-source search.
type Result[V comparable, E any] struct {
	// Source is the vertex the search started from.
	Source V

	// Dist maps every settled vertex to its shortest distance from Source.
	// Unreached vertices are absent.
	Dist map[V]float64

	prev map[V]Arc[V, E] // settled vertex → arc that reached it (From stored in To)
}

// Distance returns the shortest distance to v and whether v was reached.
func (r *Result[V, E]) Distance(v V) (float64, bool) {
	d, ok := r.Dist[v]
	if !ok {
		return math.Inf(1), false
	}

	return d, true
}

// PathTo returns the edges of the shortest path from Source to target, in
// traversal order. The path to Source itself is empty.
func (r *Result[V, E]) PathTo(target V) ([]E, error) {
	if r.prev == nil {
		return nil, ErrPathNotRecorded
	}
	if _, ok := r.Dist[target]; !ok {
		return nil, ErrNoPath
	}

	var edges []E
	for v := target; v != r.Source; {
		step := r.prev[v]
		edges = append(edges, step.Edge)
		v = step.To
	}
	// Reverse in place: collected target → source.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges, nil
}
