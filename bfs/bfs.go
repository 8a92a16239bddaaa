package bfs

import (
	"fmt"

	"github.com/katalvlaran/refframe/dijkstra"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E any] struct {
	graph dijkstra.Graph[V, E]
	opts  Options[V, E]
	queue []queueItem[V]
	res   *Result[V, E]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or a wrapped OnVisit error.
func BFS[V comparable, E any](g dijkstra.Graph[V, E], start V, opts ...Option[V, E]) (*Result[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[V, E]{
		graph: g,
		opts:  o,
		res: &Result[V, E]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]dijkstra.Arc[V, E]),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v seen at depth d.
func (w *walker[V, E]) enqueue(v V, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Arcs(item.v) {
		if !w.opts.FilterArc(item.v, a) {
			continue
		}
		if _, seen := w.res.Depth[a.To]; seen {
			continue
		}
		w.res.Parent[a.To] = dijkstra.Arc[V, E]{To: item.v, Edge: a.Edge}
		w.enqueue(a.To, next)
	}
}
