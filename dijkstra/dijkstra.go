package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// in g under weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. Every evaluated weight must be ≥ 0 and not NaN (ErrNegativeWeight).
//     Weights are checked lazily, so a negative weight on an arc the search
//     never reaches is not reported.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V comparable, E any](g Graph[V, E], source V, weight WeightFunc[E], opts ...Option) (*Result[V, E], error) {
	r, err := newRunner(g, source, weight, opts)
	if err != nil {
		return nil, err
	}

	r.init()
	if err = r.process(nil); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// ShortestPath returns the edges and total weight of a shortest path from
// source to target. The search stops as soon as target is settled.
//
// source == target yields an empty path of weight 0. An unreachable target
// (including one cut off by MaxDistance or InfEdgeThreshold) yields ErrNoPath.
func ShortestPath[V comparable, E any](g Graph[V, E], source, target V, weight WeightFunc[E], opts ...Option) ([]E, float64, error) {
	r, err := newRunner(g, source, weight, append(append([]Option(nil), opts...), WithReturnPath()))
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: target %v", ErrVertexNotFound, target)
	}

	r.init()
	if err = r.process(&target); err != nil {
		return nil, 0, err
	}

	res := r.result()
	d, ok := res.Distance(target)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v → %v", ErrNoPath, source, target)
	}
	edges, err := res.PathTo(target)
	if err != nil {
		return nil, 0, err
	}

	return edges, d, nil
}

// runner holds the mutable state for a single search.
type runner[V comparable, E any] struct {
	g       Graph[V, E]
	weight  WeightFunc[E]
	source  V
	options Options
	dist    map[V]float64   // best-known tentative distance
	prev    map[V]Arc[V, E] // nil unless ReturnPath
	visited map[V]bool      // settled vertices
	pq      nodePQ[V]
	seq     uint64 // push counter for tie-breaking
}

// newRunner validates inputs in documented order and applies options.
func newRunner[V comparable, E any](g Graph[V, E], source V, weight WeightFunc[E], opts []Option) (*runner[V, E], error) {
	// 1) Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	r := &runner[V, E]{
		g:       g,
		weight:  weight,
		source:  source,
		options: cfg,
		dist:    make(map[V]float64),
		visited: make(map[V]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]Arc[V, E])
	}

	return r, nil
}

// init seeds the heap with the source at distance zero.
func (r *runner[V, E]) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	r.push(r.source, 0)
}

// process repeatedly settles the closest unsettled vertex and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices settled).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - target (when non-nil) has been settled.
func (r *runner[V, E]) process(target *V) error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u, d := item.id, item.dist

		// 2) Stale entry of an already settled vertex.
		if r.visited[u] {
			continue
		}

		// 3) Everything left is farther than the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true
		if target != nil && u == *target {
			return nil
		}

		// 5) Relax outgoing arcs.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax evaluates the weight of each arc leaving u towards an unsettled
// vertex and records strictly shorter tentative distances.
func (r *runner[V, E]) relax(u V) error {
	var (
		w, newDist float64
		cur        float64
		seen       bool
	)
	for _, arc := range r.g.Arcs(u) {
		// Settled vertices cannot improve; skip the weight evaluation too.
		if r.visited[arc.To] {
			continue
		}

		w = r.weight(arc.Edge)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v → %v weight=%v", ErrNegativeWeight, u, arc.To, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict "<" keeps the first-found predecessor among equal-cost paths.
		cur, seen = r.dist[arc.To]
		if seen && newDist >= cur {
			continue
		}

		r.dist[arc.To] = newDist
		if r.prev != nil {
			r.prev[arc.To] = Arc[V, E]{To: u, Edge: arc.Edge}
		}
		r.push(arc.To, newDist)
	}

	return nil
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner[V, E]) push(v V, d float64) {
	heap.Push(&r.pq, &nodeItem[V]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// result keeps only settled vertices: tentative distances of vertices never
// popped (because of MaxDistance or an early target stop) are not shortest.
func (r *runner[V, E]) result() *Result[V, E] {
	dist := make(map[V]float64, len(r.visited))
	for v := range r.visited {
		dist[v] = r.dist[v]
	}

	return &Result[V, E]{Source: r.source, Dist: dist, prev: r.prev}
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem[V comparable] struct {
	id   V
	dist float64
	seq  uint64
}

// nodePQ is a min-heap ordered by (dist, seq). Outdated entries stay in the
// heap and are skipped when popped (lazy decrease-key).
type nodePQ[V comparable] []*nodeItem[V]

func (pq nodePQ[V]) Len() int { return len(pq) }

func (pq nodePQ[V]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
