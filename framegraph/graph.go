package framegraph

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/refframe/dijkstra"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/log"
	"github.com/katalvlaran/refframe/transform"
)

// arc is the adjacency entry the search walks.
type arc = dijkstra.Arc[frame.Frame, *Edge]

// Graph is the frame registry. The zero value is not usable; call New.
//
// mu guards frames, out and generation. The cache has its own lock and is
// keyed by generation, so entries computed before a registration are never
// served after it.
type Graph struct {
	mu sync.RWMutex

	frames     map[frame.Frame]struct{}
	out        map[frame.Frame][]arc // outgoing arcs, sorted by target name
	edgeCount  int
	generation uint64

	logger  log.Logger
	metrics *metrics
	cache   *pathCache
	flight  singleflight.Group
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger routes registration and query diagnostics to l.
func WithLogger(l log.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics registers the graph's collectors with reg. Registering two
// graphs with the same registerer panics, as prometheus rejects duplicate
// collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *Graph) {
		if reg != nil {
			g.metrics = newMetrics(reg)
		}
	}
}

// WithPathCache enables an LRU of up to maxEntries resolved paths keyed by
// (from, to, epoch). Concurrent misses on the same key run one search.
// maxEntries ≤ 0 disables caching.
func WithPathCache(maxEntries int) Option {
	return func(g *Graph) {
		if maxEntries > 0 {
			g.cache = newPathCache(maxEntries)
		} else {
			g.cache = nil
		}
	}
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		frames: make(map[frame.Frame]struct{}),
		out:    make(map[frame.Frame][]arc),
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddRoot adds f as an isolated frame. Adding an existing frame is a no-op.
func (g *Graph) AddRoot(f frame.Frame) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := f.Validate(); err != nil {
		return g.reject(fmt.Errorf("%w: %w", ErrInconsistentRegistration, err))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.frames[f]; ok {
		return nil
	}
	g.frames[f] = struct{}{}
	g.bumpLocked()
	g.logger.Debug("root frame added", log.Stringer("frame", f))
	g.metrics.registration("ok")

	return nil
}

// Register attaches child under parent with the pair of factories mapping
// between them. A nil childToParent is derived as parentToChild.Inverse().
//
// Register is all-or-nothing. It fails with ErrInconsistentRegistration,
// leaving the graph untouched, when:
//   - parentToChild is nil, or either frame fails frame.Validate;
//   - parent == child;
//   - parent is not registered (the error also matches ErrFrameNotFound);
//   - child is already connected to the graph;
//   - a factory's frames do not match (parent, child) or (child, parent).
//
// A child previously added with AddRoot and still unconnected may be
// registered.
func (g *Graph) Register(parent, child frame.Frame, parentToChild, childToParent transform.Factory) error {
	if g == nil {
		return ErrNilGraph
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Validate inputs and graph state without mutating anything.
	fwd, inv, err := g.checkPairLocked(parent, child, parentToChild, childToParent)
	if err != nil {
		return g.reject(err)
	}
	if _, ok := g.frames[parent]; !ok {
		return g.reject(fmt.Errorf("%w: %w: parent %s", ErrInconsistentRegistration, ErrFrameNotFound, parent))
	}
	if len(g.out[child]) > 0 {
		return g.reject(fmt.Errorf("%w: %s is already registered", ErrInconsistentRegistration, child))
	}

	// 2) Commit.
	g.frames[child] = struct{}{}
	g.insertArcLocked(&Edge{From: parent, To: child, Factory: fwd})
	g.insertArcLocked(&Edge{From: child, To: parent, Factory: inv})
	g.bumpLocked()

	g.logger.Debug("frame registered",
		log.Stringer("parent", parent),
		log.Stringer("child", child),
	)
	g.metrics.registration("ok")

	return nil
}

// Connect adds an extra pair of edges between two registered frames, such as
// a direct shortcut next to a multi-hop route. A nil inverse is derived as
// factory.Inverse(). Connect fails with ErrInconsistentRegistration when
// either frame is unknown, from == to, an edge between them already exists
// in either direction, or the factory frames do not match.
func (g *Graph) Connect(from, to frame.Frame, factory, inverse transform.Factory) error {
	if g == nil {
		return ErrNilGraph
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fwd, inv, err := g.checkPairLocked(from, to, factory, inverse)
	if err != nil {
		return g.reject(err)
	}
	for _, f := range []frame.Frame{from, to} {
		if _, ok := g.frames[f]; !ok {
			return g.reject(fmt.Errorf("%w: %w: %s", ErrInconsistentRegistration, ErrFrameNotFound, f))
		}
	}
	if g.hasEdgeLocked(from, to) || g.hasEdgeLocked(to, from) {
		return g.reject(fmt.Errorf("%w: %s and %s are already connected", ErrInconsistentRegistration, from, to))
	}

	g.insertArcLocked(&Edge{From: from, To: to, Factory: fwd})
	g.insertArcLocked(&Edge{From: to, To: from, Factory: inv})
	g.bumpLocked()

	g.logger.Debug("frames connected", log.Stringer("from", from), log.Stringer("to", to))
	g.metrics.registration("ok")

	return nil
}

// checkPairLocked validates the frames and factories of a new edge pair and
// resolves a nil inverse.
func (g *Graph) checkPairLocked(a, b frame.Frame, ab, ba transform.Factory) (transform.Factory, transform.Factory, error) {
	if ab == nil {
		return nil, nil, fmt.Errorf("%w: %w for %s→%s", ErrInconsistentRegistration, transform.ErrNilFactory, a, b)
	}
	for _, f := range []frame.Frame{a, b} {
		if err := f.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInconsistentRegistration, err)
		}
	}
	if a == b {
		return nil, nil, fmt.Errorf("%w: %s cannot be attached to itself", ErrInconsistentRegistration, a)
	}
	if ba == nil {
		ba = ab.Inverse()
	}
	if ab.From() != a || ab.To() != b {
		return nil, nil, fmt.Errorf("%w: factory %s does not map %s→%s",
			ErrInconsistentRegistration, transform.Name(ab), a, b)
	}
	if ba.From() != b || ba.To() != a {
		return nil, nil, fmt.Errorf("%w: factory %s does not map %s→%s",
			ErrInconsistentRegistration, transform.Name(ba), b, a)
	}

	return ab, ba, nil
}

// insertArcLocked keeps out[e.From] sorted by target name so searches are
// deterministic.
func (g *Graph) insertArcLocked(e *Edge) {
	arcs := g.out[e.From]
	name := e.To.String()
	idx := sort.Search(len(arcs), func(i int) bool { return arcs[i].To.String() >= name })
	g.out[e.From] = slices.Insert(arcs, idx, arc{To: e.To, Edge: e})
	g.edgeCount++
}

func (g *Graph) hasEdgeLocked(from, to frame.Frame) bool {
	for _, a := range g.out[from] {
		if a.To == to {
			return true
		}
	}

	return false
}

// bumpLocked invalidates cached paths.
func (g *Graph) bumpLocked() {
	g.generation++
	if g.cache != nil {
		g.cache.purge()
	}
}

// reject logs and counts a refused registration, then returns err.
func (g *Graph) reject(err error) error {
	g.logger.Warn("registration rejected", log.Err(err))
	g.metrics.registration("rejected")

	return err
}

// HasFrame reports whether f is registered.
func (g *Graph) HasFrame(f frame.Frame) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.frames[f]

	return ok
}

// Frames returns all registered frames sorted by name.
func (g *Graph) Frames() []frame.Frame {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedFramesLocked()
}

func (g *Graph) sortedFramesLocked() []frame.Frame {
	out := make([]frame.Frame, 0, len(g.frames))
	for f := range g.frames {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// FindFrame returns the first registered frame, in name order, matching pred.
func (g *Graph) FindFrame(pred frame.Predicate) (frame.Frame, bool) {
	if g == nil || pred == nil {
		return frame.Frame{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, f := range g.sortedFramesLocked() {
		if pred(f) {
			return f, true
		}
	}

	return frame.Frame{}, false
}

// Edges returns the outgoing edges of f sorted by target name.
func (g *Graph) Edges(f frame.Frame) []Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.out[f]
	out := make([]Edge, len(arcs))
	for i, a := range arcs {
		out[i] = *a.Edge
	}

	return out
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// view adapts a read-locked Graph to dijkstra.Graph.
type view struct{ g *Graph }

func (v view) HasVertex(f frame.Frame) bool {
	_, ok := v.g.frames[f]

	return ok
}

func (v view) Arcs(f frame.Frame) []arc { return v.g.out[f] }
