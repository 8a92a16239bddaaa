package framegraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/refframe/bfs"
	"github.com/katalvlaran/refframe/dijkstra"
	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/log"
	"github.com/katalvlaran/refframe/transform"
)

// Query result labels.
const (
	resultOK           = "ok"
	resultIdentity     = "identity"
	resultNoPath       = "no_path"
	resultInvalidEpoch = "invalid_epoch"
	resultError        = "error"
)

// Transform returns the transform from → to valid at e.
//
// Steps:
//  1. from == to yields an identity transform, registered or not.
//  2. The cheapest path is found with costs evaluated at e.
//  3. The path factories are evaluated at e and chained in order.
//
// Errors: ErrNoPath (with ErrFrameNotFound for unknown frames),
// transform.ErrInvalidEpoch from any factory, transform.ErrNegativeCost.
func (g *Graph) Transform(from, to frame.Frame, e epoch.Epoch) (transform.Transform, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if from == to {
		g.metrics.query(resultIdentity)

		return transform.Identity(from).Transform(e)
	}

	p, err := g.resolve(from, to, e)
	if err != nil {
		g.metrics.query(classify(err))

		return nil, err
	}

	// Factories are immutable; evaluate them outside the lock.
	t, err := transform.Chain(e, p.Factories()...)
	g.metrics.query(classify(err))
	if err != nil {
		g.logger.Debug("path evaluation failed",
			log.Stringer("path", p),
			log.Stringer("epoch", e),
			log.Err(err),
		)

		return nil, err
	}

	return t, nil
}

// Factory returns the composite factory of the path chosen at e. The route is
// fixed at e; evaluating the factory at other epochs reuses it.
func (g *Graph) Factory(from, to frame.Frame, e epoch.Epoch) (transform.Factory, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if from == to {
		g.metrics.query(resultIdentity)

		return transform.Identity(from), nil
	}
	p, err := g.resolve(from, to, e)
	g.metrics.query(classify(err))
	if err != nil {
		return nil, err
	}

	return transform.ChainFactory(p.Factories()...)
}

// TransformMatching resolves both endpoints with FindFrame and then behaves
// like Transform. An unmatched predicate yields ErrNoPath and ErrFrameNotFound.
func (g *Graph) TransformMatching(fromPred, toPred frame.Predicate, e epoch.Epoch) (transform.Transform, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	from, ok := g.FindFrame(fromPred)
	if !ok {
		g.metrics.query(resultNoPath)

		return nil, fmt.Errorf("%w: %w: no source frame matches", ErrNoPath, ErrFrameNotFound)
	}
	to, ok := g.FindFrame(toPred)
	if !ok {
		g.metrics.query(resultNoPath)

		return nil, fmt.Errorf("%w: %w: no target frame matches", ErrNoPath, ErrFrameNotFound)
	}

	return g.Transform(from, to, e)
}

// Path returns the cheapest route from → to with costs evaluated at e.
// Both frames must be registered, even when from == to.
func (g *Graph) Path(from, to frame.Frame, e epoch.Epoch) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	p, err := g.resolve(from, to, e)
	g.metrics.query(classify(err))

	return p, err
}

// resolve looks the path up in the cache or searches for it.
func (g *Graph) resolve(from, to frame.Frame, e epoch.Epoch) (Path, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, f := range []frame.Frame{from, to} {
		if _, ok := g.frames[f]; !ok {
			return Path{}, fmt.Errorf("%w: %w: %s", ErrNoPath, ErrFrameNotFound, f)
		}
	}
	if from == to {
		return Path{}, nil
	}

	if g.cache == nil {
		return g.searchLocked(from, to, e)
	}

	key := pathKey{from: from, to: to, jd: e.JulianDate(), generation: g.generation}
	if p, ok := g.cache.get(key); ok {
		g.metrics.cache("hit")

		return p.clone(), nil
	}

	v, err, shared := g.flight.Do(key.String(), func() (interface{}, error) {
		p, err := g.searchLocked(from, to, e)
		if err != nil {
			return Path{}, err
		}
		g.cache.set(key, p)

		return p, nil
	})
	if shared {
		g.metrics.cache("shared")
	} else {
		g.metrics.cache("miss")
	}
	if err != nil {
		return Path{}, err
	}

	return v.(Path).clone(), nil
}

// searchLocked runs Dijkstra with costs evaluated at e. The caller holds at
// least the read lock.
func (g *Graph) searchLocked(from, to frame.Frame, e epoch.Epoch) (Path, error) {
	cost := func(edge *Edge) float64 { return edge.Factory.Cost(e) }

	edges, total, err := dijkstra.ShortestPath[frame.Frame, *Edge](view{g: g}, from, to, cost)
	switch {
	case err == nil:
	case errors.Is(err, dijkstra.ErrNoPath):
		if g.reachableOutsideWindowLocked(from, to, e) {
			return Path{}, fmt.Errorf("%w: %w: %s→%s at %s: every route needs an edge outside its validity",
				ErrNoPath, transform.ErrInvalidEpoch, from, to, e)
		}

		return Path{}, fmt.Errorf("%w: %s→%s at %s", ErrNoPath, from, to, e)
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return Path{}, fmt.Errorf("%w: %s→%s at %s: %w", transform.ErrNegativeCost, from, to, e, err)
	default:
		return Path{}, fmt.Errorf("framegraph: %s→%s at %s: %w", from, to, e, err)
	}

	p := Path{Edges: make([]Edge, len(edges)), Cost: total}
	for i, edge := range edges {
		p.Edges[i] = *edge
	}
	g.metrics.hops(p.Len())
	g.logger.Debug("path selected",
		log.Stringer("path", &p),
		log.Float64("cost", total),
		log.Stringer("epoch", e),
	)

	return p, nil
}

// reachableOutsideWindowLocked reports whether to can be reached from from
// when edges that are impassable at e only because e lies outside their
// validity are followed too. Such a failure is an invalid epoch rather than
// a missing route.
func (g *Graph) reachableOutsideWindowLocked(from, to frame.Frame, e epoch.Epoch) bool {
	follow := func(_ frame.Frame, a arc) bool {
		c := a.Edge.Factory.Cost(e)
		if !math.IsInf(c, 1) {
			return transform.ValidateCost(c) == nil
		}
		_, err := a.Edge.Factory.Transform(e)

		return errors.Is(err, transform.ErrInvalidEpoch)
	}
	res, err := bfs.BFS[frame.Frame, *Edge](view{g: g}, from, bfs.WithFilterArc(follow))
	if err != nil {
		return false
	}
	_, ok := res.Depth[to]

	return ok
}

// classify maps a query outcome onto a metrics label.
func classify(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, transform.ErrInvalidEpoch):
		return resultInvalidEpoch
	case errors.Is(err, ErrNoPath):
		return resultNoPath
	default:
		return resultError
	}
}

// Reachable returns the frames reachable from from at e, nearest first by
// hop count. Edges whose cost at e is infinite are not followed. A negative
// or NaN cost on a walked edge fails with transform.ErrNegativeCost, as it
// does for Transform. from itself comes first.
func (g *Graph) Reachable(from frame.Frame, e epoch.Epoch) ([]frame.Frame, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var costErr error
	passable := func(at frame.Frame, a arc) bool {
		c := a.Edge.Factory.Cost(e)
		if err := transform.ValidateCost(c); err != nil {
			if costErr == nil {
				costErr = fmt.Errorf("%w: %s→%s at %s", err, at, a.To, e)
			}

			return false
		}

		return !math.IsInf(c, 1)
	}
	res, err := bfs.BFS[frame.Frame, *Edge](view{g: g}, from, bfs.WithFilterArc(passable))
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrFrameNotFound, from)
	}
	if err != nil {
		return nil, err
	}
	if costErr != nil {
		return nil, costErr
	}

	return res.Order, nil
}
