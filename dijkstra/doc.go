// Package dijkstra implements Dijkstra's shortest-path search over graphs whose
// edge weights are computed on demand.
//
// Overview:
//
//   - The graph is any value satisfying Graph[V, E]: vertices of a comparable
//     type V and outgoing arcs carrying an edge payload E.
//   - Weights are not stored in the graph. A WeightFunc[E] is evaluated lazily,
//     only for arcs leaving a vertex that is being settled, so a search costs at
//     most one evaluation per reachable arc. This lets the same graph be
//     searched under different weightings, e.g. costs that depend on a time.
//   - Weights must be non-negative. A negative or NaN weight aborts the search
//     with ErrNegativeWeight. Weights ≥ InfEdgeThreshold (default +Inf) mark
//     the arc impassable for this search.
//
// Determinism:
//
//   - Arcs are relaxed in the order Graph.Arcs returns them.
//   - Among equal tentative distances the vertex pushed first is settled first.
//     Given a graph with stable Arcs ordering, results are reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key.
//   - Space: O(V + E) worst case in the heap.
//
// Options:
//
//   - WithReturnPath():        record predecessors so Result.PathTo works.
//   - WithMaxDistance(d):      do not settle vertices farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t): treat weights ≥ t as impassable (t > 0).
//
// Invalid option values panic, as they are programmer errors.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilGraph        the graph is nil.
//   - ErrVertexNotFound  source (or target) is not a vertex of the graph.
//   - ErrNegativeWeight  a weight < 0 or NaN was evaluated.
//   - ErrNoPath          ShortestPath / PathTo could not reach the target.
//   - ErrPathNotRecorded PathTo on a result computed without WithReturnPath.
package dijkstra
