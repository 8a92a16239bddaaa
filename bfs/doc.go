// Package bfs provides breadth-first search over any dijkstra.Graph,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Arcs can be pruned with WithFilterArc, e.g. to skip edges that are
//     impassable at some epoch.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Arcs returns them, so a graph
//	with stable arc order gives a reproducible visit sequence.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string, edge](g, "A",
//	    bfs.WithMaxDepth[string, edge](3),
//	    bfs.WithFilterArc(func(from string, a dijkstra.Arc[string, edge]) bool { return a.Edge.open }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs
