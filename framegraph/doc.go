// Package framegraph keeps the registry of reference frames and the
// transforms between them, and answers "how do I get from A to B at time t".
//
// Overview:
//
//   - Frames are vertices. Every registered relationship contributes two
//     directed edges, one per direction, each carrying a transform.Factory.
//   - A query runs Dijkstra over the factory costs evaluated at the query
//     epoch, so the chosen route can change with time. Costs are evaluated
//     lazily, only for edges the search actually reaches.
//   - The selected factories are bound to the epoch and folded into one
//     composite transform.
//
// Registration is explicit and atomic: a frame value is built first, then
// Register (or Adopt for Child definitions) validates everything before
// touching the graph. The graph only grows; frames are never removed.
//
// Concurrency:
//
//	Queries take a read lock and may run in parallel. Registration takes the
//	write lock and is serialized with queries: a query observes the graph
//	either entirely before or entirely after a registration.
//
// Errors:
//
//   - ErrNoPath                   no route between the frames at that epoch.
//   - ErrFrameNotFound            a queried frame was never registered; always
//     reported together with ErrNoPath.
//   - ErrInconsistentRegistration a registration was rejected; nothing changed.
//   - transform.ErrInvalidEpoch   propagated unchanged from factories.
//   - transform.ErrNegativeCost   a factory reported a negative cost.
//
// Example:
//
//	g := framegraph.New()
//	_ = g.AddRoot(frame.GCRF())
//	_ = g.Register(frame.GCRF(), frame.ITRF(2014), gcrfToItrf, nil)
//	t, err := g.Transform(frame.GCRF(), frame.ITRF(2014), epoch.FromYear(2020))
package framegraph
