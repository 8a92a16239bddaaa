// Package refframe is a registry of reference frames and of the time-dependent
// transforms between them, with automatic path finding.
//
// 🚀 What is refframe?
//
//	An in-memory, thread-safe frame graph that brings together:
//		• Frames: celestial (ICRF, GCRF, EME2000, CIRS, TIRS) and realized
//		  terrestrial frames (ITRF2014, ETRF2000, ...), or any custom kind
//		• Transforms: position, velocity, acceleration, orientation and
//		  angular rate, each with an exact inverse
//		• Factories: rotation, translation, spin, kinematic and 14-parameter
//		  Helmert models, plus validity windows
//		• Composition: chains of factories fold into one composite transform
//		• Path finding: Dijkstra over costs evaluated at the query epoch
//
// ✨ Why choose refframe?
//
//   - Ask for A → B at time t and get one transform; the route is found for you
//   - Routes follow time: an edge that is only valid for some epochs is
//     skipped outside them
//   - Concurrent queries, serialized registrations, cached routes
//   - Structured logs (zerolog) and Prometheus metrics when you want them
//
// Packages:
//
//	epoch/      - TT instants as Julian dates, parsing and arithmetic
//	matrix/     - Vec3/Mat3 primitives, rotations, skew matrices
//	state/      - kinematic and attitude state values
//	frame/      - frame identities, parsing, lookup predicates
//	transform/  - Transform/Factory contracts, composites, concrete factories
//	dijkstra/   - generic shortest paths with lazily evaluated weights
//	bfs/        - breadth-first reachability over the same graph view
//	framegraph/ - the frame registry and its queries
//	config/     - YAML/TOML frame-graph definitions
//	log/        - logging interface with a zerolog adapter
//	cmd/framectl - command-line queries over a definition file
//
// Quick ASCII example:
//
//	    GCRF ──spin──▶ ITRF2014 ──helmert──▶ ITRF2008
//	                      │
//	                   helmert
//	                      ▼
//	                   ITRF2020
//
//	asking for ITRF2008 → ITRF2020 walks back through ITRF2014 unless a
//	cheaper direct edge is valid at the query epoch.
//
//	go get github.com/katalvlaran/refframe
package refframe
