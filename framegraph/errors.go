package framegraph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNoPath indicates that no chain of transforms connects two frames at
	// the requested epoch.
	ErrNoPath = errors.New("framegraph: no path between frames")

	// ErrFrameNotFound indicates that a frame is not registered.
	ErrFrameNotFound = errors.New("framegraph: frame not found")

	// ErrInconsistentRegistration indicates a registration that would leave
	// the graph inconsistent. The graph is unchanged when it is returned.
	ErrInconsistentRegistration = errors.New("framegraph: inconsistent registration")

	// ErrNilGraph indicates a method call on a nil *Graph.
	ErrNilGraph = errors.New("framegraph: graph is nil")
)
