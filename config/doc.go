// Package config reads frame-graph definitions from YAML or TOML files and
// registers them with a framegraph.Graph.
//
// A document names its root frames, then lists child frames in registration
// order, each with the edge that maps its parent into it. Optional links add
// extra edges between frames that are already registered.
//
//	roots: [GCRF]
//	frames:
//	  - name: BODY
//	    parent: GCRF
//	    edge:
//	      type: spin
//	      axis: [0, 0, 1]
//	      rate: 7.2921150e-5
//	      reference: "2000-01-01T12:00:00Z"
//
// Edge types are identity, rotation, translation, spin, helmert and
// kinematic. Any edge may carry a cost and a validity window
// (valid_from/valid_to); outside the window the edge is impassable.
//
// Load validates the structure with go-playground/validator tags and then
// the semantics (frame names, epochs, per-type parameters). Build registers
// everything in document order and stops at the first error.
package config
