package nodegraph

import "errors"

// Sentinel errors for the nodegraph package. Compare with errors.Is;
// wrap with %w at call sites that need to attach node/edge ids.
var (
	// ErrNodeExists indicates AddNode was called twice for the same id.
	ErrNodeExists = errors.New("nodegraph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a node id that was
	// never added.
	ErrNodeNotFound = errors.New("nodegraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id outside
	// the arena's current length, or one that has been removed by
	// compression.
	ErrEdgeNotFound = errors.New("nodegraph: edge not found")

	// ErrSelfLoopSkipped is a diagnostic (not a hard failure) noting that a
	// self-loop was encountered during compression and left untouched, per
	// the §4.1 edge case.
	ErrSelfLoopSkipped = errors.New("nodegraph: self-loop not compressed")
)
