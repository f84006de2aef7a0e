package restriction

import "errors"

// Sentinel errors for the restriction package.
var (
	// ErrDanglingEdge indicates a restriction referenced an edge id that
	// does not exist in the node-based graph. Per §4.2/§7 failure
	// semantics, the restriction is dropped with a diagnostic and
	// extraction continues — this error is returned to the caller of
	// AddWayRestriction/AddNodeRestriction so it can be logged, never
	// propagated as a fatal extraction error.
	ErrDanglingEdge = errors.New("restriction: dangling edge id")

	// ErrCycleInViaPath indicates a way restriction's via-path revisits an
	// edge, which would make the state machine loop forever while
	// stepping. Dropped with a diagnostic, per §4.2/§7.
	ErrCycleInViaPath = errors.New("restriction: cycle in via path")

	// ErrEmptyViaPath indicates a way restriction was registered with no
	// via edges at all.
	ErrEmptyViaPath = errors.New("restriction: empty via path")
)
