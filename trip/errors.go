package trip

import "errors"

// ErrEmptyMatrix is returned when the cost matrix has no stops.
var ErrEmptyMatrix = errors.New("trip: empty cost matrix")

// ErrNonSquare is returned when the matrix's row/column counts disagree.
var ErrNonSquare = errors.New("trip: cost matrix is not square")

// ErrStartOutOfRange is returned when Options.StartIndex is outside the
// matrix's bounds.
var ErrStartOutOfRange = errors.New("trip: start index out of range")

// ErrUnreachable is returned when a stop has no finite cost to or from
// every other stop, so no tour can possibly visit it.
var ErrUnreachable = errors.New("trip: stop unreachable from the rest of the set")

// ErrUnsupportedAlgorithm is returned when Options.Algo names a strategy
// Solve doesn't implement.
var ErrUnsupportedAlgorithm = errors.New("trip: unsupported algorithm")
