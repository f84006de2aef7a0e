package turn

import "errors"

// ErrNoCoordinate indicates a node referenced by an edge has no recorded
// coordinate, so no bearing can be computed.
var ErrNoCoordinate = errors.New("turn: node has no coordinate")
