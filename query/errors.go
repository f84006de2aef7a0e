package query

import "errors"

// ErrEmptyHierarchy indicates a nil or zero-node Hierarchy was given to a
// query operation.
var ErrEmptyHierarchy = errors.New("query: hierarchy has no nodes")

// ErrNoRoute indicates the forward and reverse searches never met; s and t
// are not connected under the profile that produced the hierarchy.
var ErrNoRoute = errors.New("query: no route between source and target")

// ErrInvalidPhantom indicates a phantom node references an underlying edge
// with no edge-expanded-graph node in the requested direction.
var ErrInvalidPhantom = errors.New("query: phantom node has no usable direction")

// ErrUnpackMissingChild indicates a shortcut's two constituent edges could
// not both be found during unpacking, which would mean the hierarchy was
// built or mutated inconsistently.
var ErrUnpackMissingChild = errors.New("query: shortcut child edge not found during unpacking")
