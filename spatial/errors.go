package spatial

import "errors"

// ErrEmptyIndex is returned by Nearest/Snap when the index holds no
// rectangles at all.
var ErrEmptyIndex = errors.New("spatial: index is empty")

// ErrNoSegmentWithinRadius is returned by Snap when a maximum snap radius
// was given and nothing was found inside it.
var ErrNoSegmentWithinRadius = errors.New("spatial: no segment within radius")
