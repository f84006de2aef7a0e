package eeg

import "errors"

// ErrNoGeometry indicates an underlying edge has no recorded geometry, so
// no segment rectangle can be computed for it.
var ErrNoGeometry = errors.New("eeg: underlying edge has no geometry")
