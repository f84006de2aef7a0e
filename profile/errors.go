package profile

import "errors"

// ErrUnknownHighwayTag indicates a way carries no recognizable "highway"
// tag and cannot be classified.
var ErrUnknownHighwayTag = errors.New("profile: unrecognized or missing highway tag")
