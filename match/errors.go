package match

import "errors"

// ErrEmptyTrace is returned when Match is called with no trace points.
var ErrEmptyTrace = errors.New("match: empty trace")

// ErrNoCandidates is returned when not a single trace point has any
// candidate within its search radius — nothing can be matched at all.
var ErrNoCandidates = errors.New("match: no candidates found for any trace point")
