package turn

import "github.com/meridian-routing/meridian/nodegraph"

// DirectionBucket is the coarse classification of a turn angle (§4.3).
type DirectionBucket uint8

// DirectionBucket values.
const (
	UTurn DirectionBucket = iota
	SharpRight
	Right
	SlightRight
	Straight
	SlightLeft
	Left
	SharpLeft
)

// String renders a DirectionBucket for logging and debug output.
func (b DirectionBucket) String() string {
	switch b {
	case UTurn:
		return "uturn"
	case SharpRight:
		return "sharp_right"
	case Right:
		return "right"
	case SlightRight:
		return "slight_right"
	case Straight:
		return "straight"
	case SlightLeft:
		return "slight_left"
	case Left:
		return "left"
	case SharpLeft:
		return "sharp_left"
	default:
		return "unknown"
	}
}

// Complexity classifies the shape of an intersection, used by the profile
// to scale its base turn penalty (§4.3: "forks, merges, and roundabouts
// receive profile-defined modifiers").
type Complexity uint8

// Complexity values.
const (
	Simple Complexity = iota
	Fork
	Merge
	Roundabout
)

// PenaltyFunc computes the (weight, duration) turn penalty for a turn of
// the given bucket and angle at an intersection of the given complexity.
// Supplied by the caller (profile), never imported directly by turn.
type PenaltyFunc func(bucket DirectionBucket, complexity Complexity, angleDeg float64) (weight, duration int32)

// IncidentEdge is one edge touching an intersection, tagged with whether it
// is incoming (ends at the intersection) or outgoing (starts at it).
type IncidentEdge struct {
	Edge     nodegraph.Edge
	Incoming bool
	Bearing  float64 // degrees from north, clockwise, 0-360
}

// Pair is one admissible (in-edge, out-edge) turn at an intersection.
type Pair struct {
	In, Out  nodegraph.Edge
	AngleDeg float64
	Bucket   DirectionBucket
	Weight   int32
	Duration int32
	Valid    bool
}
