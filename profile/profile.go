package profile

import (
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/turn"
)

// WayTags is the minimal OSM-tag view a profile classifies. The real
// OSM parser (out of scope, §1) is expected to produce these from way
// tags; test fixtures build them directly.
type WayTags map[string]string

// Profile is the pluggable boundary between the extraction pipeline and
// the classification/weighting/turn-penalty policy that would otherwise
// live in a scripting environment (§1 Non-goals: "does not dictate" a
// scripting runtime; this interface is the seam a real one would implement
// against).
type Profile interface {
	// Name identifies the profile for diagnostics and the .properties
	// artifact (§6.1).
	Name() string

	// Classify assigns a road classification, travel mode, and edge flags
	// from a way's tags.
	Classify(tags WayTags) (nodegraph.Classification, nodegraph.TravelMode, nodegraph.Flags)

	// EdgeWeight computes the (weight, duration) pair for a segment of the
	// given length, classification, and mode (§3 Node-based edge).
	EdgeWeight(lengthMeters float64, class nodegraph.Classification, mode nodegraph.TravelMode) (weight, duration int32)

	// TurnPenalty computes the additive turn penalty for a turn bucket at
	// an intersection of the given complexity (§4.3). Matches
	// turn.PenaltyFunc's signature so it can be passed directly.
	TurnPenalty(bucket turn.DirectionBucket, complexity turn.Complexity, angleDeg float64) (weight, duration int32)

	// BarrierPolicy reports whether the given barrier kind is passable.
	// Matches restriction.BarrierPolicy's signature.
	BarrierPolicy(kind restriction.BarrierKind) bool

	// AccessAllowed reports whether mode may use a segment at all.
	AccessAllowed(mode nodegraph.TravelMode) bool

	// Constants returns the numeric constants this profile uses, which may
	// override DefaultConstants().
	Constants() Constants
}

// TurnPenaltyFunc adapts p.TurnPenalty to turn.PenaltyFunc.
func TurnPenaltyFunc(p Profile) turn.PenaltyFunc { return p.TurnPenalty }

// BarrierPolicyFunc adapts p.BarrierPolicy to restriction.BarrierPolicy.
func BarrierPolicyFunc(p Profile) restriction.BarrierPolicy { return p.BarrierPolicy }
