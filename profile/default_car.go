package profile

import (
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/turn"
)

// Option configures a DefaultCarProfile at construction time.
type Option func(*DefaultCarProfile)

// WithConstants overrides the §6.3 numeric constants used by the profile.
func WithConstants(c Constants) Option {
	return func(p *DefaultCarProfile) { p.constants = c }
}

// WithSpeedKPH overrides the free-flow speed used for one classification.
func WithSpeedKPH(class nodegraph.Classification, kph float64) Option {
	return func(p *DefaultCarProfile) { p.speedKPH[class] = kph }
}

// DefaultCarProfile is a minimal car profile standing in for the real
// scripting-environment profile out of scope per spec.md §1. It classifies
// from a "highway" tag, weights edges by free-flow travel time, and
// penalizes turns by bucket and intersection complexity.
type DefaultCarProfile struct {
	speedKPH  map[nodegraph.Classification]float64
	constants Constants
}

var _ Profile = (*DefaultCarProfile)(nil)

// NewDefaultCarProfile builds a DefaultCarProfile with baseline free-flow
// speeds and §6.3 default constants, customizable via opts.
func NewDefaultCarProfile(opts ...Option) *DefaultCarProfile {
	p := &DefaultCarProfile{
		speedKPH: map[nodegraph.Classification]float64{
			nodegraph.ClassMotorway:     110,
			nodegraph.ClassTrunk:        90,
			nodegraph.ClassPrimary:      70,
			nodegraph.ClassSecondary:    55,
			nodegraph.ClassTertiary:     45,
			nodegraph.ClassResidential:  30,
			nodegraph.ClassService:      15,
			nodegraph.ClassRamp:         50,
			nodegraph.ClassLink:         50,
			nodegraph.ClassUnclassified: 30,
		},
		constants: DefaultConstants(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name identifies the profile.
func (p *DefaultCarProfile) Name() string { return "default-car" }

// Classify maps an OSM "highway" tag to a Classification. Unrecognized or
// missing tags classify as ClassUnclassified with mode ModeInaccessible,
// so the caller can decide whether to drop the way or log a diagnostic.
func (p *DefaultCarProfile) Classify(tags WayTags) (nodegraph.Classification, nodegraph.TravelMode, nodegraph.Flags) {
	var flags nodegraph.Flags
	if tags["oneway"] == "yes" || tags["oneway"] == "1" {
		flags |= nodegraph.FlagOneway
	}
	if tags["junction"] == "roundabout" {
		flags |= nodegraph.FlagRoundabout
	}

	switch tags["highway"] {
	case "motorway":
		return nodegraph.ClassMotorway, nodegraph.ModeDriving, flags
	case "trunk":
		return nodegraph.ClassTrunk, nodegraph.ModeDriving, flags
	case "primary":
		return nodegraph.ClassPrimary, nodegraph.ModeDriving, flags
	case "secondary":
		return nodegraph.ClassSecondary, nodegraph.ModeDriving, flags
	case "tertiary":
		return nodegraph.ClassTertiary, nodegraph.ModeDriving, flags
	case "residential", "living_street":
		return nodegraph.ClassResidential, nodegraph.ModeDriving, flags
	case "service":
		return nodegraph.ClassService, nodegraph.ModeDriving, flags
	case "motorway_link", "trunk_link", "primary_link", "secondary_link", "tertiary_link":
		return nodegraph.ClassLink, nodegraph.ModeDriving, flags
	case "unclassified":
		return nodegraph.ClassUnclassified, nodegraph.ModeDriving, flags
	default:
		return nodegraph.ClassUnclassified, nodegraph.ModeInaccessible, flags | nodegraph.FlagAccessRestricted
	}
}

// EdgeWeight returns free-flow travel time in deci-seconds, for both weight
// and duration: the default profile has no separate cost metric.
func (p *DefaultCarProfile) EdgeWeight(lengthMeters float64, class nodegraph.Classification, mode nodegraph.TravelMode) (int32, int32) {
	if mode != nodegraph.ModeDriving {
		return nodegraph.InvalidWeight, nodegraph.InvalidWeight
	}
	kph, ok := p.speedKPH[class]
	if !ok || kph <= 0 {
		return nodegraph.InvalidWeight, nodegraph.InvalidWeight
	}
	seconds := lengthMeters / (kph / 3.6)
	deciseconds := int32(seconds*10 + 0.5)
	if deciseconds < 1 {
		deciseconds = 1
	}

	return deciseconds, deciseconds
}

// turnBaseDeciseconds holds the base penalty per bucket in deci-seconds,
// before the complexity modifier is applied.
var turnBaseDeciseconds = map[turn.DirectionBucket]int32{
	turn.Straight:     0,
	turn.SlightLeft:   20,
	turn.SlightRight:  20,
	turn.Left:         70,
	turn.Right:        50,
	turn.SharpLeft:    150,
	turn.SharpRight:   150,
	turn.UTurn:        200,
}

// TurnPenalty scales the bucket's base penalty by the intersection's
// complexity: roundabouts and merges are cheaper to traverse than a plain
// intersection of the same geometric angle, forks slightly more expensive
// (§4.3).
func (p *DefaultCarProfile) TurnPenalty(bucket turn.DirectionBucket, complexity turn.Complexity, _ float64) (int32, int32) {
	base := turnBaseDeciseconds[bucket]
	var mult float64
	switch complexity {
	case turn.Roundabout:
		mult = 0.5
	case turn.Merge:
		mult = 0.7
	case turn.Fork:
		mult = 1.2
	default:
		mult = 1.0
	}
	penalty := int32(float64(base) * mult)

	return penalty, penalty
}

// BarrierPolicy permits gates and lift gates through for a car, but not
// bollards or full blocks.
func (p *DefaultCarProfile) BarrierPolicy(kind restriction.BarrierKind) bool {
	switch kind {
	case restriction.BarrierNone, restriction.BarrierGate, restriction.BarrierLiftGate:
		return true
	default:
		return false
	}
}

// AccessAllowed permits only driving.
func (p *DefaultCarProfile) AccessAllowed(mode nodegraph.TravelMode) bool {
	return mode == nodegraph.ModeDriving
}

// Constants returns the profile's numeric constants.
func (p *DefaultCarProfile) Constants() Constants { return p.constants }
