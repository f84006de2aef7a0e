package match

import (
	"math"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
)

// TracePoint is one recorded GPS fix. Timestamp is a unix-epoch second
// count; HasTimestamp false means the trace carries no timing information
// at all, in which case Δ_max pruning (§4.7) never triggers.
type TracePoint struct {
	Coord        coordinate.Coordinate
	Timestamp    int64
	HasTimestamp bool
}

// Candidate is one phantom node considered for a trace point, tagged with
// its straight-line distance to that point (§4.7 "Candidate generation").
type Candidate struct {
	Phantom    eeg.PhantomNode
	DistMeters float64
}

// SubMatch is one contiguous run of the trace successfully fit to the
// network (§4.7 output: "a list of sub-matchings").
type SubMatch struct {
	// Phantoms holds one matched phantom node per trace index in
	// TraceIndices, in order.
	Phantoms     []eeg.PhantomNode
	TraceIndices []int
	Confidence   float64
	MeanDelta    float64
}

// Result is the full output of a Match call.
type Result struct {
	SubMatches []SubMatch
}

// Option configures Match.
type Option func(*config)

type config struct {
	sigmaMeters      float64
	betaMeters       float64
	radiusFactor     float64
	maxCandidates    int
	suspiciousDelta  float64
	maxBrokenStates  int
	maxSpeedMeterSec float64
}

func defaultConfig() config {
	return config{
		sigmaMeters:      5,
		betaMeters:       5,
		radiusFactor:     3,
		maxCandidates:    10,
		suspiciousDelta:  100,
		maxBrokenStates:  10,
		maxSpeedMeterSec: 55.56, // 200 km/h: a generous highway cap, not a profile-derived figure
	}
}

// WithSigma sets the GPS precision σ in meters (default 5).
func WithSigma(meters float64) Option { return func(c *config) { c.sigmaMeters = meters } }

// WithBeta sets the transition discrepancy scale β in meters (default 5).
func WithBeta(meters float64) Option { return func(c *config) { c.betaMeters = meters } }

// WithMaxCandidates bounds candidates considered per trace point (default 10).
func WithMaxCandidates(k int) Option { return func(c *config) { c.maxCandidates = k } }

// WithMaxSpeed sets the speed used to derive Δ_max from a timestamp gap
// (default ~200 km/h).
func WithMaxSpeed(metersPerSecond float64) Option {
	return func(c *config) { c.maxSpeedMeterSec = metersPerSecond }
}

// WithMaxBrokenStates bounds how many consecutive candidate-less trace
// points Match will skip over while searching for a resume point after a
// break (default 10).
func WithMaxBrokenStates(n int) Option { return func(c *config) { c.maxBrokenStates = n } }

func logEmit(distMeters, sigma float64) float64 {
	r := distMeters / sigma
	return -0.5*math.Log(2*math.Pi) - math.Log(sigma) - r*r/2
}

func logTrans(delta, beta float64) float64 {
	return -math.Log(beta) - delta/beta
}
