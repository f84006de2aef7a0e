package profile

// Numeric constants normative per spec.md §6.3. A profile may override any
// of these via its own Constants value; DefaultConstants is the fallback.
type Constants struct {
	// TurnAngleStraightMaxDeg is the deviation-from-180 threshold below
	// which a turn is classified "straight" (<=25).
	TurnAngleStraightMaxDeg float64
	// TurnAngleSlightMaxDeg is the upper deviation bound for "slight" (<=60).
	TurnAngleSlightMaxDeg float64
	// TurnAngleRegularMaxDeg is the upper deviation bound for the plain
	// left/right bucket, beyond which a turn is "sharp" (<=140).
	TurnAngleRegularMaxDeg float64

	// CHLazyUpdateAlpha/Beta/Gamma are the default §4.5 priority
	// coefficients (all 1 by default).
	CHLazyUpdateAlpha float64
	CHLazyUpdateBeta  float64
	CHLazyUpdateGamma float64

	// WitnessSearchHopLimit bounds the witness-search BFS depth (default 5).
	WitnessSearchHopLimit int
	// WitnessSearchNodeLimit bounds the number of settled nodes (default 500).
	WitnessSearchNodeLimit int
	// CHCoreFactor is the target fraction of nodes to contract: contraction
	// stops once the residual graph has <= (1-CHCoreFactor)*N nodes, leaving
	// the remainder as the uncontracted core (default 0.95, i.e. a 5% core).
	CHCoreFactor float64

	// MapMatchingSigmaMeters is the default GPS precision σ (5m).
	MapMatchingSigmaMeters float64
	// MapMatchingBetaMeters is the default transition scale β (5m).
	MapMatchingBetaMeters float64
	// MapMatchingCandidateRadiusFactor multiplies σ for the candidate
	// search radius (default 3).
	MapMatchingCandidateRadiusFactor float64
	// MapMatchingMaxCandidates bounds candidates per trace point (K, default 10).
	MapMatchingMaxCandidates int
	// MapMatchingSuspiciousDeltaMeters flags a transition as suspicious
	// (input to the confidence classifier) when Δ exceeds this (100m).
	MapMatchingSuspiciousDeltaMeters float64
	// MapMatchingMaxBrokenStates bounds consecutive broken states before a
	// forced split (default 10).
	MapMatchingMaxBrokenStates int

	// AlternativeMaxOverheadRatio bounds alternative-route weight overhead
	// relative to the optimum (default 0.25, i.e. 25%).
	AlternativeMaxOverheadRatio float64
	// AlternativeMaxOverlapRatio bounds pairwise edge-overlap between
	// alternatives (default 0.75).
	AlternativeMaxOverlapRatio float64
}

// DefaultConstants returns the §6.3 normative defaults.
func DefaultConstants() Constants {
	return Constants{
		TurnAngleStraightMaxDeg:          25,
		TurnAngleSlightMaxDeg:            60,
		TurnAngleRegularMaxDeg:           140,
		CHLazyUpdateAlpha:                1,
		CHLazyUpdateBeta:                 1,
		CHLazyUpdateGamma:                1,
		WitnessSearchHopLimit:            5,
		WitnessSearchNodeLimit:           500,
		CHCoreFactor:                     0.95,
		MapMatchingSigmaMeters:           5,
		MapMatchingBetaMeters:            5,
		MapMatchingCandidateRadiusFactor: 3,
		MapMatchingMaxCandidates:         10,
		MapMatchingSuspiciousDeltaMeters: 100,
		MapMatchingMaxBrokenStates:       10,
		AlternativeMaxOverheadRatio:      0.25,
		AlternativeMaxOverlapRatio:       0.75,
	}
}
