package trip

import "math"

// unreachable stands in for "no edge" in a cost matrix, mirroring
// math.MaxInt32's use as query.Matrix's own unreachable sentinel.
const unreachable = math.MaxInt32

// Algo selects the construction heuristic Solve uses to build the initial
// tour before any local-search polish.
type Algo int

const (
	// NearestNeighbour greedily extends the tour to the cheapest unvisited
	// stop at each step.
	NearestNeighbour Algo = iota

	// FarthestInsertion grows the tour by repeatedly inserting the
	// unvisited stop farthest from the tour so far, at its cheapest
	// insertion point — tends to avoid the long closing edge nearest-
	// neighbour leaves behind.
	FarthestInsertion
)

// Option configures Solve.
type Option func(*Options)

// Options governs trip construction. The zero value is not directly
// usable; DefaultOptions supplies safe defaults.
type Options struct {
	Algo         Algo
	StartIndex   int
	Closed       bool // round trip: the tour returns to StartIndex
	EnableTwoOpt bool
}

// DefaultOptions returns NearestNeighbour construction, a closed round
// trip starting at stop 0, polished by 2-opt.
func DefaultOptions() Options {
	return Options{
		Algo:         NearestNeighbour,
		StartIndex:   0,
		Closed:       true,
		EnableTwoOpt: true,
	}
}

// WithAlgo selects the construction heuristic.
func WithAlgo(a Algo) Option { return func(o *Options) { o.Algo = a } }

// WithStart sets the stop index the tour starts (and, if Closed, ends) at.
func WithStart(i int) Option { return func(o *Options) { o.StartIndex = i } }

// WithClosed controls whether the tour returns to its start.
func WithClosed(closed bool) Option { return func(o *Options) { o.Closed = closed } }

// WithTwoOpt enables or disables the 2-opt/relocation polish pass.
func WithTwoOpt(enabled bool) Option { return func(o *Options) { o.EnableTwoOpt = enabled } }

// Result is a computed round trip.
type Result struct {
	// Order lists stop indices in visiting order. If Options.Closed, the
	// first and last entries are both StartIndex.
	Order []int
	Cost  int32
}
