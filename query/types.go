package query

import (
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
)

// Leg is one original (non-shortcut) edge-expanded-graph edge on an
// unpacked route, in traversal order.
type Leg struct {
	Edge     eeg.EdgeID
	Weight   int32
	Duration int32
}

// Route is a fully unpacked path between two phantom nodes: the original
// edge-expanded-graph edges it crosses (shortcuts expanded away), its
// total cost, and the stitched-together geometry including the
// phantom-node partial segments at either end (§4.6 "Prepend/append the
// phantom-node partial traversals").
type Route struct {
	Legs     []Leg
	Weight   int32
	Duration int32
	Geometry []coordinate.Coordinate
}

// Matrix is the result of a many-to-many query: Weight[i][j] is the cost
// from Sources[i] to Targets[j], or nodegraph.InvalidWeight-equivalent
// math.MaxInt32 if unreachable.
type Matrix struct {
	Weight   [][]int32
	Duration [][]int32
}

// Option configures a one-to-one or alternatives query.
type Option func(*config)

type config struct {
	maxAlternatives int
	altSlack        float64 // fractional extra weight tolerated, e.g. 0.25
	overlapMax       float64 // max pairwise edge-overlap ratio, e.g. 0.75
}

func defaultConfig() config {
	return config{
		maxAlternatives: 1,
		altSlack:        0.25,
		overlapMax:      0.75,
	}
}

// WithMaxAlternatives sets how many distinct routes Alternatives returns,
// including the optimum.
func WithMaxAlternatives(k int) Option {
	return func(c *config) {
		if k > 0 {
			c.maxAlternatives = k
		}
	}
}

// WithAlternativeSlack sets the fractional extra weight tolerated over the
// optimum for a meeting point to be considered an alternative (default
// 0.25, i.e. 25%).
func WithAlternativeSlack(slack float64) Option {
	return func(c *config) {
		if slack >= 0 {
			c.altSlack = slack
		}
	}
}

// WithOverlapThreshold sets the maximum pairwise edge-overlap ratio two
// alternatives may share (default 0.75).
func WithOverlapThreshold(ratio float64) Option {
	return func(c *config) {
		if ratio >= 0 && ratio <= 1 {
			c.overlapMax = ratio
		}
	}
}
