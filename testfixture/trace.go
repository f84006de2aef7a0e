package testfixture

import (
	"math/rand"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/match"
)

// metersPerDegree approximates how many meters one degree of longitude
// or latitude spans at the equator — accurate enough for the small-scale
// synthetic roads this package builds, consistent with Grid's and
// Chain's own flat-earth coordinate arithmetic.
const metersPerDegree = 111_320.0

// StraightTrace samples n GPS points every spacingMeters along a
// straight road running eastward from the origin at latitude 0 — the
// road Chain or a single Grid row traces — optionally perturbing each
// point perpendicular to the road (north-south) by a zero-mean Gaussian
// with standard deviation sigmaMeters (§8 Scenarios 4/5). rng nil means
// no noise, regardless of sigmaMeters; a seeded *rand.Rand gives a
// reproducible noisy trace.
func StraightTrace(n int, spacingMeters, sigmaMeters float64, rng *rand.Rand) []match.TracePoint {
	trace := make([]match.TracePoint, n)
	for i := 0; i < n; i++ {
		lonDeg := float64(i) * spacingMeters / metersPerDegree
		latDeg := 0.0
		if rng != nil && sigmaMeters > 0 {
			latDeg = rng.NormFloat64() * sigmaMeters / metersPerDegree
		}
		trace[i] = match.TracePoint{Coord: coordinate.FromDegrees(lonDeg, latDeg)}
	}

	return trace
}

// BrokenTrace builds 5 clean points along a straight road, a teleport of
// teleportMeters, then 5 more clean points continuing the same road —
// the exact shape of §8 Scenario 5 ("same 5 points, then 100 km
// teleport, then 5 more").
func BrokenTrace(spacingMeters, teleportMeters float64) []match.TracePoint {
	first := StraightTrace(5, spacingMeters, 0, nil)

	shift := teleportMeters / metersPerDegree
	teleport := match.TracePoint{
		Coord: coordinate.FromDegrees(first[4].Coord.Lon()+shift, first[4].Coord.Lat()),
	}

	rest := StraightTrace(5, spacingMeters, 0, nil)
	for i := range rest {
		rest[i].Coord = coordinate.FromDegrees(rest[i].Coord.Lon()+shift, rest[i].Coord.Lat())
	}

	trace := make([]match.TracePoint, 0, 11)
	trace = append(trace, first...)
	trace = append(trace, teleport)
	trace = append(trace, rest...)

	return trace
}
