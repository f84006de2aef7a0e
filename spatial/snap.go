package spatial

import (
	"math"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// Snap projects point onto the nearest segment's actual geometry (not just
// its bounding box) and builds the resulting phantom node (§4.8). g and
// eegGraph must be the same dataset version idx was built from.
func Snap(idx *Index, g *nodegraph.Graph, eegGraph *eeg.Graph, point coordinate.Coordinate) (eeg.PhantomNode, error) {
	rect, _, err := idx.Nearest(point)
	if err != nil {
		return eeg.PhantomNode{}, err
	}

	fraction, err := projectOntoSegment(g, rect.Underlying, point)
	if err != nil {
		return eeg.PhantomNode{}, err
	}

	return eeg.NewPhantomNode(g, eegGraph, rect, fraction)
}

// SnapToRect projects point onto rect's actual geometry and builds the
// resulting phantom node, without consulting the index for the nearest
// rectangle — used by map matching (package match), which already has its
// own candidate rectangle set from a radius search and needs a phantom
// for each of them, not just the single nearest one.
func SnapToRect(g *nodegraph.Graph, eegGraph *eeg.Graph, rect eeg.SegmentRect, point coordinate.Coordinate) (eeg.PhantomNode, error) {
	fraction, err := projectOntoSegment(g, rect.Underlying, point)
	if err != nil {
		return eeg.PhantomNode{}, err
	}

	return eeg.NewPhantomNode(g, eegGraph, rect, fraction)
}

// SnapWithinRadius behaves like Snap but fails with
// ErrNoSegmentWithinRadius if the nearest segment is farther than
// radiusMeters from point — used by map matching to reject candidates an
// implausible distance from a trace point (§4.7).
func SnapWithinRadius(idx *Index, g *nodegraph.Graph, eegGraph *eeg.Graph, point coordinate.Coordinate, radiusMeters float64) (eeg.PhantomNode, error) {
	rect, dist, err := idx.Nearest(point)
	if err != nil {
		return eeg.PhantomNode{}, err
	}
	if dist > radiusMeters {
		return eeg.PhantomNode{}, ErrNoSegmentWithinRadius
	}

	fraction, err := projectOntoSegment(g, rect.Underlying, point)
	if err != nil {
		return eeg.PhantomNode{}, err
	}

	return eeg.NewPhantomNode(g, eegGraph, rect, fraction)
}

// projectOntoSegment returns the fraction ([0,1]) along e's geometry
// closest to point, walking each vertex span and keeping the
// globally-closest projection — the same per-span nearest-point
// construction NewPhantomNode's own simplification assumes, generalized
// here to geometries with interior vertices rather than just the two
// endpoints.
func projectOntoSegment(g *nodegraph.Graph, id nodegraph.EdgeID, point coordinate.Coordinate) (float64, error) {
	e, err := g.Edge(id)
	if err != nil {
		return 0, err
	}

	coords, err := g.ExpandGeometry(e.Geometry)
	if err != nil {
		return 0, err
	}
	if len(coords) < 2 {
		from, err := g.Coordinate(e.From)
		if err != nil {
			return 0, err
		}
		to, err := g.Coordinate(e.To)
		if err != nil {
			return 0, err
		}
		coords = []coordinate.Coordinate{from, to}
	}

	totalLen := 0.0
	spanLens := make([]float64, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		spanLens[i] = coordinate.HaversineMeters(coords[i], coords[i+1])
		totalLen += spanLens[i]
	}
	if totalLen == 0 {
		return 0, nil
	}

	bestDist := math.MaxFloat64
	bestLenAlong := 0.0
	lenSoFar := 0.0
	for i := 0; i < len(coords)-1; i++ {
		t, d := nearestPointOnSpan(coords[i], coords[i+1], point)
		if d < bestDist {
			bestDist = d
			bestLenAlong = lenSoFar + t*spanLens[i]
		}
		lenSoFar += spanLens[i]
	}

	return bestLenAlong / totalLen, nil
}

// nearestPointOnSpan returns the fraction t along [a,b] (clamped to
// [0,1]) closest to point, and the haversine distance from point to that
// projection. The projection itself is done in the flat fixed-point plane
// (adequate at segment scale) and only the final distance check uses the
// geodesic formula.
func nearestPointOnSpan(a, b, point coordinate.Coordinate) (t, distMeters float64) {
	ax, ay := float64(a.LonE6), float64(a.LatE6)
	bx, by := float64(b.LonE6), float64(b.LatE6)
	px, py := float64(point.LonE6), float64(point.LatE6)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, coordinate.HaversineMeters(a, point)
	}

	t = ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Min(1, math.Max(0, t))

	proj := coordinate.InterpolateAlong(a, b, t)

	return t, coordinate.HaversineMeters(point, proj)
}
