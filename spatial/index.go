package spatial

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
)

// degreesPerMeter is a rough equirectangular conversion used only to size
// the expanding search box in Nearest/WithinRadius; the haversine distance
// computed against each candidate's actual geometry is what decides the
// final answer, so this only needs to be a safe overestimate.
const degreesPerMeter = 1.0 / 111_000.0

// Index is an in-memory R-tree over a dataset's segment rectangles,
// bulk-loaded once per dataset version and swapped wholesale on reload
// (§4.8, §5). The zero value is not usable; build one with BuildIndex.
type Index struct {
	tree rtree.RTreeG[eeg.SegmentRect]
	n    int
}

// BuildIndex bulk-loads an Index from a built edge-expanded graph's segment
// rectangles.
func BuildIndex(eegGraph *eeg.Graph) *Index {
	idx := &Index{}
	for _, r := range eegGraph.Rects {
		idx.Insert(r)
	}

	return idx
}

// Insert adds one rectangle to the index. Exposed so callers incrementally
// maintaining an index (e.g. after a partial reload) don't need to rebuild
// from scratch.
func (idx *Index) Insert(r eeg.SegmentRect) {
	min, max := rectBounds(r)
	idx.tree.Insert(min, max, r)
	idx.n++
}

// Len returns the number of rectangles held.
func (idx *Index) Len() int { return idx.n }

// Search calls visit for every rectangle whose bounding box intersects the
// query box. visit returning false stops the traversal early.
func (idx *Index) Search(min, max coordinate.Coordinate, visit func(eeg.SegmentRect) bool) {
	idx.tree.Search(
		[2]float64{min.Lon(), min.Lat()},
		[2]float64{max.Lon(), max.Lat()},
		func(_, _ [2]float64, data eeg.SegmentRect) bool { return visit(data) },
	)
}

// WithinRadius returns every rectangle whose geometry passes within
// radiusMeters of point, nearest first.
func (idx *Index) WithinRadius(point coordinate.Coordinate, radiusMeters float64) []eeg.SegmentRect {
	pad := radiusMeters * degreesPerMeter
	minC := coordinate.FromDegrees(point.Lon()-pad, point.Lat()-pad)
	maxC := coordinate.FromDegrees(point.Lon()+pad, point.Lat()+pad)

	type hit struct {
		rect eeg.SegmentRect
		dist float64
	}
	var hits []hit
	idx.Search(minC, maxC, func(r eeg.SegmentRect) bool {
		d := distanceToRect(point, r)
		if d <= radiusMeters {
			hits = append(hits, hit{rect: r, dist: d})
		}
		return true
	})

	sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]eeg.SegmentRect, len(hits))
	for i, h := range hits {
		out[i] = h.rect
	}

	return out
}

// Nearest returns the rectangle whose geometry lies closest to point,
// expanding the search box geometrically until at least one candidate is
// found and the box can no longer contain anything closer.
func (idx *Index) Nearest(point coordinate.Coordinate) (eeg.SegmentRect, float64, error) {
	if idx.n == 0 {
		return eeg.SegmentRect{}, 0, ErrEmptyIndex
	}

	radius := 50.0 // meters, initial guess
	for i := 0; i < 20; i++ {
		best, bestDist, found := idx.nearestWithin(point, radius)
		if found && bestDist <= radius {
			return best, bestDist, nil
		}
		radius *= 4
	}

	return eeg.SegmentRect{}, 0, ErrEmptyIndex
}

func (idx *Index) nearestWithin(point coordinate.Coordinate, radius float64) (eeg.SegmentRect, float64, bool) {
	pad := radius * degreesPerMeter
	minC := coordinate.FromDegrees(point.Lon()-pad, point.Lat()-pad)
	maxC := coordinate.FromDegrees(point.Lon()+pad, point.Lat()+pad)

	var best eeg.SegmentRect
	bestDist := math.MaxFloat64
	found := false
	idx.Search(minC, maxC, func(r eeg.SegmentRect) bool {
		d := distanceToRect(point, r)
		if d < bestDist {
			bestDist = d
			best = r
			found = true
		}
		return true
	})

	return best, bestDist, found
}

// distanceToRect approximates the distance from point to r by the
// haversine distance to the nearest point of r's box (point clamped to
// the box). This is adequate for candidate ranking; Snap refines the exact
// projection against the real segment geometry once a rectangle is chosen.
func distanceToRect(point coordinate.Coordinate, r eeg.SegmentRect) float64 {
	clampedLon := clampI32(point.LonE6, r.MinLonE6, r.MaxLonE6)
	clampedLat := clampI32(point.LatE6, r.MinLatE6, r.MaxLatE6)
	nearest := coordinate.Coordinate{LonE6: clampedLon, LatE6: clampedLat}

	return coordinate.HaversineMeters(point, nearest)
}

func clampI32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rectBounds(r eeg.SegmentRect) ([2]float64, [2]float64) {
	min := coordinate.Coordinate{LonE6: r.MinLonE6, LatE6: r.MinLatE6}
	max := coordinate.Coordinate{LonE6: r.MaxLonE6, LatE6: r.MaxLatE6}

	return [2]float64{min.Lon(), min.Lat()}, [2]float64{max.Lon(), max.Lat()}
}
