package artifact

import (
	"io"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/nodegraph"
)

// GeometryRecord is one packed polyline (§6.1 .geometry): its ordered
// coordinates plus per-segment cumulative weight and duration, the exact
// shape of nodegraph.Geometry itself.
type GeometryRecord struct {
	Coords              []coordinate.Coordinate
	CumulativeWeights   []int32
	CumulativeDurations []int32
}

// GeometriesFromGraph walks base's entire geometry table in id order.
func GeometriesFromGraph(base *nodegraph.Graph) ([]GeometryRecord, error) {
	n := base.GeometryCount()
	out := make([]GeometryRecord, n)
	for i := 0; i < n; i++ {
		geom, err := base.GeometryAt(nodegraph.GeometryID(i))
		if err != nil {
			return nil, err
		}
		out[i] = GeometryRecord{
			Coords:              geom.Coords,
			CumulativeWeights:   geom.CumulativeWeights,
			CumulativeDurations: geom.CumulativeDurations,
		}
	}

	return out, nil
}

// RestoreGeometries reverses GeometriesFromGraph, record for record, into
// the nodegraph.Geometry values a restored query-time Graph indexes
// directly by position.
func RestoreGeometries(records []GeometryRecord) []nodegraph.Geometry {
	geoms := make([]nodegraph.Geometry, len(records))
	for i, rec := range records {
		geoms[i] = nodegraph.Geometry{
			Coords:              rec.Coords,
			CumulativeWeights:   rec.CumulativeWeights,
			CumulativeDurations: rec.CumulativeDurations,
		}
	}

	return geoms
}

// WriteGeometry writes base's geometry table to path.
func WriteGeometry(path string, base *nodegraph.Graph) error {
	records, err := GeometriesFromGraph(base)
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w io.Writer) error {
		if err := writeCount(w, len(records)); err != nil {
			return err
		}
		for _, rec := range records {
			if err := writeSlice(w, rec.Coords); err != nil {
				return err
			}
			if err := writeSlice(w, rec.CumulativeWeights); err != nil {
				return err
			}
			if err := writeSlice(w, rec.CumulativeDurations); err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadGeometry reads back what WriteGeometry wrote.
func ReadGeometry(path string) ([]GeometryRecord, error) {
	var out []GeometryRecord
	err := readWithFingerprint(path, func(r io.Reader) error {
		n, err := readCount(r)
		if err != nil {
			return err
		}

		out = make([]GeometryRecord, n)
		for i := 0; i < n; i++ {
			coords, err := readSlice[coordinate.Coordinate](r)
			if err != nil {
				return err
			}
			weights, err := readSlice[int32](r)
			if err != nil {
				return err
			}
			durations, err := readSlice[int32](r)
			if err != nil {
				return err
			}
			out[i] = GeometryRecord{Coords: coords, CumulativeWeights: weights, CumulativeDurations: durations}
		}

		return nil
	})

	return out, err
}
