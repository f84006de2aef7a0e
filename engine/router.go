package engine

import (
	"log/slog"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/match"
	"github.com/meridian-routing/meridian/query"
	"github.com/meridian-routing/meridian/spatial"
	"github.com/meridian-routing/meridian/trip"
)

// Router is the facade C6 (query), C7 (match), C8 (spatial), and the
// supplemented round-trip solver (trip) present to the server binary: it
// snaps raw coordinates to phantom nodes and delegates everything else to
// the current Dataset's graphs and indexes, never holding one of its own.
type Router struct {
	store  *Store
	logger *slog.Logger
}

// NewRouter builds a Router reading from store. store must already have a
// dataset loaded (Reload called at least once) before any Router method
// is used.
func NewRouter(store *Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}

	return &Router{store: store, logger: logger}
}

// Snap resolves a raw coordinate to the phantom node on its nearest
// road segment, the starting point every other Router method needs.
func (r *Router) Snap(point coordinate.Coordinate) (eeg.PhantomNode, error) {
	ds := r.store.Current()

	return spatial.Snap(ds.Index, ds.Graph, ds.EEG, point)
}

// SnapWithinRadius behaves like Snap but rejects a match farther than
// radiusMeters away, per §7's "query coordinate out of bounds" NoSegment
// handling: the caller turns ErrNoSegmentWithinRadius into a NoSegment
// status rather than a process error.
func (r *Router) SnapWithinRadius(point coordinate.Coordinate, radiusMeters float64) (eeg.PhantomNode, error) {
	ds := r.store.Current()

	return spatial.SnapWithinRadius(ds.Index, ds.Graph, ds.EEG, point, radiusMeters)
}

// Route computes the best path between two raw coordinates, snapping
// both to the network first.
func (r *Router) Route(from, to coordinate.Coordinate) (*query.Route, error) {
	ds := r.store.Current()

	s, err := spatial.Snap(ds.Index, ds.Graph, ds.EEG, from)
	if err != nil {
		return nil, err
	}
	t, err := spatial.Snap(ds.Index, ds.Graph, ds.EEG, to)
	if err != nil {
		return nil, err
	}

	return query.OneToOne(ds.Hierarchy, ds.EEG, ds.Graph, s, t)
}

// Alternatives computes up to opts' configured count of distinct routes
// between two raw coordinates.
func (r *Router) Alternatives(from, to coordinate.Coordinate, opts ...query.Option) ([]*query.Route, error) {
	ds := r.store.Current()

	s, err := spatial.Snap(ds.Index, ds.Graph, ds.EEG, from)
	if err != nil {
		return nil, err
	}
	t, err := spatial.Snap(ds.Index, ds.Graph, ds.EEG, to)
	if err != nil {
		return nil, err
	}

	return query.Alternatives(ds.Hierarchy, ds.EEG, ds.Graph, s, t, opts...)
}

// Matrix computes the full pairwise cost matrix between two sets of raw
// coordinates.
func (r *Router) Matrix(sources, targets []coordinate.Coordinate) (*query.Matrix, error) {
	ds := r.store.Current()

	srcPhantoms, err := snapAll(ds, sources)
	if err != nil {
		return nil, err
	}
	dstPhantoms, err := snapAll(ds, targets)
	if err != nil {
		return nil, err
	}

	return query.ManyToMany(ds.Hierarchy, srcPhantoms, dstPhantoms)
}

// RoundTrip solves a visiting order over stops (closed tour starting at
// stops[0] by default) using ManyToMany's matrix as the cost basis, then
// hands that matrix's weights to trip.Solve.
func (r *Router) RoundTrip(stops []coordinate.Coordinate, opts ...trip.Option) (trip.Result, error) {
	ds := r.store.Current()

	phantoms, err := snapAll(ds, stops)
	if err != nil {
		return trip.Result{}, err
	}

	m, err := query.ManyToMany(ds.Hierarchy, phantoms, phantoms)
	if err != nil {
		return trip.Result{}, err
	}

	return trip.Solve(m, opts...)
}

// Match fits a raw GPS trace onto the road network.
func (r *Router) Match(points []match.TracePoint, opts ...match.Option) (match.Result, error) {
	ds := r.store.Current()

	return match.Match(ds.Index, ds.Graph, ds.EEG, ds.Hierarchy, points, opts...)
}

func snapAll(ds *Dataset, points []coordinate.Coordinate) ([]eeg.PhantomNode, error) {
	phantoms := make([]eeg.PhantomNode, len(points))
	for i, p := range points {
		phantom, err := spatial.Snap(ds.Index, ds.Graph, ds.EEG, p)
		if err != nil {
			return nil, err
		}
		phantoms[i] = phantom
	}

	return phantoms, nil
}
