package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/match"
	"github.com/meridian-routing/meridian/profile"
)

func newChainRouter(t *testing.T) *Router {
	t.Helper()
	base := writeChainDataset(t)
	store := NewStore(testLogger())
	require.NoError(t, store.Reload(base, profile.NewDefaultCarProfile()))

	return NewRouter(store, testLogger())
}

func TestRouter_Route(t *testing.T) {
	r := newChainRouter(t)

	from := coordinate.FromDegrees(0, 0)
	to := coordinate.FromDegrees(0.005, 0)

	route, err := r.Route(from, to)
	require.NoError(t, err)
	require.NotEmpty(t, route.Legs)
	require.Greater(t, route.Weight, int32(0))
}

func TestRouter_Matrix(t *testing.T) {
	r := newChainRouter(t)

	stops := []coordinate.Coordinate{
		coordinate.FromDegrees(0, 0),
		coordinate.FromDegrees(0.003, 0),
		coordinate.FromDegrees(0.005, 0),
	}

	m, err := r.Matrix(stops, stops)
	require.NoError(t, err)
	require.Len(t, m.Weight, 3)
	require.Len(t, m.Weight[0], 3)
	require.Zero(t, m.Weight[0][0])
}

func TestRouter_RoundTrip(t *testing.T) {
	r := newChainRouter(t)

	stops := []coordinate.Coordinate{
		coordinate.FromDegrees(0, 0),
		coordinate.FromDegrees(0.002, 0),
		coordinate.FromDegrees(0.004, 0),
	}

	result, err := r.RoundTrip(stops)
	require.NoError(t, err)
	require.NotEmpty(t, result.Order)
}

func TestRouter_Match(t *testing.T) {
	r := newChainRouter(t)

	points := []match.TracePoint{
		{Coord: coordinate.FromDegrees(0, 0)},
		{Coord: coordinate.FromDegrees(0.002, 0)},
		{Coord: coordinate.FromDegrees(0.004, 0)},
	}

	result, err := r.Match(points)
	require.NoError(t, err)
	require.NotEmpty(t, result.SubMatches)
}
