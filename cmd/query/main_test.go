package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/engine"
	"github.com/meridian-routing/meridian/match"
)

func TestServerMatch_RejectsOversizedTrace(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := engine.NewStore(logger)
	s := &server{
		store:           store,
		router:          engine.NewRouter(store, logger),
		maxMatchingSize: 2,
		logger:          logger,
	}

	points := make([]match.TracePoint, 3)
	for i := range points {
		points[i] = match.TracePoint{Coord: coordinate.FromDegrees(0, 0)}
	}

	_, err := s.match(points)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max-matching-size")
}
