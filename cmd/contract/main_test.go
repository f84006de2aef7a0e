package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/artifact"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

func writeExtractedChain(t *testing.T) string {
	t.Helper()

	g := nodegraph.NewGraph()
	for i := nodegraph.NodeID(0); i <= 5; i++ {
		require.NoError(t, g.AddNode(i, coordinate.FromDegrees(float64(i)*0.001, 0)))
	}
	for i := nodegraph.NodeID(0); i < 5; i++ {
		_, err := g.AddEdge(nodegraph.Edge{
			From: i, To: i + 1, Weight: 10, Duration: 10,
			Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving,
		})
		require.NoError(t, err)
	}

	idx := restriction.NewIndex(nil)
	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	base := filepath.Join(t.TempDir(), "chain")
	require.NoError(t, artifact.WriteEBG(base+".ebg", eegGraph))
	require.NoError(t, artifact.WriteEBGNodes(base+".ebg_nodes", g, eegGraph))
	require.NoError(t, artifact.WriteFileIndex(base+".fileIndex", eegGraph))

	return base
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContract_WritesHSGR(t *testing.T) {
	base := writeExtractedChain(t)

	code := contract(context.Background(), base, 0, 1.0, testLogger())
	require.Zero(t, code)
	require.FileExists(t, base+".hsgr")
}

func TestContract_RejectsInvalidCoreFactor(t *testing.T) {
	base := writeExtractedChain(t)

	code := contract(context.Background(), base, 0, 0, testLogger())
	require.Equal(t, 1, code)

	code = contract(context.Background(), base, 0, 1.5, testLogger())
	require.Equal(t, 1, code)
}

func TestContract_MissingArtifactReportsIOError(t *testing.T) {
	code := contract(context.Background(), filepath.Join(t.TempDir(), "missing"), 0, 1.0, testLogger())
	require.Equal(t, 2, code)
}
