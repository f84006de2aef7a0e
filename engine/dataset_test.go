package engine

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/artifact"
	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/names"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// writeChainDataset builds the same 6-node one-way chain the artifact
// package's own round-trip tests use, runs it through the full
// extract/contract pipeline, and writes every artifact suffix LoadDataset
// reads. Returns the base path callers pass to LoadDataset.
func writeChainDataset(t *testing.T) string {
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
	idx.AddBarrier(1, restriction.BarrierBollard)

	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	hierarchy, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	table := names.NewTable()
	table.Intern("Chain Street")

	base := filepath.Join(t.TempDir(), "chain")
	require.NoError(t, artifact.WriteEBG(base+".ebg", eegGraph))
	require.NoError(t, artifact.WriteEBGNodes(base+".ebg_nodes", g, eegGraph))
	require.NoError(t, artifact.WriteGeometry(base+".geometry", g))
	require.NoError(t, artifact.WriteENW(base+".enw", g, eegGraph))
	require.NoError(t, artifact.WriteFileIndex(base+".fileIndex", eegGraph))
	require.NoError(t, artifact.WriteRAMIndex(base+".ramIndex"))
	require.NoError(t, artifact.WriteHSGR(base+".hsgr", hierarchy))
	require.NoError(t, artifact.WriteRestrictions(base+".restrictions", idx))
	require.NoError(t, artifact.WriteNames(base+".names", table))
	require.NoError(t, artifact.WriteProperties(base+".properties", prof))
	require.NoError(t, artifact.WriteTimestamp(base+".timestamp", "extracted-2026-07-30"))

	return base
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDataset(t *testing.T) {
	base := writeChainDataset(t)
	prof := profile.NewDefaultCarProfile()

	ds, err := LoadDataset(base, prof, testLogger())
	require.NoError(t, err)

	require.Equal(t, 4, ds.EEG.NodeCount())
	require.Equal(t, "extracted-2026-07-30", ds.Timestamp)
	require.False(t, ds.Barriers.CanTraverseThrough(1))
	require.Equal(t, []string{"", "Chain Street"}, ds.Names.All())
}

func TestLoadDataset_MissingFileReportsSuffix(t *testing.T) {
	base := writeChainDataset(t)
	prof := profile.NewDefaultCarProfile()

	_, err := LoadDataset(filepath.Join(filepath.Dir(base), "missing"), prof, testLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), ".ebg")
}

func TestStore_ReloadSwapsDatasetWithoutLosingPriorReader(t *testing.T) {
	base := writeChainDataset(t)
	prof := profile.NewDefaultCarProfile()

	store := NewStore(testLogger())
	require.Nil(t, store.Current())

	require.NoError(t, store.Reload(base, prof))
	first := store.Current()
	require.NotNil(t, first)

	require.NoError(t, store.Reload(base, prof))
	second := store.Current()
	require.NotNil(t, second)

	// Reload produced a fresh Dataset; a reader still holding the first
	// pointer sees its own consistent snapshot rather than a half-swapped one.
	require.NotSame(t, first, second)
	require.Equal(t, first.Timestamp, second.Timestamp)
}

func TestStore_ReloadFailureKeepsPreviousDataset(t *testing.T) {
	base := writeChainDataset(t)
	prof := profile.NewDefaultCarProfile()

	store := NewStore(testLogger())
	require.NoError(t, store.Reload(base, prof))
	good := store.Current()

	err := store.Reload(filepath.Join(filepath.Dir(base), "missing"), prof)
	require.Error(t, err)
	require.Same(t, good, store.Current())
}
