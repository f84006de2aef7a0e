package artifact

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/names"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// buildChainFixture mirrors the other packages' own 6-node one-way chain:
// 0->1->...->5, each segment weight 10.
func buildChainFixture(t *testing.T) (*nodegraph.Graph, *eeg.Graph, *ch.Hierarchy, *restriction.Index, profile.Profile) {
	t.Helper()
	g := nodegraph.NewGraph()
	for i := nodegraph.NodeID(0); i <= 5; i++ {
		require.NoError(t, g.AddNode(i, coordinate.FromDegrees(float64(i)*0.001, 0)))
	}
	for i := nodegraph.NodeID(0); i < 5; i++ {
		_, err := g.AddEdge(nodegraph.Edge{From: i, To: i + 1, Weight: 10, Duration: 10, Classification: nodegraph.ClassResidential, Mode: nodegraph.ModeDriving})
		require.NoError(t, err)
	}

	idx := restriction.NewIndex(nil)
	idx.AddNoTurn(2, 3, 4)
	idx.AddBarrier(1, restriction.BarrierGate)

	prof := profile.NewDefaultCarProfile()
	eegGraph, err := eeg.Build(g, idx, prof)
	require.NoError(t, err)

	constants := prof.Constants()
	constants.CHCoreFactor = 1.0
	h, err := ch.Contract(eegGraph, constants)
	require.NoError(t, err)

	return g, eegGraph, h, idx, prof
}

func TestEBGRoundTrip(t *testing.T) {
	_, eegGraph, _, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.ebg")

	require.NoError(t, WriteEBG(path, eegGraph))
	records, err := ReadEBG(path)
	require.NoError(t, err)
	require.Equal(t, EBGEdgesFromGraph(eegGraph), records)
}

func TestEBGNodesRoundTrip(t *testing.T) {
	g, eegGraph, _, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.ebg_nodes")

	require.NoError(t, WriteEBGNodes(path, g, eegGraph))
	records, err := ReadEBGNodes(path)
	require.NoError(t, err)

	want, err := EBGNodesFromGraph(g, eegGraph)
	require.NoError(t, err)
	require.Equal(t, want, records)
}

func TestGeometryRoundTrip(t *testing.T) {
	g, _, _, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.geometry")

	require.NoError(t, WriteGeometry(path, g))
	records, err := ReadGeometry(path)
	require.NoError(t, err)
	require.Equal(t, g.GeometryCount(), len(records))
}

func TestHSGRRoundTrip(t *testing.T) {
	_, eegGraph, h, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.hsgr")

	require.NoError(t, WriteHSGR(path, h))
	nodes, edges, checksum, err := ReadHSGR(path)
	require.NoError(t, err)
	require.NotZero(t, checksum)
	require.Equal(t, eegGraph.NodeCount(), len(nodes))
	require.Equal(t, len(h.Edges), len(edges))
}

func TestENWRoundTrip(t *testing.T) {
	g, eegGraph, _, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.enw")

	require.NoError(t, WriteENW(path, g, eegGraph))
	weights, err := ReadENW(path)
	require.NoError(t, err)

	want, err := ENWFromGraph(g, eegGraph)
	require.NoError(t, err)
	require.Equal(t, want, weights)
}

func TestFileIndexRoundTrip(t *testing.T) {
	_, eegGraph, _, _, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.fileIndex")

	require.NoError(t, WriteFileIndex(path, eegGraph))
	records, err := ReadFileIndex(path)
	require.NoError(t, err)
	require.Equal(t, RTreeLeavesFromGraph(eegGraph), records)
}

func TestRAMIndexRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.ramIndex")

	require.NoError(t, WriteRAMIndex(path))
	require.NoError(t, ReadRAMIndex(path))
}

func TestRestrictionsRoundTrip(t *testing.T) {
	_, _, _, idx, _ := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.restrictions")

	require.NoError(t, WriteRestrictions(path, idx))
	restrictions, barriers, err := ReadRestrictions(path)
	require.NoError(t, err)
	require.Len(t, restrictions, 1)
	require.Len(t, barriers, 1)

	restored := RestoreIndex(restrictions, barriers, nil)
	require.False(t, restored.NodeTurnAllowed(2, 3, 4))
	require.True(t, restored.NodeTurnAllowed(2, 3, 99))
	require.False(t, restored.CanTraverseThrough(1))
}

func TestNamesRoundTrip(t *testing.T) {
	table := names.NewTable()
	table.Intern("Main St")
	table.Intern("2nd Ave")
	path := filepath.Join(t.TempDir(), "chain.names")

	require.NoError(t, WriteNames(path, table))
	restored, err := ReadNames(path)
	require.NoError(t, err)
	require.Equal(t, table.All(), restored.All())
}

func TestPropertiesRoundTrip(t *testing.T) {
	_, _, _, _, prof := buildChainFixture(t)
	path := filepath.Join(t.TempDir(), "chain.properties")

	require.NoError(t, WriteProperties(path, prof))
	rec, err := ReadProperties(path)
	require.NoError(t, err)
	require.Equal(t, prof.Name(), rec.Name)
	require.Equal(t, prof.Constants(), rec.Constants())
}

func TestTimestampRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.timestamp")

	require.NoError(t, WriteTimestamp(path, "extracted-2026-07-30"))
	stamp, err := ReadTimestamp(path)
	require.NoError(t, err)
	require.Equal(t, "extracted-2026-07-30", stamp)
}

func TestReadRejectsFingerprintMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.timestamp")
	require.NoError(t, WriteTimestamp(path, "stamp"))

	// Corrupt the fingerprint in place.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = ReadTimestamp(path)
	require.True(t, errors.Is(err, ErrFingerprintMismatch))
}

func TestWriteAtomicLeavesNoPartialFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-created.bin")

	err := writeAtomic(path, func(w io.Writer) error {
		return errors.New("boom")
	})
	require.Error(t, err)
	require.NoFileExists(t, path)
}
