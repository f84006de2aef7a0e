// Package engine ties C1-C8 together: it loads a dataset produced by the
// extract/contract pipeline off disk, holds it behind an atomic pointer so
// a running server can swap in a freshly contracted dataset without
// pausing in-flight queries, and exposes a Router facade over query,
// match, spatial, and trip for the three binaries in cmd/ to drive.
package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/meridian-routing/meridian/artifact"
	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/names"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/spatial"
)

// Dataset bundles one complete, self-consistent set of loaded artifacts:
// the restored query graph and its derived indexes, plus the profile they
// were built under. Every field is set once at load and never mutated
// afterwards — queries read it without locking (§5 "the large immutable
// datasets ... are single-owner after load and shared by const reference;
// workers never take locks on them").
type Dataset struct {
	Graph     *nodegraph.Graph
	EEG       *eeg.Graph
	Hierarchy *ch.Hierarchy
	Index     *spatial.Index
	Barriers  *restriction.Index
	Names     *names.Table
	Profile   profile.Profile
	Timestamp string
}

// suffixes names every artifact file LoadDataset reads, in the order it
// reads them, so a failure can report exactly which one misbehaved (§7
// "artifact version mismatch fails load with an explicit list of which
// suffix failed to parse").
var suffixes = []string{".ebg", ".ebg_nodes", ".geometry", ".enw", ".fileIndex", ".ramIndex", ".hsgr", ".restrictions", ".names", ".timestamp"}

// LoadDataset reads every artifact rooted at basePath (e.g. "seattle" for
// "seattle.ebg", "seattle.hsgr", ...) and restores the live, queryable
// graphs and indexes C6/C7/C8 operate over. prof supplies the barrier
// policy used to restore restriction.Index and is stored alongside the
// loaded data for callers that need to recompute anything profile-
// dependent; it is not cross-checked against .properties here since this
// module ships exactly one Profile implementation (profile.DefaultCarProfile)
// and .properties exists for forward compatibility with a richer profile
// environment out of scope (§1), not for runtime validation.
func LoadDataset(basePath string, prof profile.Profile, logger *slog.Logger) (*Dataset, error) {
	logger.Info("loading dataset", "base", basePath)

	edgeRecords, err := artifact.ReadEBG(basePath + ".ebg")
	if err != nil {
		return nil, fmt.Errorf("loading %s.ebg: %w", basePath, err)
	}
	nodeRecords, err := artifact.ReadEBGNodes(basePath + ".ebg_nodes")
	if err != nil {
		return nil, fmt.Errorf("loading %s.ebg_nodes: %w", basePath, err)
	}
	geomRecords, err := artifact.ReadGeometry(basePath + ".geometry")
	if err != nil {
		return nil, fmt.Errorf("loading %s.geometry: %w", basePath, err)
	}
	weights, err := artifact.ReadENW(basePath + ".enw")
	if err != nil {
		return nil, fmt.Errorf("loading %s.enw: %w", basePath, err)
	}
	leafRecords, err := artifact.ReadFileIndex(basePath + ".fileIndex")
	if err != nil {
		return nil, fmt.Errorf("loading %s.fileIndex: %w", basePath, err)
	}
	if err := artifact.ReadRAMIndex(basePath + ".ramIndex"); err != nil {
		return nil, fmt.Errorf("loading %s.ramIndex: %w", basePath, err)
	}
	hsgrNodes, hsgrEdges, _, err := artifact.ReadHSGR(basePath + ".hsgr")
	if err != nil {
		return nil, fmt.Errorf("loading %s.hsgr: %w", basePath, err)
	}
	restrictionRecords, barrierRecords, err := artifact.ReadRestrictions(basePath + ".restrictions")
	if err != nil {
		return nil, fmt.Errorf("loading %s.restrictions: %w", basePath, err)
	}
	nameTable, err := artifact.ReadNames(basePath + ".names")
	if err != nil {
		return nil, fmt.Errorf("loading %s.names: %w", basePath, err)
	}
	timestamp, err := artifact.ReadTimestamp(basePath + ".timestamp")
	if err != nil {
		return nil, fmt.Errorf("loading %s.timestamp: %w", basePath, err)
	}

	geometries := artifact.RestoreGeometries(geomRecords)
	syntheticEdges := artifact.RestoreGeometryEdges(nodeRecords, weights)
	graph := nodegraph.RestoreQueryGraph(syntheticEdges, geometries)

	eegNodes := artifact.RestoreEEGNodes(nodeRecords)
	eegEdges := artifact.RestoreEEGEdges(edgeRecords)
	rects := artifact.SegmentRectsFromLeaves(leafRecords)
	eegGraph := eeg.Restore(eegNodes, eegEdges, rects)

	hierarchy := ch.Restore(hsgrNodes, hsgrEdges)
	index := spatial.RestoreIndex(rects)
	barriers := artifact.RestoreIndex(restrictionRecords, barrierRecords, profile.BarrierPolicyFunc(prof))

	logger.Info("dataset loaded",
		"base", basePath,
		"nodes", eegGraph.NodeCount(),
		"edges", eegGraph.EdgeCount(),
		"timestamp", timestamp,
	)

	return &Dataset{
		Graph:     graph,
		EEG:       eegGraph,
		Hierarchy: hierarchy,
		Index:     index,
		Barriers:  barriers,
		Names:     nameTable,
		Profile:   prof,
		Timestamp: timestamp,
	}, nil
}

// Store holds the current Dataset behind an atomic pointer so readers
// never block on a reload and a reload never blocks on in-flight readers
// (§5): Reload swaps the pointer; everything already holding the old
// *Dataset via Current finishes against it undisturbed.
type Store struct {
	current atomic.Pointer[Dataset]
	logger  *slog.Logger
}

// NewStore builds an empty Store. Current returns nil until Reload
// succeeds at least once.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{logger: logger}
}

// Current returns the dataset in effect right now. Safe to call
// concurrently with Reload from any number of goroutines.
func (s *Store) Current() *Dataset {
	return s.current.Load()
}

// Reload loads basePath as a new Dataset and atomically swaps it in. On
// error the previous dataset (if any) remains current.
func (s *Store) Reload(basePath string, prof profile.Profile) error {
	ds, err := LoadDataset(basePath, prof, s.logger)
	if err != nil {
		return err
	}
	s.current.Store(ds)

	return nil
}
