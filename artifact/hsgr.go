package artifact

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
)

// HSGRNodeRecord is one .hsgr node-array entry (§6.1): where in the edge
// array this node's own edges begin, its contraction level, and whether it
// was left uncontracted in the core. Core is redundant with Level in a
// freshly contracted Hierarchy (core nodes always hold the highest levels
// of all), but a loader reading .hsgr back has no other way to tell a core
// node from an ordinarily contracted one without re-deriving the core
// threshold, so it is carried explicitly.
type HSGRNodeRecord struct {
	FirstEdgeOffset uint32
	Level           int32
	Core            bool
}

// HSGREdgeRecord is one .hsgr edge-array entry (§6.1).
type HSGREdgeRecord struct {
	Target             uint32
	Weight             int32
	Duration           int32
	Forward            bool
	Backward           bool
	IsShortcut         bool
	MiddleNodeOrEdgeID uint32
}

// HSGRFromHierarchy groups h's query edges into the node/edge pair the
// documented .hsgr layout describes: node_array[n] names where node n's
// own edges begin in edge_array, which holds every query edge grouped by
// source node in ascending node-id order. Forward and Backward mark
// whether an edge is one of the level-restricted "upward" edges the
// forward and reverse search may use (OutUpEdges/InUpEdges); the
// core-case fallback search still sees every edge via edge_array itself.
func HSGRFromHierarchy(h *ch.Hierarchy) ([]HSGRNodeRecord, []HSGREdgeRecord) {
	nodes := make([]HSGRNodeRecord, h.NodeCount)
	var edges []HSGREdgeRecord

	for n := 0; n < h.NodeCount; n++ {
		id := eeg.NodeID(n)
		nodes[n] = HSGRNodeRecord{FirstEdgeOffset: uint32(len(edges)), Level: int32(h.Level[n]), Core: h.IsCore(id)}

		up := make(map[ch.QueryEdgeID]bool, len(h.OutUpEdges(id)))
		for _, eid := range h.OutUpEdges(id) {
			up[eid] = true
		}

		for _, eid := range h.OutAllEdges(id) {
			qe := h.Edges[eid]

			backward := false
			for _, rid := range h.InUpEdges(qe.To) {
				if rid == eid {
					backward = true
					break
				}
			}

			middle := uint32(qe.Via)
			if qe.Shortcut {
				middle = uint32(qe.Middle)
			}

			edges = append(edges, HSGREdgeRecord{
				Target:             uint32(qe.To),
				Weight:             qe.Weight,
				Duration:           qe.Duration,
				Forward:            up[eid],
				Backward:           backward,
				IsShortcut:         qe.Shortcut,
				MiddleNodeOrEdgeID: middle,
			})
		}
	}

	return nodes, edges
}

// WriteHSGR writes h's contracted graph to path, checksummed over the
// node and edge arrays.
func WriteHSGR(path string, h *ch.Hierarchy) error {
	nodes, edges := HSGRFromHierarchy(h)

	var body bytes.Buffer
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(nodes))); err != nil {
		return err
	}
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(edges))); err != nil {
		return err
	}
	if len(nodes) > 0 {
		if err := binary.Write(&body, binary.LittleEndian, nodes); err != nil {
			return err
		}
	}
	if len(edges) > 0 {
		if err := binary.Write(&body, binary.LittleEndian, edges); err != nil {
			return err
		}
	}

	checksum := crc32.ChecksumIEEE(body.Bytes())

	return writeAtomic(path, func(w io.Writer) error {
		if err := binary.Write(w, binary.LittleEndian, checksum); err != nil {
			return err
		}
		_, err := w.Write(body.Bytes())

		return err
	})
}

// ReadHSGR reads back what WriteHSGR wrote, returning the stored checksum
// alongside the node and edge arrays so a caller can cross-check it
// against a freshly recomputed one.
func ReadHSGR(path string) (nodes []HSGRNodeRecord, edges []HSGREdgeRecord, checksum uint32, err error) {
	err = readWithFingerprint(path, func(r io.Reader) error {
		if err := binary.Read(r, binary.LittleEndian, &checksum); err != nil {
			return err
		}

		var nodeCount, edgeCount uint32
		if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
			return err
		}

		if nodeCount > 0 {
			nodes = make([]HSGRNodeRecord, nodeCount)
			if err := binary.Read(r, binary.LittleEndian, nodes); err != nil {
				return err
			}
		}
		if edgeCount > 0 {
			edges = make([]HSGREdgeRecord, edgeCount)
			if err := binary.Read(r, binary.LittleEndian, edges); err != nil {
				return err
			}
		}

		return nil
	})

	return nodes, edges, checksum, err
}
