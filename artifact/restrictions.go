package artifact

import (
	"encoding/binary"
	"io"

	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/restriction"
)

// nodeRestrictionFixed is the fixed-size prefix of a NodeRestrictionRecord
// (everything but its variable-length Forbidden tail).
type nodeRestrictionFixed struct {
	FromEdge uint32
	Via      int64
	Kind     uint8
	OnlyTo   int64
}

// NodeRestrictionRecord is one .restrictions node-restriction entry.
type NodeRestrictionRecord struct {
	FromEdge  uint32
	Via       int64
	Kind      uint8
	OnlyTo    int64
	Forbidden []int64
}

// BarrierRecord is one .restrictions barrier entry.
type BarrierRecord struct {
	Node int64
	Kind uint8
}

func nodeRestrictionRecordFrom(rec restriction.NodeRestrictionRecord) NodeRestrictionRecord {
	out := NodeRestrictionRecord{
		FromEdge: uint32(rec.FromEdge),
		Via:      int64(rec.Via),
		Kind:     uint8(rec.Kind),
		OnlyTo:   int64(rec.OnlyTo),
	}
	for _, to := range rec.Forbidden {
		out.Forbidden = append(out.Forbidden, int64(to))
	}

	return out
}

func (rec NodeRestrictionRecord) toDomain() restriction.NodeRestrictionRecord {
	out := restriction.NodeRestrictionRecord{
		FromEdge: nodegraph.EdgeID(rec.FromEdge),
		Via:      nodegraph.NodeID(rec.Via),
		Kind:     restriction.Kind(rec.Kind),
		OnlyTo:   nodegraph.NodeID(rec.OnlyTo),
	}
	for _, to := range rec.Forbidden {
		out.Forbidden = append(out.Forbidden, nodegraph.NodeID(to))
	}

	return out
}

// RestrictionsFromIndex snapshots idx's node restrictions and barriers
// into their on-disk record form. Way restrictions are not included — see
// restriction.Index.NodeRestrictions' doc comment.
func RestrictionsFromIndex(idx *restriction.Index) ([]NodeRestrictionRecord, []BarrierRecord) {
	nodeRecs := idx.NodeRestrictions()
	restrictions := make([]NodeRestrictionRecord, len(nodeRecs))
	for i, rec := range nodeRecs {
		restrictions[i] = nodeRestrictionRecordFrom(rec)
	}

	barrierRecs := idx.Barriers()
	barriers := make([]BarrierRecord, len(barrierRecs))
	for i, rec := range barrierRecs {
		barriers[i] = BarrierRecord{Node: int64(rec.Node), Kind: uint8(rec.Kind)}
	}

	return restrictions, barriers
}

// WriteRestrictions writes idx's restrictions and barriers to path.
func WriteRestrictions(path string, idx *restriction.Index) error {
	restrictions, barriers := RestrictionsFromIndex(idx)

	return writeAtomic(path, func(w io.Writer) error {
		if err := writeCount(w, len(restrictions)); err != nil {
			return err
		}
		for _, rec := range restrictions {
			fixed := nodeRestrictionFixed{FromEdge: rec.FromEdge, Via: rec.Via, Kind: rec.Kind, OnlyTo: rec.OnlyTo}
			if err := binary.Write(w, binary.LittleEndian, fixed); err != nil {
				return err
			}
			if err := writeSlice(w, rec.Forbidden); err != nil {
				return err
			}
		}

		return writeSlice(w, barriers)
	})
}

// ReadRestrictions reads back what WriteRestrictions wrote.
func ReadRestrictions(path string) ([]NodeRestrictionRecord, []BarrierRecord, error) {
	var restrictions []NodeRestrictionRecord
	var barriers []BarrierRecord

	err := readWithFingerprint(path, func(r io.Reader) error {
		n, err := readCount(r)
		if err != nil {
			return err
		}

		restrictions = make([]NodeRestrictionRecord, n)
		for i := 0; i < n; i++ {
			var fixed nodeRestrictionFixed
			if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
				return err
			}
			forbidden, err := readSlice[int64](r)
			if err != nil {
				return err
			}
			restrictions[i] = NodeRestrictionRecord{
				FromEdge:  fixed.FromEdge,
				Via:       fixed.Via,
				Kind:      fixed.Kind,
				OnlyTo:    fixed.OnlyTo,
				Forbidden: forbidden,
			}
		}

		recs, err := readSlice[BarrierRecord](r)
		if err != nil {
			return err
		}
		barriers = recs

		return nil
	})

	return restrictions, barriers, err
}

// RestoreIndex rebuilds a restriction.Index from records read back by
// ReadRestrictions, applying policy the same way restriction.NewIndex
// would.
func RestoreIndex(restrictions []NodeRestrictionRecord, barriers []BarrierRecord, policy restriction.BarrierPolicy) *restriction.Index {
	idx := restriction.NewIndex(policy)

	domainRestrictions := make([]restriction.NodeRestrictionRecord, len(restrictions))
	for i, rec := range restrictions {
		domainRestrictions[i] = rec.toDomain()
	}
	idx.RestoreNodeRestrictions(domainRestrictions)

	domainBarriers := make([]restriction.BarrierRecord, len(barriers))
	for i, rec := range barriers {
		domainBarriers[i] = restriction.BarrierRecord{Node: nodegraph.NodeID(rec.Node), Kind: restriction.BarrierKind(rec.Kind)}
	}
	idx.RestoreBarriers(domainBarriers)

	return idx
}
