package parser

import (
	"fmt"

	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/names"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
)

// wayArrival keys the edge of a way that arrives at a given node,
// regardless of direction — what resolving a restriction's from_way
// needs (§4.2: the restriction applies to whichever edge of that way
// actually reaches the via node).
type wayArrival struct {
	way int64
	to  int64
}

// BuildGraph assembles ex's nodes and ways into a nodegraph.Graph and
// restriction.Index, classifying and weighting each segment with prof —
// the glue a real extractor runs between reading raw source data and
// handing a Graph to the edge-expansion builder (§1 dataflow). A way's
// "name" tag, if present, is interned into nameTable and carried on both
// of its segment's directions; ways with no name tag leave Name at its
// zero value (package names reserves id 0 for the empty string).
func BuildGraph(ex Extract, prof profile.Profile, nameTable *names.Table) (*nodegraph.Graph, *restriction.Index, error) {
	g := nodegraph.NewGraph(nodegraph.WithCapacityHint(len(ex.Nodes), len(ex.Ways)*2))
	coords := make(map[int64]coordinate.Coordinate, len(ex.Nodes))

	for _, n := range ex.Nodes {
		if err := g.AddNode(nodegraph.NodeID(n.ID), n.Coord); err != nil {
			return nil, nil, fmt.Errorf("parser: adding node %d: %w", n.ID, err)
		}
		coords[n.ID] = n.Coord
	}

	idx := restriction.NewIndex(profile.BarrierPolicyFunc(prof))
	for _, n := range ex.Nodes {
		if n.Barrier == "" {
			continue
		}
		idx.AddBarrier(nodegraph.NodeID(n.ID), barrierKind(n.Barrier))
	}

	arrivals := make(map[wayArrival]nodegraph.EdgeID, len(ex.Ways)*2)

	for _, way := range ex.Ways {
		class, mode, flags := prof.Classify(way.Tags)
		oneway := flags&nodegraph.FlagOneway != 0

		var nameID nodegraph.NameID
		if name := way.Tags["name"]; name != "" && nameTable != nil {
			nameID = nameTable.Intern(name)
		}

		for i := 0; i+1 < len(way.Nodes); i++ {
			from, to := way.Nodes[i], way.Nodes[i+1]
			length := coordinate.HaversineMeters(coords[from], coords[to])
			weight, duration := prof.EdgeWeight(length, class, mode)

			fwdID, err := g.AddEdge(nodegraph.Edge{
				From: nodegraph.NodeID(from), To: nodegraph.NodeID(to),
				Weight: weight, Duration: duration,
				Classification: class, Mode: mode, Flags: flags, Name: nameID,
			})
			if err != nil {
				return nil, nil, fmt.Errorf("parser: way %d segment %d: %w", way.ID, i, err)
			}
			arrivals[wayArrival{way: way.ID, to: to}] = fwdID

			if oneway {
				continue
			}

			revID, err := g.AddEdge(nodegraph.Edge{
				From: nodegraph.NodeID(to), To: nodegraph.NodeID(from),
				Weight: weight, Duration: duration,
				Classification: class, Mode: mode, Flags: flags &^ nodegraph.FlagOneway, Name: nameID,
			})
			if err != nil {
				return nil, nil, fmt.Errorf("parser: way %d segment %d reverse: %w", way.ID, i, err)
			}
			arrivals[wayArrival{way: way.ID, to: from}] = revID
		}
	}

	for _, r := range ex.Restrictions {
		if len(r.ViaNodes) == 0 {
			continue
		}
		via := r.ViaNodes[0]

		fromEdge, ok := arrivals[wayArrival{way: r.FromWay, to: via}]
		if !ok {
			continue
		}

		toWay, ok := wayByID(ex.Ways, r.ToWay)
		if !ok {
			continue
		}
		toNode, ok := adjacentNode(toWay, via)
		if !ok {
			continue
		}

		switch r.Kind {
		case "only_left_turn", "only_right_turn", "only_straight_on":
			idx.AddOnlyTurn(fromEdge, nodegraph.NodeID(via), nodegraph.NodeID(toNode))
		default:
			idx.AddNoTurn(fromEdge, nodegraph.NodeID(via), nodegraph.NodeID(toNode))
		}
	}

	return g, idx, nil
}

func wayByID(ways []RawWay, id int64) (RawWay, bool) {
	for _, w := range ways {
		if w.ID == id {
			return w, true
		}
	}

	return RawWay{}, false
}

// adjacentNode finds the node one hop from via along w, in whichever
// direction w actually touches via — the "to" node a restriction's
// to_way continuation reaches.
func adjacentNode(w RawWay, via int64) (int64, bool) {
	if len(w.Nodes) < 2 {
		return 0, false
	}
	if w.Nodes[0] == via {
		return w.Nodes[1], true
	}
	if w.Nodes[len(w.Nodes)-1] == via {
		return w.Nodes[len(w.Nodes)-2], true
	}

	return 0, false
}

func barrierKind(tag string) restriction.BarrierKind {
	switch tag {
	case "gate":
		return restriction.BarrierGate
	case "bollard":
		return restriction.BarrierBollard
	case "lift_gate":
		return restriction.BarrierLiftGate
	case "block":
		return restriction.BarrierBlock
	default:
		return restriction.BarrierNone
	}
}
