package parser

import "github.com/meridian-routing/meridian/coordinate"

// RawNode is one node as read from an OSM-equivalent source: an id, its
// coordinate, and the barrier tag if present (§4.2).
type RawNode struct {
	ID      int64
	Coord   coordinate.Coordinate
	Barrier string // raw tag value ("gate", "bollard", ...), "" if none
}

// RawWay is one way, pre-segmentation: the ordered node ids forming its
// path plus the tags a profile.Classify call needs (§3).
type RawWay struct {
	ID    int64
	Nodes []int64
	Tags  map[string]string
}

// RawRestriction is one turn-restriction relation, already resolved to a
// (from way, via nodes, to way, kind) triple — the shape package
// restriction's node-restriction table consumes directly (§4.2). Only a
// single via node is populated by the fixture loader below; a real OSM
// reader resolving a chained way restriction would populate more than one.
type RawRestriction struct {
	FromWay  int64
	ViaNodes []int64
	ToWay    int64
	Kind     string // "no_left_turn", "only_straight_on", etc; profile-interpreted
}

// Extract is everything one source yields in a single pass: nodes, ways,
// and restrictions, ready for BuildGraph to assemble into a
// nodegraph.Graph and restriction.Index (§1 dataflow: extract -> C2/C3).
type Extract struct {
	Nodes        []RawNode
	Ways         []RawWay
	Restrictions []RawRestriction
}
