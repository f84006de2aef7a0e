package nodegraph

import (
	"math"
	"sync"

	"github.com/meridian-routing/meridian/coordinate"
)

// NodeID is an OSM-derived node identifier (not compacted; the id space is
// sparse until the edge-expanded builder assigns dense EEG node ids).
type NodeID int64

// EdgeID is the arena index of a directed edge within a Graph. Stable for
// the lifetime of the Graph; compression marks edges removed rather than
// shifting indices.
type EdgeID uint32

// Classification is the profile-assigned road class (§3 Node-based edge).
type Classification uint8

// Classification values, ordered roughly by road importance.
const (
	ClassUnclassified Classification = iota
	ClassMotorway
	ClassTrunk
	ClassPrimary
	ClassSecondary
	ClassTertiary
	ClassResidential
	ClassService
	ClassRamp
	ClassLink
)

// TravelMode is the profile-assigned mode a segment is traversable by.
type TravelMode uint8

// TravelMode values.
const (
	ModeDriving TravelMode = iota
	ModeCycling
	ModeWalking
	ModeFerry
	ModeInaccessible
)

// Flags is a bitmask of per-edge boolean properties.
type Flags uint8

// Flag bits.
const (
	FlagRoundabout Flags = 1 << iota
	FlagOneway
	FlagAccessRestricted
)

// InvalidWeight is the sentinel "impassable" weight: the maximum value of
// the edge weight's integer type (§3 Node-based edge).
const InvalidWeight int32 = math.MaxInt32

// GeometryID references a packed polyline in a Graph's geometry table. Id 0
// is the empty polyline that every edge not produced by compression carries.
type GeometryID uint32

// NameID is an interned string index (see package names); zero means
// "unnamed".
type NameID uint32

// Geometry is the compressed-chain polyline for one node-based edge: the
// ordered intermediate coordinates plus per-segment cumulative weight and
// duration so the original path can be reconstructed (§3 Compressed
// geometry).
type Geometry struct {
	Coords              []coordinate.Coordinate
	CumulativeWeights   []int32 // len == len(Coords): weight from the edge's From node to each coordinate
	CumulativeDurations []int32
}

// Edge is a directed edge of the node-based graph.
type Edge struct {
	ID             EdgeID
	From, To       NodeID
	Weight         int32 // deci-seconds or profile-defined unit; InvalidWeight = impassable
	Duration       int32
	Geometry       GeometryID
	Classification Classification
	Name           NameID
	Flags          Flags
	Mode           TravelMode
	removed        bool // folded into a compressed chain; invisible to iteration
}

// Oneway reports whether Edge is traversable in the From->To direction only.
func (e Edge) Oneway() bool { return e.Flags&FlagOneway != 0 }

// Roundabout reports whether Edge is part of a roundabout.
func (e Edge) Roundabout() bool { return e.Flags&FlagRoundabout != 0 }

// AccessRestricted reports whether Edge carries a profile access restriction.
func (e Edge) AccessRestricted() bool { return e.Flags&FlagAccessRestricted != 0 }

// Passable reports whether Edge can be traversed at all.
func (e Edge) Passable() bool { return e.Weight < InvalidWeight && !e.removed }

// node is the identity record for a node-based graph node.
type node struct {
	id       NodeID
	coord    coordinate.Coordinate
	removed  bool // folded away by compression; still addressable for restriction resolution
	barrier  bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithCapacityHint preallocates node/edge storage for the given counts, to
// avoid incremental map growth while loading a continental-scale extract.
func WithCapacityHint(nodes, edges int) GraphOption {
	return func(g *Graph) {
		g.nodeCapHint = nodes
		g.edgeCapHint = edges
	}
}

// Graph is the compressed, directed node-based street graph.
//
// muNode guards the node identity table; muEdgeAdj guards the edge arena,
// the adjacency list, and the geometry table. The two locks are independent:
// a reader resolving a restriction's via-node never contends with a writer
// appending a new edge.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nodeCapHint int
	edgeCapHint int

	nodes map[NodeID]*node

	edges      []Edge              // arena; EdgeID is the index
	adjacency  map[NodeID][]EdgeID // outgoing edges per node
	geometries []Geometry
}

// NewGraph constructs an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[NodeID]*node),
		adjacency: make(map[NodeID][]EdgeID),
	}
	// Reserve geometry id 0 as the empty polyline, so the zero GeometryID of
	// an uncompressed edge never aliases a compressed chain's polyline.
	g.geometries = []Geometry{{}}
	for _, opt := range opts {
		opt(g)
	}
	if g.nodeCapHint > 0 {
		g.nodes = make(map[NodeID]*node, g.nodeCapHint)
		g.adjacency = make(map[NodeID][]EdgeID, g.nodeCapHint)
	}
	if g.edgeCapHint > 0 {
		g.edges = make([]Edge, 0, g.edgeCapHint)
	}

	return g
}
