package nodegraph

import (
	"sort"

	"github.com/meridian-routing/meridian/coordinate"
)

// CompressionGuard lets the caller (extraction pipeline) veto folding a node
// away when package restriction holds a turn restriction whose via-path
// touches that node. nodegraph has no restriction dependency of its own —
// the guard is the seam described in §9's "explicit context" design note.
type CompressionGuard interface {
	Restricted(v NodeID) bool
}

type noGuard struct{}

func (noGuard) Restricted(NodeID) bool { return false }

// NoGuard is a CompressionGuard that never vetoes a fold; useful for tests
// and for graphs with no restriction index loaded yet.
var NoGuard CompressionGuard = noGuard{}

// CompressionStats reports how much of the graph a CompressDegree2Chains
// pass folded away.
type CompressionStats struct {
	NodesRemoved int
	EdgesFolded  int
	EdgesCreated int
}

// CompressDegree2Chains folds degree-2 through-traffic chains into single
// compressed edges (§4.1). A node v is a fold candidate when it has exactly
// two distinct incident neighbors, is not a barrier, and guard does not veto
// it; each (in-edge, out-edge) pair through v with compatible classification
// and name is merged into one edge carrying the summed weight/duration and
// concatenated geometry. Folding repeats to a fixed point because folding
// one layer can expose a new degree-2 node one hop further out.
//
// Self-loops are never compressed (§4.1 edge case). A one-direction-only
// edge is folded only when it forms a genuine through-pair with another
// edge whose target differs from its own source — the immediate reverse of
// a two-way edge is never treated as a through-pair.
//
// Tie-break: when multiple chains could be folded in the same pass, nodes
// are processed in ascending NodeID order, so results are deterministic
// regardless of map iteration order.
//
// Complexity: O(V·E) per pass (collecting a candidate's incident edges
// scans the whole edge arena), repeated until a pass folds nothing.
func (g *Graph) CompressDegree2Chains(guard CompressionGuard) CompressionStats {
	if guard == nil {
		guard = NoGuard
	}

	var stats CompressionStats
	for {
		progressed := g.compressionPass(guard, &stats)
		if !progressed {
			break
		}
	}

	return stats
}

func (g *Graph) compressionPass(guard CompressionGuard, stats *CompressionStats) bool {
	g.muNode.RLock()
	candidates := make([]NodeID, 0, len(g.nodes))
	for id, n := range g.nodes {
		if !n.removed && !n.barrier {
			candidates = append(candidates, id)
		}
	}
	g.muNode.RUnlock()

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	progressed := false
	for _, v := range candidates {
		if guard.Restricted(v) {
			continue
		}
		if g.tryFoldNode(v, stats) {
			progressed = true
		}
	}

	return progressed
}

// tryFoldNode attempts to fold every valid through-pair at v. Returns true
// if any edge was folded.
func (g *Graph) tryFoldNode(v NodeID, stats *CompressionStats) bool {
	inEdges, outEdges := g.incidentEdges(v)
	if len(inEdges) == 0 || len(outEdges) == 0 {
		return false
	}

	neighbors := make(map[NodeID]struct{}, 2)
	for _, e := range inEdges {
		neighbors[e.From] = struct{}{}
	}
	for _, e := range outEdges {
		neighbors[e.To] = struct{}{}
	}
	if len(neighbors) != 2 {
		return false
	}

	usedIn := make(map[EdgeID]bool, len(inEdges))
	usedOut := make(map[EdgeID]bool, len(outEdges))
	any := false

	for _, inE := range inEdges {
		if inE.From == v {
			continue // self-loop edge case: never compressed
		}
		for _, outE := range outEdges {
			if outE.To == v {
				continue // self-loop edge case
			}
			if usedOut[outE.ID] {
				continue
			}
			if outE.To == inE.From {
				continue // immediate reverse of a two-way edge, not a through-pair
			}
			if inE.Classification != outE.Classification || inE.Name != outE.Name {
				continue
			}
			g.foldPair(v, inE, outE)
			usedIn[inE.ID] = true
			usedOut[outE.ID] = true
			any = true
			if stats != nil {
				stats.EdgesFolded += 2
				stats.EdgesCreated++
			}
			break
		}
	}

	if any && len(usedIn) == len(inEdges) && len(usedOut) == len(outEdges) {
		g.muNode.Lock()
		if n, ok := g.nodes[v]; ok {
			n.removed = true
		}
		g.muNode.Unlock()
		if stats != nil {
			stats.NodesRemoved++
		}
	}

	return any
}

// incidentEdges returns the live in-edges and out-edges of v.
func (g *Graph) incidentEdges(v NodeID) (in, out []Edge) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, eid := range g.adjacency[v] {
		e := g.edges[eid]
		if !e.removed {
			out = append(out, e)
		}
	}
	for i := range g.edges {
		e := g.edges[i]
		if !e.removed && e.To == v {
			in = append(in, e)
		}
	}

	return in, out
}

// foldPair merges inE (x->v) and outE (v->y) into a single edge x->y,
// removes the originals, and appends the new edge to the arena.
func (g *Graph) foldPair(v NodeID, inE, outE Edge) {
	g.muEdgeAdj.Lock()
	g.edges[inE.ID].removed = true
	g.edges[outE.ID].removed = true
	g.muEdgeAdj.Unlock()

	weight := addSaturating(inE.Weight, outE.Weight)
	duration := addSaturating(inE.Duration, outE.Duration)

	geom := g.mergeGeometry(v, inE, outE)
	gid := g.AddGeometry(geom)

	flags := inE.Flags | outE.Flags
	newEdge := Edge{
		From:           inE.From,
		To:             outE.To,
		Weight:         weight,
		Duration:       duration,
		Geometry:       gid,
		Classification: inE.Classification,
		Name:           inE.Name,
		Flags:          flags,
		Mode:           inE.Mode,
	}
	// AddEdge re-locks; both endpoints are guaranteed to already exist.
	_, _ = g.AddEdge(newEdge)
}

// mergeGeometry concatenates inE's polyline, the folded node's own
// coordinate, and outE's polyline, recomputing cumulative weights so the
// original path remains reconstructible (§3 Compressed geometry).
func (g *Graph) mergeGeometry(v NodeID, inE, outE Edge) Geometry {
	vCoord, _ := g.Coordinate(v)

	var coords []coordinate.Coordinate
	var cumW, cumD []int32
	var running int32
	var runningD int32

	appendChain := func(e Edge, base int32, baseD int32) {
		if int(e.Geometry) < len(g.geometries) {
			sub := g.geometries[e.Geometry]
			coords = append(coords, sub.Coords...)
			for _, w := range sub.CumulativeWeights {
				cumW = append(cumW, base+w)
			}
			for _, d := range sub.CumulativeDurations {
				cumD = append(cumD, baseD+d)
			}
		}
	}

	appendChain(inE, 0, 0)
	coords = append(coords, vCoord)
	cumW = append(cumW, inE.Weight)
	cumD = append(cumD, inE.Duration)
	running = inE.Weight
	runningD = inE.Duration
	appendChain(outE, running, runningD)

	return Geometry{Coords: coords, CumulativeWeights: cumW, CumulativeDurations: cumD}
}

func addSaturating(a, b int32) int32 {
	if a == InvalidWeight || b == InvalidWeight {
		return InvalidWeight
	}
	sum := int64(a) + int64(b)
	if sum >= int64(InvalidWeight) {
		return InvalidWeight
	}

	return int32(sum)
}
