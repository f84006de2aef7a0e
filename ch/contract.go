package ch

import (
	"container/heap"
	"math"
	"sync"

	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/profile"
)

// wEdge is one mutable query edge during contraction.
type wEdge struct {
	from, to eeg.NodeID
	weight   int32
	duration int32
	shortcut bool
	via      eeg.EdgeID
	middle   eeg.NodeID
}

// workGraph is the contractor's mutable working state: the residual graph
// plus per-node contraction bookkeeping. Edges to already-contracted nodes
// are left in place and skipped by traversal (§4.5's "marked, not
// deleted"), so unpacking and diagnostics can still see the full history.
type workGraph struct {
	// mu guards every read or write of out/in/edges. Parallel contraction
	// only gives disjoint 2-hop *write* neighborhoods (§4.5); a witness
	// search started from one independent-set member can still read
	// several hops further out, into another member's 1-hop adjacency, so
	// reads need the same synchronization as writes rather than relying on
	// the independent-set guarantee alone.
	mu sync.RWMutex

	out, in    [][]int // per-node indices into edges
	edges      []wEdge
	contracted []bool
}

// addEdge appends e to the arena and both adjacency lists.
func (wg *workGraph) addEdge(e wEdge) int {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	idx := len(wg.edges)
	wg.edges = append(wg.edges, e)
	wg.out[e.from] = append(wg.out[e.from], idx)
	wg.in[e.to] = append(wg.in[e.to], idx)

	return idx
}

// outEdges returns a snapshot copy of n's outgoing edge indices, safe to
// range over without holding the lock.
func (wg *workGraph) outEdges(n eeg.NodeID) []int {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	return append([]int(nil), wg.out[n]...)
}

// inEdges returns a snapshot copy of n's incoming edge indices.
func (wg *workGraph) inEdges(n eeg.NodeID) []int {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	return append([]int(nil), wg.in[n]...)
}

// edgeAt returns a copy of the edge at idx.
func (wg *workGraph) edgeAt(idx int) wEdge {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	return wg.edges[idx]
}

// isContracted reports whether n has been contracted, synchronized against
// the writes in Contract's main loop (which only runs between parallel
// rounds, but concurrent witness searches in the same round still read it).
func (wg *workGraph) isContracted(n eeg.NodeID) bool {
	wg.mu.RLock()
	defer wg.mu.RUnlock()

	return wg.contracted[n]
}

// Contract runs the contraction hierarchy preprocessing over g (§4.5) and
// returns the resulting Hierarchy.
func Contract(g *eeg.Graph, constants profile.Constants) (*Hierarchy, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	wg := &workGraph{
		out:        make([][]int, n),
		in:         make([][]int, n),
		contracted: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		for _, eid := range g.OutEdges(eeg.NodeID(i)) {
			e := g.Edges[eid]
			wg.addEdge(wEdge{from: e.From, to: e.To, weight: e.Weight, duration: e.Duration, via: e.ID})
		}
	}

	level := make([]Level, n)
	depth := make([]int, n)
	order := make([]eeg.NodeID, 0, n)

	alpha, beta, gamma := constants.CHLazyUpdateAlpha, constants.CHLazyUpdateBeta, constants.CHLazyUpdateGamma
	hopLimit, nodeLimit := constants.WitnessSearchHopLimit, constants.WitnessSearchNodeLimit
	coreSize := int((1 - constants.CHCoreFactor) * float64(n))
	if coreSize < 0 {
		coreSize = 0
	}

	pq := make(priorityHeap, 0, n)
	heap.Init(&pq)
	for i := 0; i < n; i++ {
		node := eeg.NodeID(i)
		heap.Push(&pq, &priorityItem{node: node, priority: priority(wg, node, depth, alpha, beta, gamma, hopLimit, nodeLimit)})
	}

	remaining := n
	nextLevel := Level(0)

	for remaining > coreSize && pq.Len() > 0 {
		// Lazy update: pop the minimum, recompute, and re-push if it is no
		// longer the minimum (§4.5 "Lazy update").
		item := heap.Pop(&pq).(*priorityItem)
		if wg.contracted[item.node] {
			continue
		}
		fresh := priority(wg, item.node, depth, alpha, beta, gamma, hopLimit, nodeLimit)
		if pq.Len() > 0 && fresh > pq[0].priority {
			item.priority = fresh
			heap.Push(&pq, item)
			continue
		}

		// Gather a batch of further low-priority candidates and contract an
		// independent subset of them together (§4.5 "Parallel contraction").
		// The popped node is always a member since it already passed its
		// lazy-update check.
		candidates := []eeg.NodeID{item.node}
		var drained []*priorityItem
		for pq.Len() > 0 && len(candidates) < 64 {
			c := heap.Pop(&pq).(*priorityItem)
			if wg.contracted[c.node] {
				continue
			}
			drained = append(drained, c)
			candidates = append(candidates, c.node)
		}

		batch := selectIndependentSet(wg, candidates)
		batchSet := make(map[eeg.NodeID]bool, len(batch))
		for _, b := range batch {
			batchSet[b] = true
		}

		var wgroup sync.WaitGroup
		for _, nd := range batch {
			wgroup.Add(1)
			go func(nd eeg.NodeID) {
				defer wgroup.Done()
				contractNode(wg, nd, hopLimit, nodeLimit)
			}(nd)
		}
		wgroup.Wait()

		for _, nd := range batch {
			wg.contracted[nd] = true
			level[nd] = nextLevel
			nextLevel++
			order = append(order, nd)
			remaining--
			depth[nd] = searchSpaceDepthOf(wg, nd, depth)
		}

		// Re-push every drained candidate that was not contracted this
		// round, and refresh priorities of surviving neighbors of the
		// contracted batch.
		touched := make(map[eeg.NodeID]bool)
		for _, nd := range batch {
			for _, idx := range wg.in[nd] {
				touched[wg.edges[idx].from] = true
			}
			for _, idx := range wg.out[nd] {
				touched[wg.edges[idx].to] = true
			}
		}
		for _, c := range drained {
			if batchSet[c.node] {
				continue
			}
			if touched[c.node] {
				c.priority = priority(wg, c.node, depth, alpha, beta, gamma, hopLimit, nodeLimit)
			}
			heap.Push(&pq, c)
		}
	}

	// Everything left in the heap (and anything never pushed as a
	// candidate, i.e. still uncontracted) is the core: by construction the
	// most important nodes, contracted last were they contracted at all.
	// They get levels continuing the same increasing sequence, so every
	// core node compares above every contracted node and the "upward edge"
	// test (level[to] > level[from]) still routes a search up into the
	// core rather than treating it as unreachable (§4.5 "Core
	// termination", §4.6 "upward edges").
	core := make([]bool, n)
	for i := 0; i < n; i++ {
		if !wg.contracted[eeg.NodeID(i)] {
			core[i] = true
			level[i] = nextLevel
			nextLevel++
		}
	}

	return buildHierarchy(wg, level, core, order), nil
}

// contractNode performs the actual contraction step for n: for every
// (u,v) pair through n needing a shortcut (per the same witness-search
// logic used for priority estimation), insert it.
func contractNode(wg *workGraph, n eeg.NodeID, hopLimit, nodeLimit int) {
	for _, p := range incidentPairs(wg, n) {
		inE := wg.edgeAt(p.uEdge)
		outE := wg.edgeAt(p.vEdge)
		candidate := int64(inE.weight) + int64(outE.weight)
		if candidate > math.MaxInt32 {
			continue
		}
		reached, dist := witnessSearch(wg, inE.from, n, outE.to, candidate, hopLimit, nodeLimit)
		if reached && dist <= candidate {
			continue
		}
		candDuration := inE.duration + outE.duration
		insertOrImproveShortcut(wg, inE.from, outE.to, int32(candidate), candDuration, n)
	}
}

// insertOrImproveShortcut inserts a shortcut u->v via middle, or, if one
// already exists, keeps the smaller-weight one (§4.5 step 3).
func insertOrImproveShortcut(wg *workGraph, u, v eeg.NodeID, weight, duration int32, middle eeg.NodeID) {
	wg.mu.Lock()
	for _, idx := range wg.out[u] {
		e := &wg.edges[idx]
		if e.to == v && e.shortcut {
			if weight < e.weight {
				e.weight = weight
				e.duration = duration
				e.middle = middle
			}
			wg.mu.Unlock()
			return
		}
	}
	idx := len(wg.edges)
	e := wEdge{from: u, to: v, weight: weight, duration: duration, shortcut: true, middle: middle}
	wg.edges = append(wg.edges, e)
	wg.out[u] = append(wg.out[u], idx)
	wg.in[v] = append(wg.in[v], idx)
	wg.mu.Unlock()
}

// searchSpaceDepthOf recomputes the depth value recorded for n once
// contracted, matching the definition used in priority(): one more than
// the deepest already-contracted neighbor at the time n itself is
// contracted.
func searchSpaceDepthOf(wg *workGraph, n eeg.NodeID, depth []int) int {
	maxDepth := 0
	note := func(neighbor eeg.NodeID) {
		if wg.contracted[neighbor] && depth[neighbor] > maxDepth {
			maxDepth = depth[neighbor]
		}
	}
	for _, idx := range wg.in[n] {
		note(wg.edges[idx].from)
	}
	for _, idx := range wg.out[n] {
		note(wg.edges[idx].to)
	}

	return maxDepth + 1
}

// buildHierarchy materializes the immutable Hierarchy output from the
// contractor's working state.
func buildHierarchy(wg *workGraph, level []Level, core []bool, order []eeg.NodeID) *Hierarchy {
	n := len(level)
	h := &Hierarchy{
		Edges:     make([]QueryEdge, len(wg.edges)),
		outUp:     make([][]QueryEdgeID, n),
		inUp:      make([][]QueryEdgeID, n),
		outAll:    make([][]QueryEdgeID, n),
		inAll:     make([][]QueryEdgeID, n),
		Level:     level,
		Core:      core,
		Order:     order,
		NodeCount: n,
	}

	for i, e := range wg.edges {
		h.Edges[i] = QueryEdge{
			ID:       QueryEdgeID(i),
			From:     e.from,
			To:       e.to,
			Weight:   e.weight,
			Duration: e.duration,
			Shortcut: e.shortcut,
			Via:      e.via,
			Middle:   e.middle,
		}
		h.outAll[e.from] = append(h.outAll[e.from], QueryEdgeID(i))
		h.inAll[e.to] = append(h.inAll[e.to], QueryEdgeID(i))
		if level[e.from] < level[e.to] {
			h.outUp[e.from] = append(h.outUp[e.from], QueryEdgeID(i))
			h.inUp[e.to] = append(h.inUp[e.to], QueryEdgeID(i))
		}
	}

	return h
}
