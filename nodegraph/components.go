package nodegraph

import "sort"

// componentWalker performs an unweighted breadth-first traversal over the
// undirected view of the graph (an edge in either direction connects its
// endpoints), adapted from the teacher's bfs.walker shape: a queue of
// frontier nodes plus a visited set, grown one layer at a time.
type componentWalker struct {
	g       *Graph
	visited map[NodeID]bool
	undir   map[NodeID][]NodeID
}

func newComponentWalker(g *Graph) *componentWalker {
	w := &componentWalker{g: g, visited: make(map[NodeID]bool)}
	w.buildUndirectedView()

	return w
}

func (w *componentWalker) buildUndirectedView() {
	w.g.muEdgeAdj.RLock()
	defer w.g.muEdgeAdj.RUnlock()

	w.undir = make(map[NodeID][]NodeID)
	for _, e := range w.g.edges {
		if e.removed {
			continue
		}
		w.undir[e.From] = append(w.undir[e.From], e.To)
		w.undir[e.To] = append(w.undir[e.To], e.From)
	}
}

// component returns every node reachable from start in the undirected view.
func (w *componentWalker) component(start NodeID) []NodeID {
	queue := []NodeID{start}
	w.visited[start] = true
	members := []NodeID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range w.undir[cur] {
			if !w.visited[nbr] {
				w.visited[nbr] = true
				members = append(members, nbr)
				queue = append(queue, nbr)
			}
		}
	}

	return members
}

// RemoveSmallComponents implements the `--small-component-size K` extractor
// flag (§6.2): any weakly-connected component with fewer than k nodes is
// dropped from the graph (its nodes and incident edges marked removed). A
// component of size < 1 is never dropped (k <= 0 disables filtering).
//
// Complexity: O(V + E).
func (g *Graph) RemoveSmallComponents(k int) (removedNodes int) {
	if k <= 0 {
		return 0
	}

	g.muNode.RLock()
	allNodes := make([]NodeID, 0, len(g.nodes))
	for id, n := range g.nodes {
		if !n.removed {
			allNodes = append(allNodes, id)
		}
	}
	g.muNode.RUnlock()
	sort.Slice(allNodes, func(i, j int) bool { return allNodes[i] < allNodes[j] })

	walker := newComponentWalker(g)
	for _, start := range allNodes {
		if walker.visited[start] {
			continue
		}
		members := walker.component(start)
		if len(members) >= k {
			continue
		}
		g.removeNodes(members)
		removedNodes += len(members)
	}

	return removedNodes
}

func (g *Graph) removeNodes(ids []NodeID) {
	set := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	g.muNode.Lock()
	for _, id := range ids {
		if n, ok := g.nodes[id]; ok {
			n.removed = true
		}
	}
	g.muNode.Unlock()

	g.muEdgeAdj.Lock()
	for i := range g.edges {
		e := &g.edges[i]
		if set[e.From] || set[e.To] {
			e.removed = true
		}
	}
	g.muEdgeAdj.Unlock()
}
