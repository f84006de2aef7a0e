package restriction

import (
	"fmt"

	"github.com/meridian-routing/meridian/nodegraph"
)

// trieNode is one position in the way-restriction prefix trie. children
// transitions on the next via edge in the path; terminal (if non-nil) is
// the restriction whose via-path ends exactly here.
type trieNode struct {
	children map[nodegraph.EdgeID]*trieNode
	terminal *wayRestriction
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[nodegraph.EdgeID]*trieNode)}
}

// wayRestriction is a restriction whose via is a sequence of edges rather
// than a single node (§3 Restriction).
type wayRestriction struct {
	kind   Kind
	toEdge nodegraph.EdgeID // for KindNo: the forbidden continuation; for KindOnly: the required one
}

// AddWayRestriction registers a restriction whose via is the ordered edge
// path [fromEdge, via...]; toEdge is the edge the path's continuation is
// forbidden (KindNo) or required (KindOnly) to reach.
//
// Validation, in order (§4.2/§7 failure semantics — dropped with a
// diagnostic, extraction continues):
//  1. path must be non-empty (ErrEmptyViaPath).
//  2. path must not revisit an edge id (ErrCycleInViaPath), adapted from the
//     teacher's dfs cycle-detection pattern: a "currently on this path" set
//     checked at every step, not a separate whole-graph traversal.
//
// Complexity: O(len(path)) to insert.
func (idx *Index) AddWayRestriction(fromEdge nodegraph.EdgeID, via []nodegraph.EdgeID, toEdge nodegraph.EdgeID, kind Kind) error {
	path := append([]nodegraph.EdgeID{fromEdge}, via...)
	if len(path) == 0 {
		idx.diagnose(fmt.Sprintf("way restriction: %v", ErrEmptyViaPath))
		return ErrEmptyViaPath
	}
	if err := detectPathCycle(path); err != nil {
		idx.diagnose(fmt.Sprintf("way restriction %v: %v", path, err))
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	node := idx.wayTrie
	for _, e := range path {
		child, ok := node.children[e]
		if !ok {
			child = newTrieNode()
			node.children[e] = child
		}
		node = child
	}
	node.terminal = &wayRestriction{kind: kind, toEdge: toEdge}
	if len(path) > idx.wayMaxPathLen {
		idx.wayMaxPathLen = len(path)
	}

	return nil
}

// MaxWayPathLen returns the length of the longest registered way-restriction
// via-path, counting the from-edge itself (0 if no way restriction has been
// registered). A caller replaying a candidate's edge history backward only
// ever needs to look this many hops before concluding no restriction can
// apply (§4.2).
func (idx *Index) MaxWayPathLen() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.wayMaxPathLen
}

// detectPathCycle walks path maintaining a "seen on this path" set — the
// same shape as the teacher's dfs.DetectCycle, specialized to a linear path
// instead of a general graph traversal, since a restriction's via-path is
// never expected to revisit an edge.
func detectPathCycle(path []nodegraph.EdgeID) error {
	seen := make(map[nodegraph.EdgeID]bool, len(path))
	for _, e := range path {
		if seen[e] {
			return fmt.Errorf("%w: edge %d repeats", ErrCycleInViaPath, e)
		}
		seen[e] = true
	}

	return nil
}

func (idx *Index) diagnose(msg string) {
	idx.mu.Lock()
	idx.Diagnostics = append(idx.Diagnostics, msg)
	idx.mu.Unlock()
}

// State tracks a turn sequence's position in the way-restriction trie,
// letting a caller extend the active restriction state in O(1) per step
// instead of re-walking the whole path on every turn (§4.2).
type State struct {
	idx  *Index
	node *trieNode
}

// NewState returns a State positioned at the trie root.
func (idx *Index) NewState() *State {
	return &State{idx: idx, node: idx.wayTrie}
}

// Step advances the state by one edge. It returns the restriction active at
// the new position (nil if none), and a fresh State representing "this edge
// is not part of any tracked via-path" when there is no matching child —
// equivalent to resetting to the root, since no longer-path restriction can
// apply once the prefix breaks.
func (s *State) Step(e nodegraph.EdgeID) (*State, *wayRestriction) {
	s.idx.mu.RLock()
	defer s.idx.mu.RUnlock()

	child, ok := s.node.children[e]
	if !ok {
		// Not a continuation of any tracked prefix; retry from root in case
		// e itself starts a new restriction's from-edge.
		child, ok = s.idx.wayTrie.children[e]
		if !ok {
			return &State{idx: s.idx, node: s.idx.wayTrie}, nil
		}
	}

	return &State{idx: s.idx, node: child}, child.terminal
}

// ToEdgeAllowed reports whether a KindOnly restriction (if any is active at
// this state) permits candidate; KindNo restrictions are reported via the
// Step return value directly (the caller compares candidate against
// terminal.toEdge for KindNo).
func (w *wayRestriction) ToEdgeAllowed(candidate nodegraph.EdgeID) bool {
	if w == nil {
		return true
	}
	if w.kind == KindOnly {
		return candidate == w.toEdge
	}

	return candidate != w.toEdge
}
