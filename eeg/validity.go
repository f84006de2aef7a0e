package eeg

import (
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/profile"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/turn"
)

// NewValidityFunc composes a turn.ValidityFunc from the restriction index
// and the active profile (§4.3's "folding together restriction lookups,
// oneway direction, barrier checks, and any profile-declared turn-mode
// restriction").
//
// Way restrictions are keyed by an ordered via-path of arbitrary length
// (§4.2), so a candidate (in, out) pair cannot be checked against a fixed
// lookback depth: any edge sequence ending at in that matches a registered
// via-path can apply a terminal constraint to out, however many via-edges
// precede in. wayRestrictionBlocks replays every such sequence, bounded by
// the longest via-path actually registered in idx, through the trie's
// State machine to decide.
func NewValidityFunc(g *nodegraph.Graph, idx *restriction.Index, prof profile.Profile) turn.ValidityFunc {
	return func(v nodegraph.NodeID, in, out nodegraph.Edge) bool {
		if !in.Passable() || !out.Passable() {
			return false
		}
		if !prof.AccessAllowed(out.Mode) || !prof.AccessAllowed(in.Mode) {
			return false
		}
		if !idx.CanTraverseThrough(v) {
			return false
		}
		if !idx.NodeTurnAllowed(in.ID, v, out.To) {
			return false
		}
		if wayRestrictionBlocks(g, idx, in, out) {
			return false
		}

		return true
	}
}

// wayRestrictionBlocks reports whether some registered way restriction's
// via-path ends exactly at in and forbids (or fails to require) continuing
// to out. It explores every backward edge chain ending at in up to idx's
// longest registered via-path, since in's history is not unique at EEG
// build time: more than one predecessor chain may reach in.From, and any of
// them could be the one a real route actually took.
func wayRestrictionBlocks(g *nodegraph.Graph, idx *restriction.Index, in, out nodegraph.Edge) bool {
	maxLen := idx.MaxWayPathLen()
	if maxLen == 0 {
		return false
	}

	return chainBlocks(g, idx, []nodegraph.EdgeID{in.ID}, in.From, maxLen-1, out.ID)
}

// chainBlocks tests chain (already ending at in and growing backward, with
// the most-recently-prepended predecessor at index 0) against the trie, then
// recurses through from's in-edges to try one hop further back while budget
// remains.
func chainBlocks(g *nodegraph.Graph, idx *restriction.Index, chain []nodegraph.EdgeID, from nodegraph.NodeID, budget int, outID nodegraph.EdgeID) bool {
	state, term := idx.NewState().Step(chain[0])
	for _, e := range chain[1:] {
		state, term = state.Step(e)
	}
	if term != nil && !term.ToEdgeAllowed(outID) {
		return true
	}
	if budget == 0 {
		return false
	}

	preds, err := g.InEdges(from)
	if err != nil {
		return false
	}
	for _, p := range preds {
		if !p.Passable() {
			continue
		}
		next := append([]nodegraph.EdgeID{p.ID}, chain...)
		if chainBlocks(g, idx, next, p.From, budget-1, outID) {
			return true
		}
	}

	return false
}
