package turn

import "github.com/meridian-routing/meridian/nodegraph"

// IsObviousContinuation decides whether out is simply the continuation of
// the same road as in, walking through intervening degree-2 virtual
// intersections (traffic signals, small splits) up to the Analyser's
// configured hop limit, so that signalised straight-throughs are not
// misclassified as turns (§4.3's "degree-2 node skipping for look-ahead").
//
// The walk terminates at the first true branch (a node with more than one
// plausible continuation) or after the hop limit, whichever comes first.
//
// Complexity: O(hop limit).
func (a *Analyser) IsObviousContinuation(v nodegraph.NodeID, in, out nodegraph.Edge) (bool, error) {
	cur := out
	hops := 0
	for {
		bIn, err := bearingAt(a.g, in, v, true)
		if err != nil {
			return false, err
		}
		bOut, err := bearingAt(a.g, cur, cur.From, false)
		if err != nil {
			return false, err
		}
		angle := AngleDegrees(bIn, bOut)
		if Bucket(angle) == Straight {
			return true, nil
		}

		if hops >= a.lookaheadHops {
			return false, nil
		}

		next, ok, err := a.singleBranchContinuation(cur)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		cur = next
		hops++
	}
}

// singleBranchContinuation reports the sole outgoing edge of cur.To when
// cur.To is a virtual (degree-2, unnamed-branch) intersection: exactly one
// outgoing edge and the profile never assigned it a distinct name/class
// from cur. Returns ok=false once a true branch (more than one plausible
// continuation) is reached.
func (a *Analyser) singleBranchContinuation(cur nodegraph.Edge) (nodegraph.Edge, bool, error) {
	out, err := a.g.AdjacentEdges(cur.To)
	if err != nil {
		return nodegraph.Edge{}, false, err
	}
	if len(out) != 1 {
		return nodegraph.Edge{}, false, nil
	}
	next := out[0]
	if next.Classification != cur.Classification || next.Name != cur.Name {
		return nodegraph.Edge{}, false, nil
	}

	return next, true, nil
}
