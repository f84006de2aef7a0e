package match

import (
	"math"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/query"
	"github.com/meridian-routing/meridian/spatial"
)

// cell is one candidate's state in a Viterbi column: its best log-
// probability path so far, the index of the parent candidate in the
// previous column that achieved it (-1 when the cell has no parent, as in
// the first column of a run), and the transition discrepancy that parent link incurred.
type cell struct {
	logProb float64
	parent  int
	delta   float64
}

// column is one trace point's Viterbi cells, tagged with the trace index
// it belongs to so a run of columns need not be contiguous in the trace.
type column struct {
	idx   int
	cells []cell
}

// Match fits trace onto the network reachable from g/eegGraph through h,
// generating candidates from idx, and returns the resulting sub-matches
// (§4.7). A trace with points that never have any candidate within range
// yields ErrNoCandidates; a trace that has at least one candidate
// somewhere always yields at least one sub-match.
func Match(idx *spatial.Index, g *nodegraph.Graph, eegGraph *eeg.Graph, h *ch.Hierarchy, trace []TracePoint, opts ...Option) (Result, error) {
	if len(trace) == 0 {
		return Result{}, ErrEmptyTrace
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	candidates := make([][]Candidate, len(trace))
	anyCandidates := false
	for i, tp := range trace {
		candidates[i] = candidatesFor(idx, g, eegGraph, tp.Coord, cfg)
		if len(candidates[i]) > 0 {
			anyCandidates = true
		}
	}
	if !anyCandidates {
		return Result{}, ErrNoCandidates
	}

	// A run of consecutive candidate-less trace points longer than
	// maxBrokenStates is treated as an unrecoverable gap (GPS dropout well
	// past what map matching can bridge) rather than something worth
	// scanning past indefinitely looking for a resume point.
	var subs []SubMatch
	i := 0
	skipped := 0
	for i < len(trace) {
		if len(candidates[i]) == 0 {
			i++
			skipped++
			if skipped > cfg.maxBrokenStates {
				break
			}
			continue
		}
		skipped = 0

		sub, next := runSegment(g, eegGraph, h, trace, candidates, i, cfg)
		subs = append(subs, sub)
		i = next
	}

	return Result{SubMatches: subs}, nil
}

// runSegment runs the Viterbi forward recursion starting at trace index
// start (which is guaranteed to have at least one candidate), extending
// the run column by column until either the trace ends or a column is
// reached where every candidate's best path is -Inf (no transition from
// the previous column survived Δ_max pruning or found a route at all).
// It returns the finalized sub-match for the run and the trace index to
// resume scanning from.
func runSegment(g *nodegraph.Graph, eegGraph *eeg.Graph, h *ch.Hierarchy, trace []TracePoint, candidates [][]Candidate, start int, cfg config) (SubMatch, int) {
	first := column{idx: start, cells: make([]cell, len(candidates[start]))}
	for i, c := range candidates[start] {
		first.cells[i] = cell{logProb: logEmit(c.DistMeters, cfg.sigmaMeters), parent: -1}
	}

	cols := []column{first}
	t := start + 1
	for t < len(trace) {
		if len(candidates[t]) == 0 {
			break
		}

		prev := cols[len(cols)-1]
		deltaMax := math.Inf(1)
		if trace[t].HasTimestamp && trace[prev.idx].HasTimestamp {
			dtSeconds := float64(trace[t].Timestamp - trace[prev.idx].Timestamp)
			if dtSeconds > 0 {
				deltaMax = cfg.maxSpeedMeterSec * dtSeconds
			}
		}

		cur := column{idx: t, cells: make([]cell, len(candidates[t]))}
		anyAlive := false
		for j, c2 := range candidates[t] {
			best := math.Inf(-1)
			bestParent := -1
			bestDelta := 0.0

			for i, c1 := range candidates[prev.idx] {
				if prev.cells[i].logProb == math.Inf(-1) {
					continue
				}

				route, err := query.OneToOne(h, eegGraph, g, c1.Phantom, c2.Phantom)
				if err != nil {
					continue
				}

				dNet := geometryLength(route.Geometry)
				dGC := coordinate.HaversineMeters(trace[prev.idx].Coord, trace[t].Coord)
				delta := math.Abs(dNet - dGC)
				if delta > deltaMax {
					continue
				}

				v := prev.cells[i].logProb + logTrans(delta, cfg.betaMeters) + logEmit(c2.DistMeters, cfg.sigmaMeters)
				if v > best {
					best = v
					bestParent = i
					bestDelta = delta
				}
			}

			cur.cells[j] = cell{logProb: best, parent: bestParent, delta: bestDelta}
			if best != math.Inf(-1) {
				anyAlive = true
			}
		}

		if !anyAlive {
			break
		}

		cols = append(cols, cur)
		t++
	}

	return backtrack(cols, candidates), t
}

// backtrack follows parent links from the highest-probability cell in
// cols' last column back to its first, producing the sub-match those
// cells describe and its mean transition discrepancy.
func backtrack(cols []column, candidates [][]Candidate) SubMatch {
	last := cols[len(cols)-1]
	bestIdx, bestVal := 0, math.Inf(-1)
	for i, c := range last.cells {
		if c.logProb > bestVal {
			bestVal = c.logProb
			bestIdx = i
		}
	}

	type step struct {
		col, cand int
	}
	steps := make([]step, 0, len(cols))

	var deltaSum float64
	var deltaCount int

	ci, idx := len(cols)-1, bestIdx
	for {
		steps = append(steps, step{col: ci, cand: idx})
		c := cols[ci].cells[idx]
		if c.parent == -1 {
			break
		}
		deltaSum += c.delta
		deltaCount++
		idx = c.parent
		ci--
	}

	phantoms := make([]eeg.PhantomNode, len(steps))
	indices := make([]int, len(steps))
	for k := range steps {
		s := steps[len(steps)-1-k]
		phantoms[k] = candidates[cols[s.col].idx][s.cand].Phantom
		indices[k] = cols[s.col].idx
	}

	meanDelta := 0.0
	if deltaCount > 0 {
		meanDelta = deltaSum / float64(deltaCount)
	}
	_, confidence := Confidence(meanDelta)

	return SubMatch{
		Phantoms:     phantoms,
		TraceIndices: indices,
		Confidence:   confidence,
		MeanDelta:    meanDelta,
	}
}

// geometryLength sums the haversine distance between consecutive points
// of a route's geometry, giving its length in meters.
func geometryLength(points []coordinate.Coordinate) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += coordinate.HaversineMeters(points[i-1], points[i])
	}
	return total
}
