package query

import (
	"math"

	"github.com/meridian-routing/meridian/ch"
	"github.com/meridian-routing/meridian/eeg"
)

// bucketEntry is one (target, cost-to-here) pair recorded at a settled
// node during a reverse search, consumed later by a forward probe (§4.6
// "Many-to-many matrix").
type bucketEntry struct {
	target   int
	weight   int64
	duration int64
}

// ManyToMany computes the full cost matrix between sources and targets
// using |S|+|T| CH searches instead of |S|*|T| one-to-one queries: one
// reverse search per target collects settled weights into per-node
// buckets, then one forward search per source probes those buckets at
// every node it settles.
func ManyToMany(h *ch.Hierarchy, sources, targets []eeg.PhantomNode) (*Matrix, error) {
	if h == nil || h.NodeCount == 0 {
		return nil, ErrEmptyHierarchy
	}

	buckets := make(map[eeg.NodeID][]bucketEntry)
	for j, t := range targets {
		rev := newSearcher(h, true)
		rev.seedAsTarget(t)
		rev.exhaust()
		for n, d := range rev.dist {
			buckets[n] = append(buckets[n], bucketEntry{target: j, weight: d, duration: rev.duration[n]})
		}
	}

	m := &Matrix{
		Weight:   make([][]int32, len(sources)),
		Duration: make([][]int32, len(sources)),
	}
	for i := range sources {
		m.Weight[i] = make([]int32, len(targets))
		m.Duration[i] = make([]int32, len(targets))
		for j := range targets {
			m.Weight[i][j] = math.MaxInt32
			m.Duration[i][j] = math.MaxInt32
		}
	}

	for i, s := range sources {
		fwd := newSearcher(h, false)
		fwd.seedAsSource(s)

		best := make([]int64, len(targets))
		bestDuration := make([]int64, len(targets))
		for j := range best {
			best[j] = math.MaxInt64
		}

		probe := func(n eeg.NodeID, d int64) {
			for _, b := range buckets[n] {
				cand := d + b.weight
				if cand < best[b.target] {
					best[b.target] = cand
					bestDuration[b.target] = fwd.duration[n] + b.duration
				}
			}
		}
		for {
			n, d, ok := fwd.step()
			if !ok {
				break
			}
			probe(n, d)
		}

		for j := range targets {
			if best[j] < math.MaxInt64 {
				m.Weight[i][j] = int32(best[j])
				m.Duration[i][j] = int32(bestDuration[j])
			}
		}
	}

	return m, nil
}
