package match

import (
	"github.com/meridian-routing/meridian/coordinate"
	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/spatial"
)

// candidatesFor queries idx within radius 3σ (or cfg.radiusFactor*σ) for
// point, projects each hit onto its actual segment geometry, and returns
// up to cfg.maxCandidates, nearest first (§4.7 "Candidate generation").
func candidatesFor(idx *spatial.Index, g *nodegraph.Graph, eegGraph *eeg.Graph, point coordinate.Coordinate, cfg config) []Candidate {
	radius := cfg.sigmaMeters * cfg.radiusFactor
	rects := idx.WithinRadius(point, radius)

	var out []Candidate
	for _, r := range rects {
		p, err := spatial.SnapToRect(g, eegGraph, r, point)
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			Phantom:    p,
			DistMeters: coordinate.HaversineMeters(point, p.Coordinate),
		})
		if len(out) >= cfg.maxCandidates {
			break
		}
	}

	return out
}
