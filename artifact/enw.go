package artifact

import (
	"io"

	"github.com/meridian-routing/meridian/eeg"
	"github.com/meridian-routing/meridian/nodegraph"
)

// ENWFromGraph extracts the per-EEG-node weight updaters operate on: each
// node's underlying node-based segment's own weight.
func ENWFromGraph(base *nodegraph.Graph, g *eeg.Graph) ([]int32, error) {
	out := make([]int32, len(g.Nodes))
	for i, n := range g.Nodes {
		e, err := base.Edge(n.Underlying)
		if err != nil {
			return nil, err
		}
		out[i] = e.Weight
	}

	return out, nil
}

// WriteENW writes g's per-node weights to path.
func WriteENW(path string, base *nodegraph.Graph, g *eeg.Graph) error {
	weights, err := ENWFromGraph(base, g)
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w io.Writer) error {
		return writeSlice(w, weights)
	})
}

// ReadENW reads back what WriteENW wrote.
func ReadENW(path string) ([]int32, error) {
	var out []int32
	err := readWithFingerprint(path, func(r io.Reader) error {
		weights, err := readSlice[int32](r)
		if err != nil {
			return err
		}
		out = weights

		return nil
	})

	return out, err
}
