package trip

import (
	"github.com/meridian-routing/meridian/query"
)

// Solve computes a round trip over the stops represented by m (a
// many-to-many matrix whose sources and targets are the same stop set,
// in the same order), using m.Weight as the per-leg cost.
func Solve(m *query.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(m.Weight)
	if n == 0 {
		return Result{}, ErrEmptyMatrix
	}
	for _, row := range m.Weight {
		if len(row) != n {
			return Result{}, ErrNonSquare
		}
	}
	if o.StartIndex < 0 || o.StartIndex >= n {
		return Result{}, ErrStartOutOfRange
	}
	if n == 1 {
		return Result{Order: []int{o.StartIndex}, Cost: 0}, nil
	}

	var order []int
	var err error
	switch o.Algo {
	case NearestNeighbour:
		order, err = nearestNeighbourTour(m.Weight, o.StartIndex)
	case FarthestInsertion:
		order, err = farthestInsertionTour(m.Weight, o.StartIndex)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	if o.Closed {
		order = append(order, o.StartIndex)
	}

	if o.EnableTwoOpt {
		order = twoOpt(m.Weight, order, o.Closed)
	}

	return Result{Order: order, Cost: tourCost(m.Weight, order)}, nil
}

func tourCost(w [][]int32, order []int) int32 {
	var total int64
	for i := 0; i+1 < len(order); i++ {
		total += int64(w[order[i]][order[i+1]])
	}

	return int32(total)
}
