package trip

// farthestInsertionTour grows an open path starting at start by repeatedly
// inserting the unvisited stop farthest from the path built so far (by the
// minimum cost to any stop already on it), at whichever gap in the path
// cheapens the insertion the least. Tends to defer committing to a long
// closing edge the way nearestNeighbourTour's purely greedy extension
// does, at the cost of an O(n^3) construction instead of
// nearestNeighbourTour's O(n^2).
func farthestInsertionTour(w [][]int32, start int) ([]int, error) {
	n := len(w)
	visited := make([]bool, n)
	order := []int{start}
	visited[start] = true

	for len(order) < n {
		farthest, farthestDist := -1, int64(-1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			minDist := int64(unreachable)
			for _, p := range order {
				if d := edgeCost(w, p, j); d < minDist {
					minDist = d
				}
			}
			if minDist >= unreachable {
				continue
			}
			if minDist > farthestDist {
				farthestDist, farthest = minDist, j
			}
		}
		if farthest < 0 {
			return nil, ErrUnreachable
		}

		bestPos := len(order)
		bestDelta := edgeCost(w, order[len(order)-1], farthest)
		for i := 0; i+1 < len(order); i++ {
			a, b := order[i], order[i+1]
			delta := edgeCost(w, a, farthest) + edgeCost(w, farthest, b) - edgeCost(w, a, b)
			if delta < bestDelta {
				bestDelta, bestPos = delta, i+1
			}
		}

		order = insertAt(order, bestPos, farthest)
		visited[farthest] = true
	}

	return order, nil
}

// edgeCost widens w[a][b] to int64, leaving the unreachable sentinel large
// enough that arithmetic on it (e.g. summing two legs) still compares
// correctly against real costs without overflowing.
func edgeCost(w [][]int32, a, b int) int64 {
	v := w[a][b]
	if v >= unreachable {
		return int64(unreachable)
	}

	return int64(v)
}

func insertAt(order []int, pos, v int) []int {
	order = append(order, 0)
	copy(order[pos+1:], order[pos:])
	order[pos] = v

	return order
}
