package trip

// twoOpt polishes a constructed tour with a first-improvement local
// search, mirroring the teacher's distinction between symmetric 2-opt
// (segment reversal) and a non-reversing move for asymmetric instances
// (here single-stop relocation, relocationOpt) — decided by inspecting
// the matrix once up front rather than by a caller-supplied flag, since
// meridian's cost matrix is whatever the
// underlying road network happens to produce.
func twoOpt(w [][]int32, order []int, closed bool) []int {
	if isSymmetric(w) {
		return classicTwoOpt(w, order)
	}

	return relocationOpt(w, order, closed)
}

func isSymmetric(w [][]int32) bool {
	for i := range w {
		for j := range w[i] {
			if w[i][j] != w[j][i] {
				return false
			}
		}
	}

	return true
}

// classicTwoOpt reverses order[i:k+1] whenever doing so shortens the two
// edges it touches, repeating until a full pass finds no improvement.
// Works uniformly on both open paths and closed tours (order[0] ==
// order[len-1] for a closed tour): the closing edge is just the last
// regular edge in the array, needing no wraparound special-casing.
func classicTwoOpt(w [][]int32, order []int) []int {
	improved := true
	for improved {
		improved = false
		for i := 1; i < len(order)-2; i++ {
			for k := i + 1; k < len(order)-1; k++ {
				a, b := order[i-1], order[i]
				c, d := order[k], order[k+1]
				delta := edgeCost(w, a, c) + edgeCost(w, b, d) - edgeCost(w, a, b) - edgeCost(w, c, d)
				if delta < 0 {
					reverseSegment(order, i, k)
					improved = true
				}
			}
		}
	}

	return order
}

func reverseSegment(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}

// relocationOpt tries moving each interior stop to whichever other gap in
// the path cheapens it most, first-improvement. Unlike a reversal, a
// single-stop relocation doesn't flip the direction of any edge it
// doesn't touch, so it stays correct on an asymmetric cost matrix.
func relocationOpt(w [][]int32, order []int, closed bool) []int {
	hi := len(order) - 1
	if closed {
		hi = len(order) - 1 // last entry duplicates the start; never relocate it
	}

	improved := true
	for improved {
		improved = false
		for i := 1; i < hi; i++ {
			v := order[i]
			prev, next := order[i-1], order[i+1]
			removeGain := edgeCost(w, prev, v) + edgeCost(w, v, next) - edgeCost(w, prev, next)

			bestDelta := int64(0)
			bestPos := -1
			for j := 1; j < len(order); j++ {
				if j == i || j == i+1 {
					continue
				}
				a, b := order[j-1], order[j]
				insertCost := edgeCost(w, a, v) + edgeCost(w, v, b) - edgeCost(w, a, b)
				if delta := insertCost - removeGain; delta < bestDelta {
					bestDelta, bestPos = delta, j
				}
			}

			if bestPos >= 0 {
				order = relocate(order, i, bestPos, v)
				improved = true
				hi = len(order) - 1
			}
		}
	}

	return order
}

func relocate(order []int, from, to, v int) []int {
	out := make([]int, 0, len(order))
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)
	insertIdx := to
	if to > from {
		insertIdx--
	}

	return insertAt(out, insertIdx, v)
}
