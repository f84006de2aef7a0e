package trip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/query"
)

// a 4-stop symmetric matrix shaped like a square, cheapest tour visits
// stops in ring order.
func squareMatrix() *query.Matrix {
	w := [][]int32{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
	return &query.Matrix{Weight: w, Duration: w}
}

func TestSolve_NearestNeighbour_ClosedRing(t *testing.T) {
	m := squareMatrix()
	res, err := Solve(m, WithAlgo(NearestNeighbour), WithStart(0), WithClosed(true), WithTwoOpt(false))
	require.NoError(t, err)
	require.Equal(t, 0, res.Order[0])
	require.Equal(t, 0, res.Order[len(res.Order)-1])
	require.Equal(t, int32(4), res.Cost)
}

func TestSolve_FarthestInsertion_ClosedRing(t *testing.T) {
	m := squareMatrix()
	res, err := Solve(m, WithAlgo(FarthestInsertion), WithStart(0), WithClosed(true), WithTwoOpt(true))
	require.NoError(t, err)
	require.Equal(t, int32(4), res.Cost)
}

func TestSolve_EmptyMatrix(t *testing.T) {
	_, err := Solve(&query.Matrix{})
	require.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestSolve_StartOutOfRange(t *testing.T) {
	m := squareMatrix()
	_, err := Solve(m, WithStart(9))
	require.ErrorIs(t, err, ErrStartOutOfRange)
}

func TestSolve_UnreachableStop(t *testing.T) {
	w := [][]int32{
		{0, unreachable, unreachable},
		{unreachable, 0, unreachable},
		{unreachable, unreachable, 0},
	}
	m := &query.Matrix{Weight: w, Duration: w}
	_, err := Solve(m, WithStart(0))
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestSolve_AsymmetricUsesRelocation(t *testing.T) {
	w := [][]int32{
		{0, 1, 5, 5},
		{5, 0, 1, 5},
		{5, 5, 0, 1},
		{1, 5, 5, 0},
	}
	m := &query.Matrix{Weight: w, Duration: w}
	res, err := Solve(m, WithAlgo(NearestNeighbour), WithStart(0), WithClosed(true), WithTwoOpt(true))
	require.NoError(t, err)
	require.Equal(t, int32(4), res.Cost)
}
