package restriction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/nodegraph"
)

func TestNodeTurnAllowed_NoRestriction(t *testing.T) {
	idx := NewIndex(nil)
	idx.AddNoTurn(1, 10, 20)

	require.False(t, idx.NodeTurnAllowed(1, 10, 20))
	require.True(t, idx.NodeTurnAllowed(1, 10, 30))
	require.True(t, idx.NodeTurnAllowed(2, 10, 20))
}

func TestNodeTurnAllowed_OnlyRestriction(t *testing.T) {
	idx := NewIndex(nil)
	idx.AddOnlyTurn(1, 10, 20)

	require.True(t, idx.NodeTurnAllowed(1, 10, 20))
	require.False(t, idx.NodeTurnAllowed(1, 10, 30))
}

func TestWayRestriction_StepMachine(t *testing.T) {
	idx := NewIndex(nil)
	require.NoError(t, idx.AddWayRestriction(1, []nodegraph.EdgeID{2, 3}, 4, KindNo))

	s0 := idx.NewState()
	s1, r1 := s0.Step(1)
	require.Nil(t, r1)
	s2, r2 := s1.Step(2)
	require.Nil(t, r2)
	_, r3 := s2.Step(3)
	require.NotNil(t, r3)
	require.False(t, r3.ToEdgeAllowed(4))
	require.True(t, r3.ToEdgeAllowed(5))
}

func TestWayRestriction_CycleRejected(t *testing.T) {
	idx := NewIndex(nil)
	err := idx.AddWayRestriction(1, []nodegraph.EdgeID{2, 1}, 3, KindNo)
	require.ErrorIs(t, err, ErrCycleInViaPath)
	require.Len(t, idx.Diagnostics, 1)
}

func TestBarrierPolicy(t *testing.T) {
	idx := NewIndex(func(kind BarrierKind) bool { return kind == BarrierGate })
	idx.AddBarrier(5, BarrierGate)
	idx.AddBarrier(6, BarrierBlock)

	require.True(t, idx.CanTraverseThrough(5))
	require.False(t, idx.CanTraverseThrough(6))
	require.True(t, idx.CanTraverseThrough(7)) // no barrier recorded
}

func TestRestricted_GuardsViaNode(t *testing.T) {
	idx := NewIndex(nil)
	idx.AddNoTurn(1, 10, 20)

	require.True(t, idx.Restricted(10))
	require.False(t, idx.Restricted(11))
}
