package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-routing/meridian/nodegraph"
	"github.com/meridian-routing/meridian/restriction"
	"github.com/meridian-routing/meridian/turn"
)

func TestDefaultCarProfile_Classify(t *testing.T) {
	p := NewDefaultCarProfile()

	class, mode, flags := p.Classify(WayTags{"highway": "motorway", "oneway": "yes"})
	require.Equal(t, nodegraph.ClassMotorway, class)
	require.Equal(t, nodegraph.ModeDriving, mode)
	require.True(t, flags&nodegraph.FlagOneway != 0)

	class, mode, _ = p.Classify(WayTags{"highway": "footway"})
	require.Equal(t, nodegraph.ClassUnclassified, class)
	require.Equal(t, nodegraph.ModeInaccessible, mode)
}

func TestDefaultCarProfile_EdgeWeight(t *testing.T) {
	p := NewDefaultCarProfile()

	weight, duration := p.EdgeWeight(1000, nodegraph.ClassResidential, nodegraph.ModeDriving)
	require.Equal(t, weight, duration)
	require.Greater(t, weight, int32(0))
	require.Less(t, weight, nodegraph.InvalidWeight)

	weight, duration = p.EdgeWeight(1000, nodegraph.ClassResidential, nodegraph.ModeWalking)
	require.Equal(t, nodegraph.InvalidWeight, weight)
	require.Equal(t, nodegraph.InvalidWeight, duration)
}

func TestDefaultCarProfile_TurnPenalty_RoundaboutCheaperThanPlain(t *testing.T) {
	p := NewDefaultCarProfile()

	plainW, _ := p.TurnPenalty(turn.Left, turn.Simple, 0)
	roundaboutW, _ := p.TurnPenalty(turn.Left, turn.Roundabout, 0)
	require.Less(t, roundaboutW, plainW)

	straightW, _ := p.TurnPenalty(turn.Straight, turn.Simple, 0)
	require.Equal(t, int32(0), straightW)
}

func TestDefaultCarProfile_BarrierPolicy(t *testing.T) {
	p := NewDefaultCarProfile()

	require.True(t, p.BarrierPolicy(restriction.BarrierGate))
	require.False(t, p.BarrierPolicy(restriction.BarrierBollard))
}

func TestDefaultCarProfile_AdaptsAsTurnPenaltyFunc(t *testing.T) {
	p := NewDefaultCarProfile()
	var fn turn.PenaltyFunc = TurnPenaltyFunc(p)
	w, d := fn(turn.SharpLeft, turn.Simple, 40)
	require.Equal(t, w, d)
	require.Greater(t, w, int32(0))
}
