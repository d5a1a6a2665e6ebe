package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func TestFundamentalsForCountsGoalsAssistsShotsAndDemos(t *testing.T) {
	assistID := "p2"
	in := Input{
		PlayerIDs: []string{"p1", "p2"},
		TeamOf:    map[string]byte{"p1": 0, "p2": 0},
		Events: rlreplay.Events{
			Goals: []rlreplay.Goal{{T: 10, ScorerID: "p1", AssistID: &assistID}},
			Touches: []rlreplay.Touch{
				{T: 9.5, PlayerID: "p1", Outcome: rlreplay.TouchShot},
			},
			Demos: []rlreplay.Demo{{Attacker: "p1", Victim: "p2"}},
		},
	}

	m := fundamentalsFor(in, "p1")
	assert.Equal(t, 1, m.Goals)
	assert.Equal(t, 1, m.Shots)
	assert.Equal(t, 1, m.DemosInflicted)

	assisted := fundamentalsFor(in, "p2")
	assert.Equal(t, 1, assisted.Assists)
	assert.Equal(t, 1, assisted.DemosTaken)
}

func TestFundamentalsForShootingPctWhenNoShotsButAGoal(t *testing.T) {
	in := Input{
		PlayerIDs: []string{"p1"},
		TeamOf:    map[string]byte{"p1": 0},
		Events: rlreplay.Events{
			Goals: []rlreplay.Goal{{ScorerID: "p1"}},
		},
	}
	m := fundamentalsFor(in, "p1")
	require.NotNil(t, m.ShootingPct)
	assert.Equal(t, 100.0, *m.ShootingPct)
}

func TestCountSavesExcludesClearsImmediatelyFollowedByAGoal(t *testing.T) {
	in := Input{
		PlayerIDs: []string{"p1"},
		TeamOf:    map[string]byte{"p1": 0},
		Events: rlreplay.Events{
			Touches: []rlreplay.Touch{
				{T: 5.0, PlayerID: "p1", Outcome: rlreplay.TouchClear},
				{T: 10.0, PlayerID: "p1", Outcome: rlreplay.TouchClear},
			},
			Goals: []rlreplay.Goal{{T: 5.5}},
		},
	}
	assert.Equal(t, 1, countSaves(in, "p1"))
}

func TestTeamFundamentalsSumsAndComputesShootingPct(t *testing.T) {
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Fundamentals: rlreplay.FundamentalsMetrics{Goals: 1, Shots: 2}},
		"p2": {Fundamentals: rlreplay.FundamentalsMetrics{Goals: 0, Shots: 2}},
	}
	in := Input{PlayerIDs: []string{"p1", "p2"}, TeamOf: map[string]byte{"p1": 0, "p2": 0}}

	m := teamFundamentals(in, 0, perPlayer)
	assert.Equal(t, 1, m.Goals)
	assert.Equal(t, 4, m.Shots)
	require.NotNil(t, m.ShootingPct)
	assert.Equal(t, 25.0, *m.ShootingPct)
}
