package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func TestChallengesForCountsWinsLossesAndFirstToBall(t *testing.T) {
	in := Input{
		PlayerIDs: []string{"p1", "q1"},
		TeamOf:    map[string]byte{"p1": 0, "q1": 1},
		Events: rlreplay.Events{
			Challenges: []rlreplay.Challenge{
				{T: 1.0, Players: []string{"p1", "q1"}, DepthUU: 300, RiskIndex: 0.4, Result: rlreplay.ChallengeWin},
				{T: 2.0, Players: []string{"q1", "p1"}, DepthUU: 500, RiskIndex: 0.8, Result: rlreplay.ChallengeLoss},
			},
		},
	}

	m := challengesFor(in, "p1")
	assert.Equal(t, 2, m.Contests)
	assert.Equal(t, 1, m.Wins)
	assert.Equal(t, 1, m.Losses)
	require.NotNil(t, m.ChallengeDepthM)
	assert.InDelta(t, 4.0, *m.ChallengeDepthM, 1e-9)
	require.NotNil(t, m.FirstToBallPct)
	assert.Equal(t, 50.0, *m.FirstToBallPct)
}

func TestChallengesForIgnoresChallengesWithoutThePlayer(t *testing.T) {
	in := Input{
		PlayerIDs: []string{"p1"},
		TeamOf:    map[string]byte{"p1": 0},
		Events: rlreplay.Events{
			Challenges: []rlreplay.Challenge{
				{T: 1.0, Players: []string{"a", "b"}, Result: rlreplay.ChallengeWin},
			},
		},
	}
	m := challengesFor(in, "p1")
	assert.Zero(t, m.Contests)
	assert.Nil(t, m.ChallengeDepthM)
}

func TestTeamChallengesAveragesDepthOverPlayersWithData(t *testing.T) {
	depthA, riskA := 3.0, 0.2
	depthB := 5.0
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Challenges: rlreplay.ChallengesMetrics{Contests: 2, Wins: 1, ChallengeDepthM: &depthA, RiskIndexAvg: &riskA}},
		"p2": {Challenges: rlreplay.ChallengesMetrics{Contests: 1, Wins: 1, ChallengeDepthM: &depthB}},
	}
	in := Input{PlayerIDs: []string{"p1", "p2"}, TeamOf: map[string]byte{"p1": 0, "p2": 0}}

	m := teamChallenges(in, 0, perPlayer)
	assert.Equal(t, 3, m.Contests)
	assert.Equal(t, 2, m.Wins)
	require.NotNil(t, m.ChallengeDepthM)
	assert.Equal(t, 4.0, *m.ChallengeDepthM)
}
