package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

func challengesFor(in Input, playerID string) rlreplay.ChallengesMetrics {
	var m rlreplay.ChallengesMetrics
	var depthSum, riskSum float64
	var firstToBall int

	for _, c := range in.Events.Challenges {
		involved := false
		isFirst := len(c.Players) > 0 && c.Players[0] == playerID
		for _, p := range c.Players {
			if p == playerID {
				involved = true
			}
		}
		if !involved {
			continue
		}
		m.Contests++
		depthSum += c.DepthUU / 100
		riskSum += c.RiskIndex
		if isFirst {
			firstToBall++
		}
		switch c.Result {
		case rlreplay.ChallengeWin:
			m.Wins++
		case rlreplay.ChallengeLoss:
			m.Losses++
		default:
			m.Neutral++
		}
	}

	if m.Contests > 0 {
		depth := depthSum / float64(m.Contests)
		risk := riskSum / float64(m.Contests)
		pct := float64(firstToBall) / float64(m.Contests) * 100
		m.ChallengeDepthM = &depth
		m.RiskIndexAvg = &risk
		m.FirstToBallPct = &pct
	}
	return m
}

func teamChallenges(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.ChallengesMetrics {
	var m rlreplay.ChallengesMetrics
	var depthSum, riskSum float64
	n := 0
	for _, id := range playersOnTeam(in, team) {
		c := perPlayer[id].Challenges
		m.Contests += c.Contests
		m.Wins += c.Wins
		m.Losses += c.Losses
		m.Neutral += c.Neutral
		if c.ChallengeDepthM != nil {
			depthSum += *c.ChallengeDepthM
			n++
		}
		if c.RiskIndexAvg != nil {
			riskSum += *c.RiskIndexAvg
		}
	}
	if n > 0 {
		depth := depthSum / float64(n)
		risk := riskSum / float64(n)
		m.ChallengeDepthM = &depth
		m.RiskIndexAvg = &risk
	}
	return m
}
