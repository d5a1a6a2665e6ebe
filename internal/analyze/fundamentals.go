package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

func fundamentalsFor(in Input, playerID string) rlreplay.FundamentalsMetrics {
	m := rlreplay.FundamentalsMetrics{}
	for _, g := range in.Events.Goals {
		if g.ScorerID == playerID {
			m.Goals++
		}
		if g.AssistID != nil && *g.AssistID == playerID {
			m.Assists++
		}
	}
	for _, t := range in.Events.Touches {
		if t.PlayerID == playerID && t.Outcome == rlreplay.TouchShot {
			m.Shots++
		}
	}
	for _, d := range in.Events.Demos {
		if d.Attacker == playerID {
			m.DemosInflicted++
		}
		if d.Victim == playerID {
			m.DemosTaken++
		}
	}
	m.Saves = countSaves(in, playerID)
	m.Score = m.Goals*100 + m.Assists*50 + m.Saves*50 + m.Shots*10

	if m.Shots > 0 {
		pct := float64(m.Goals) / float64(max1(m.Shots)) * 100
		m.ShootingPct = &pct
	} else if m.Goals > 0 {
		pct := 100.0
		m.ShootingPct = &pct
	} else {
		pct := 0.0
		m.ShootingPct = &pct
	}
	return m
}

// countSaves counts this player's CLEAR touches that are not followed by
// a goal (of either team, in either net) within 2s. A true save
// detector needs shot-on-target data the event model doesn't carry
// explicitly, so this approximates via CLEAR touches from the defensive
// third shortly before no goal follows.
func countSaves(in Input, playerID string) int {
	count := 0
	for _, t := range in.Events.Touches {
		if t.PlayerID != playerID || t.Outcome != rlreplay.TouchClear {
			continue
		}
		threatened := false
		for _, g := range in.Events.Goals {
			if g.T >= t.T && g.T-t.T < 2.0 {
				threatened = true
			}
		}
		if !threatened {
			count++
		}
	}
	return count
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func teamFundamentals(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.FundamentalsMetrics {
	var m rlreplay.FundamentalsMetrics
	shots := 0
	for _, id := range playersOnTeam(in, team) {
		pm := perPlayer[id].Fundamentals
		m.Goals += pm.Goals
		m.Assists += pm.Assists
		m.Shots += pm.Shots
		m.Saves += pm.Saves
		m.DemosInflicted += pm.DemosInflicted
		m.DemosTaken += pm.DemosTaken
		m.Score += pm.Score
		shots += pm.Shots
	}
	pct := float64(m.Goals) / float64(max1(shots)) * 100
	m.ShootingPct = &pct
	return m
}
