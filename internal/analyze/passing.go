package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

const possessionTauS = 1.5

func passingFor(in Input, playerID string) rlreplay.PassingMetrics {
	var m rlreplay.PassingMetrics
	touches := in.Events.Touches

	for i, t := range touches {
		if t.PlayerID != playerID {
			continue
		}
		if t.Outcome == rlreplay.TouchPass {
			m.PassesAttempted++
			if i+1 < len(touches) && touches[i+1].T-t.T <= 2.0 && teamOf2(in, touches[i+1].PlayerID) == teamOf2(in, playerID) {
				m.PassesCompleted++
			}
		}
	}
	for i, t := range touches {
		if i == 0 || t.PlayerID != playerID {
			continue
		}
		prev := touches[i-1]
		if prev.PlayerID != playerID && prev.Outcome == rlreplay.TouchPass && t.T-prev.T <= 2.0 {
			m.PassesReceived++
		}
	}
	for i, t := range touches {
		if t.PlayerID != playerID {
			continue
		}
		if i+1 < len(touches) {
			next := touches[i+1]
			if next.T-t.T <= 1.0 && teamOf2(in, next.PlayerID) != teamOf2(in, playerID) {
				m.Turnovers++
			}
		}
	}
	m.GiveAndGoCount = countGiveAndGo(touches, playerID, in)

	possession := 0.0
	for i := 1; i < len(in.Frames); i++ {
		possession += possessionContribution(in, i, playerID)
	}
	m.PossessionTimeS = &possession
	return m
}

func teamOf2(in Input, playerID string) byte {
	return in.TeamOf[playerID]
}

func possessionContribution(in Input, frameIdx int, playerID string) float64 {
	t := in.Frames[frameIdx].TimestampS
	lastTouchBy := ""
	lastTouchT := -1e18
	for _, tch := range in.Events.Touches {
		if tch.T <= t && tch.T > lastTouchT {
			lastTouchT = tch.T
			lastTouchBy = tch.PlayerID
		}
	}
	if lastTouchBy != playerID || t-lastTouchT > possessionTauS {
		return 0
	}
	return in.Frames[frameIdx].TimestampS - in.Frames[frameIdx-1].TimestampS
}

// countGiveAndGo counts A->B->A touch sequences within 3s where both legs
// make at least 80 UU forward progress along the attack axis. Touch
// outcomes and B's team are not checked.
func countGiveAndGo(touches []rlreplay.Touch, playerID string, in Input) int {
	count := 0
	for i := 0; i+2 < len(touches); i++ {
		a, b, c := touches[i], touches[i+1], touches[i+2]
		if a.PlayerID != playerID || c.PlayerID != playerID || b.PlayerID == playerID {
			continue
		}
		if c.T-a.T > 3.0 {
			continue
		}
		if forwardProgress(in, a, b) >= 80 && forwardProgress(in, b, c) >= 80 {
			count++
		}
	}
	return count
}

func forwardProgress(in Input, from, to rlreplay.Touch) float64 {
	team := teamOf2(in, from.PlayerID)
	dy := float64(to.Location.Y - from.Location.Y)
	if team == 1 {
		dy = -dy
	}
	return dy
}

func teamPassing(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.PassingMetrics {
	var m rlreplay.PassingMetrics
	var possession float64
	for _, id := range playersOnTeam(in, team) {
		p := perPlayer[id].Passing
		m.PassesAttempted += p.PassesAttempted
		m.PassesCompleted += p.PassesCompleted
		m.PassesReceived += p.PassesReceived
		m.Turnovers += p.Turnovers
		m.GiveAndGoCount += p.GiveAndGoCount
		possession += deref(p.PossessionTimeS)
	}
	m.PossessionTimeS = &possession
	return m
}
