package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

func kickoffsFor(in Input, playerID string) rlreplay.KickoffsMetrics {
	var m rlreplay.KickoffsMetrics
	var touchTimeSum float64
	var touchTimeSamples int

	for _, k := range in.Events.Kickoffs {
		role, ok := k.Roles[playerID]
		if !ok {
			continue
		}
		m.Count++
		if role == rlreplay.RoleGo && k.TFirstTouch != nil {
			touchTimeSum += *k.TFirstTouch - k.TStart
			touchTimeSamples++
		}
		if approach, ok := k.ApproachTypes[playerID]; ok {
			tallyApproach(&m.ApproachTypes, approach)
		}
		if k.Outcome == rlreplay.OutcomeFirstPossessionBlue && in.TeamOf[playerID] == 0 ||
			k.Outcome == rlreplay.OutcomeFirstPossessionOrange && in.TeamOf[playerID] == 1 {
			m.FirstPossession++
		}
		if k.Outcome == rlreplay.OutcomeGoalForBlue && in.TeamOf[playerID] == 0 ||
			k.Outcome == rlreplay.OutcomeGoalForOrange && in.TeamOf[playerID] == 1 {
			m.GoalsFor++
		}
		if k.Outcome == rlreplay.OutcomeGoalForBlue && in.TeamOf[playerID] == 1 ||
			k.Outcome == rlreplay.OutcomeGoalForOrange && in.TeamOf[playerID] == 0 {
			m.GoalsAgainst++
		}
	}
	if touchTimeSamples > 0 {
		avg := touchTimeSum / float64(touchTimeSamples)
		m.AvgTimeToFirstTouchS = &avg
	}
	return m
}

func tallyApproach(counts *rlreplay.KickoffApproachCounts, a rlreplay.ApproachType) {
	switch a {
	case rlreplay.ApproachSpeedflip:
		counts.Speedflip++
	case rlreplay.ApproachStandardFrontflip:
		counts.StandardFrontflip++
	case rlreplay.ApproachStandardDiagonal:
		counts.StandardDiagonal++
	case rlreplay.ApproachStandardWavedash:
		counts.StandardWavedash++
	case rlreplay.ApproachStandardBoost:
		counts.StandardBoost++
	case rlreplay.ApproachDelay:
		counts.Delay++
	case rlreplay.ApproachFake:
		counts.FakeStationary++
	default:
		counts.Unknown++
	}
}

// teamKickoffs counts each kickoff once for the team (Count is the number
// of kickoffs with a GO-role player on the team); everything else is
// aggregated across the team's players: outcome counts summed,
// approach-type counts summed, and the players' average first-touch times
// averaged over the players that have one.
func teamKickoffs(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.KickoffsMetrics {
	var m rlreplay.KickoffsMetrics
	var touchTimeSum float64
	var touchTimeSamples int

	for _, k := range in.Events.Kickoffs {
		onTeam := false
		for pid, role := range k.Roles {
			if in.TeamOf[pid] == team && role == rlreplay.RoleGo {
				onTeam = true
			}
		}
		if onTeam {
			m.Count++
		}
	}

	for _, id := range playersOnTeam(in, team) {
		p := perPlayer[id].Kickoffs
		m.FirstPossession += p.FirstPossession
		m.GoalsFor += p.GoalsFor
		m.GoalsAgainst += p.GoalsAgainst
		tallyApproachCounts(&m.ApproachTypes, p.ApproachTypes)
		if p.AvgTimeToFirstTouchS != nil {
			touchTimeSum += *p.AvgTimeToFirstTouchS
			touchTimeSamples++
		}
	}
	if touchTimeSamples > 0 {
		avg := touchTimeSum / float64(touchTimeSamples)
		m.AvgTimeToFirstTouchS = &avg
	}
	return m
}

func tallyApproachCounts(dst *rlreplay.KickoffApproachCounts, src rlreplay.KickoffApproachCounts) {
	dst.Speedflip += src.Speedflip
	dst.StandardFrontflip += src.StandardFrontflip
	dst.StandardDiagonal += src.StandardDiagonal
	dst.StandardWavedash += src.StandardWavedash
	dst.StandardBoost += src.StandardBoost
	dst.Delay += src.Delay
	dst.FakeStationary += src.FakeStationary
	dst.Unknown += src.Unknown
}
