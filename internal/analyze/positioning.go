package analyze

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func positioningFor(in Input, playerID string) rlreplay.PositioningMetrics {
	var m rlreplay.PositioningMetrics
	var offS, midS, defS float64
	var behindN, aheadN, firstN, secondN, thirdN, sampled int
	var distToBallSum, distToTeammateSum float64
	var teammateSamples int
	var lastT float64
	haveLast := false
	flags := map[string]bool{}

	team := in.TeamOf[playerID]

	for _, f := range in.Frames {
		pf := findPlayer(f, playerID)
		if pf == nil {
			continue
		}
		if haveLast {
			dt := f.TimestampS - lastT
			if dt > 0 && dt < 5 {
				switch field.ThirdOf(pf.Position, team) {
				case field.ThirdOffensive:
					offS += dt
				case field.ThirdMiddle:
					midS += dt
				case field.ThirdDefensive:
					defS += dt
				}
			}
		}
		lastT, haveLast = f.TimestampS, true

		sampled++
		ownGoalSideY := float64(f.Ball.Position.Y)
		y := float64(pf.Position.Y)
		if team == 1 {
			y, ownGoalSideY = -y, -ownGoalSideY
		}
		if y < ownGoalSideY {
			behindN++
		} else {
			aheadN++
		}

		rank := rankByDistanceToBall(f, team, playerID)
		switch rank {
		case 1:
			firstN++
		case 2:
			secondN++
		case 3:
			thirdN++
		}

		distToBallSum += pf.Position.Distance(f.Ball.Position)

		teammates := 0
		teammateDistSum := 0.0
		for _, other := range f.Players {
			if other.PlayerID == playerID || other.Team != team {
				continue
			}
			teammateDistSum += pf.Position.Distance(other.Position)
			teammates++
		}
		if teammates > 0 {
			distToTeammateSum += teammateDistSum / float64(teammates)
			teammateSamples++
		}

		detectFlags(f, pf, team, flags)
	}

	if sampled > 0 {
		m.TimeOffensiveThirdS = &offS
		m.TimeMiddleThirdS = &midS
		m.TimeDefensiveThirdS = &defS
		behindPct := float64(behindN) / float64(sampled) * 100
		aheadPct := float64(aheadN) / float64(sampled) * 100
		firstPct := float64(firstN) / float64(sampled) * 100
		secondPct := float64(secondN) / float64(sampled) * 100
		thirdPct := float64(thirdN) / float64(sampled) * 100
		avgDistM := distToBallSum / float64(sampled) / 100
		m.BehindBallPct = &behindPct
		m.AheadBallPct = &aheadPct
		m.FirstManPct = &firstPct
		m.SecondManPct = &secondPct
		m.ThirdManPct = &thirdPct
		m.AvgDistanceToBallM = &avgDistM
	}
	if teammateSamples > 0 {
		avgTeammateM := distToTeammateSum / float64(teammateSamples) / 100
		m.AvgDistanceToTeammateM = &avgTeammateM
	}

	for code, present := range flags {
		if present {
			m.Flags = append(m.Flags, code)
		}
	}
	compliance := 100.0 - float64(len(m.Flags))*15
	if compliance < 0 {
		compliance = 0
	}
	m.RotationCompliance = &compliance
	return m
}

func rankByDistanceToBall(f rlreplay.Frame, team byte, playerID string) int {
	type d struct {
		id   string
		dist float64
	}
	var ds []d
	for _, pf := range f.Players {
		if pf.Team != team {
			continue
		}
		ds = append(ds, d{pf.PlayerID, pf.Position.Distance(f.Ball.Position)})
	}
	for i := 0; i < len(ds); i++ {
		for j := i + 1; j < len(ds); j++ {
			if ds[j].dist < ds[i].dist {
				ds[i], ds[j] = ds[j], ds[i]
			}
		}
	}
	for i, e := range ds {
		if e.id == playerID {
			return i + 1
		}
	}
	return 0
}

func detectFlags(f rlreplay.Frame, self *rlreplay.PlayerFrame, team byte, flags map[string]bool) {
	rank := rankByDistanceToBall(f, team, self.PlayerID)
	third := field.ThirdOf(self.Position, team)

	if rank == 1 {
		closeTeammates := 0
		for _, other := range f.Players {
			if other.PlayerID == self.PlayerID || other.Team != team {
				continue
			}
			if other.Position.Distance(f.Ball.Position) < 400 {
				closeTeammates++
			}
		}
		if closeTeammates > 0 {
			flags[rlreplay.FlagDoubleCommit] = true
		}
	}
	if third == field.ThirdDefensive && rank == 1 && self.BoostAmount < 20 {
		flags[rlreplay.FlagLastManOvercommit] = true
	}
	if self.BoostAmount < 20 && self.Position.Distance(f.Ball.Position) < 300 {
		flags[rlreplay.FlagLowBoostContest] = true
	}
	if rank > 1 && self.Position.Distance(f.Ball.Position) < 250 {
		flags[rlreplay.FlagBallChase] = true
	}
}

// teamPositioning sums the time-in-third fields (element-wise, matching
// the boost block's team convention) and averages the remaining
// percentage/distance/compliance fields across the team's players.
func teamPositioning(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.PositioningMetrics {
	var off, mid, def float64
	var behind, ahead, first, second, third, distBall, distTeammate, compliance float64
	n := 0
	players := playersOnTeam(in, team)
	for _, id := range players {
		p := perPlayer[id].Positioning
		off += deref(p.TimeOffensiveThirdS)
		mid += deref(p.TimeMiddleThirdS)
		def += deref(p.TimeDefensiveThirdS)
		behind += deref(p.BehindBallPct)
		ahead += deref(p.AheadBallPct)
		first += deref(p.FirstManPct)
		second += deref(p.SecondManPct)
		third += deref(p.ThirdManPct)
		distBall += deref(p.AvgDistanceToBallM)
		distTeammate += deref(p.AvgDistanceToTeammateM)
		compliance += deref(p.RotationCompliance)
		n++
	}
	m := rlreplay.PositioningMetrics{
		TimeOffensiveThirdS: &off, TimeMiddleThirdS: &mid, TimeDefensiveThirdS: &def,
	}
	if n > 0 {
		avgBehind, avgAhead := behind/float64(n), ahead/float64(n)
		avgFirst, avgSecond, avgThird := first/float64(n), second/float64(n), third/float64(n)
		avgDistBall, avgDistTeammate := distBall/float64(n), distTeammate/float64(n)
		avgCompliance := compliance / float64(n)
		m.BehindBallPct, m.AheadBallPct = &avgBehind, &avgAhead
		m.FirstManPct, m.SecondManPct, m.ThirdManPct = &avgFirst, &avgSecond, &avgThird
		m.AvgDistanceToBallM, m.AvgDistanceToTeammateM = &avgDistBall, &avgDistTeammate
		m.RotationCompliance = &avgCompliance
	}
	return m
}
