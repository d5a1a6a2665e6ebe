package events

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

const (
	challengeWindowS    = 1.0
	challengeMinSepUU   = 200
	challengeMaxSepUU   = 1000
	challengeMinSpeedKPH = 15
)

// detectChallenges pairs opposing touches close in time and space with a
// fast ball at the moment of pairing, per spec.md §4.5.
func detectChallenges(touches []rlreplay.Touch, frames []rlreplay.Frame) []rlreplay.Challenge {
	var challenges []rlreplay.Challenge
	for i := 0; i < len(touches); i++ {
		for j := i + 1; j < len(touches); j++ {
			a, b := touches[i], touches[j]
			if b.T-a.T > challengeWindowS {
				break
			}
			if teamOf(frames, a.Frame, a.PlayerID) == teamOf(frames, b.Frame, b.PlayerID) {
				continue
			}
			sep := a.Location.Distance(b.Location)
			if sep < challengeMinSepUU || sep > challengeMaxSepUU {
				continue
			}
			if a.BallSpeedKPH <= challengeMinSpeedKPH {
				continue
			}

			challenges = append(challenges, buildChallenge(frames, touches, a, b, j))
		}
	}
	return challenges
}

func buildChallenge(frames []rlreplay.Frame, touches []rlreplay.Touch, a, b rlreplay.Touch, bIdx int) rlreplay.Challenge {
	midpoint := field.Vec3{
		X: (a.Location.X + b.Location.X) / 2,
		Y: (a.Location.Y + b.Location.Y) / 2,
		Z: (a.Location.Z + b.Location.Z) / 2,
	}
	teamA := teamOf(frames, a.Frame, a.PlayerID)
	depth := float64(midpoint.Y)
	if teamA == 1 {
		depth = -depth
	}

	risk := challengeRisk(frames, a)

	result := rlreplay.ChallengeNeutral
	if bIdx+1 < len(touches) {
		next := touches[bIdx+1]
		if next.T-b.T < 1.0 {
			if teamOf(frames, next.Frame, next.PlayerID) == teamA {
				result = rlreplay.ChallengeWin
			} else {
				result = rlreplay.ChallengeLoss
			}
		}
	}

	return rlreplay.Challenge{
		T:         b.T,
		Players:   []string{a.PlayerID, b.PlayerID},
		DepthUU:   depth,
		RiskIndex: risk,
		Result:    result,
	}
}

// challengeRisk computes the weighted 0/1-factor risk index: is_last_man,
// low_boost (<20), ahead_of_ball, high_speed_into_contest, each 0 or 1,
// normalized to [0,1], per spec.md §4.5.
func challengeRisk(frames []rlreplay.Frame, t rlreplay.Touch) float64 {
	if t.Frame < 0 || t.Frame >= len(frames) {
		return 0
	}
	f := frames[t.Frame]
	var self *rlreplay.PlayerFrame
	for i := range f.Players {
		if f.Players[i].PlayerID == t.PlayerID {
			self = &f.Players[i]
			break
		}
	}
	if self == nil {
		return 0
	}

	score := 0.0
	if isLastMan(f, *self) {
		score++
	}
	if self.BoostAmount < 20 {
		score++
	}
	if aheadOfBall(*self, f.Ball) {
		score++
	}
	if self.Velocity.Length() > field.BoostSpeedThreshold {
		score++
	}
	return score / 4.0
}

func isLastMan(f rlreplay.Frame, self rlreplay.PlayerFrame) bool {
	third := field.ThirdOf(self.Position, self.Team)
	if third != field.ThirdDefensive {
		return false
	}
	for _, pf := range f.Players {
		if pf.PlayerID == self.PlayerID || pf.Team != self.Team {
			continue
		}
		if field.ThirdOf(pf.Position, pf.Team) == field.ThirdDefensive {
			y1, y2 := pf.Position.Y, self.Position.Y
			if self.Team == 1 {
				y1, y2 = -y1, -y2
			}
			if y1 < y2 {
				return false
			}
		}
	}
	return true
}

func aheadOfBall(self rlreplay.PlayerFrame, ball rlreplay.BallFrame) bool {
	y := self.Position.Y
	by := ball.Position.Y
	if self.Team == 1 {
		y, by = -y, -by
	}
	return y > by
}
