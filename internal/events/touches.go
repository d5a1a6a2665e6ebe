package events

import (
	"math"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

const (
	touchProximityUU    = 200
	touchVelocityEpsilon = 50 // UU/s change in ball speed to count as a touch
	touchDebounceWindowS = 0.2
	touchDebounceSpaceUU = 120
	dribbleWindowS       = 0.5
)

// detectTouches finds candidate player-ball contacts and debounces them,
// per spec.md §4.5.
func detectTouches(frames []rlreplay.Frame, arena field.Arena) []rlreplay.Touch {
	var candidates []rlreplay.Touch
	for i := 1; i < len(frames); i++ {
		prevBall := frames[i-1].Ball
		ball := frames[i].Ball
		dv := math.Abs(float64(ball.Velocity.Length() - prevBall.Velocity.Length()))
		if dv <= touchVelocityEpsilon {
			continue
		}
		for _, pf := range frames[i].Players {
			if pf.PlayerID == "" {
				continue
			}
			if pf.Position.Distance(ball.Position) > touchProximityUU {
				continue
			}
			candidates = append(candidates, rlreplay.Touch{
				T:            frames[i].TimestampS,
				Frame:        i,
				PlayerID:     pf.PlayerID,
				Location:     pf.Position,
				BallSpeedKPH: field.KPH(ball.Velocity.Length()),
			})
		}
	}

	debounced := debounceTouches(candidates)
	return classifyTouchOutcomes(debounced, frames, arena)
}

// debounceTouches keeps only the first qualifying touch within a rolling
// 0.2s AND <120 UU window, mirroring the teacher's
// "try to prove ineffective, otherwise keep it" debounce shape
// (rep.IsCmdEffective / countSameCmds) applied to spatial-temporal
// clustering instead of command-type repetition.
func debounceTouches(candidates []rlreplay.Touch) []rlreplay.Touch {
	var kept []rlreplay.Touch
	for i, c := range candidates {
		if i == 0 || isTouchEffective(kept, c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func isTouchEffective(kept []rlreplay.Touch, c rlreplay.Touch) bool {
	for j := len(kept) - 1; j >= 0; j-- {
		prev := kept[j]
		if c.T-prev.T > touchDebounceWindowS {
			break
		}
		if c.Location.Distance(prev.Location) < touchDebounceSpaceUU {
			return false
		}
	}
	return true
}

func classifyTouchOutcomes(touches []rlreplay.Touch, frames []rlreplay.Frame, arena field.Arena) []rlreplay.Touch {
	lastByPlayer := map[string]float64{}
	for i := range touches {
		t := &touches[i]
		frame := frames[t.Frame]

		switch {
		case isShotTrajectory(frames, t.Frame):
			t.Outcome = rlreplay.TouchShot
		case isClear(frame, t, arena):
			t.Outcome = rlreplay.TouchClear
		case lastByPlayer[t.PlayerID] != 0 && t.T-lastByPlayer[t.PlayerID] <= dribbleWindowS:
			t.Outcome = rlreplay.TouchDribble
		case isPass(touches, frames, i):
			t.Outcome = rlreplay.TouchPass
		default:
			t.Outcome = rlreplay.TouchNeutral
		}
		lastByPlayer[t.PlayerID] = t.T
	}
	return touches
}

// isShotTrajectory checks whether the ball, shortly after the touch,
// travels toward either goal within a narrow cone.
func isShotTrajectory(frames []rlreplay.Frame, touchFrame int) bool {
	lookahead := touchFrame + 10
	if lookahead >= len(frames) {
		lookahead = len(frames) - 1
	}
	if lookahead <= touchFrame {
		return false
	}
	ball := frames[touchFrame].Ball
	future := frames[lookahead].Ball
	dir := future.Position.Sub(ball.Position)
	if dir.Length() < 1 {
		return false
	}
	towardPositiveGoal := dir.Y > 0 && math.Abs(float64(dir.X)) < float64(dir.Y)*0.6
	towardNegativeGoal := dir.Y < 0 && math.Abs(float64(dir.X)) < float64(-dir.Y)*0.6
	return towardPositiveGoal || towardNegativeGoal
}

func isClear(frame rlreplay.Frame, t *rlreplay.Touch, arena field.Arena) bool {
	var team byte
	for _, pf := range frame.Players {
		if pf.PlayerID == t.PlayerID {
			team = pf.Team
			break
		}
	}
	third := field.ThirdOf(t.Location, team)
	return third == field.ThirdDefensive
}

func isPass(touches []rlreplay.Touch, frames []rlreplay.Frame, i int) bool {
	if i+1 >= len(touches) {
		return false
	}
	cur, next := touches[i], touches[i+1]
	if next.T-cur.T > 2.0 || next.PlayerID == cur.PlayerID {
		return false
	}
	return teamOf(frames, cur.Frame, cur.PlayerID) == teamOf(frames, next.Frame, next.PlayerID)
}

func teamOf(frames []rlreplay.Frame, frame int, playerID string) byte {
	if frame < 0 || frame >= len(frames) {
		return 255
	}
	for _, pf := range frames[frame].Players {
		if pf.PlayerID == playerID {
			return pf.Team
		}
	}
	return 255
}
