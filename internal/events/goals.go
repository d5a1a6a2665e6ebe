package events

import (
	"math"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// detectGoals finds ball crossings of the goal line. The detector is
// edge-triggered: once a goal fires, no further goal fires until the ball
// re-enters the playfield, per spec.md §4.5.
func detectGoals(frames []rlreplay.Frame, arena field.Arena, touches []rlreplay.Touch) []rlreplay.Goal {
	goalLineY := field.BackWallY - field.GoalDepth
	armed := true
	var goals []rlreplay.Goal

	for i, f := range frames {
		y := float64(f.Ball.Position.Y)
		crossed := math.Abs(y) >= goalLineY

		if crossed && armed {
			armed = false
			team := byte(0)
			if y > 0 {
				team = 1
			}
			scorerID, assistID := attributeGoal(frames, touches, i)
			goals = append(goals, rlreplay.Goal{
				T:            f.TimestampS,
				Frame:        i,
				ScorerID:     scorerID,
				AssistID:     assistID,
				Team:         team,
				ShotSpeedKPH: goalShotSpeed(frames, i),
			})
		}
		if !crossed {
			armed = true
		}
	}
	return goals
}

// attributeGoal finds the scorer (last touch within 4s before the
// crossing) and assist (preceding same-team touch within 5s, different
// player), per spec.md §4.5.
func attributeGoal(frames []rlreplay.Frame, touches []rlreplay.Touch, crossingFrame int) (scorerID string, assistID *string) {
	crossingT := frames[crossingFrame].TimestampS

	var scorer *rlreplay.Touch
	for i := len(touches) - 1; i >= 0; i-- {
		t := touches[i]
		if t.T > crossingT {
			continue
		}
		if crossingT-t.T <= 4.0 {
			scorer = &touches[i]
			break
		}
		break
	}
	if scorer == nil {
		return "", nil
	}
	scorerID = scorer.PlayerID

	scorerTeam := teamOf(frames, scorer.Frame, scorerID)
	for i := len(touches) - 1; i >= 0; i-- {
		t := touches[i]
		if t.T >= scorer.T {
			continue
		}
		if scorer.T-t.T > 5.0 {
			break
		}
		if t.PlayerID != scorerID && teamOf(frames, t.Frame, t.PlayerID) == scorerTeam {
			id := t.PlayerID
			assistID = &id
		}
		break
	}
	return scorerID, assistID
}

func goalShotSpeed(frames []rlreplay.Frame, crossingFrame int) *float64 {
	if crossingFrame < 0 || crossingFrame >= len(frames) {
		return nil
	}
	kph := field.KPH(frames[crossingFrame].Ball.Velocity.Length())
	return &kph
}
