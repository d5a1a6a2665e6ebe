package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func frame(t float64, ball field.Vec3, players ...rlreplay.PlayerFrame) rlreplay.Frame {
	return rlreplay.Frame{TimestampS: t, Ball: rlreplay.BallFrame{Position: ball}, Players: players}
}

func frameV(t float64, ball field.Vec3, ballVel field.Vec3, players ...rlreplay.PlayerFrame) rlreplay.Frame {
	return rlreplay.Frame{TimestampS: t, Ball: rlreplay.BallFrame{Position: ball, Velocity: ballVel}, Players: players}
}

// TestDetectGoalsEdgeTriggered is end-to-end seed 3 from spec.md §8: the
// ball stationary for 60 frames beyond the goal line produces exactly one
// Goal event, not 60.
func TestDetectGoalsEdgeTriggered(t *testing.T) {
	y := field.BackWallY - field.GoalDepth + 100
	var frames []rlreplay.Frame
	for i := 0; i < 60; i++ {
		frames = append(frames, frame(float64(i)*0.1, field.Vec3{X: 0, Y: float32(y), Z: 93.15}))
	}

	touches := detectTouches(frames, field.ArenaStandard)
	goals := detectGoals(frames, field.ArenaStandard, touches)

	require.Len(t, goals, 1)
	assert.Equal(t, 0, goals[0].Frame)
}

// TestDetectGoalsReentryRearms is the companion invariant: two separate
// excursions past the goal line, separated by a playfield re-entry,
// produce two goal events.
func TestDetectGoalsReentryRearms(t *testing.T) {
	beyond := float32(field.BackWallY - field.GoalDepth + 100)
	inside := float32(0)
	frames := []rlreplay.Frame{
		frame(0.0, field.Vec3{X: 0, Y: beyond, Z: 93.15}),
		frame(0.1, field.Vec3{X: 0, Y: inside, Z: 93.15}),
		frame(0.2, field.Vec3{X: 0, Y: beyond, Z: 93.15}),
	}
	touches := detectTouches(frames, field.ArenaStandard)
	goals := detectGoals(frames, field.ArenaStandard, touches)
	assert.Len(t, goals, 2)
}

// TestDetectKickoffAndTouch is end-to-end seed 2 from spec.md §8.
func TestDetectKickoffAndTouch(t *testing.T) {
	a := rlreplay.PlayerFrame{PlayerID: "A", Team: 0, Position: field.Vec3{X: 0, Y: -500, Z: 17}}
	b := rlreplay.PlayerFrame{PlayerID: "B", Team: 1, Position: field.Vec3{X: 0, Y: 1000, Z: 17}}

	frames := []rlreplay.Frame{
		frameV(0.0, field.Vec3{X: 0, Y: 0, Z: 93.15}, field.Vec3{}, a, b),
		frameV(1.0, field.Vec3{X: 0, Y: 120, Z: 93.15}, field.Vec3{X: 0, Y: 5, Z: 0}, a, b),
		func() rlreplay.Frame {
			aMoved := a
			aMoved.Position = field.Vec3{X: 0, Y: 160, Z: 17}
			aMoved.Velocity = field.Vec3{X: 0, Y: 900, Z: 0}
			return frameV(1.1, field.Vec3{X: 0, Y: 150, Z: 93.15}, field.Vec3{X: 0, Y: 600, Z: 0}, aMoved, b)
		}(),
	}

	ev := Detect(&rlreplay.Header{}, frames, nil, field.ArenaStandard)

	require.Len(t, ev.Kickoffs, 1)
	assert.Equal(t, rlreplay.KickoffComplete, ev.Kickoffs[0].Phase)
	assert.Empty(t, ev.Goals)

	require.Len(t, ev.Touches, 1)
	assert.Equal(t, "A", ev.Touches[0].PlayerID)
	assert.NotEqual(t, rlreplay.TouchOutcome(""), ev.Touches[0].Outcome)
}

func TestTimelineSortedAndComplete(t *testing.T) {
	a := rlreplay.PlayerFrame{PlayerID: "A", Team: 0, Position: field.Vec3{X: 0, Y: -500, Z: 17}}
	b := rlreplay.PlayerFrame{PlayerID: "B", Team: 1, Position: field.Vec3{X: 0, Y: 1000, Z: 17}}
	frames := []rlreplay.Frame{
		frame(0.0, field.Vec3{X: 0, Y: 0, Z: 93.15}, a, b),
		frame(1.0, field.Vec3{X: 0, Y: 120, Z: 93.15}, a, b),
	}
	ev := Detect(&rlreplay.Header{}, frames, nil, field.ArenaStandard)

	total := len(ev.Kickoffs) + len(ev.Goals) + len(ev.Demos) + len(ev.Touches) + len(ev.BoostPickups) + len(ev.Challenges)
	assert.Equal(t, total, len(ev.Timeline))

	for i := 1; i < len(ev.Timeline); i++ {
		prev, cur := ev.Timeline[i-1], ev.Timeline[i]
		if cur.TimestampS == prev.TimestampS {
			assert.LessOrEqual(t, prev.TypeRank, cur.TypeRank)
		} else {
			assert.Less(t, prev.TimestampS, cur.TimestampS)
		}
	}
}
