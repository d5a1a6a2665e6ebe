package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func mechFrame(z, velY, velX float32, onGround bool) rlreplay.Frame {
	return rlreplay.Frame{Players: []rlreplay.PlayerFrame{
		{PlayerID: "p1", Velocity: field.Vec3{X: velX, Y: velY, Z: z}, IsOnGround: onGround},
	}}
}

func TestMechanicsForDetectsGroundJumpThenFlip(t *testing.T) {
	frames := []rlreplay.Frame{
		mechFrame(0, 0, 0, true),
		mechFrame(400, 0, 0, false),
		mechFrame(900, 500, 0, false),
	}
	in := Input{PlayerIDs: []string{"p1"}, TeamOf: map[string]byte{"p1": 0}, Frames: frames}

	m := mechanicsFor(in, "p1")
	assert.Equal(t, 1, m.Jump)
	assert.Equal(t, 1, m.DoubleJump)
	assert.Equal(t, 1, m.Flip)
	assert.Equal(t, 1, m.FlipByDir["forward"])
}

func TestMechanicsForIgnoresSmallVelocityChanges(t *testing.T) {
	frames := []rlreplay.Frame{
		mechFrame(0, 0, 0, true),
		mechFrame(50, 0, 0, true),
	}
	in := Input{PlayerIDs: []string{"p1"}, TeamOf: map[string]byte{"p1": 0}, Frames: frames}

	m := mechanicsFor(in, "p1")
	assert.Zero(t, m.Jump)
}

func TestTeamMechanicsSumsFlipDirections(t *testing.T) {
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Mechanics: rlreplay.MechanicsMetrics{Jump: 2, FlipByDir: map[string]int{"forward": 1}}},
		"p2": {Mechanics: rlreplay.MechanicsMetrics{Jump: 1, FlipByDir: map[string]int{"forward": 2, "left": 1}}},
	}
	in := Input{PlayerIDs: []string{"p1", "p2"}, TeamOf: map[string]byte{"p1": 0, "p2": 0}}

	m := teamMechanics(in, 0, perPlayer)
	assert.Equal(t, 3, m.Jump)
	assert.Equal(t, 3, m.FlipByDir["forward"])
	assert.Equal(t, 1, m.FlipByDir["left"])
}
