package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func TestDetectBoostPickupsPrefersPadObservationsOverDelta(t *testing.T) {
	pads := []PadObservation{
		{TimestampS: 1.0, PadID: 3, IsBig: true, Status: "COLLECTED", PlayerID: "p1", PlayerTeam: 1, PadSide: field.SideBlue},
	}
	out := detectBoostPickups(nil, pads, field.ArenaStandard)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].PlayerID)
	assert.True(t, out[0].Stolen, "orange player collecting a blue-side pad should be marked stolen")
}

func TestDetectBoostPickupsIgnoresNonCollectedPadObservations(t *testing.T) {
	pads := []PadObservation{
		{TimestampS: 1.0, PadID: 3, Status: "RESPAWNED"},
	}
	out := detectBoostPickups(nil, pads, field.ArenaStandard)
	assert.Empty(t, out)
}

func TestDetectBoostPickupsFallsBackToDeltaWhenNoPadObservations(t *testing.T) {
	pad := field.PadTable(field.ArenaStandard)[0]
	frames := []rlreplay.Frame{
		{TimestampS: 0.0, Players: []rlreplay.PlayerFrame{{PlayerID: "p1", Team: 0, Position: pad.Position, BoostAmount: 20}}},
		{TimestampS: 0.1, Players: []rlreplay.PlayerFrame{{PlayerID: "p1", Team: 0, Position: pad.Position, BoostAmount: 100}}},
	}
	out := detectBoostPickups(frames, nil, field.ArenaStandard)
	require.Len(t, out, 1)
	assert.Equal(t, pad.PadID, out[0].PadID)
}

func TestStolenForTeamNeverTrueOnMidPads(t *testing.T) {
	assert.False(t, stolenForTeam(field.SideMid, 0))
}

func TestStolenForTeamTrueOnlyOnOpposingSide(t *testing.T) {
	assert.False(t, stolenForTeam(field.SideBlue, 0))
	assert.True(t, stolenForTeam(field.SideBlue, 1))
	assert.True(t, stolenForTeam(field.SideOrange, 0))
	assert.False(t, stolenForTeam(field.SideOrange, 1))
}
