package parser

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/internal/field"
)

func writeFloat32s(buf *bytes.Buffer, vals ...float32) {
	for _, v := range vals {
		binary.Write(buf, binary.LittleEndian, v)
	}
}

// buildNetworkSection assembles one frame's worth of actor updates: a ball
// spawn+update, a car spawn+update (with rotation present), and a boost pad
// spawn+position+pickup, all driven by actor id 10 for the car and 20 for
// the pad.
func buildNetworkSection(t *testing.T, ts float32, withRotation bool, padStatus byte) []byte {
	t.Helper()
	var body bytes.Buffer
	binary.Write(&body, binary.LittleEndian, ts)
	binary.Write(&body, binary.LittleEndian, uint16(6))

	// ball new
	binary.Write(&body, binary.LittleEndian, int32(1))
	body.WriteByte(byte(tagBallNew))

	// ball update: pos(100,200,93), vel(0,0,0), angVel(0,0,0)
	binary.Write(&body, binary.LittleEndian, int32(1))
	body.WriteByte(byte(tagBallUpdate))
	writeFloat32s(&body, 100, 200, 93, 0, 0, 0, 0, 0, 0)

	// car new: actor 10, team 0
	binary.Write(&body, binary.LittleEndian, int32(10))
	body.WriteByte(byte(tagCarNew))
	body.WriteByte(0)

	// car update: pos/vel/angVel, then rotation flag (+ rotation), boost, flags
	binary.Write(&body, binary.LittleEndian, int32(10))
	body.WriteByte(byte(tagCarUpdate))
	writeFloat32s(&body, 300, 400, 17, 900, 0, 0, 0, 0, 0)
	if withRotation {
		body.WriteByte(1)
		writeFloat32s(&body, 0.1, 0.2, 0.3)
	} else {
		body.WriteByte(0)
	}
	writeFloat32s(&body, 55) // boost
	body.WriteByte(0x1)      // supersonic

	// pad new: actor 20
	binary.Write(&body, binary.LittleEndian, int32(20))
	body.WriteByte(byte(tagPadNew))

	pad := field.PadTable(field.ArenaStandard)[0]

	// pad position
	binary.Write(&body, binary.LittleEndian, int32(20))
	body.WriteByte(byte(tagPadPos))
	writeFloat32s(&body, float32(pad.Position.X), float32(pad.Position.Y), float32(pad.Position.Z))

	// pad pickup: status, instigator actor (car 10)
	binary.Write(&body, binary.LittleEndian, int32(20))
	body.WriteByte(byte(tagPadPickup))
	body.WriteByte(padStatus)
	binary.Write(&body, binary.LittleEndian, int32(10))

	return body.Bytes()
}

func buildReplay(t *testing.T, netBody []byte) []byte {
	t.Helper()
	var replay bytes.Buffer
	replay.Write(magic[:])
	replay.WriteByte(1)
	writeSection(&replay, []byte{}) // empty header section
	writeSection(&replay, netBody)
	return replay.Bytes()
}

func carIndexFor(m map[int]string) func(int) string {
	return func(actorID int) string {
		return m[actorID]
	}
}

func TestParseNetworkDecodesBallCarAndPad(t *testing.T) {
	netBody := buildNetworkSection(t, 0.0, true, 1)
	replay := buildReplay(t, netBody)

	res, err := ParseNetwork(replay, field.ArenaStandard, carIndexFor(map[int]string{10: "p1"}))
	require.NoError(t, err)
	require.Len(t, res.Frames, 1)

	f := res.Frames[0]
	assert.Equal(t, float32(100), f.Ball.Position.X)
	require.Len(t, f.Players, 1)
	assert.Equal(t, "p1", f.Players[0].PlayerID)
	assert.Equal(t, byte(0), f.Players[0].Team)
	assert.False(t, f.Players[0].RotationApproximated)
	assert.True(t, f.Players[0].IsSupersonic)

	require.Len(t, res.PadEvents, 1)
	assert.Equal(t, "p1", res.PadEvents[0].PlayerID)
	assert.Equal(t, PadCollected, res.PadEvents[0].Status)
}

func TestParseNetworkFlagsApproximatedRotationWhenMissing(t *testing.T) {
	netBody := buildNetworkSection(t, 0.0, false, 1)
	replay := buildReplay(t, netBody)

	res, err := ParseNetwork(replay, field.ArenaStandard, carIndexFor(map[int]string{10: "p1"}))
	require.NoError(t, err)
	require.Len(t, res.Frames, 1)
	require.Len(t, res.Frames[0].Players, 1)
	assert.True(t, res.Frames[0].Players[0].RotationApproximated)
	assert.Equal(t, 1, res.Diagnostics.MissingAttributeCounts["rotation"])
}

func TestParseNetworkEmptySectionProducesUnavailableStatus(t *testing.T) {
	replay := buildReplay(t, []byte{})
	res, err := ParseNetwork(replay, field.ArenaStandard, carIndexFor(nil))
	require.NoError(t, err)
	assert.Empty(t, res.Frames)
}
