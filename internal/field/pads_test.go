package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapToPadExactPosition(t *testing.T) {
	for _, pad := range PadTable(ArenaStandard) {
		id, errUU, ok := SnapToPad(pad.Position, ArenaStandard)
		require.True(t, ok, "pad %d should resolve at its own center", pad.PadID)
		assert.Equal(t, pad.PadID, id)
		assert.InDelta(t, 0, errUU, 1e-6)
	}
}

// TestSnapToPadJitterInverse is the pad-snap inverse property from spec.md
// §8: any pickup within a pad's tolerance radius snaps back to that same
// pad id.
func TestSnapToPadJitterInverse(t *testing.T) {
	jitters := []Vec3{
		{X: 10, Y: 0, Z: 0},
		{X: -40, Y: 30, Z: 0},
		{X: 0, Y: -90, Z: 0},
	}
	for _, pad := range PadTable(ArenaStandard) {
		for _, j := range jitters {
			if j.Length() >= pad.RadiusUU {
				continue
			}
			jittered := pad.Position.Add(j)
			id, _, ok := SnapToPad(jittered, ArenaStandard)
			require.True(t, ok)
			assert.Equal(t, pad.PadID, id)
		}
	}
}

func TestSnapToPadOutOfRange(t *testing.T) {
	_, _, ok := SnapToPad(Vec3{X: 0, Y: 0, Z: 1000}, ArenaStandard)
	assert.False(t, ok)
}

func TestPadByID(t *testing.T) {
	pad, ok := PadByID(ArenaStandard, 0)
	require.True(t, ok)
	assert.True(t, pad.IsBig)

	_, ok = PadByID(ArenaStandard, 99)
	assert.False(t, ok)
}

func TestThirdOfMirrorsForOrangeTeam(t *testing.T) {
	pos := Vec3{X: 0, Y: BackWallY - 100, Z: 17}
	assert.Equal(t, ThirdOffensive, ThirdOf(pos, 0))
	assert.Equal(t, ThirdDefensive, ThirdOf(pos, 1))
}

func TestKPHConversion(t *testing.T) {
	got := KPH(1000)
	assert.True(t, math.Abs(got-36.0) < 0.5, "got %f", got)
}
