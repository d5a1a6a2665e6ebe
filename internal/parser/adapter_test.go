package parser

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/internal/quality"
)

func buildMinimalReplay(t *testing.T) []byte {
	t.Helper()
	var props bytes.Buffer
	appendProp(&props, "map_name", propString, func(b *bytes.Buffer) {
		binary.Write(b, binary.LittleEndian, uint16(len("stadium_p")))
		b.WriteString("stadium_p")
	})

	netBody := buildNetworkSection(t, 0.0, true, 1)

	var replay bytes.Buffer
	replay.Write(magic[:])
	replay.WriteByte(1)
	writeSection(&replay, props.Bytes())
	writeSection(&replay, netBody)
	return replay.Bytes()
}

func TestNewAdapterHeaderOnlyForcesHeaderOnlyVariant(t *testing.T) {
	data := buildMinimalReplay(t)
	a, err := NewAdapter(data, true)
	require.NoError(t, err)
	assert.Equal(t, VariantHeaderOnlyFallback, a.Variant())

	_, err = a.ParseNetwork()
	assert.Error(t, err)
}

func TestNewAdapterFullVariantParsesHeaderAndNetwork(t *testing.T) {
	data := buildMinimalReplay(t)
	a, err := NewAdapter(data, false)
	require.NoError(t, err)
	require.Equal(t, VariantFull, a.Variant())

	h, err := a.ParseHeader()
	require.NoError(t, err)
	assert.Equal(t, "stadium_p", h.MapName)
	assert.Contains(t, h.Warnings, quality.WarnParsedWithFullDecoder)

	res, err := a.ParseNetwork()
	require.NoError(t, err)
	assert.Len(t, res.Frames, 1)
}

func TestNewAdapterFallsBackToHeaderOnlyForUnrecognizedBytes(t *testing.T) {
	a, err := NewAdapter([]byte("garbage"), false)
	require.NoError(t, err)
	assert.Equal(t, VariantHeaderOnlyFallback, a.Variant())
}

func TestHeaderOnlyAdapterAddsFallbackWarning(t *testing.T) {
	data := buildMinimalReplay(t)
	a := &headerOnlyAdapter{data: data}
	h, err := a.ParseHeader()
	require.NoError(t, err)
	assert.Contains(t, h.Warnings, quality.WarnParserFallbackHeaderOnly)
}
