package parser

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendProp(buf *bytes.Buffer, key string, kind propKind, write func(*bytes.Buffer)) {
	binary.Write(buf, binary.LittleEndian, uint16(len(key)))
	buf.WriteString(key)
	binary.Write(buf, binary.LittleEndian, kind)
	write(buf)
}

func TestDecodePropertyListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	appendProp(&buf, "map_name", propString, func(b *bytes.Buffer) {
		binary.Write(b, binary.LittleEndian, uint16(len("stadium_p")))
		b.WriteString("stadium_p")
	})
	appendProp(&buf, "team_size", propInt, func(b *bytes.Buffer) {
		binary.Write(b, binary.LittleEndian, int64(2))
	})
	appendProp(&buf, "duration", propFloat, func(b *bytes.Buffer) {
		binary.Write(b, binary.LittleEndian, float64(305.5))
	})
	appendProp(&buf, "overtime", propBool, func(b *bytes.Buffer) {
		b.WriteByte(1)
	})
	appendProp(&buf, "p0.team", propByte, func(b *bytes.Buffer) {
		b.WriteByte(1)
	})

	props, err := decodePropertyList(buf.Bytes())
	require.NoError(t, err)

	s, ok := props.str("map_name")
	require.True(t, ok)
	assert.Equal(t, "stadium_p", s)

	i, ok := props.intVal("team_size")
	require.True(t, ok)
	assert.Equal(t, int64(2), i)

	f, ok := props.floatVal("duration")
	require.True(t, ok)
	assert.Equal(t, 305.5, f)

	b, ok := props.boolVal("overtime")
	require.True(t, ok)
	assert.True(t, b)

	team, ok := props.intVal("p0.team")
	require.True(t, ok)
	assert.Equal(t, int64(1), team)
}

func TestDecodePropertyListRejectsUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	appendProp(&buf, "bad", propKind(99), func(b *bytes.Buffer) {})
	_, err := decodePropertyList(buf.Bytes())
	assert.Error(t, err)
}

func TestDecodePropertyListEmpty(t *testing.T) {
	props, err := decodePropertyList(nil)
	require.NoError(t, err)
	assert.Empty(t, props)
}
