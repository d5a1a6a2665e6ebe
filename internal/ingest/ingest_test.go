package ingest

import (
	"bytes"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/internal/rlerrors"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.replay")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIngestRejectsMissingFile(t *testing.T) {
	_, err := Ingest(filepath.Join(t.TempDir(), "nope.replay"), Options{})
	require.Error(t, err)
	kind, ok := rlerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, rlerrors.KindUnreadableReplayFile, kind)
}

func TestIngestRejectsImplausiblySmallFile(t *testing.T) {
	path := writeFile(t, []byte("too small"))
	_, err := Ingest(path, Options{})
	require.Error(t, err)
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, MinPlausibleBytes+10)
	path := writeFile(t, data)
	_, err := Ingest(path, Options{MaxBytes: int64(len(data) - 1)})
	require.Error(t, err)
}

func TestIngestComputesSHA256(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, MinPlausibleBytes+10)
	path := writeFile(t, data)
	rec, err := Ingest(path, Options{})
	require.NoError(t, err)
	assert.Len(t, rec.SHA256, 64)
	assert.Equal(t, int64(len(data)), rec.BytesLen)
	assert.Equal(t, data, rec.Data)
}

func TestVerifyHeaderCRC(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 100)
	expected := crc32.ChecksumIEEE(data[:50])
	assert.True(t, VerifyHeaderCRC(data, 50, expected))
	assert.False(t, VerifyHeaderCRC(data, 50, expected+1))
	assert.False(t, VerifyHeaderCRC(data, 0, expected))
	assert.False(t, VerifyHeaderCRC(data, 1000, expected))
}
