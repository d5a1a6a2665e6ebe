package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndResolveMeByPlatformID(t *testing.T) {
	path := writeConfig(t, `
identity:
  platform_ids: ["steam:123"]
paths:
  reports_dir: /tmp/reports
excluded_names: []
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.Paths.ReportsDir)

	header := &rlreplay.Header{Players: []rlreplay.PlayerInfo{
		{CanonicalID: "p1", DisplayName: "Alpha", PlatformIDs: map[string]string{"steam": "steam:123"}},
		{CanonicalID: "p2", DisplayName: "Bravo"},
	}}

	id, ok := cfg.ResolveMe(header)
	require.True(t, ok)
	assert.Equal(t, "p1", id)
}

func TestResolveMeFallsBackToDisplayName(t *testing.T) {
	cfg := &Config{Identity: Identity{DisplayNames: []string{"EmpressOlive"}}}
	header := &rlreplay.Header{Players: []rlreplay.PlayerInfo{
		{CanonicalID: "p1", DisplayName: "EmpressOlive"},
		{CanonicalID: "p2", DisplayName: "Bravo"},
	}}
	id, ok := cfg.ResolveMe(header)
	require.True(t, ok)
	assert.Equal(t, "p1", id)
}

func TestResolveMeNeverGuesses(t *testing.T) {
	cfg := &Config{}
	header := &rlreplay.Header{Players: []rlreplay.PlayerInfo{{CanonicalID: "p1", DisplayName: "Alpha"}}}
	_, ok := cfg.ResolveMe(header)
	assert.False(t, ok)
}

// TestIsExcluded is end-to-end seed 6 from spec.md §8: an excluded display
// name that resolves to "me" must be detected.
func TestIsExcluded(t *testing.T) {
	cfg := &Config{
		Identity:      Identity{DisplayNames: []string{"EmpressOlive"}},
		ExcludedNames: []string{"EmpressOlive"},
	}
	header := &rlreplay.Header{Players: []rlreplay.PlayerInfo{{CanonicalID: "p1", DisplayName: "EmpressOlive"}}}

	meID, ok := cfg.ResolveMe(header)
	require.True(t, ok)
	assert.True(t, cfg.IsExcluded(header, meID))
}

func TestIsExcludedFalseWhenUnresolved(t *testing.T) {
	cfg := &Config{ExcludedNames: []string{"EmpressOlive"}}
	header := &rlreplay.Header{}
	assert.False(t, cfg.IsExcluded(header, ""))
}
