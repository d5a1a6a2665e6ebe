package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupSortsAndDeduplicates(t *testing.T) {
	got := Dedup([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestAddWarningSkipsDuplicates(t *testing.T) {
	d := NewDiagnostics()
	d.AddWarning(WarnCRCNotVerified)
	d.AddWarning(WarnCRCNotVerified)
	assert.Equal(t, []string{WarnCRCNotVerified}, d.Warnings)
}

func TestWithDownsampleAndMissingInstigator(t *testing.T) {
	assert.Equal(t, "analysis_downsampled_n=4", WithDownsample(4))
	assert.Equal(t, "missing_instigator_count=2", WithMissingInstigator(2))
}

func TestNewDiagnosticsDefaultsToOK(t *testing.T) {
	d := NewDiagnostics()
	assert.Equal(t, StatusOK, d.Status)
	assert.NotNil(t, d.MissingAttributeCounts)
	assert.Empty(t, d.Warnings)
}
