package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func TestBuildInsightsFlagsLowBoostEfficiency(t *testing.T) {
	waste := 250.0
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Boost: rlreplay.BoostMetrics{Waste: &waste}},
	}
	in := Input{PlayerIDs: []string{"p1"}}

	insights := buildInsights(in, perPlayer, nil)
	require_contains(t, insights, InsightLowBoostEfficiency)
}

func TestBuildInsightsFlagsOvercommitting(t *testing.T) {
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Positioning: rlreplay.PositioningMetrics{Flags: []string{rlreplay.FlagDoubleCommit}}},
	}
	in := Input{PlayerIDs: []string{"p1"}}

	insights := buildInsights(in, perPlayer, nil)
	require_contains(t, insights, InsightOvercommitting)
}

func TestBuildInsightsFlagsStrongKickoffs(t *testing.T) {
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {Kickoffs: rlreplay.KickoffsMetrics{Count: 4, FirstPossession: 3}},
	}
	in := Input{PlayerIDs: []string{"p1"}}

	insights := buildInsights(in, perPlayer, nil)
	require_contains(t, insights, InsightStrongKickoffs)
}

func TestBuildInsightsProducesNoneForCleanPlay(t *testing.T) {
	perPlayer := map[string]rlreplay.PlayerMetrics{
		"p1": {},
	}
	in := Input{PlayerIDs: []string{"p1"}}
	insights := buildInsights(in, perPlayer, nil)
	assert.Empty(t, insights)
}

func require_contains(t *testing.T, insights []rlreplay.Insight, code string) {
	t.Helper()
	for _, ins := range insights {
		if ins.Code == code {
			return
		}
	}
	t.Fatalf("expected an insight with code %q, got %+v", code, insights)
}
