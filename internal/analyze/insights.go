package analyze

import (
	"fmt"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// Coaching insight codes. A closed, extensible taxonomy declared in one
// place, per spec.md §4.6.
const (
	InsightLowBoostEfficiency = "low_boost_efficiency"
	InsightOvercommitting     = "overcommitting"
	InsightWeakRotation       = "weak_rotation"
	InsightStrongKickoffs     = "strong_kickoffs"
)

func buildInsights(in Input, perPlayer map[string]rlreplay.PlayerMetrics, perTeam map[string]rlreplay.TeamMetrics) []rlreplay.Insight {
	var insights []rlreplay.Insight

	for _, id := range in.PlayerIDs {
		pm := perPlayer[id]

		if pm.Boost.Waste != nil && *pm.Boost.Waste > 200 {
			insights = append(insights, rlreplay.Insight{
				Severity: rlreplay.SeverityWarn,
				Code:     InsightLowBoostEfficiency,
				Message:  fmt.Sprintf("%s wasted %.0f boost while supersonic", id, *pm.Boost.Waste),
				Evidence: rlreplay.InsightEvidence{Players: []string{id}},
			})
		}

		overcommitCount := 0
		for _, flag := range pm.Positioning.Flags {
			if flag == rlreplay.FlagDoubleCommit || flag == rlreplay.FlagLastManOvercommit {
				overcommitCount++
			}
		}
		if overcommitCount > 0 {
			insights = append(insights, rlreplay.Insight{
				Severity: rlreplay.SeverityCritical,
				Code:     InsightOvercommitting,
				Message:  fmt.Sprintf("%s showed overcommit patterns during the match", id),
				Evidence: rlreplay.InsightEvidence{Players: []string{id}},
			})
		}

		if pm.Positioning.RotationCompliance != nil && *pm.Positioning.RotationCompliance < 60 {
			insights = append(insights, rlreplay.Insight{
				Severity: rlreplay.SeverityWarn,
				Code:     InsightWeakRotation,
				Message:  fmt.Sprintf("%s had low rotation compliance (%.0f)", id, *pm.Positioning.RotationCompliance),
				Evidence: rlreplay.InsightEvidence{Players: []string{id}},
			})
		}

		if pm.Kickoffs.Count > 0 && pm.Kickoffs.FirstPossession*2 > pm.Kickoffs.Count {
			insights = append(insights, rlreplay.Insight{
				Severity: rlreplay.SeverityInfo,
				Code:     InsightStrongKickoffs,
				Message:  fmt.Sprintf("%s won first possession on most of their kickoffs", id),
				Evidence: rlreplay.InsightEvidence{Players: []string{id}},
			})
		}
	}

	return insights
}
