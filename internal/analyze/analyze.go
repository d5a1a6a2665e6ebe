// Package analyze implements C6: pure functions from (timeline, events,
// identity_index) to the per-player/per-team metric blocks of spec.md §4.6.
package analyze

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// Input bundles everything every analyzer needs. Built once by the
// assembler and passed read-only to each analyzer.
type Input struct {
	Header     *rlreplay.Header
	Frames     []rlreplay.Frame
	Events     rlreplay.Events
	PlayerIDs  []string // canonical ids of every player to analyze
	TeamOf     map[string]byte
	DurationS  float64
	Arena      field.Arena
}

// Run executes every analyzer and assembles the Analysis document.
func Run(in Input) rlreplay.Analysis {
	perPlayer := map[string]rlreplay.PlayerMetrics{}
	for _, id := range in.PlayerIDs {
		perPlayer[id] = rlreplay.PlayerMetrics{
			Fundamentals: fundamentalsFor(in, id),
			Boost:        boostFor(in, id),
			Movement:     movementFor(in, id),
			Positioning:  positioningFor(in, id),
			Passing:      passingFor(in, id),
			Challenges:   challengesFor(in, id),
			Kickoffs:     kickoffsFor(in, id),
			Mechanics:    mechanicsFor(in, id),
			Heatmaps:     heatmapsFor(in, id),
		}
	}

	perTeam := map[string]rlreplay.TeamMetrics{
		"blue":   teamMetricsFor(in, 0, perPlayer),
		"orange": teamMetricsFor(in, 1, perPlayer),
	}

	return rlreplay.Analysis{
		PerPlayer:        perPlayer,
		PerTeam:          perTeam,
		CoachingInsights: buildInsights(in, perPlayer, perTeam),
	}
}

func teamMetricsFor(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.TeamMetrics {
	return rlreplay.TeamMetrics{
		Fundamentals: teamFundamentals(in, team, perPlayer),
		Boost:        teamBoost(in, team, perPlayer),
		Movement:     teamMovement(in, team, perPlayer),
		Positioning:  teamPositioning(in, team, perPlayer),
		Passing:      teamPassing(in, team, perPlayer),
		Challenges:   teamChallenges(in, team, perPlayer),
		Kickoffs:     teamKickoffs(in, team, perPlayer),
		Mechanics:    teamMechanics(in, team, perPlayer),
	}
}

func playersOnTeam(in Input, team byte) []string {
	var ids []string
	for _, id := range in.PlayerIDs {
		if in.TeamOf[id] == team {
			ids = append(ids, id)
		}
	}
	return ids
}
