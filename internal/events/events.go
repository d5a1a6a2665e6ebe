// Package events implements C5: deterministic detectors over the
// normalized timeline, each a pure function of frames and declared
// thresholds, per spec.md §4.5.
package events

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// PadObservation is the subset of C3's BoostPadEvent the boost pickup
// detector needs. Kept separate from internal/parser.BoostPadEvent so C5
// doesn't depend on C3's package, only on the normalized facts it reports.
type PadObservation struct {
	TimestampS float64
	PadID      int
	IsBig      bool
	Status     string // "COLLECTED", "RESPAWNED", "UNKNOWN"
	PlayerID   string
	PlayerTeam byte // only meaningful when PlayerID != ""
	PadSide    field.Side
}

// typeRank is the fixed total order used to break (timestamp_s) ties when
// merging the per-type event lists into events.timeline, per spec.md §4.5.
const (
	rankKickoff = iota
	rankGoal
	rankDemo
	rankTouch
	rankBoost
	rankChallenge
)

// Detect runs every detector over the normalized timeline and returns the
// merged Events document.
func Detect(header *rlreplay.Header, frames []rlreplay.Frame, pads []PadObservation, arena field.Arena) rlreplay.Events {
	kickoffs := detectKickoffs(frames, arena)
	touches := detectTouches(frames, arena)
	goals := detectGoals(frames, arena, touches)
	demos := detectDemos(frames)
	boosts := detectBoostPickups(frames, pads, arena)
	challenges := detectChallenges(touches, frames)

	ev := rlreplay.Events{
		Kickoffs:     kickoffs,
		Goals:        goals,
		Demos:        demos,
		Touches:      touches,
		BoostPickups: boosts,
		Challenges:   challenges,
	}
	ev.Timeline = mergeTimeline(ev)
	return ev
}

func mergeTimeline(ev rlreplay.Events) []rlreplay.TimelineEntry {
	var entries []rlreplay.TimelineEntry
	for i, k := range ev.Kickoffs {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: k.TStart, Type: "kickoff", TypeRank: rankKickoff, Index: i})
	}
	for i, g := range ev.Goals {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: g.T, Type: "goal", TypeRank: rankGoal, Index: i})
	}
	for i, d := range ev.Demos {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: d.T, Type: "demo", TypeRank: rankDemo, Index: i})
	}
	for i, t := range ev.Touches {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: t.T, Type: "touch", TypeRank: rankTouch, Index: i})
	}
	for i, b := range ev.BoostPickups {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: b.T, Type: "boost_pickup", TypeRank: rankBoost, Index: i})
	}
	for i, c := range ev.Challenges {
		entries = append(entries, rlreplay.TimelineEntry{TimestampS: c.T, Type: "challenge", TypeRank: rankChallenge, Index: i})
	}

	// Stable sort on (timestamp_s, type_rank); Go's sort.SliceStable
	// preserves emission order for exact ties, satisfying invariant (v).
	stableSortEntries(entries)
	return entries
}
