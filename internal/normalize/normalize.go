// Package normalize implements C4: turning the parser adapter's raw
// header/frame output into the sorted, aliased, rate-measured timeline
// every downstream stage (C5, C6) treats as ground truth.
package normalize

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/internal/quality"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// MeasureFrameRate returns the median successive-delta frame rate in Hz,
// clamped to [1, 240], defaulting to 30 when there isn't enough data to
// measure (fewer than 2 frames).
func MeasureFrameRate(frames []rlreplay.Frame) float64 {
	if len(frames) < 2 {
		return 30
	}
	deltas := make([]float64, 0, len(frames)-1)
	for i := 1; i < len(frames); i++ {
		dt := frames[i].TimestampS - frames[i-1].TimestampS
		if dt > 0 {
			deltas = append(deltas, dt)
		}
	}
	if len(deltas) == 0 {
		return 30
	}
	sort.Float64s(deltas)
	median := deltas[len(deltas)/2]
	if len(deltas)%2 == 0 {
		median = (deltas[len(deltas)/2-1] + deltas[len(deltas)/2]) / 2
	}
	if median <= 0 {
		return 30
	}
	hz := 1 / median
	if hz < 1 {
		return 1
	}
	if hz > 240 {
		return 240
	}
	return hz
}

// ToFieldCoords accepts a position in one of the raw shapes a decoder might
// expose (an XYZ triple, already in UU) and returns it as a field.Vec3,
// clamping out-of-bounds positions and reporting whether clamping occurred
// (diag.MissingAttributeCounts is not touched here; the caller decides
// whether a clamp is diagnostically significant based on tolerance).
func ToFieldCoords(raw [3]float64) (field.Vec3, bool) {
	v := field.Vec3{X: float32(raw[0]), Y: float32(raw[1]), Z: float32(raw[2])}
	clamped, wasClamped := field.Clamp(v)
	return clamped, wasClamped
}

// PlayerIndex maps every id variant seen in the frame stream to a single
// canonical id, per spec.md §4.4.
type PlayerIndex struct {
	ByCanonicalID map[string]rlreplay.PlayerInfo
	Aliases       map[string]string // raw frame id -> canonical id
}

// NormalizePlayers builds a PlayerIndex from the header (source of truth
// for display name/team) and the frame stream (source of the ids actually
// seen moving). Frame ids absent from the header get a positional
// fallback id and a warning.
func NormalizePlayers(header *rlreplay.Header, frames []rlreplay.Frame, diag *quality.Diagnostics) PlayerIndex {
	idx := PlayerIndex{
		ByCanonicalID: map[string]rlreplay.PlayerInfo{},
		Aliases:       map[string]string{},
	}
	for _, p := range header.Players {
		idx.ByCanonicalID[p.CanonicalID] = p
		idx.Aliases[p.CanonicalID] = p.CanonicalID
	}

	seen := map[string]bool{}
	fallbackN := 0
	for _, f := range frames {
		for _, pf := range f.Players {
			id := pf.PlayerID
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := idx.ByCanonicalID[id]; ok {
				continue
			}
			if _, ok := idx.Aliases[id]; ok {
				continue
			}
			fallback := fmt.Sprintf("slug:frame-player-%d", fallbackN)
			fallbackN++
			idx.Aliases[id] = fallback
			idx.ByCanonicalID[fallback] = rlreplay.PlayerInfo{
				CanonicalID: fallback,
				DisplayName: fallback,
				Team:        pf.Team,
			}
		}
	}
	if fallbackN > 0 {
		diag.MissingAttributeCounts["unresolved_player_id"] += fallbackN
	}
	return idx
}

// BuildTimeline sorts frames chronologically and skips malformed ones
// (non-finite timestamps, or more than team_size*2 players), counting how
// many were dropped rather than raising. Optional SAMPLE_EVERY=N
// downsampling keeps every Nth frame; when active, the returned bool is
// true and n is the stride.
func BuildTimeline(header *rlreplay.Header, frames []rlreplay.Frame, diag *quality.Diagnostics) ([]rlreplay.Frame, int, bool) {
	maxPlayers := header.TeamSize * 2
	valid := make([]rlreplay.Frame, 0, len(frames))
	dropped := 0
	for _, f := range frames {
		if math.IsNaN(f.TimestampS) || math.IsInf(f.TimestampS, 0) {
			dropped++
			continue
		}
		if maxPlayers > 0 && len(f.Players) > maxPlayers {
			dropped++
			continue
		}
		valid = append(valid, f)
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].TimestampS < valid[j].TimestampS })

	if dropped > 0 {
		diag.MissingAttributeCounts["malformed_frames"] += dropped
	}

	n, active := sampleEvery()
	if !active {
		return valid, 0, false
	}
	sampled := make([]rlreplay.Frame, 0, len(valid)/n+1)
	for i, f := range valid {
		if i%n == 0 {
			sampled = append(sampled, f)
		}
	}
	diag.AddWarning(quality.WithDownsample(n))
	return sampled, n, true
}

// sampleEvery reads the SAMPLE_EVERY dev-mode directive, per spec.md §6.
func sampleEvery() (int, bool) {
	v := os.Getenv("SAMPLE_EVERY")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 1 {
		return 0, false
	}
	return n, true
}
