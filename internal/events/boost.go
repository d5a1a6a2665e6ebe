package events

import (
	"sort"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

const boostFallbackDeltaThreshold = 10 // points

// detectBoostPickups prefers C3's pad observations; a boost-delta
// heuristic fallback runs only when the frame stream carries zero pad
// events, per spec.md §4.5.
func detectBoostPickups(frames []rlreplay.Frame, pads []PadObservation, arena field.Arena) []rlreplay.BoostPickup {
	if len(pads) > 0 {
		return boostPickupsFromPads(frames, pads)
	}
	return boostPickupsFromDelta(frames, arena)
}

// boostPickupsFromPads is the primary detector. PadObservation carries
// only a timestamp (it's sourced from C3's BoostPadEvent, which has no
// frame index of its own), so the frame each pickup landed on is resolved
// here by matching TimestampS against the nearest normalized frame.
func boostPickupsFromPads(frames []rlreplay.Frame, pads []PadObservation) []rlreplay.BoostPickup {
	var out []rlreplay.BoostPickup
	for _, p := range pads {
		if p.Status != "COLLECTED" {
			continue
		}
		stolen := false
		if p.PlayerID != "" {
			stolen = stolenForTeam(p.PadSide, p.PlayerTeam)
		}
		out = append(out, rlreplay.BoostPickup{
			T:        p.TimestampS,
			Frame:    nearestFrameIndex(frames, p.TimestampS),
			PlayerID: p.PlayerID,
			PadID:    p.PadID,
			IsBig:    p.IsBig,
			Stolen:   stolen,
		})
	}
	return out
}

// nearestFrameIndex returns the index of the frame whose TimestampS is
// closest to t. Frames are assumed ordered by TimestampS, as produced by
// C4's normalization pass.
func nearestFrameIndex(frames []rlreplay.Frame, t float64) int {
	if len(frames) == 0 {
		return 0
	}
	i := sort.Search(len(frames), func(i int) bool { return frames[i].TimestampS >= t })
	if i == 0 {
		return 0
	}
	if i == len(frames) {
		return len(frames) - 1
	}
	if frames[i].TimestampS-t < t-frames[i-1].TimestampS {
		return i
	}
	return i - 1
}

func boostPickupsFromDelta(frames []rlreplay.Frame, arena field.Arena) []rlreplay.BoostPickup {
	last := map[string]float64{}
	var out []rlreplay.BoostPickup
	for fi, f := range frames {
		for _, pf := range f.Players {
			if pf.PlayerID == "" {
				continue
			}
			prev, ok := last[pf.PlayerID]
			last[pf.PlayerID] = pf.BoostAmount
			if !ok {
				continue
			}
			delta := pf.BoostAmount - prev
			if delta < boostFallbackDeltaThreshold {
				continue
			}
			padID, _, snapped := field.SnapToPad(pf.Position, arena)
			if !snapped {
				continue
			}
			pad, _ := field.PadByID(arena, padID)
			out = append(out, rlreplay.BoostPickup{
				T:        f.TimestampS,
				Frame:    fi,
				PlayerID: pf.PlayerID,
				PadID:    padID,
				IsBig:    pad.IsBig,
				Stolen:   stolenForTeam(pad.Side, pf.Team),
			})
		}
	}
	return out
}

// stolenForTeam applies spec.md §4.5's rule: stolen iff the pad's side is
// the opposite team's half; mid is never stolen.
func stolenForTeam(side field.Side, team byte) bool {
	if side == field.SideMid {
		return false
	}
	ownSide := field.SideBlue
	if team == 1 {
		ownSide = field.SideOrange
	}
	return side != ownSide
}
