package events

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

const (
	kickoffCenterToleranceUU = 50
	kickoffMovedThresholdUU  = 150
	kickoffActiveTimeoutS    = 5.0
)

// detectKickoffs finds kickoff sequences: the ball at center with every
// player stationary starts the countdown; countdown ends when any player
// first moves 150 UU from spawn; active ends on first touch or a 5s
// timeout, per spec.md §4.5.
func detectKickoffs(frames []rlreplay.Frame, arena field.Arena) []rlreplay.Kickoff {
	var kickoffs []rlreplay.Kickoff
	inKickoff := false
	var spawns map[string]field.Vec3
	var current rlreplay.Kickoff
	var startFrame int

	for i, f := range frames {
		ballAtCenter := f.Ball.Position.Distance2D(field.Vec3{}) <= kickoffCenterToleranceUU
		allStationary := allPlayersStationary(f)

		if !inKickoff {
			if ballAtCenter && allStationary && len(f.Players) > 0 {
				inKickoff = true
				startFrame = i
				spawns = snapshotPositions(f)
				current = rlreplay.Kickoff{
					TStart: f.TimestampS,
					Phase:  rlreplay.KickoffCountdown,
					Roles:  map[string]rlreplay.KickoffRole{},
					ApproachTypes: map[string]rlreplay.ApproachType{},
				}
			}
			continue
		}

		// In countdown: watch for first movement. A frame that both starts
		// movement and carries the first touch falls straight through to
		// the active check below, rather than consuming a frame on the
		// countdown->active transition alone.
		if current.Phase == rlreplay.KickoffCountdown {
			if !anyPlayerMoved(f, spawns, kickoffMovedThresholdUU) {
				continue
			}
			current.Phase = rlreplay.KickoffActive
			assignRoles(&current, f, spawns)
		}

		// Active: watch for first touch or timeout.
		elapsed := f.TimestampS - current.TStart
		touched := ballTouched(frames, startFrame, i)
		if touched || elapsed > kickoffActiveTimeoutS {
			t := f.TimestampS
			current.TFirstTouch = &t
			current.Phase = rlreplay.KickoffComplete
			current.Outcome = rlreplay.OutcomeNeutral
			classifyApproaches(&current, frames, startFrame, i, spawns)
			kickoffs = append(kickoffs, current)
			inKickoff = false
		}
	}
	return kickoffs
}

func allPlayersStationary(f rlreplay.Frame) bool {
	for _, pf := range f.Players {
		if pf.Velocity.Length() > 50 {
			return false
		}
	}
	return true
}

func snapshotPositions(f rlreplay.Frame) map[string]field.Vec3 {
	out := make(map[string]field.Vec3, len(f.Players))
	for _, pf := range f.Players {
		out[pf.PlayerID] = pf.Position
	}
	return out
}

func anyPlayerMoved(f rlreplay.Frame, spawns map[string]field.Vec3, thresholdUU float64) bool {
	for _, pf := range f.Players {
		spawn, ok := spawns[pf.PlayerID]
		if !ok {
			continue
		}
		if pf.Position.Distance(spawn) >= thresholdUU {
			return true
		}
	}
	return false
}

func ballTouched(frames []rlreplay.Frame, start, end int) bool {
	if start < 0 || end >= len(frames) || end <= start {
		return false
	}
	prevSpeed := frames[start].Ball.Velocity.Length()
	for i := start + 1; i <= end; i++ {
		speed := frames[i].Ball.Velocity.Length()
		if speed-prevSpeed > touchVelocityEpsilon {
			return true
		}
		prevSpeed = speed
	}
	return false
}

// assignRoles ranks each team's players by distance to ball on approach:
// closest is GO, second-closest-on-same-half is CHEAT, the rest split
// WING/BACK by lateral offset, per spec.md §4.5.
func assignRoles(k *rlreplay.Kickoff, f rlreplay.Frame, spawns map[string]field.Vec3) {
	type ranked struct {
		id   string
		team byte
		dist float64
		x    float32
	}
	var rs []ranked
	for _, pf := range f.Players {
		rs = append(rs, ranked{pf.PlayerID, pf.Team, pf.Position.Distance(f.Ball.Position), pf.Position.X})
	}
	for i := 0; i < len(rs); i++ {
		for j := i + 1; j < len(rs); j++ {
			if rs[j].dist < rs[i].dist {
				rs[i], rs[j] = rs[j], rs[i]
			}
		}
	}
	teamRank := map[byte]int{}
	for _, r := range rs {
		i := teamRank[r.team]
		teamRank[r.team]++
		switch {
		case i == 0:
			k.Roles[r.id] = rlreplay.RoleGo
		case i == 1:
			k.Roles[r.id] = rlreplay.RoleCheat
		default:
			if r.x < 0 {
				k.Roles[r.id] = rlreplay.RoleWing
			} else {
				k.Roles[r.id] = rlreplay.RoleBack
			}
		}
	}
}

// classifyApproaches runs the ordered decision tree of spec.md §4.5 for
// every player that had a role assigned at this kickoff.
func classifyApproaches(k *rlreplay.Kickoff, frames []rlreplay.Frame, start, end int, spawns map[string]field.Vec3) {
	for playerID := range k.Roles {
		k.ApproachTypes[playerID] = classifyApproach(frames, start, end, playerID, spawns[playerID])
	}
}

func classifyApproach(frames []rlreplay.Frame, start, end int, playerID string, spawn field.Vec3) rlreplay.ApproachType {
	var maxDistToBall float64
	var minDistToBall = 1e18
	var peakSpeed float64
	var boostUsed float64
	var lastBoost = -1.0
	var sawDiagonalFlip bool
	var movedAway bool

	var prevDist float64 = -1
	for i := start; i <= end && i < len(frames); i++ {
		f := frames[i]
		var pf *rlreplay.PlayerFrame
		for j := range f.Players {
			if f.Players[j].PlayerID == playerID {
				pf = &f.Players[j]
				break
			}
		}
		if pf == nil {
			continue
		}
		d := pf.Position.Distance(f.Ball.Position)
		if d > maxDistToBall {
			maxDistToBall = d
		}
		if d < minDistToBall {
			minDistToBall = d
		}
		if prevDist >= 0 && d > prevDist+10 {
			movedAway = true
		}
		prevDist = d

		speed := pf.Velocity.Length()
		if speed > peakSpeed {
			peakSpeed = speed
		}
		if lastBoost >= 0 && pf.BoostAmount < lastBoost {
			boostUsed += lastBoost - pf.BoostAmount
		}
		lastBoost = pf.BoostAmount

		if pf.Position.X != spawn.X && pf.Velocity.Length() > 1000 {
			sawDiagonalFlip = true
		}
	}

	switch {
	case minDistToBall > 100 && boostUsed < 5, movedAway, minDistToBall > 600:
		return rlreplay.ApproachFake
	case peakSpeed > 1800 && decelerationRatio(frames, start, end, playerID) >= 0.3:
		return rlreplay.ApproachDelay
	case sawDiagonalFlip:
		return rlreplay.ApproachSpeedflip
	case peakSpeed > 2200:
		return rlreplay.ApproachStandardBoost
	default:
		return rlreplay.ApproachStandardFrontflip
	}
}

// decelerationRatio estimates the fraction of speed lost in the 0.5s
// window before the end of the kickoff.
func decelerationRatio(frames []rlreplay.Frame, start, end int, playerID string) float64 {
	if end >= len(frames) {
		end = len(frames) - 1
	}
	windowStartT := frames[end].TimestampS - 0.5
	var peak, final float64
	for i := start; i <= end; i++ {
		if frames[i].TimestampS < windowStartT {
			continue
		}
		for _, pf := range frames[i].Players {
			if pf.PlayerID != playerID {
				continue
			}
			speed := pf.Velocity.Length()
			if speed > peak {
				peak = speed
			}
			final = speed
		}
	}
	if peak == 0 {
		return 0
	}
	return (peak - final) / peak
}
