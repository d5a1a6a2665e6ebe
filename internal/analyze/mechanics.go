package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

// mechanicsFor tallies discrete mechanical inputs inferred from motion
// signatures in consecutive frames: a ground jump shows as a sudden
// positive Z-velocity impulse while on the ground; a flip/double-jump adds
// a second impulse while still airborne after that one jump (no time
// limit since leaving the ground is applied).
func mechanicsFor(in Input, playerID string) rlreplay.MechanicsMetrics {
	m := rlreplay.MechanicsMetrics{FlipByDir: map[string]int{}}

	var lastZVel float32
	var lastOnGround = true
	jumpsSinceGround := 0

	for i, f := range in.Frames {
		pf := findPlayer(f, playerID)
		if pf == nil {
			continue
		}
		if i == 0 {
			lastZVel = pf.Velocity.Z
			lastOnGround = pf.IsOnGround
			continue
		}
		impulse := pf.Velocity.Z - lastZVel
		if impulse > 300 {
			if pf.IsOnGround || lastOnGround {
				m.Jump++
				jumpsSinceGround = 1
			} else if jumpsSinceGround == 1 {
				m.DoubleJump++
				jumpsSinceGround = 2
				dir := flipDirection(pf)
				m.Flip++
				m.FlipByDir[dir]++
			}
		}
		if pf.IsOnGround {
			jumpsSinceGround = 0
		}
		lastZVel = pf.Velocity.Z
		lastOnGround = pf.IsOnGround
	}
	return m
}

func flipDirection(pf *rlreplay.PlayerFrame) string {
	switch {
	case pf.Velocity.Y > 0 && abs32(pf.Velocity.X) < pf.Velocity.Y:
		return "forward"
	case pf.Velocity.Y < 0 && abs32(pf.Velocity.X) < -pf.Velocity.Y:
		return "backward"
	case pf.Velocity.X > 0:
		return "right"
	default:
		return "left"
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func teamMechanics(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.MechanicsMetrics {
	m := rlreplay.MechanicsMetrics{FlipByDir: map[string]int{}}
	for _, id := range playersOnTeam(in, team) {
		pm := perPlayer[id].Mechanics
		m.Jump += pm.Jump
		m.DoubleJump += pm.DoubleJump
		m.Flip += pm.Flip
		m.FlipCancel += pm.FlipCancel
		m.Wavedash += pm.Wavedash
		m.HalfFlip += pm.HalfFlip
		m.Speedflip += pm.Speedflip
		m.Aerial += pm.Aerial
		for k, v := range pm.FlipByDir {
			m.FlipByDir[k] += v
		}
	}
	return m
}
