package events

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

// detectDemos emits an event on every false->true transition of
// is_demolished; attacker attribution picks the closest hostile car with
// high relative speed over the preceding 4 frames, per spec.md §4.5.
func detectDemos(frames []rlreplay.Frame) []rlreplay.Demo {
	wasDemolished := map[string]bool{}
	var demos []rlreplay.Demo

	for i, f := range frames {
		for _, pf := range f.Players {
			if pf.PlayerID == "" {
				continue
			}
			prev, seen := wasDemolished[pf.PlayerID]
			wasDemolished[pf.PlayerID] = pf.IsDemolished
			if pf.IsDemolished && seen && !prev {
				attacker := attributeDemo(frames, i, pf)
				demos = append(demos, rlreplay.Demo{
					T:        f.TimestampS,
					Frame:    i,
					Attacker: attacker,
					Victim:   pf.PlayerID,
					Location: pf.Position,
				})
			}
		}
	}
	return demos
}

func attributeDemo(frames []rlreplay.Frame, frame int, victim rlreplay.PlayerFrame) string {
	lookback := 4
	start := frame - lookback
	if start < 0 {
		start = 0
	}

	best := ""
	bestScore := -1.0
	for i := start; i <= frame && i < len(frames); i++ {
		for _, pf := range frames[i].Players {
			if pf.PlayerID == "" || pf.PlayerID == victim.PlayerID || pf.Team == victim.Team {
				continue
			}
			dist := pf.Position.Distance(victim.Position)
			if dist > 400 {
				continue
			}
			relSpeed := pf.Velocity.Sub(victim.Velocity).Length()
			score := relSpeed - dist
			if score > bestScore {
				bestScore = score
				best = pf.PlayerID
			}
		}
	}
	return best
}
