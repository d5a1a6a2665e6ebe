package analyze

import "github.com/rlcoach/rlcoach/pkg/rlreplay"

func boostFor(in Input, playerID string) rlreplay.BoostMetrics {
	var m rlreplay.BoostMetrics
	var weightedSum, lastT float64
	var collected, spent, waste float64
	var zeroS, hundredS float64
	lastBoost := -1.0

	for i, f := range in.Frames {
		pf := findPlayer(f, playerID)
		if pf == nil {
			continue
		}
		if i > 0 {
			dt := f.TimestampS - lastT
			if dt > 0 && dt < 5 {
				weightedSum += pf.BoostAmount * dt
				if pf.BoostAmount <= 0 {
					zeroS += dt
				}
				if pf.BoostAmount >= 100 {
					hundredS += dt
				}
				if lastBoost >= 0 {
					delta := pf.BoostAmount - lastBoost
					if delta > 0 {
						collected += delta
					} else if delta < 0 {
						spent += -delta
						if pf.IsSupersonic {
							waste += -delta
						}
					}
				}
			}
		}
		lastBoost = pf.BoostAmount
		lastT = f.TimestampS
	}

	stolen := stolenAmount(in, playerID)
	overfill := overfillAmount(in, playerID)
	big, small := padCounts(in, playerID)

	durationMin := in.DurationS / 60
	if durationMin <= 0 {
		durationMin = 1
	}
	bcpm := collected / durationMin
	bpm := spent / durationMin
	avg := 0.0
	if in.DurationS > 0 {
		avg = weightedSum / in.DurationS
	}

	m.BCPM = &bcpm
	m.BPM = &bpm
	m.AvgBoost = &avg
	m.TimeZeroBoostS = &zeroS
	m.TimeHundredBoostS = &hundredS
	m.AmountCollected = &collected
	m.AmountStolen = &stolen
	m.BigPads = big
	m.SmallPads = small
	m.Overfill = &overfill
	m.Waste = &waste
	return m
}

func stolenAmount(in Input, playerID string) float64 {
	total := 0.0
	for _, bp := range in.Events.BoostPickups {
		if bp.PlayerID != playerID || !bp.Stolen {
			continue
		}
		if bp.IsBig {
			total += 100
		} else {
			total += 12
		}
	}
	return total
}

// overfillAmount sums, per pickup, how much of the pad's known value
// (100 for big, 12 for small) pushed the player's boost past the 100
// cap. Per-frame deltas can't surface this: the recorded BoostAmount is
// already clamped to [0,100] by the time a frame is sampled, so overfill
// has to be reconstructed from the pickup stream against the boost level
// immediately before each pickup.
func overfillAmount(in Input, playerID string) float64 {
	total := 0.0
	for _, bp := range in.Events.BoostPickups {
		if bp.PlayerID != playerID {
			continue
		}
		padValue := 12.0
		if bp.IsBig {
			padValue = 100.0
		}
		preBoost := preBoostBefore(in.Frames, playerID, bp.T)
		if preBoost < 0 {
			continue
		}
		if over := preBoost + padValue - 100; over > 0 {
			total += over
		}
	}
	return total
}

// preBoostBefore returns the player's last sampled boost amount strictly
// before t, or -1 if no such sample exists.
func preBoostBefore(frames []rlreplay.Frame, playerID string, t float64) float64 {
	best := -1.0
	for _, f := range frames {
		if f.TimestampS >= t {
			break
		}
		if pf := findPlayer(f, playerID); pf != nil {
			best = pf.BoostAmount
		}
	}
	return best
}

func padCounts(in Input, playerID string) (big, small int) {
	for _, bp := range in.Events.BoostPickups {
		if bp.PlayerID != playerID {
			continue
		}
		if bp.IsBig {
			big++
		} else {
			small++
		}
	}
	return
}

func findPlayer(f rlreplay.Frame, playerID string) *rlreplay.PlayerFrame {
	for i := range f.Players {
		if f.Players[i].PlayerID == playerID {
			return &f.Players[i]
		}
	}
	return nil
}

// teamBoost sums every field element-wise except AvgBoost, which is the
// sum of per-player averages per spec.md §4.6's explicit external
// convention.
func teamBoost(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.BoostMetrics {
	var bcpm, bpm, avg, zero, hundred, collected, stolen, overfill, waste float64
	var big, small int
	for _, id := range playersOnTeam(in, team) {
		b := perPlayer[id].Boost
		bcpm += deref(b.BCPM)
		bpm += deref(b.BPM)
		avg += deref(b.AvgBoost)
		zero += deref(b.TimeZeroBoostS)
		hundred += deref(b.TimeHundredBoostS)
		collected += deref(b.AmountCollected)
		stolen += deref(b.AmountStolen)
		overfill += deref(b.Overfill)
		waste += deref(b.Waste)
		big += b.BigPads
		small += b.SmallPads
	}
	return rlreplay.BoostMetrics{
		BCPM: &bcpm, BPM: &bpm, AvgBoost: &avg, TimeZeroBoostS: &zero,
		TimeHundredBoostS: &hundred, AmountCollected: &collected,
		AmountStolen: &stolen, BigPads: big, SmallPads: small,
		Overfill: &overfill, Waste: &waste,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
