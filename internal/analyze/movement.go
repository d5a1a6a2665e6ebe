package analyze

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func movementFor(in Input, playerID string) rlreplay.MovementMetrics {
	var m rlreplay.MovementMetrics
	var totalSpeed, maxSpeed, distanceUU float64
	var slowS, boostS, ssS, groundS, lowAirS, highAirS float64
	var powerslides, aerials int
	var aerialTimeS float64

	n := 0
	var lastPos field.Vec3
	var lastT float64
	haveLast := false
	airStreak := 0.0
	wasSliding := false

	for _, f := range in.Frames {
		pf := findPlayer(f, playerID)
		if pf == nil {
			continue
		}
		speed := pf.Velocity.Length()
		totalSpeed += speed
		n++
		if speed > maxSpeed {
			maxSpeed = speed
		}

		if haveLast {
			dt := f.TimestampS - lastT
			if dt > 0 && dt < 5 {
				distanceUU += pf.Position.Distance(lastPos)
				switch {
				case speed < field.BoostSpeedThreshold:
					slowS += dt
				case speed < field.SupersonicSpeed:
					boostS += dt
				default:
					ssS += dt
				}
				switch {
				case pf.Position.Z < 20:
					groundS += dt
				case pf.Position.Z < 600:
					lowAirS += dt
				default:
					highAirS += dt
				}

				if pf.IsOnGround && speed > 900 && !wasSliding {
					powerslides++
					wasSliding = true
				} else if pf.IsOnGround {
					wasSliding = false
				}

				if !pf.IsOnGround {
					airStreak += dt
				} else {
					if airStreak >= 0.5 {
						aerials++
						aerialTimeS += airStreak
					}
					airStreak = 0
				}
			}
		}
		lastPos, lastT, haveLast = pf.Position, f.TimestampS, true
	}
	if airStreak >= 0.5 {
		aerials++
		aerialTimeS += airStreak
	}

	avgKPH := 0.0
	if n > 0 {
		avgKPH = field.KPH(totalSpeed / float64(n))
	}
	maxKPH := field.KPH(maxSpeed)
	distKM := distanceUU / 100000.0 // 1 UU ~= 1cm; 100,000 UU = 1km

	m.AvgSpeedKPH = &avgKPH
	m.MaxSpeedKPH = &maxKPH
	m.DistanceKM = &distKM
	m.TimeSlowS = &slowS
	m.TimeBoostSpeedS = &boostS
	m.TimeSupersonicS = &ssS
	m.TimeGroundS = &groundS
	m.TimeLowAirS = &lowAirS
	m.TimeHighAirS = &highAirS
	m.PowerslideCount = powerslides
	m.AerialCount = aerials
	m.AerialTimeS = &aerialTimeS
	return m
}

func teamMovement(in Input, team byte, perPlayer map[string]rlreplay.PlayerMetrics) rlreplay.MovementMetrics {
	var avg, max, dist, slow, boostT, ss, ground, lowAir, highAir, aerialT float64
	var powerslides, aerials int
	players := playersOnTeam(in, team)
	for _, id := range players {
		mm := perPlayer[id].Movement
		avg += deref(mm.AvgSpeedKPH)
		if deref(mm.MaxSpeedKPH) > max {
			max = deref(mm.MaxSpeedKPH)
		}
		dist += deref(mm.DistanceKM)
		slow += deref(mm.TimeSlowS)
		boostT += deref(mm.TimeBoostSpeedS)
		ss += deref(mm.TimeSupersonicS)
		ground += deref(mm.TimeGroundS)
		lowAir += deref(mm.TimeLowAirS)
		highAir += deref(mm.TimeHighAirS)
		aerialT += deref(mm.AerialTimeS)
		powerslides += mm.PowerslideCount
		aerials += mm.AerialCount
	}
	if len(players) > 0 {
		avg /= float64(len(players))
	}
	return rlreplay.MovementMetrics{
		AvgSpeedKPH: &avg, MaxSpeedKPH: &max, DistanceKM: &dist,
		TimeSlowS: &slow, TimeBoostSpeedS: &boostT, TimeSupersonicS: &ss,
		TimeGroundS: &ground, TimeLowAirS: &lowAir, TimeHighAirS: &highAir,
		PowerslideCount: powerslides, AerialCount: aerials, AerialTimeS: &aerialT,
	}
}
