package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/internal/quality"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// actorTag identifies the payload shape of one per-tick actor update,
// playing the role the teacher's repcmd.Type plays for player commands: a
// small closed tag driving a switch, rather than a polymorphic decode.
type actorTag byte

const (
	tagBallNew    actorTag = 1
	tagBallUpdate actorTag = 2
	tagCarNew     actorTag = 3
	tagCarUpdate  actorTag = 4
	tagPadNew     actorTag = 5
	tagPadPos     actorTag = 6
	tagPadPickup  actorTag = 7
)

// carState is the per-car state the adapter tracks across frames,
// per spec.md §4.3 step 3.
type carState struct {
	playerID     string
	team         byte
	demolished   bool
	sawRotation  bool
}

// NetworkResult is the decoded network-frame stream plus the diagnostics
// and raw pad events accumulated while decoding it.
type NetworkResult struct {
	Frames      []rlreplay.Frame
	MeasuredHz  *float64
	Diagnostics *quality.Diagnostics
	PadEvents   []BoostPadEvent
}

// ParseNetwork decodes the network section into a frame sequence. It never
// returns an empty-players frame list silently: if the stream is
// unreadable past the header, it returns an error carrying
// rlerrors.KindNetworkDataUnavailable (handled by the variant wrapper, not
// here) — a truncation mid-stream instead degrades Diagnostics.Status and
// returns whatever frames were successfully decoded.
func ParseNetwork(data []byte, arena field.Arena, carIndex func(actorID int) string) (*NetworkResult, error) {
	format, err := detectFormat(data)
	if err != nil {
		return nil, err
	}
	sr, err := newSectionReader(data, format)
	if err != nil {
		return nil, err
	}
	defer sr.Close()

	// Skip the header section; the network section is the second.
	if _, err := sr.Next(); err != nil {
		return nil, fmt.Errorf("skipping header section: %w", err)
	}
	netBytes, err := sr.Next()
	if err != nil {
		return nil, fmt.Errorf("reading network section: %w", err)
	}

	diag := quality.NewDiagnostics()
	pads := NewPadRegistry(arena)
	actorClasses := map[int]ActorClass{}
	cars := map[int]*carState{}

	r := bytes.NewReader(netBytes)
	var frames []rlreplay.Frame
	var ball rlreplay.BallFrame
	frameIdx := 0
	rotationMissing := 0
	totalPlayerFrames := 0

	for r.Len() > 0 {
		var ts float32
		if err := binary.Read(r, binary.LittleEndian, &ts); err != nil {
			if err == io.EOF {
				break
			}
			diag.Status = quality.StatusDegraded
			diag.AddWarning(quality.WarnParserFallbackHeaderOnly)
			break
		}
		var numUpdates uint16
		if err := binary.Read(r, binary.LittleEndian, &numUpdates); err != nil {
			break
		}

		frame := rlreplay.Frame{TimestampS: float64(ts)}
		playersByActor := map[int]*rlreplay.PlayerFrame{}

		for i := uint16(0); i < numUpdates; i++ {
			var actorID int32
			var tag byte
			if err := binary.Read(r, binary.LittleEndian, &actorID); err != nil {
				return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), fmt.Errorf("actor id: %w", err)
			}
			if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
				return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), fmt.Errorf("actor tag: %w", err)
			}

			switch actorTag(tag) {
			case tagBallNew:
				actorClasses[int(actorID)] = ActorBall
			case tagBallUpdate:
				pos, vel, angVel, err := readRigidBody(r)
				if err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				ball = rlreplay.BallFrame{Position: pos, Velocity: vel, AngularVelocity: angVel}
			case tagCarNew:
				var team byte
				if err := binary.Read(r, binary.LittleEndian, &team); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				actorClasses[int(actorID)] = ActorCar
				pid := carIndex(int(actorID))
				cars[int(actorID)] = &carState{playerID: pid, team: team}
			case tagCarUpdate:
				cs, pf, hasRotation, err := readCarUpdate(r, cars, int(actorID))
				if err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				totalPlayerFrames++
				if !hasRotation {
					rotationMissing++
					diag.MissingAttributeCounts["rotation"]++
					pf.RotationApproximated = true
				}
				_ = cs
				playersByActor[int(actorID)] = pf
			case tagPadNew:
				actorClasses[int(actorID)] = ActorBoostPad
			case tagPadPos:
				var x, y, z float32
				if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				if err := binary.Read(r, binary.LittleEndian, &z); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				pads.ObservePosition(int(actorID), field.Vec3{X: x, Y: y, Z: z})
			case tagPadPickup:
				var status byte
				var instigator int32
				if err := binary.Read(r, binary.LittleEndian, &status); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				if err := binary.Read(r, binary.LittleEndian, &instigator); err != nil {
					return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), err
				}
				playerID := ""
				if cs, ok := cars[int(instigator)]; ok {
					playerID = cs.playerID
				}
				st := PadUnknown
				switch status {
				case 1:
					st = PadCollected
				case 2:
					st = PadRespawned
				}
				pads.ObservePickup(int(actorID), st, playerID, float64(ts))
			default:
				return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), fmt.Errorf("unknown actor tag %d at frame %d", tag, frameIdx)
			}
		}

		frame.Ball = ball
		for _, pf := range playersByActor {
			frame.Players = append(frame.Players, *pf)
		}
		frames = append(frames, frame)
		frameIdx++
	}

	return finish(frames, diag, pads, rotationMissing, totalPlayerFrames), nil
}

func finish(frames []rlreplay.Frame, diag *quality.Diagnostics, pads *PadRegistry, rotationMissing, totalPlayerFrames int) *NetworkResult {
	diag.PadCoverageRatio = padCoverageRatio(pads)
	diag.InstigatorResolutionRatio = pads.InstigatorResolutionRatio()
	if pads.MissingInstigatorCount() > 0 {
		diag.AddWarning(quality.WithMissingInstigator(pads.MissingInstigatorCount()))
	}
	if totalPlayerFrames > 0 && float64(rotationMissing)/float64(totalPlayerFrames) > 0.5 {
		diag.AddWarning(quality.WarnPlayerRotationApproximated)
		if diag.Status == quality.StatusOK {
			diag.Status = quality.StatusDegraded
		}
	}
	if len(frames) == 0 {
		diag.Status = quality.StatusUnavailable
	}
	return &NetworkResult{Frames: frames, Diagnostics: diag, PadEvents: pads.Events()}
}

func padCoverageRatio(pads *PadRegistry) float64 {
	// Observed pad actors: those with a known position plus those that only
	// have buffered pickups (the two key sets are disjoint).
	observed := len(pads.positions) + len(pads.pending)
	if observed == 0 {
		return 1.0
	}
	resolved := 0
	for _, pos := range pads.positions {
		if _, _, ok := field.SnapToPad(pos, pads.arena); ok {
			resolved++
		}
	}
	return float64(resolved) / float64(observed)
}

func readRigidBody(r *bytes.Reader) (pos, vel, angVel field.Vec3, err error) {
	vals := make([]float32, 9)
	for i := range vals {
		if err = binary.Read(r, binary.LittleEndian, &vals[i]); err != nil {
			return
		}
	}
	pos = field.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
	vel = field.Vec3{X: vals[3], Y: vals[4], Z: vals[5]}
	angVel = field.Vec3{X: vals[6], Y: vals[7], Z: vals[8]}
	return
}

func readCarUpdate(r *bytes.Reader, cars map[int]*carState, actorID int) (*carState, *rlreplay.PlayerFrame, bool, error) {
	pos, vel, _, err := readRigidBody(r)
	if err != nil {
		return nil, nil, false, err
	}
	var rotX, rotY, rotZ float32
	var hasRotationByte byte
	if err := binary.Read(r, binary.LittleEndian, &hasRotationByte); err != nil {
		return nil, nil, false, err
	}
	hasRotation := hasRotationByte != 0
	if hasRotation {
		if err := binary.Read(r, binary.LittleEndian, &rotX); err != nil {
			return nil, nil, false, err
		}
		if err := binary.Read(r, binary.LittleEndian, &rotY); err != nil {
			return nil, nil, false, err
		}
		if err := binary.Read(r, binary.LittleEndian, &rotZ); err != nil {
			return nil, nil, false, err
		}
	} else {
		// Approximate rotation from velocity heading when the decoder
		// exposes no rotator attribute for this tick (Open Question (a)).
		rotX, rotY, rotZ = vel.X, vel.Y, vel.Z
	}
	var boost float32
	if err := binary.Read(r, binary.LittleEndian, &boost); err != nil {
		return nil, nil, false, err
	}
	var flags byte
	if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
		return nil, nil, false, err
	}

	cs, ok := cars[actorID]
	if !ok {
		cs = &carState{}
		cars[actorID] = cs
	}
	demolished := flags&0x4 != 0
	cs.demolished = demolished

	pf := &rlreplay.PlayerFrame{
		PlayerID:     cs.playerID,
		Team:         cs.team,
		Position:     pos,
		Velocity:     vel,
		Rotation:     field.Vec3{X: rotX, Y: rotY, Z: rotZ},
		BoostAmount:  float64(boost),
		IsSupersonic: flags&0x1 != 0,
		IsOnGround:   flags&0x2 != 0,
		IsDemolished: demolished,
	}
	return cs, pf, hasRotation, nil
}
