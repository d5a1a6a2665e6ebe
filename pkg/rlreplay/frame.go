// This file contains the types describing the per-tick frame data produced
// by the parser adapter and consumed, as a normalized timeline, by C4-C6.
package rlreplay

import "github.com/rlcoach/rlcoach/internal/field"

// Frame is one sampled state of the match. Frames are ordered by
// TimestampS (strictly non-decreasing after normalization, spec.md §3).
type Frame struct {
	TimestampS float64
	Ball       BallFrame
	Players    []PlayerFrame
}

// BallFrame is the ball's state at a Frame.
type BallFrame struct {
	Position        field.Vec3
	Velocity        field.Vec3
	AngularVelocity field.Vec3
}

// PlayerFrame is one player's state at a Frame.
type PlayerFrame struct {
	PlayerID      string
	Team          byte
	Position      field.Vec3
	Velocity      field.Vec3
	Rotation      field.Vec3
	BoostAmount   float64
	IsSupersonic  bool
	IsOnGround    bool
	IsDemolished  bool

	// RotationApproximated is true when Rotation was derived from velocity
	// direction rather than a decoded rotator attribute (see REDESIGN /
	// Open Question (b) in spec.md §9).
	RotationApproximated bool
}

// Speed returns the player's speed in UU/s.
func (pf PlayerFrame) Speed() float64 {
	return pf.Velocity.Length()
}
