// This file contains the arena geometry constants shared by the parser
// adapter and the analyzers. It is the single source of truth for field
// extents and thirds, mirrored by C3's actor-to-pad resolution and C6's
// positioning analyzer.
package field

// Arena identifies a playable map. Only standard soccar is modeled; other
// arenas reuse the standard geometry since pad layouts for non-soccar
// playlists are out of scope for this engine.
type Arena string

// Known arenas. Unrecognized map names fall back to ArenaStandard.
const (
	ArenaStandard Arena = "standard"
)

// Standard field geometry, in Unreal Units (UU).
const (
	// SideWallX is the X coordinate of the side walls.
	SideWallX = 4096.0

	// BackWallY is the Y coordinate of the back walls (goal line plane).
	BackWallY = 5120.0

	// CeilingZ is the height of the arena ceiling.
	CeilingZ = 2044.0

	// GoalDepth is how far behind the back wall plane the goal extends.
	GoalDepth = 880.0

	// GoalHalfWidth is half the width of the goal mouth along X.
	GoalHalfWidth = 892.755

	// GoalHeight is the height of the goal mouth.
	GoalHeight = 642.775

	// BallRadius is the ball's collision radius.
	BallRadius = 91.25

	// SupersonicSpeed is the UU/s threshold above which a car is supersonic.
	SupersonicSpeed = 2200.0

	// BoostSpeedThreshold is the UU/s threshold above "slow" ground speed.
	BoostSpeedThreshold = 1200.0

	// MaxCarSpeed is the physical speed cap for a car, used to clamp and
	// flag implausible velocity samples (invariant (i) of spec.md §3).
	MaxCarSpeed = 2300.0
)

// Third identifies one of the three longitudinal zones of the field,
// relative to a team's attacking direction.
type Third int

// Possible Third values.
const (
	ThirdDefensive Third = iota
	ThirdMiddle
	ThirdOffensive
)

// String returns a short, lower_snake_case name for the third.
func (t Third) String() string {
	switch t {
	case ThirdDefensive:
		return "defensive"
	case ThirdMiddle:
		return "middle"
	case ThirdOffensive:
		return "offensive"
	default:
		return "unknown"
	}
}

// ThirdOf classifies position relative to the attacking direction of team
// (0 attacks +Y, 1 attacks -Y). The field is split into three equal bands
// along Y.
func ThirdOf(pos Vec3, team byte) Third {
	y := float64(pos.Y)
	if team == 1 {
		y = -y
	}
	switch {
	case y > BackWallY/3:
		return ThirdOffensive
	case y < -BackWallY/3:
		return ThirdDefensive
	default:
		return ThirdMiddle
	}
}

// Clamp restricts each component of pos to the playable volume, returning
// the clamped point and whether clamping was necessary.
func Clamp(pos Vec3) (Vec3, bool) {
	clamped := pos
	changed := false

	if clamped.X > SideWallX {
		clamped.X, changed = SideWallX, true
	} else if clamped.X < -SideWallX {
		clamped.X, changed = -SideWallX, true
	}

	maxY := float32(BackWallY + GoalDepth)
	if clamped.Y > maxY {
		clamped.Y, changed = maxY, true
	} else if clamped.Y < -maxY {
		clamped.Y, changed = -maxY, true
	}

	if clamped.Z > CeilingZ {
		clamped.Z, changed = CeilingZ, true
	} else if clamped.Z < 0 {
		clamped.Z, changed = 0, true
	}

	return clamped, changed
}

// InPlayfield reports whether pos.Y lies strictly between the two back
// walls, excluding the goal extensions. Goal detection does not call it:
// its re-arm test compares |y| against BackWallY - GoalDepth.
func InPlayfield(pos Vec3) bool {
	return pos.Y > -BackWallY && pos.Y < BackWallY
}
