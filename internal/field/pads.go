// This file contains the canonical boost pad table, the single source of
// truth shared by the parser adapter's actor-to-pad resolution (C3) and the
// boost analyzer (C6), per spec.md §4.1.
package field

import "math"

// Side identifies which half of the field a pad sits in.
type Side int

// Possible Side values.
const (
	SideBlue Side = iota
	SideOrange
	SideMid
)

// String returns a short name for the side.
func (s Side) String() string {
	switch s {
	case SideBlue:
		return "blue"
	case SideOrange:
		return "orange"
	case SideMid:
		return "mid"
	default:
		return "unknown"
	}
}

// BoostPad describes one canonical boost pad location on an arena.
type BoostPad struct {
	// PadID is the canonical [0,33] index into the pad table.
	PadID int

	// IsBig tells whether this is a 100-boost pad (true) or a 12-boost pad.
	IsBig bool

	// Position of the pad's center.
	Position Vec3

	// RadiusUU is the pickup radius used for snapping and proximity checks.
	RadiusUU float64

	// Arena this pad belongs to.
	Arena Arena

	// Side of the field the pad sits in. Mid pads are never "stolen".
	Side Side
}

// Snap tolerances, in UU, per spec.md §4.1.
const (
	SnapToleranceSmall = 160.0
	SnapToleranceBig   = 200.0
)

// standardPads is the canonical soccar pad table: 6 big + 28 small.
// Coordinates mirror the well-known standard soccar boost pad layout.
var standardPads = []BoostPad{
	// Big pads (6)
	{0, true, Vec3{-3584, 0, 73}, SnapToleranceBig, ArenaStandard, SideMid},
	{1, true, Vec3{3584, 0, 73}, SnapToleranceBig, ArenaStandard, SideMid},
	{2, true, Vec3{-3072, 4096, 73}, SnapToleranceBig, ArenaStandard, SideOrange},
	{3, true, Vec3{3072, 4096, 73}, SnapToleranceBig, ArenaStandard, SideOrange},
	{4, true, Vec3{-3072, -4096, 73}, SnapToleranceBig, ArenaStandard, SideBlue},
	{5, true, Vec3{3072, -4096, 73}, SnapToleranceBig, ArenaStandard, SideBlue},

	// Small pads (28)
	{6, false, Vec3{0, -4240, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{7, false, Vec3{-1792, -4184, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{8, false, Vec3{1792, -4184, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{9, false, Vec3{-940, -3308, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{10, false, Vec3{940, -3308, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{11, false, Vec3{0, -2816, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{12, false, Vec3{-3584, -2484, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{13, false, Vec3{3584, -2484, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{14, false, Vec3{-1788, -2300, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{15, false, Vec3{1788, -2300, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{16, false, Vec3{-2048, -1036, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{17, false, Vec3{2048, -1036, 70}, SnapToleranceSmall, ArenaStandard, SideBlue},
	{18, false, Vec3{-1024, -512, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{19, false, Vec3{1024, -512, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{20, false, Vec3{-4096, 0, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{21, false, Vec3{4096, 0, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{22, false, Vec3{-1024, 512, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{23, false, Vec3{1024, 512, 70}, SnapToleranceSmall, ArenaStandard, SideMid},
	{24, false, Vec3{-2048, 1036, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{25, false, Vec3{2048, 1036, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{26, false, Vec3{-1788, 2300, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{27, false, Vec3{1788, 2300, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{28, false, Vec3{-3584, 2484, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{29, false, Vec3{3584, 2484, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{30, false, Vec3{0, 2816, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{31, false, Vec3{-940, 3308, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{32, false, Vec3{940, 3308, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
	{33, false, Vec3{0, 4240, 70}, SnapToleranceSmall, ArenaStandard, SideOrange},
}

// PadTable returns the canonical boost pad list for arena. Unrecognized
// arenas return the standard soccar table, since pad layouts for other
// playlists are out of scope for this engine.
func PadTable(arena Arena) []BoostPad {
	return standardPads
}

// SnapToPad resolves position to the nearest canonical pad within its
// tolerance, returning the pad id and the snap error in UU. It returns
// ok=false if no pad is within tolerance of position, per spec.md invariant
// (iii): a BoostPickup event is only emitted when this resolves.
func SnapToPad(position Vec3, arena Arena) (padID int, errorUU float64, ok bool) {
	best := -1
	bestErr := math.MaxFloat64
	for _, pad := range PadTable(arena) {
		d := position.Distance2D(pad.Position)
		if d <= pad.RadiusUU && d < bestErr {
			best, bestErr = pad.PadID, d
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestErr, true
}

// PadByID returns the canonical pad for id, or ok=false if id is out of the
// canonical [0,33] range.
func PadByID(arena Arena, id int) (pad BoostPad, ok bool) {
	for _, p := range PadTable(arena) {
		if p.PadID == id {
			return p, true
		}
	}
	return BoostPad{}, false
}
