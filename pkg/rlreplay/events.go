// This file contains the Event types emitted by the detectors (C5) and
// consumed by the report assembler (C7), per spec.md §3.
package rlreplay

import "github.com/rlcoach/rlcoach/internal/field"

// KickoffPhase is the lifecycle stage of a detected kickoff.
type KickoffPhase string

// Possible KickoffPhase values.
const (
	KickoffCountdown KickoffPhase = "countdown"
	KickoffActive    KickoffPhase = "active"
	KickoffComplete  KickoffPhase = "complete"
)

// KickoffOutcome is the terminal classification of a kickoff.
type KickoffOutcome string

// Possible KickoffOutcome values.
const (
	OutcomeFirstPossessionBlue    KickoffOutcome = "FIRST_POSSESSION_BLUE"
	OutcomeFirstPossessionOrange KickoffOutcome = "FIRST_POSSESSION_ORANGE"
	OutcomeGoalForBlue           KickoffOutcome = "GOAL_FOR_BLUE"
	OutcomeGoalForOrange         KickoffOutcome = "GOAL_FOR_ORANGE"
	OutcomeNeutral               KickoffOutcome = "NEUTRAL"
)

// KickoffRole is a player's assigned role during a kickoff.
type KickoffRole string

// Possible KickoffRole values.
const (
	RoleGo    KickoffRole = "GO"
	RoleCheat KickoffRole = "CHEAT"
	RoleWing  KickoffRole = "WING"
	RoleBack  KickoffRole = "BACK"
)

// ApproachType classifies how a player approached a kickoff, per the
// decision tree in spec.md §4.5.
type ApproachType string

// Possible ApproachType values.
const (
	ApproachFake             ApproachType = "FAKE"
	ApproachDelay            ApproachType = "DELAY"
	ApproachSpeedflip        ApproachType = "SPEEDFLIP"
	ApproachStandardFrontflip ApproachType = "STANDARD_FRONTFLIP"
	ApproachStandardDiagonal  ApproachType = "STANDARD_DIAGONAL"
	ApproachStandardWavedash  ApproachType = "STANDARD_WAVEDASH"
	ApproachStandardBoost     ApproachType = "STANDARD_BOOST"
	ApproachUnknown           ApproachType = "UNKNOWN"
)

// Kickoff describes one detected kickoff sequence.
type Kickoff struct {
	TStart       float64
	TFirstTouch  *float64
	Phase        KickoffPhase
	Roles        map[string]KickoffRole
	Outcome      KickoffOutcome
	ApproachTypes map[string]ApproachType
}

// Goal is a single edge-triggered goal event.
type Goal struct {
	T            float64
	Frame        int
	ScorerID     string
	AssistID     *string
	Team         byte
	ShotSpeedKPH *float64
}

// Demo is a demolition event.
type Demo struct {
	T        float64
	Frame    int
	Attacker string
	Victim   string
	Location field.Vec3
}

// BoostPickupStatus is the lifecycle state of a pad actor observation.
type BoostPickupStatus string

// Possible BoostPickupStatus values.
const (
	PadCollected BoostPickupStatus = "COLLECTED"
	PadRespawned BoostPickupStatus = "RESPAWNED"
	PadUnknown   BoostPickupStatus = "UNKNOWN"
)

// BoostPickup is a single boost pad pickup event.
type BoostPickup struct {
	T        float64
	Frame    int
	PlayerID string // empty when the instigator could not be resolved
	PadID    int
	IsBig    bool
	Stolen   bool
}

// TouchOutcome classifies the trajectory consequence of a ball touch.
type TouchOutcome string

// Possible TouchOutcome values.
const (
	TouchShot    TouchOutcome = "SHOT"
	TouchPass    TouchOutcome = "PASS"
	TouchClear   TouchOutcome = "CLEAR"
	TouchDribble TouchOutcome = "DRIBBLE"
	TouchNeutral TouchOutcome = "NEUTRAL"
)

// Touch is a single ball touch event.
type Touch struct {
	T            float64
	Frame        int
	PlayerID     string
	Location     field.Vec3
	BallSpeedKPH float64
	Outcome      TouchOutcome
}

// ChallengeResult is the outcome of a contested challenge.
type ChallengeResult string

// Possible ChallengeResult values.
const (
	ChallengeWin     ChallengeResult = "WIN"
	ChallengeLoss    ChallengeResult = "LOSS"
	ChallengeNeutral ChallengeResult = "NEUTRAL"
)

// Challenge is a single contested-touch challenge event.
type Challenge struct {
	T         float64
	Players   []string
	DepthUU   float64
	RiskIndex float64
	Result    ChallengeResult
}

// TimelineEntry is one entry of the merged, sorted events.timeline list.
type TimelineEntry struct {
	TimestampS float64
	Type       string
	TypeRank   int
	Index      int // index into the corresponding per-type list
}

// Events collects every per-type event list plus the merged timeline.
type Events struct {
	Timeline     []TimelineEntry
	Goals        []Goal
	Demos        []Demo
	Kickoffs     []Kickoff
	BoostPickups []BoostPickup
	Touches      []Touch
	Challenges   []Challenge
}
