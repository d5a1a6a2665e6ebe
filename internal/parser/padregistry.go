package parser

import "github.com/rlcoach/rlcoach/internal/field"

// PadStatus is the lifecycle state of a pad actor observation.
type PadStatus string

// Possible PadStatus values.
const (
	PadCollected PadStatus = "COLLECTED"
	PadRespawned PadStatus = "RESPAWNED"
	PadUnknown   PadStatus = "UNKNOWN"
)

// BoostPadEvent is C3's raw pad-actor observation, emitted once a pad
// actor's position is known and snapped to the canonical pad table. It
// feeds C5's boost pickup detector; it is distinct from (and upstream of)
// rlreplay.BoostPickup.
type BoostPadEvent struct {
	PadID      int
	Status     PadStatus
	ActorID    int
	PlayerID   string // empty when unresolved
	Arena      field.Arena
	PadSide    field.Side
	SnapErrorUU float64
	TimestampS float64
}

// pendingPickup buffers a PickupNew notification that arrived before its
// pad actor's position was known.
type pendingPickup struct {
	actorID    int
	playerID   string
	status     PadStatus
	timestampS float64
}

// PadRegistry tracks pad actors across the network frame stream: positions
// arrive as rigid-body updates, pickup notifications can arrive before or
// after the position update for the same actor, and every pad actor must
// ultimately snap to exactly one canonical pad id (spec.md §4.3 step 2).
type PadRegistry struct {
	arena field.Arena

	// positions holds the last known position per actor id, once seen.
	positions map[int]field.Vec3

	// pending buffers pickups seen before a position was known.
	pending map[int][]pendingPickup

	missingInstigatorCount int
	events                 []BoostPadEvent
}

// NewPadRegistry returns a registry for the given arena's canonical pad
// table.
func NewPadRegistry(arena field.Arena) *PadRegistry {
	return &PadRegistry{
		arena:     arena,
		positions: map[int]field.Vec3{},
		pending:   map[int][]pendingPickup{},
	}
}

// ObservePosition records (or updates) a pad actor's position, and flushes
// any pickups that were buffered awaiting this.
func (r *PadRegistry) ObservePosition(actorID int, pos field.Vec3) {
	r.positions[actorID] = pos
	pending := r.pending[actorID]
	delete(r.pending, actorID)
	for _, p := range pending {
		r.emit(actorID, p.status, p.playerID, p.timestampS)
	}
}

// ObservePickup records a PickupNew/respawn notification for a pad actor.
// If the pad's position is already known it is emitted immediately;
// otherwise it is buffered until ObservePosition resolves it.
func (r *PadRegistry) ObservePickup(actorID int, status PadStatus, playerID string, timestampS float64) {
	if _, ok := r.positions[actorID]; ok {
		r.emit(actorID, status, playerID, timestampS)
		return
	}
	r.pending[actorID] = append(r.pending[actorID], pendingPickup{
		actorID: actorID, playerID: playerID, status: status, timestampS: timestampS,
	})
}

func (r *PadRegistry) emit(actorID int, status PadStatus, playerID string, timestampS float64) {
	pos := r.positions[actorID]
	padID, errUU, ok := field.SnapToPad(pos, r.arena)
	if !ok {
		// Invariant (iii): an event whose pad_id cannot be resolved is not
		// emitted at all.
		return
	}
	pad, _ := field.PadByID(r.arena, padID)

	if playerID == "" && status == PadCollected {
		r.missingInstigatorCount++
	}

	r.events = append(r.events, BoostPadEvent{
		PadID:       padID,
		Status:      status,
		ActorID:     actorID,
		PlayerID:    playerID,
		Arena:       r.arena,
		PadSide:     pad.Side,
		SnapErrorUU: errUU,
		TimestampS:  timestampS,
	})
}

// Events returns every emitted BoostPadEvent in emission order.
func (r *PadRegistry) Events() []BoostPadEvent {
	return r.events
}

// MissingInstigatorCount returns the number of COLLECTED events emitted
// with no resolved player id.
func (r *PadRegistry) MissingInstigatorCount() int {
	return r.missingInstigatorCount
}

// InstigatorResolutionRatio returns the fraction of COLLECTED events whose
// player id was resolved, or 1.0 when there were none.
func (r *PadRegistry) InstigatorResolutionRatio() float64 {
	collected := 0
	resolved := 0
	for _, e := range r.events {
		if e.Status != PadCollected {
			continue
		}
		collected++
		if e.PlayerID != "" {
			resolved++
		}
	}
	if collected == 0 {
		return 1.0
	}
	return float64(resolved) / float64(collected)
}
