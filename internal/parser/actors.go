package parser

import "strings"

// ActorClass is the canonical class an actor resolves to, independent of
// the underlying decoder's own class-index scheme.
type ActorClass string

// Possible ActorClass values, per spec.md §4.3 step 1.
const (
	ActorBall          ActorClass = "ball"
	ActorCar           ActorClass = "car"
	ActorCarComponent  ActorClass = "car_component"
	ActorBoostPad      ActorClass = "boost_pad"
	ActorOther         ActorClass = "other"
)

// classifyActor resolves a raw engine class name (as exposed by objects[],
// a class index table, or the net cache, depending on what the underlying
// decoder surfaces) to a canonical ActorClass via substring allow-lists.
// CarComponent_* actors are explicitly excluded from the car class even
// though their names often also contain "Car_TA".
func classifyActor(className string) ActorClass {
	switch {
	case strings.Contains(className, "CarComponent_"):
		return ActorCarComponent
	case strings.Contains(className, "Ball_TA"):
		return ActorBall
	case strings.Contains(className, "Vehicle_TA"), strings.Contains(className, "Car_TA"):
		return ActorCar
	case strings.Contains(className, "VehiclePickup_Boost_TA"), strings.Contains(className, "BoostPad"):
		return ActorBoostPad
	default:
		return ActorOther
	}
}
