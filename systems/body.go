package systems

import (
	"fmt"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// limitTolerance absorbs rounding when the solver parks a cap exactly on its limit.
const limitTolerance = 1e-9

// Crossing is the boundary event produced by one clamp pass
type Crossing int

const (
	NoCrossing Crossing = iota
	ReachedLimit
	LeftLimit
)

// InitializeBody captures the current position as rest and derives the press limit.
// A non-positive throw leaves the body unpressable and returns an error wrapping
// cfg.ErrInvalidTunable; the body stays usable and is pinned at rest.
func InitializeBody(body *components.ButtonBodyData, throwMeters float64) error {
	body.RestPosition = body.Position
	body.Initialized = true
	body.Latched = false

	if !(throwMeters > 0) {
		body.PressLimit = body.RestPosition.Y()
		body.Pressable = false
		return fmt.Errorf("%w: throw distance %v m puts the press limit at or above rest", cfg.ErrInvalidTunable, throwMeters)
	}

	body.PressLimit = body.RestPosition.Y() - throwMeters
	body.Pressable = true
	return nil
}

// ClampBody keeps the cap inside [PressLimit, Rest.Y] and reports edge transitions.
// Reaching the limit is reported once until the cap leaves it again.
func ClampBody(body *components.ButtonBodyData) Crossing {
	rest := body.RestPosition.Y()
	if body.Position.Y() > rest {
		body.SetY(rest)
	}

	if !body.Pressable {
		body.SetY(rest)
		return NoCrossing
	}

	if body.Position.Y() <= body.PressLimit+limitTolerance {
		body.SetY(body.PressLimit)
		if body.Latched {
			return NoCrossing
		}
		body.Latched = true
		return ReachedLimit
	}

	if body.Latched {
		body.Latched = false
		return LeftLimit
	}
	return NoCrossing
}

// UpdateButtonBodies clamps every free body after the solver has moved it and
// publishes boundary events for the controllers.
func UpdateButtonBodies(ecs *ecs.ECS) {
	now := Now(ecs.World)

	components.ButtonBody.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Freeze) {
			return
		}
		body := components.ButtonBody.Get(e)
		if !body.Initialized {
			return
		}

		ev := components.BoundaryEvent{Body: e.Entity(), Controller: body.Controller, At: now}
		switch ClampBody(body) {
		case ReachedLimit:
			components.PressedBoundary.Publish(ecs.World, ev)
		case LeftLimit:
			components.ReleasedBoundary.Publish(ecs.World, ev)
		}
	})
}
