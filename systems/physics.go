package systems

import (
	"math"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/shared/gamemath"
	"github.com/automoto/pushbutton/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePressers moves every trigger volume by one step.
func UpdatePressers(ecs *ecs.ECS) {
	dt := stepSeconds(ecs.World)

	tags.Presser.Each(ecs.World, func(e *donburi.Entry) {
		presser := components.Presser.Get(e)

		switch presser.Motion {
		case components.MotionDrop:
			updateDropPresser(ecs.World, e, presser, dt)
		case components.MotionCycle:
			if presser.Sequence == nil {
				return
			}
			offset, _, _ := presser.Sequence.Update(float32(dt))
			presser.Position[1] = presser.StartY + float64(offset)
		}
	})
}

func updateDropPresser(w donburi.World, e *donburi.Entry, presser *components.PresserData, dt float64) {
	if presser.Held {
		presser.Position[1] = presser.StartY
		presser.SpeedY = 0
		presser.Resting = false
		return
	}

	presser.SpeedY = gamemath.ApplyGravity(presser.SpeedY, cfg.Presser.Gravity, cfg.Presser.MaxFallSpeed, dt)
	y := presser.Position.Y() + presser.SpeedY*dt

	support := supportBelow(w, e, presser, y)
	if y <= support {
		y = support
		presser.SpeedY = 0
		presser.Resting = true
	} else {
		presser.Resting = false
	}
	presser.Position[1] = y
}

// supportBelow returns the highest surface the presser can rest on if it moves
// down to y. A free body only stops a weight at its press limit; frozen and
// unpressable bodies stop it at the cap.
func supportBelow(w donburi.World, e *donburi.Entry, presser *components.PresserData, y float64) float64 {
	support := cfg.Presser.FloorY

	obj := components.Object.Get(e)
	dy := (presser.Position.Y() - y) * cfg.Collision.UnitsPerMeter
	check := obj.Check(0, math.Ceil(dy), tags.ResolvButton)
	if check == nil {
		return support
	}

	for _, o := range check.ObjectsByTags(tags.ResolvButton) {
		bodyEntry, ok := entryOf(w, o)
		if !ok || !bodyEntry.HasComponent(components.ButtonBody) {
			continue
		}
		body := components.ButtonBody.Get(bodyEntry)
		if !overlapsFootprint(presser, body) {
			continue
		}

		top := body.Top()
		if body.Pressable && !bodyEntry.HasComponent(components.Freeze) {
			top = body.PressLimit + body.CapHeight
		}
		if top > support && top <= presser.Position.Y() {
			support = top
		}
	}
	return support
}

// UpdateButtonPhysics pulls free caps back to rest with a spring and pushes them
// down wherever a trigger volume overlaps them. Frozen caps do not move.
func UpdateButtonPhysics(ecs *ecs.ECS) {
	components.ButtonBody.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Freeze) {
			return
		}
		body := components.ButtonBody.Get(e)
		if !body.Initialized {
			return
		}

		y := body.Position.Y()
		var vel float64
		if e.HasComponent(components.Spring) {
			spring := components.Spring.Get(e)
			y, spring.Velocity = spring.Spring.Update(y, spring.Velocity, body.RestPosition.Y())
			vel = spring.Velocity
		}

		if bottom, ok := lowestPresserOver(ecs.World, e, body); ok && bottom < y+body.CapHeight {
			y = bottom - body.CapHeight
			if vel > 0 {
				vel = 0
			}
		}

		if e.HasComponent(components.Spring) {
			components.Spring.Get(e).Velocity = vel
		}
		body.SetY(y)
	})
}

// lowestPresserOver finds the lowest bottom of any trigger volume overlapping the cap column.
func lowestPresserOver(w donburi.World, e *donburi.Entry, body *components.ButtonBodyData) (float64, bool) {
	if !e.HasComponent(components.Object) {
		return 0, false
	}
	check := components.Object.Get(e).Check(0, 0, tags.ResolvTrigger)
	if check == nil {
		return 0, false
	}

	bottom, found := 0.0, false
	for _, o := range check.ObjectsByTags(tags.ResolvTrigger) {
		pe, ok := entryOf(w, o)
		if !ok || !pe.HasComponent(components.Presser) {
			continue
		}
		presser := components.Presser.Get(pe)
		if !overlapsFootprint(presser, body) {
			continue
		}
		// Only volumes that start above the press limit can push the cap.
		if presser.Position.Y() < body.PressLimit {
			continue
		}
		if !found || presser.Position.Y() < bottom {
			bottom, found = presser.Position.Y(), true
		}
	}
	return bottom, found
}

func overlapsFootprint(presser *components.PresserData, body *components.ButtonBodyData) bool {
	dx := math.Abs(presser.Position.X() - body.Position.X())
	return dx < (presser.Size.X()+body.Diameter)/2
}

func entryOf(w donburi.World, o *resolv.Object) (*donburi.Entry, bool) {
	entity, ok := o.Data.(donburi.Entity)
	if !ok || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}

// ToggleWeight releases a held weight, or lifts a falling or resting one back to its start height.
func ToggleWeight(presser *components.PresserData) {
	if presser.Motion != components.MotionDrop {
		return
	}
	presser.Held = !presser.Held
	presser.SpeedY = 0
}
