package systems

import (
	"time"

	"github.com/automoto/pushbutton/archetypes"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one fixed step.
// Must run first in the system order.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Tick++
	clock.Elapsed += clock.Step
}

// GetOrCreateClock returns the scene clock, creating it with the configured step.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry)
	}
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{Step: cfg.Sim.Step()})
	return components.Clock.Get(entry)
}

// Now returns the current simulation time, or zero when the world has no clock.
func Now(w donburi.World) time.Duration {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Elapsed
	}
	return 0
}

func stepSeconds(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).StepSeconds()
	}
	return cfg.Sim.Step().Seconds()
}
