package factory

import (
	"github.com/automoto/pushbutton/archetypes"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/automoto/pushbutton/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PresserSpawn describes a trigger volume. Position is its bottom-center.
type PresserSpawn struct {
	Name     string
	Motion   components.PresserMotion
	Position mgl64.Vec3
	Size     mgl64.Vec3
	Travel   float64 // cycle only, meters
	Period   float64 // cycle only, seconds
	Held     bool    // drop only, starts parked at its spawn height
}

func CreatePresser(ecs *ecs.ECS, spawn PresserSpawn) *donburi.Entry {
	presser := archetypes.Presser.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvTrigger)
	obj.Data = presser.Entity()
	components.Object.SetValue(presser, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	data := components.PresserData{
		Name:     spawn.Name,
		Motion:   spawn.Motion,
		Position: spawn.Position,
		Size:     spawn.Size,
		StartY:   spawn.Position.Y(),
		Held:     spawn.Held,
	}

	if spawn.Motion == components.MotionCycle {
		travel, period := spawn.Travel, spawn.Period
		if travel <= 0 {
			travel = cfg.Presser.CycleTravel
		}
		if period <= 0 {
			period = cfg.Presser.CyclePeriod
		}
		// The cycling presser moves using a looping *gween.Sequence, down and back up.
		seq := gween.NewSequence(
			gween.New(0, float32(-travel), float32(period/2), ease.InOutQuad),
			gween.New(float32(-travel), 0, float32(period/2), ease.InOutQuad),
		)
		seq.SetLoop(-1)
		data.Sequence = seq
	}

	components.Presser.SetValue(presser, data)
	systems.SyncObject(presser)
	return presser
}

func DestroyPresser(ecs *ecs.ECS, presser *donburi.Entry) {
	removeFromSpace(ecs.World, presser)
	ecs.World.Remove(presser.Entity())
}
