package archetypes

import (
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ButtonController = newArchetype(
		tags.Button,
		components.ButtonController,
	)
	ButtonBody = newArchetype(
		tags.ButtonBody,
		components.ButtonBody,
		components.Spring,
		components.Material,
		components.Object,
	)
	Presser = newArchetype(
		tags.Presser,
		components.Presser,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
