package systems

import (
	"github.com/automoto/pushbutton/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves the collision plane objects to follow their entities.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		SyncObject(e)
	}
}

// SyncObject fits the collision object of one presser or body to its current pose.
func SyncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}

	switch {
	case e.HasComponent(components.Presser):
		p := components.Presser.Get(e)
		obj.X, obj.Y, obj.W, obj.H = PlaneRect(p.Position.X(), p.Position.Y(), p.Size.X(), p.Size.Y())
	case e.HasComponent(components.ButtonBody):
		b := components.ButtonBody.Get(e)
		obj.X, obj.Y, obj.W, obj.H = bodyColumn(b)
	}

	obj.Update()
}

// bodyColumn is the plane rectangle swept by a cap over its whole travel.
func bodyColumn(b *components.ButtonBodyData) (x, y, w, h float64) {
	bottom := b.PressLimit
	if !b.Initialized || !b.Pressable {
		bottom = b.Position.Y()
	}
	top := b.RestPosition.Y() + b.CapHeight
	if !b.Initialized {
		top = b.Position.Y() + b.CapHeight
	}
	return PlaneRect(b.Position.X(), bottom, b.Diameter, top-bottom)
}
