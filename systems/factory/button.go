package factory

import (
	"fmt"
	"log"

	"github.com/automoto/pushbutton/archetypes"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/automoto/pushbutton/tags"
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ButtonSpawn describes one button to place in the scene.
// Position is the rest position of the cap. Surface and Audio default to the
// body's own paint and a silent output.
type ButtonSpawn struct {
	Name     string
	Position mgl64.Vec3
	Profile  cfg.ButtonProfile
	Surface  components.ColorSurface
	Audio    components.AudioOutput
}

// CreateButton spawns the body and controller entities of a button, captures the
// rest pose and paints the Unpressed color. The returned entry is the controller.
//
// An invalid throw distance does not prevent creation: the button is returned
// together with an error wrapping cfg.ErrInvalidTunable and never reports a press.
func CreateButton(ecs *ecs.ECS, spawn ButtonSpawn) (*donburi.Entry, error) {
	if err := spawn.Profile.Validate(); err != nil {
		log.Printf("Warning: button %q: %v", spawn.Name, err)
	}

	body := archetypes.ButtonBody.Spawn(ecs)
	controller := archetypes.ButtonController.Spawn(ecs)

	paint := &components.Paint{}
	components.Material.SetValue(body, components.MaterialData{Paint: paint})
	components.Spring.SetValue(body, components.SpringData{
		Spring: harmonica.NewSpring(harmonica.FPS(cfg.Sim.TickRate), cfg.Spring.AngularFrequency, cfg.Spring.DampingRatio),
	})

	bodyData := components.ButtonBodyData{
		Position:   spawn.Position,
		Diameter:   spawn.Profile.Physical.DiameterMeters(),
		CapHeight:  cfg.Button.CapHeight,
		Controller: controller.Entity(),
	}
	initErr := systems.InitializeBody(&bodyData, spawn.Profile.Physical.ThrowDistanceMeters())
	components.ButtonBody.SetValue(body, bodyData)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvButton)
	obj.Data = body.Entity()
	components.Object.SetValue(body, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	systems.SyncObject(body)

	surface := spawn.Surface
	if surface == nil {
		surface = paint
	}
	audio := spawn.Audio
	if audio == nil {
		audio = &components.SilentAudio{}
	}

	components.ButtonController.SetValue(controller, components.ButtonControllerData{
		Name:        spawn.Name,
		Profile:     spawn.Profile.Name,
		State:       cfg.Unpressed,
		Appearances: append([]cfg.StateAppearance(nil), spawn.Profile.States...),
		Tunables:    spawn.Profile.Physical,
		AutoFreeze:  spawn.Profile.AutoFreeze,
		Body:        body.Entity(),
		Surface:     surface,
		Audio:       audio,
	})
	systems.ApplyColor(components.ButtonController.Get(controller))

	if initErr != nil {
		return controller, fmt.Errorf("button %q: %w", spawn.Name, initErr)
	}
	return controller, nil
}

// DestroyButton removes both entities of a button. A pending freeze goes with
// the body, so no release is delivered afterwards.
func DestroyButton(ecs *ecs.ECS, controller *donburi.Entry) {
	w := ecs.World
	ctrl := components.ButtonController.Get(controller)
	ctrl.OnPressed.RemoveAllListeners()
	ctrl.OnReleased.RemoveAllListeners()

	if w.Valid(ctrl.Body) {
		body := w.Entry(ctrl.Body)
		removeFromSpace(w, body)
		w.Remove(ctrl.Body)
	}
	w.Remove(controller.Entity())
}
