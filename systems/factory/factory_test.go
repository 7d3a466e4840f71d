package factory

import (
	"errors"
	"testing"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterButtonHandlers(e.World)
	systems.GetOrCreateClock(e)
	CreateDefaultSpace(e)
	return e
}

func standardProfile(t *testing.T) cfg.ButtonProfile {
	t.Helper()
	p, err := cfg.LookupProfile("standard")
	if err != nil {
		t.Fatalf("LookupProfile(standard): %v", err)
	}
	return p
}

func TestCreateButton(t *testing.T) {
	e := newTestECS()
	profile := standardProfile(t)

	controller, err := CreateButton(e, ButtonSpawn{
		Name:     "alpha",
		Position: mgl64.Vec3{0.1, 0.008, 0},
		Profile:  profile,
	})
	if err != nil {
		t.Fatalf("CreateButton() error: %v", err)
	}

	ctrl := components.ButtonController.Get(controller)
	if ctrl.State != cfg.Unpressed {
		t.Errorf("state = %v, want Unpressed", ctrl.State)
	}
	if !e.World.Valid(ctrl.Body) {
		t.Fatal("body entity missing")
	}
	bodyEntry := e.World.Entry(ctrl.Body)
	body := components.ButtonBody.Get(bodyEntry)

	if body.Controller != controller.Entity() {
		t.Error("body does not point back at its controller")
	}
	if body.RestPosition != (mgl64.Vec3{0.1, 0.008, 0}) {
		t.Errorf("rest = %v", body.RestPosition)
	}
	if want := 0.008 - profile.Physical.ThrowDistanceMeters(); body.PressLimit != want {
		t.Errorf("press limit = %v, want %v", body.PressLimit, want)
	}

	unpressed, _ := cfg.FindAppearance(profile.States, cfg.Unpressed)
	paint := components.Material.Get(bodyEntry).Paint
	if !paint.HasColor || paint.Color != unpressed.Color {
		t.Errorf("paint = %+v, want unpressed color %v", paint, unpressed.Color)
	}
	if audio, ok := ctrl.Audio.(*components.SilentAudio); !ok || audio.Plays != 0 {
		t.Errorf("audio = %#v, want an idle silent output", ctrl.Audio)
	}

	obj := components.Object.Get(bodyEntry)
	if obj.Space == nil {
		t.Error("body object not added to the space")
	}
}

func TestCreateButtonWithInvalidThrow(t *testing.T) {
	e := newTestECS()
	profile := standardProfile(t)
	profile.Physical.ThrowDistance = 0

	controller, err := CreateButton(e, ButtonSpawn{Name: "flat", Profile: profile})
	if !errors.Is(err, cfg.ErrInvalidTunable) {
		t.Fatalf("CreateButton() error = %v, want ErrInvalidTunable", err)
	}
	if controller == nil || !e.World.Valid(controller.Entity()) {
		t.Fatal("button not created")
	}
	body := components.ButtonBody.Get(e.World.Entry(components.ButtonController.Get(controller).Body))
	if body.Pressable {
		t.Error("body with zero throw is pressable")
	}
}

func TestDestroyButton(t *testing.T) {
	e := newTestECS()
	controller, _ := CreateButton(e, ButtonSpawn{Name: "gone", Position: mgl64.Vec3{0.2, 0, 0}, Profile: standardProfile(t)})
	ctrl := components.ButtonController.Get(controller)
	bodyEntity := ctrl.Body
	obj := components.Object.Get(e.World.Entry(bodyEntity)).Object
	ctrl.OnPressed.AddListener(func() {})

	h, _ := systems.Freeze(e.World, controller)
	controllerEntity := controller.Entity()
	DestroyButton(e, controller)

	if e.World.Valid(controllerEntity) || e.World.Valid(bodyEntity) {
		t.Error("entities still valid after DestroyButton")
	}
	if obj.Space != nil {
		t.Error("body object still in the space")
	}
	if h.Active(e.World) {
		t.Error("freeze still pending after DestroyButton")
	}
}

func TestCreatePresser(t *testing.T) {
	e := newTestECS()

	drop := CreatePresser(e, PresserSpawn{
		Name:     "weight",
		Motion:   components.MotionDrop,
		Position: mgl64.Vec3{0.1, 0.09, 0},
		Size:     mgl64.Vec3{0.04, 0.03, 0.04},
		Held:     true,
	})
	p := components.Presser.Get(drop)
	if !p.Held || p.StartY != 0.09 || p.Sequence != nil {
		t.Errorf("drop presser = %+v", p)
	}

	cycle := CreatePresser(e, PresserSpawn{
		Name:     "piston",
		Motion:   components.MotionCycle,
		Position: mgl64.Vec3{0.3, 0.04, 0},
		Size:     mgl64.Vec3{0.04, 0.04, 0.04},
	})
	c := components.Presser.Get(cycle)
	if c.Sequence == nil || len(c.Sequence.Tweens) != 2 {
		t.Fatalf("cycle presser sequence = %+v", c.Sequence)
	}

	obj := components.Object.Get(cycle)
	if obj.Space == nil || !obj.HasTags("trigger") {
		t.Error("presser object missing from the space or untagged")
	}

	DestroyPresser(e, cycle)
	if obj.Space != nil {
		t.Error("presser object still in the space")
	}
}
