package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/pushbutton/archetypes"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	testRed   = color.RGBA{R: 255, A: 255}
	testGreen = color.RGBA{G: 255, A: 255}
)

// recordingSurface records every color it is given
type recordingSurface struct {
	colors []color.RGBA
}

func (s *recordingSurface) SetColor(c color.RGBA) {
	s.colors = append(s.colors, c)
}

// recordingAudio records the order of calls made to it
type recordingAudio struct {
	calls   []string
	clip    cfg.ClipID
	playing bool
}

func (a *recordingAudio) SetClip(clip cfg.ClipID) {
	a.calls = append(a.calls, "set:"+string(clip))
	a.clip = clip
}

func (a *recordingAudio) Play() {
	a.calls = append(a.calls, "play")
	a.playing = true
}

func (a *recordingAudio) Stop() {
	a.calls = append(a.calls, "stop")
	a.playing = false
}

func (a *recordingAudio) IsPlaying() bool {
	return a.playing
}

func redGreenAppearances() []cfg.StateAppearance {
	return []cfg.StateAppearance{
		{State: cfg.Unpressed, Color: testRed, Sound: cfg.ClipClickUp},
		{State: cfg.Pressed, Color: testGreen, Sound: cfg.ClipClickDown},
	}
}

func scenarioTunables() cfg.PhysicalTunables {
	return cfg.PhysicalTunables{Diameter: 2, ThrowDistance: 1, FreezeTime: 3}
}

// newTestECS builds a world with the full button pipeline and no input or rendering.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterButtonHandlers(e.World)

	e.AddSystem(UpdateClock)
	e.AddSystem(UpdatePressers)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateButtonPhysics)
	e.AddSystem(UpdateButtonBodies)
	e.AddSystem(UpdateFreezeTimers)
	e.AddSystem(ProcessButtonEvents)

	GetOrCreateClock(e)
	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, resolv.NewSpace(cfg.Collision.SpaceWidth, cfg.Collision.SpaceHeight, cfg.Collision.CellSize, cfg.Collision.CellSize))
	return e
}

type testButton struct {
	controller *donburi.Entry
	surface    *recordingSurface
	audio      *recordingAudio
}

func (b testButton) ctrl() *components.ButtonControllerData {
	return components.ButtonController.Get(b.controller)
}

func (b testButton) bodyEntry(w donburi.World) *donburi.Entry {
	return w.Entry(b.ctrl().Body)
}

func (b testButton) body(w donburi.World) *components.ButtonBodyData {
	return components.ButtonBody.Get(b.bodyEntry(w))
}

// spawnTestButton creates a button at pos wired to recording collaborators.
// The returned error is the one reported by InitializeBody.
func spawnTestButton(t *testing.T, e *ecs.ECS, pos mgl64.Vec3, tunables cfg.PhysicalTunables, appearances []cfg.StateAppearance) (testButton, error) {
	t.Helper()
	body := archetypes.ButtonBody.Spawn(e)
	controller := archetypes.ButtonController.Spawn(e)

	components.Material.SetValue(body, components.MaterialData{Paint: &components.Paint{}})
	components.Spring.SetValue(body, components.SpringData{
		Spring: harmonica.NewSpring(harmonica.FPS(cfg.Sim.TickRate), cfg.Spring.AngularFrequency, cfg.Spring.DampingRatio),
	})

	data := components.ButtonBodyData{
		Position:   pos,
		Diameter:   tunables.DiameterMeters(),
		CapHeight:  cfg.Button.CapHeight,
		Controller: controller.Entity(),
	}
	initErr := InitializeBody(&data, tunables.ThrowDistanceMeters())
	components.ButtonBody.SetValue(body, data)

	obj := resolv.NewObject(0, 0, 1, 1, "button")
	obj.Data = body.Entity()
	components.Object.SetValue(body, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	SyncObject(body)

	b := testButton{controller: controller, surface: &recordingSurface{}, audio: &recordingAudio{}}
	components.ButtonController.SetValue(controller, components.ButtonControllerData{
		Name:        t.Name(),
		State:       cfg.Unpressed,
		Appearances: appearances,
		Tunables:    tunables,
		Body:        body.Entity(),
		Surface:     b.surface,
		Audio:       b.audio,
	})
	return b, initErr
}

// stepBodies runs one clamp pass and delivers its events, skipping the solver.
func stepBodies(e *ecs.ECS) {
	UpdateClock(e)
	UpdateButtonBodies(e)
	UpdateFreezeTimers(e)
	ProcessButtonEvents(e)
}

func ticksFor(seconds float64) int {
	return int(seconds*float64(cfg.Sim.TickRate) + 0.5)
}

func spawnTestPresser(t *testing.T, e *ecs.ECS, motion components.PresserMotion, bottomCenter, size mgl64.Vec3) *donburi.Entry {
	t.Helper()
	presser := archetypes.Presser.Spawn(e)
	obj := resolv.NewObject(0, 0, 1, 1, "trigger")
	obj.Data = presser.Entity()
	components.Object.SetValue(presser, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Presser.SetValue(presser, components.PresserData{
		Name:     t.Name(),
		Motion:   motion,
		Position: bottomCenter,
		Size:     size,
		StartY:   bottomCenter.Y(),
	})
	SyncObject(presser)
	return presser
}

func countSignal(s *components.Signal) *int {
	n := new(int)
	s.AddListener(func() { *n++ })
	return n
}
