package scenes

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/pushbutton/assets"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/automoto/pushbutton/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options controls how a bench scene is assembled.
type Options struct {
	// Interactive adds input handling, renderers and ebiten audio.
	Interactive bool
	// Overrides replace the tunables of the named buttons or profiles.
	Overrides map[string]cfg.PhysicalTunables
}

// BenchScene runs a button layout inside the ebiten game loop.
type BenchScene struct {
	ecs   *ecs.ECS
	scene assets.Scene
	once  sync.Once
}

func NewBenchScene(scene assets.Scene) *BenchScene {
	return &BenchScene{scene: scene}
}

func (bs *BenchScene) Update() {
	bs.once.Do(bs.configure)
	if bs.ecs == nil {
		return
	}
	bs.ecs.Update()
}

func (bs *BenchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Viewer.Background)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BenchScene) configure() {
	// Preload clips to avoid lag on first press
	systems.PreloadAllSFX()

	overrides, err := systems.LoadTunableOverrides()
	if err != nil {
		log.Printf("Warning: ignoring saved overrides: %v", err)
	}

	e, err := Build(bs.scene, Options{Interactive: true, Overrides: overrides})
	if err != nil {
		log.Printf("Warning: scene %s: %v", bs.scene.Name, err)
	}
	bs.ecs = e
}

// Build assembles the systems and entities of a bench scene. Buttons that fail
// to spawn cleanly are still created when possible and their errors are joined
// into the returned error.
func Build(scene assets.Scene, opts Options) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())
	systems.RegisterButtonHandlers(e.World)

	// Simulation systems halt while the viewer is paused
	sim := func(system ecs.System) ecs.System { return system }
	if opts.Interactive {
		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.UpdatePause)
		e.AddSystem(systems.UpdateViewer)
		sim = systems.WithPauseCheck
	}
	e.AddSystem(sim(systems.UpdateClock))
	e.AddSystem(sim(systems.UpdatePressers))
	e.AddSystem(sim(systems.UpdateObjects))
	e.AddSystem(sim(systems.UpdateButtonPhysics))
	e.AddSystem(sim(systems.UpdateButtonBodies))
	e.AddSystem(sim(systems.UpdateFreezeTimers))
	e.AddSystem(systems.ProcessButtonEvents)

	if opts.Interactive {
		e.AddRenderer(cfg.Default, systems.DrawPressers)
		e.AddRenderer(cfg.Default, systems.DrawButtons)
		e.AddRenderer(cfg.Overlay, systems.DrawHUD)
		e.AddRenderer(cfg.Overlay, systems.DrawDebug)
		e.AddRenderer(cfg.Overlay, systems.DrawPause)
	}

	systems.GetOrCreateClock(e)
	systems.SetSFXVolume(e, cfg.Audio.DefaultSFXVol)
	factory.CreateDefaultSpace(e)

	var errs []error
	for _, b := range scene.Buttons {
		if err := spawnButton(e, b, opts); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range scene.Pressers {
		if err := spawnPresser(e, p); err != nil {
			errs = append(errs, err)
		}
	}

	return e, errors.Join(errs...)
}

func spawnButton(e *ecs.ECS, b assets.ButtonSpawn, opts Options) error {
	profile, err := cfg.LookupProfile(b.Profile)
	if err != nil {
		return fmt.Errorf("button %q: %w", b.Name, err)
	}
	if t, ok := systems.OverrideFor(opts.Overrides, b.Name, profile.Name); ok {
		profile.Physical = t
	}

	var audio components.AudioOutput = &components.SilentAudio{}
	if opts.Interactive {
		audio = systems.NewSFXSource()
	}

	_, err = factory.CreateButton(e, factory.ButtonSpawn{
		Name:     b.Name,
		Position: mgl64.Vec3{systems.WorldX(b.X), systems.WorldY(b.Bottom) + cfg.Button.BaseHeight, 0},
		Profile:  profile,
		Audio:    audio,
	})
	return err
}

func spawnPresser(e *ecs.ECS, p assets.PresserSpawn) error {
	motion, err := components.ParsePresserMotion(p.Motion)
	if err != nil {
		return fmt.Errorf("presser %q: %w", p.Name, err)
	}

	u := cfg.Collision.UnitsPerMeter
	factory.CreatePresser(e, factory.PresserSpawn{
		Name:     p.Name,
		Motion:   motion,
		Position: mgl64.Vec3{systems.WorldX(p.X), systems.WorldY(p.Bottom), 0},
		Size:     mgl64.Vec3{p.Width / u, p.Height / u, p.Width / u},
		Travel:   p.Travel,
		Period:   p.Period,
		Held:     motion == components.MotionDrop,
	})
	return nil
}
