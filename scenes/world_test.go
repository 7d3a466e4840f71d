package scenes

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/pushbutton/assets"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/automoto/pushbutton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func buttonsByName(e *ecs.ECS) map[string]*components.ButtonControllerData {
	out := make(map[string]*components.ButtonControllerData)
	for _, entry := range systems.Buttons(e.World) {
		ctrl := components.ButtonController.Get(entry)
		out[ctrl.Name] = ctrl
	}
	return out
}

func TestBuildTestbench(t *testing.T) {
	e, err := Build(assets.MustLoadScene(assets.DefaultScene), Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	buttons := buttonsByName(e)
	if len(buttons) != 3 {
		t.Fatalf("got %d buttons, want 3", len(buttons))
	}
	for name, ctrl := range buttons {
		if ctrl.State != cfg.Unpressed {
			t.Errorf("%s starts %v, want Unpressed", name, ctrl.State)
		}
	}

	var held int
	tags.Presser.Each(e.World, func(entry *donburi.Entry) {
		if components.Presser.Get(entry).Held {
			held++
		}
	})
	if held != 2 {
		t.Errorf("%d held weights, want 2", held)
	}
}

func TestTestbenchPressesEveryButton(t *testing.T) {
	e, err := Build(assets.MustLoadScene(assets.DefaultScene), Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	DropAll(e)
	NewRunner(e, cfg.Sim.TickRate, false).Run(3 * time.Second)

	for name, ctrl := range buttonsByName(e) {
		if ctrl.Presses == 0 {
			t.Errorf("%s was never pressed", name)
		}
	}
	Report(e)
}

func TestBuildWithOverrides(t *testing.T) {
	override := cfg.PhysicalTunables{Diameter: 4, ThrowDistance: 0.5, FreezeTime: 1}
	e, err := Build(assets.MustLoadScene(assets.DefaultScene), Options{
		Overrides: map[string]cfg.PhysicalTunables{"momentary": override},
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	bravo := buttonsByName(e)["bravo"]
	if bravo.Tunables != override {
		t.Errorf("bravo tunables = %+v, want %+v", bravo.Tunables, override)
	}
	body := components.ButtonBody.Get(e.World.Entry(bravo.Body))
	if got := body.Travel(); got != 0 {
		t.Errorf("bravo starts %v below rest", got)
	}
	if got := body.RestPosition.Y() - body.PressLimit; got < 0.0126 || got > 0.0128 {
		t.Errorf("press depth = %v, want half an inch", got)
	}
}

func TestBuildReportsBadEntries(t *testing.T) {
	scene := assets.Scene{
		Name: "broken",
		Buttons: []assets.ButtonSpawn{
			{Name: "ok", Profile: "standard", X: 100, Bottom: 240},
			{Name: "lost", Profile: "missing", X: 200, Bottom: 240},
		},
		Pressers: []assets.PresserSpawn{
			{Name: "odd", Motion: "teleport", X: 100, Bottom: 100, Width: 10, Height: 10},
		},
	}

	e, err := Build(scene, Options{})
	if !errors.Is(err, cfg.ErrUnknownProfile) {
		t.Errorf("Build() error = %v, want ErrUnknownProfile", err)
	}
	if got := len(systems.Buttons(e.World)); got != 1 {
		t.Errorf("got %d buttons, want 1", got)
	}
	var pressers int
	tags.Presser.Each(e.World, func(*donburi.Entry) { pressers++ })
	if pressers != 0 {
		t.Errorf("got %d pressers, want 0", pressers)
	}
}

func TestRunnerStop(t *testing.T) {
	e, err := Build(assets.MustLoadScene(assets.DefaultScene), Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	r := NewRunner(e, cfg.Sim.TickRate, false)
	r.Stop()
	r.Run(time.Hour)

	if now := systems.Now(e.World); now != 0 {
		t.Errorf("clock advanced to %v after Stop", now)
	}
}

func TestRunnerFallsBackOnBadTickRate(t *testing.T) {
	e, err := Build(assets.MustLoadScene(assets.DefaultScene), Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	for _, rate := range []int{0, -5} {
		r := NewRunner(e, rate, true)
		if r.tickRate != cfg.Sim.TickRate {
			t.Errorf("NewRunner(%d) tick rate = %d, want %d", rate, r.tickRate, cfg.Sim.TickRate)
		}
		r.Run(50 * time.Millisecond)
	}

	if clock := systems.GetOrCreateClock(e); clock.Tick != 6 {
		t.Errorf("ticks = %d, want 6", clock.Tick)
	}
}
