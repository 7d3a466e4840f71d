package systems

import (
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and single stepping.
// This system should run AFTER UpdateInput but BEFORE the simulation systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	pause.StepOnce = false
	if input.JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && input.JustPressed(cfg.ActionStep) {
		pause.StepOnce = true
	}
}

// DrawPause dims the scene while the simulation is halted.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Viewer.PauseOverlay, false)

	if !fonts.Loaded(fonts.HUD) {
		return
	}
	label := "PAUSED   P: resume   .: step"
	// Approximate width for the HUD face
	x := int((width - float64(len(label))*7) / 2)
	text.Draw(screen, label, fonts.HUD.Get(), x, int(height/2), cfg.Viewer.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.StepOnce {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
