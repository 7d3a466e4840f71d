package systems

import (
	"fmt"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

const hudHint = "Space drop/lift  F freeze  Tab select  Up/Down freeze time  R reconfigure  S save  D debug  P pause  M mute"

// ButtonSummary is the one-line HUD description of a button.
func ButtonSummary(ecs *ecs.ECS, ctrl *components.ButtonControllerData) string {
	line := fmt.Sprintf("%s [%s] %s  presses %d  releases %d  freeze %.1fs",
		ctrl.Name, ctrl.Profile, ctrl.State, ctrl.Presses, ctrl.Releases, FreezeDuration(ctrl).Seconds())
	if IsFrozen(ecs.World, ctrl.Body) {
		line += "  FROZEN"
	}
	return line
}

// DrawHUD renders the button list, the last viewer message and the key hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	y := hudMargin + hudLineHeight
	selected, _ := SelectedButton(ecs.World)
	for _, e := range Buttons(ecs.World) {
		c := cfg.Viewer.TextColor
		if selected != nil && e.Entity() == selected.Entity() {
			c = cfg.Viewer.SelectedColor
		}
		text.Draw(screen, ButtonSummary(ecs, components.ButtonController.Get(e)), small, hudMargin, y, c)
		y += hudLineHeight
	}

	viewer := getOrCreateViewer(ecs.World)
	if viewer.LastStatus != "" {
		text.Draw(screen, viewer.LastStatus, face, hudMargin, y+hudLineHeight/2, cfg.Viewer.TextColor)
	}

	height := screen.Bounds().Dy()
	text.Draw(screen, hudHint, small, hudMargin, height-hudMargin, cfg.Grey)
}
