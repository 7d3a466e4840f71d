package systems

import (
	"image/color"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	freezeBarHeight = 4
	freezeBarGap    = 6
	selectMarkSize  = 6
)

// fillPlaneRect draws a world box given by its bottom-center and size.
func fillPlaneRect(screen *ebiten.Image, centerX, bottom, width, height float64, c color.Color) {
	x, y, w, h := PlaneRect(centerX, bottom, width, height)
	s := cfg.Viewer.Scale
	vector.FillRect(screen, float32(x*s), float32(y*s), float32(w*s), float32(h*s), c, false)
}

// DrawButtons renders each button's base plate and its cap in the per-instance color.
func DrawButtons(ecs *ecs.ECS, screen *ebiten.Image) {
	selected, _ := SelectedButton(ecs.World)

	tags.Button.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.ButtonController.Get(e)
		if !ecs.World.Valid(ctrl.Body) {
			return
		}
		bodyEntry := ecs.World.Entry(ctrl.Body)
		body := components.ButtonBody.Get(bodyEntry)

		baseW := body.Diameter + 2*cfg.Button.BaseOverhang
		baseBottom := body.RestPosition.Y() - cfg.Button.BaseHeight
		fillPlaneRect(screen, body.Position.X(), baseBottom, baseW, cfg.Button.BaseHeight, cfg.Viewer.BaseColor)

		capColor := cfg.Grey
		if bodyEntry.HasComponent(components.Material) {
			capColor = components.Material.Get(bodyEntry).ColorOr(capColor)
		}
		fillPlaneRect(screen, body.Position.X(), body.Position.Y(), body.Diameter, body.CapHeight, capColor)

		if selected != nil && selected.Entity() == e.Entity() {
			x, y, w, _ := PlaneRect(body.Position.X(), baseBottom, baseW, 0)
			s := cfg.Viewer.Scale
			vector.FillRect(screen, float32((x+w/2)*s)-selectMarkSize/2, float32(y*s)+2, selectMarkSize, selectMarkSize, cfg.Viewer.SelectedColor, false)
		}

		if bodyEntry.HasComponent(components.Freeze) {
			drawFreezeBar(screen, body, components.Freeze.Get(bodyEntry))
		}
	})
}

// drawFreezeBar shows the remaining share of a freeze above the cap.
func drawFreezeBar(screen *ebiten.Image, body *components.ButtonBodyData, freeze *components.FreezeData) {
	x, y, w, _ := PlaneRect(body.Position.X(), body.RestPosition.Y()+body.CapHeight, body.Diameter, 0)
	s := cfg.Viewer.Scale
	bx, by, bw := float32(x*s), float32(y*s)-freezeBarGap-freezeBarHeight, float32(w*s)

	vector.FillRect(screen, bx, by, bw, freezeBarHeight, cfg.Viewer.FreezeBarBg, false)
	vector.FillRect(screen, bx, by, bw*freeze.Remain, freezeBarHeight, cfg.Viewer.FreezeBarFg, false)
}

// DrawPressers renders the trigger volumes.
func DrawPressers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Presser.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Presser.Get(e)
		fillPlaneRect(screen, p.Position.X(), p.Position.Y(), p.Size.X(), p.Size.Y(), cfg.Viewer.PresserColor)
	})
}
