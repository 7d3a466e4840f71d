package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/fonts"
	"github.com/automoto/pushbutton/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the simulation clock.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		s := cfg.Viewer.Scale

		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvButton) {
				c = color.RGBA{255, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvTrigger) {
				c = color.RGBA{0, 255, 0, 255}
			}

			x, y, w, h := float32(obj.X*s), float32(obj.Y*s), float32(obj.W*s), float32(obj.H*s)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	if fonts.Loaded(fonts.Mono) {
		if entry, ok := components.Clock.First(ecs.World); ok {
			clock := components.Clock.Get(entry)
			line := fmt.Sprintf("tick %d  t=%.3fs", clock.Tick, clock.Elapsed.Seconds())
			text.Draw(screen, line, fonts.Mono.Get(), screen.Bounds().Dx()-160, hudMargin+hudLineHeight, cfg.Viewer.TextColor)
		}
	}
}
