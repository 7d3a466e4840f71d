package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ColorSurface is the rendering collaborator a controller paints through
type ColorSurface interface {
	SetColor(c color.RGBA)
}

// Paint is a per-instance color override for one body.
// Setting it never touches the shared base color.
type Paint struct {
	Color    color.RGBA
	HasColor bool
}

// SetColor implements ColorSurface.
func (p *Paint) SetColor(c color.RGBA) {
	p.Color = c
	p.HasColor = true
}

// ColorOr returns the override, or base when nothing was painted yet.
func (p *Paint) ColorOr(base color.RGBA) color.RGBA {
	if p == nil || !p.HasColor {
		return base
	}
	return p.Color
}

type MaterialData struct {
	*Paint
}

var Material = donburi.NewComponentType[MaterialData]()
