package components

import (
	cfg "github.com/automoto/pushbutton/config"
	"github.com/yohamta/donburi"
)

// ButtonControllerData owns the authoritative state of one button
// and the authored records it is driven by.
type ButtonControllerData struct {
	Name        string
	Profile     string
	State       cfg.ButtonState
	Appearances []cfg.StateAppearance
	Tunables    cfg.PhysicalTunables
	AutoFreeze  bool
	Body        donburi.Entity

	Surface ColorSurface
	Audio   AudioOutput

	OnPressed  Signal
	OnReleased Signal

	Presses  int
	Releases int
}

var ButtonController = donburi.NewComponentType[ButtonControllerData]()
