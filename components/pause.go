package components

import "github.com/yohamta/donburi"

// PauseData stores whether the simulation is halted in the viewer.
// StepOnce lets exactly one tick through while paused.
type PauseData struct {
	IsPaused bool
	StepOnce bool
}

var Pause = donburi.NewComponentType[PauseData]()
