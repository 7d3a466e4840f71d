package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FreezeData is present on a body while it is locked in place.
// Timer eases from 1 (just frozen) to 0 (release) over the freeze duration.
type FreezeData struct {
	Timer    *gween.Tween
	Duration time.Duration
	FrozenAt time.Duration // clock time the freeze started
	Seq      uint64
	Remain   float32 // last value read from Timer
}

var Freeze = donburi.NewComponentType[FreezeData]()
