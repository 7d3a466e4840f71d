package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock (singleton component)
type ClockData struct {
	Step    time.Duration
	Elapsed time.Duration
	Tick    int64
}

// StepSeconds returns the tick length in seconds.
func (c *ClockData) StepSeconds() float64 {
	return c.Step.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()
