package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
)

// SpringData is the solver state that returns a free cap to rest
type SpringData struct {
	Spring   harmonica.Spring
	Velocity float64 // m/s, y up
}

var Spring = donburi.NewComponentType[SpringData]()
