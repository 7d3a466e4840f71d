package components

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PresserMotion selects how a trigger volume moves
type PresserMotion int

const (
	// MotionDrop is a weight that falls under gravity and rests on whatever is below it.
	MotionDrop PresserMotion = iota
	// MotionCycle follows a looping down/up tween sequence.
	MotionCycle
	// MotionScripted is positioned by the caller every tick.
	MotionScripted
)

// PresserData is a moving trigger volume able to push button caps.
// Position is the bottom-center of the volume.
type PresserData struct {
	Name     string
	Motion   PresserMotion
	Position mgl64.Vec3
	Size     mgl64.Vec3
	SpeedY   float64
	Held     bool // a lifted weight ignores gravity
	Resting  bool
	Sequence *gween.Sequence
	StartY   float64
}

var Presser = donburi.NewComponentType[PresserData]()

var presserMotionNames = map[string]PresserMotion{
	"drop":     MotionDrop,
	"cycle":    MotionCycle,
	"scripted": MotionScripted,
}

func (m PresserMotion) String() string {
	for name, motion := range presserMotionNames {
		if motion == m {
			return name
		}
	}
	return "unknown"
}

// ParsePresserMotion maps an authored motion name to a PresserMotion.
// An empty name reads as drop.
func ParsePresserMotion(name string) (PresserMotion, error) {
	if name == "" {
		return MotionDrop, nil
	}
	m, ok := presserMotionNames[name]
	if !ok {
		return MotionDrop, fmt.Errorf("unknown presser motion %q", name)
	}
	return m, nil
}
