package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ButtonBodyData is the moving cap of a physical button.
// Positions are local to the button rig, in meters, with Y up.
type ButtonBodyData struct {
	Position     mgl64.Vec3
	RestPosition mgl64.Vec3
	PressLimit   float64 // lowest Y the cap may reach
	Initialized  bool
	Pressable    bool // false when the throw distance was not positive
	Latched      bool // a press was reported and the cap has not left the limit since
	Diameter     float64
	CapHeight    float64
	Controller   donburi.Entity
}

// Top returns the Y of the upper face of the cap.
func (b *ButtonBodyData) Top() float64 {
	return b.Position.Y() + b.CapHeight
}

// Travel returns how far the cap sits below rest, in meters.
func (b *ButtonBodyData) Travel() float64 {
	return b.RestPosition.Y() - b.Position.Y()
}

// SetY moves the cap vertically, leaving X and Z untouched.
func (b *ButtonBodyData) SetY(y float64) {
	b.Position[1] = y
}

var ButtonBody = donburi.NewComponentType[ButtonBodyData]()
