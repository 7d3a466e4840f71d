package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// AppName is used for the authoring override store
const AppName = "pushbutton"

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// SimConfig contains the fixed-step simulation settings
type SimConfig struct {
	TickRate int // physics ticks per second
}

// Step returns the simulated duration of one tick.
func (s SimConfig) Step() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// SpringConfig drives the solver that pulls a free button back to rest
type SpringConfig struct {
	AngularFrequency float64 // harmonica angular frequency
	DampingRatio     float64 // 1 = critically damped
}

// PresserConfig contains trigger volume defaults
type PresserConfig struct {
	Gravity      float64 // m/s^2, y up
	MaxFallSpeed float64 // m/s
	LiftHeight   float64 // meters above the cap a lifted weight is parked at
	CycleTravel  float64 // meters travelled by a cycling presser
	CyclePeriod  float64 // seconds for one down/up cycle
	FloorY       float64 // lowest Y a weight can fall to
}

// CollisionConfig maps the 3D button rig onto the resolv side-view plane.
// Plane units are millimeters with Y pointing down.
type CollisionConfig struct {
	UnitsPerMeter float64
	OriginX       float64 // plane X of world x = 0
	OriginY       float64 // plane Y of world y = 0
	SpaceWidth    int
	SpaceHeight   int
	CellSize      int
}

// ButtonConfig contains body geometry that is not authored per profile
type ButtonConfig struct {
	CapHeight    float64 // meters
	BaseHeight   float64 // meters
	BaseOverhang float64 // meters the base plate extends past the cap on each side
}

// ViewerConfig contains the interactive viewer settings
type ViewerConfig struct {
	Width         int
	Height        int
	Scale         float64 // screen pixels per plane unit
	Background    color.RGBA
	BaseColor     color.RGBA
	PresserColor  color.RGBA
	SelectedColor color.RGBA
	FreezeBarBg   color.RGBA
	FreezeBarFg   color.RGBA
	TextColor     color.RGBA
	HUDFontSize   float64
	FreezeStep    float64 // seconds added or removed by one freeze-time key press
	PauseOverlay  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogTransitions bool // log every button state change
	ShowColliders  bool // draw resolv objects in the viewer
}

// Global configuration instances
var Sim SimConfig
var Spring SpringConfig
var Presser PresserConfig
var Collision CollisionConfig
var Button ButtonConfig
var Viewer ViewerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Sim = SimConfig{
		TickRate: 60,
	}

	Spring = SpringConfig{
		AngularFrequency: 18.0,
		DampingRatio:     1.0,
	}

	Presser = PresserConfig{
		Gravity:      9.81,
		MaxFallSpeed: 1.5,
		LiftHeight:   0.06,
		CycleTravel:  0.05,
		CyclePeriod:  2.0,
		FloorY:       -0.1,
	}

	Collision = CollisionConfig{
		UnitsPerMeter: 1000, // millimeters
		OriginX:       0,
		OriginY:       240,
		SpaceWidth:    640,
		SpaceHeight:   360,
		CellSize:      16,
	}

	Button = ButtonConfig{
		CapHeight:    0.012,
		BaseHeight:   0.008,
		BaseOverhang: 0.006,
	}

	Viewer = ViewerConfig{
		Width:         640,
		Height:        360,
		Scale:         1,
		Background:    color.RGBA{R: 24, G: 24, B: 32, A: 255},
		BaseColor:     Grey,
		PresserColor:  color.RGBA{R: 180, G: 180, B: 220, A: 140},
		SelectedColor: LightBlue,
		FreezeBarBg:   DarkGrey,
		FreezeBarFg:   Yellow,
		TextColor:     White,
		HUDFontSize:   12,
		FreezeStep:    0.5,
		PauseOverlay:  BlackOverlay,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogTransitions: true,
		ShowColliders:  false,
	}
}
