package systems

import (
	"log"
	"time"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterButtonHandlers subscribes the controller handlers to the body events of w.
// Call it once per world.
func RegisterButtonHandlers(w donburi.World) {
	components.PressedBoundary.Subscribe(w, onPressedBoundary)
	components.ReleasedBoundary.Subscribe(w, onReleasedBoundary)
	components.FreezeExpired.Subscribe(w, onFreezeExpired)
}

// ProcessButtonEvents delivers the events queued by bodies and freeze timers.
// Must run after UpdateFreezeTimers. Expiries are delivered before boundary events.
func ProcessButtonEvents(ecs *ecs.ECS) {
	components.FreezeExpired.ProcessEvents(ecs.World)
	components.PressedBoundary.ProcessEvents(ecs.World)
	components.ReleasedBoundary.ProcessEvents(ecs.World)
}

func controllerEntry(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(components.ButtonController) {
		return nil, false
	}
	return entry, true
}

func onPressedBoundary(w donburi.World, ev components.BoundaryEvent) {
	entry, ok := controllerEntry(w, ev.Controller)
	if !ok {
		return
	}
	ctrl := components.ButtonController.Get(entry)
	press(ctrl)

	// Listeners may have destroyed the button.
	if ctrl.AutoFreeze && w.Valid(ev.Controller) {
		Freeze(w, entry)
	}
}

func onReleasedBoundary(w donburi.World, ev components.BoundaryEvent) {
	entry, ok := controllerEntry(w, ev.Controller)
	if !ok {
		return
	}
	ctrl := components.ButtonController.Get(entry)
	if ctrl.State == cfg.Unpressed {
		return
	}
	release(ctrl)
}

func onFreezeExpired(w donburi.World, ev components.FreezeExpiredEvent) {
	entry, ok := controllerEntry(w, ev.Controller)
	if !ok {
		return
	}
	ctrl := components.ButtonController.Get(entry)
	if ctrl.Body != ev.Body {
		return
	}
	// Frozen again since this expiry was queued
	if w.Valid(ev.Body) {
		body := w.Entry(ev.Body)
		if body.HasComponent(components.Freeze) && components.Freeze.Get(body).Seq != ev.Seq {
			return
		}
	}
	release(ctrl)
}

func press(ctrl *components.ButtonControllerData) {
	setState(ctrl, cfg.Pressed)
	ctrl.Presses++
	ctrl.OnPressed.Invoke()
}

func release(ctrl *components.ButtonControllerData) {
	setState(ctrl, cfg.Unpressed)
	ctrl.Releases++
	ctrl.OnReleased.Invoke()
}

func setState(ctrl *components.ButtonControllerData, state cfg.ButtonState) {
	prev := ctrl.State
	ctrl.State = state
	if cfg.Debug.LogTransitions && prev != state {
		log.Printf("button %q: %s -> %s", ctrl.Name, prev, state)
	}
	ApplyAppearance(ctrl)
}

// ApplyAppearance paints the surface and restarts the clip authored for the
// current state. A state with no record leaves both collaborators untouched.
func ApplyAppearance(ctrl *components.ButtonControllerData) bool {
	rec, ok := cfg.FindAppearance(ctrl.Appearances, ctrl.State)
	if !ok {
		log.Printf("Warning: button %q: %v for state %s", ctrl.Name, cfg.ErrConfigurationMissing, ctrl.State)
		return false
	}

	if ctrl.Surface != nil {
		ctrl.Surface.SetColor(rec.Color)
	}

	if ctrl.Audio != nil && rec.Sound != cfg.ClipNone {
		if ctrl.Audio.IsPlaying() {
			ctrl.Audio.Stop()
		}
		ctrl.Audio.SetClip(rec.Sound)
		ctrl.Audio.Play()
	}
	return true
}

// ApplyColor paints the surface for the current state without touching audio.
func ApplyColor(ctrl *components.ButtonControllerData) bool {
	rec, ok := cfg.FindAppearance(ctrl.Appearances, ctrl.State)
	if !ok || ctrl.Surface == nil {
		return false
	}
	ctrl.Surface.SetColor(rec.Color)
	return true
}

// ThrowDistanceMeters is the configured throw converted to meters.
func ThrowDistanceMeters(ctrl *components.ButtonControllerData) float64 {
	return ctrl.Tunables.ThrowDistanceMeters()
}

// FreezeDuration is the configured freeze time; negative values read as zero.
func FreezeDuration(ctrl *components.ButtonControllerData) time.Duration {
	return ctrl.Tunables.FreezeDuration()
}
