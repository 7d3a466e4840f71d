package systems

import (
	"log"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/tags"
	"github.com/yohamta/donburi"
)

// Reconfigure re-reads the authored records of one button and re-applies the
// appearance of its current state. The body keeps its rest position and press
// limit; only the visual diameter follows the new tunables. The profile is
// applied even when it fails validation, and the validation error is returned.
func Reconfigure(w donburi.World, controller *donburi.Entry, profile cfg.ButtonProfile) error {
	ctrl := components.ButtonController.Get(controller)
	ctrl.Profile = profile.Name
	ctrl.Appearances = append([]cfg.StateAppearance(nil), profile.States...)
	ctrl.Tunables = profile.Physical
	ctrl.AutoFreeze = profile.AutoFreeze

	if w.Valid(ctrl.Body) {
		body := components.ButtonBody.Get(w.Entry(ctrl.Body))
		if d := profile.Physical.DiameterMeters(); d > 0 {
			body.Diameter = d
		}
	}

	ApplyAppearance(ctrl)
	return profile.Validate()
}

// ReconfigureAll looks every button's profile up again, applies saved tunable
// overrides on top (see OverrideFor) and reconfigures it. Problems are logged
// and skipped.
func ReconfigureAll(w donburi.World, overrides map[string]cfg.PhysicalTunables) {
	tags.Button.Each(w, func(e *donburi.Entry) {
		ctrl := components.ButtonController.Get(e)
		profile, err := cfg.LookupProfile(ctrl.Profile)
		if err != nil {
			log.Printf("Warning: button %q: %v", ctrl.Name, err)
			return
		}
		if t, ok := OverrideFor(overrides, ctrl.Name, profile.Name); ok {
			profile.Physical = t
		}
		if err := Reconfigure(w, e, profile); err != nil {
			log.Printf("Warning: button %q: %v", ctrl.Name, err)
		}
	})
}
