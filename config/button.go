package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/automoto/pushbutton/shared/gamemath"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// StateAppearance is the authored look and sound of one button state
type StateAppearance struct {
	State ButtonState
	Color color.RGBA
	Sound ClipID
}

type appearanceRecord struct {
	State ButtonState `yaml:"state"`
	Color string      `yaml:"color"`
	Sound ClipID      `yaml:"sound"`
}

// UnmarshalYAML reads a record whose color is authored as a hex string.
func (a *StateAppearance) UnmarshalYAML(value *yaml.Node) error {
	var rec appearanceRecord
	if err := value.Decode(&rec); err != nil {
		return err
	}
	c, err := ParseHexColor(rec.Color)
	if err != nil {
		return fmt.Errorf("state %s: %w", rec.State, err)
	}
	*a = StateAppearance{State: rec.State, Color: c, Sound: rec.Sound}
	return nil
}

// MarshalYAML writes the color back as a hex string.
func (a StateAppearance) MarshalYAML() (interface{}, error) {
	return appearanceRecord{State: a.State, Color: HexColor(a.Color), Sound: a.Sound}, nil
}

// ParseHexColor parses "#rrggbb" into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexColor formats the RGB channels of c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FindAppearance returns the first record authored for state.
func FindAppearance(records []StateAppearance, state ButtonState) (StateAppearance, bool) {
	for _, rec := range records {
		if rec.State == state {
			return rec, true
		}
	}
	return StateAppearance{}, false
}

// PhysicalTunables are authored in human units: inches and seconds
type PhysicalTunables struct {
	Diameter      float64 `yaml:"diameter" json:"diameter"`           // inches
	FreezeTime    float64 `yaml:"freezeTime" json:"freezeTime"`       // seconds
	ThrowDistance float64 `yaml:"throwDistance" json:"throwDistance"` // inches
}

// DefaultTunables matches the values a freshly authored profile starts with.
var DefaultTunables = PhysicalTunables{
	Diameter:      1,
	FreezeTime:    3,
	ThrowDistance: 1,
}

// ThrowDistanceMeters is the travel from rest to the press limit in meters.
func (t PhysicalTunables) ThrowDistanceMeters() float64 {
	return gamemath.InchToMeter(t.ThrowDistance)
}

// DiameterMeters is the cap diameter in meters.
func (t PhysicalTunables) DiameterMeters() float64 {
	return gamemath.InchToMeter(t.Diameter)
}

// FreezeDuration is the freeze time as a duration. Negative values collapse to zero.
func (t PhysicalTunables) FreezeDuration() time.Duration {
	if t.FreezeTime <= 0 || math.IsNaN(t.FreezeTime) {
		return 0
	}
	return time.Duration(t.FreezeTime * float64(time.Second))
}

// Validate reports every out-of-range value.
func (t PhysicalTunables) Validate() error {
	var errs []error
	if !(t.Diameter > 0) {
		errs = append(errs, fmt.Errorf("%w: diameter must be positive, got %v", ErrInvalidTunable, t.Diameter))
	}
	if !(t.ThrowDistance > 0) {
		errs = append(errs, fmt.Errorf("%w: throw distance must be positive, got %v", ErrInvalidTunable, t.ThrowDistance))
	}
	if !(t.FreezeTime >= 0) {
		errs = append(errs, fmt.Errorf("%w: freeze time must not be negative, got %v", ErrInvalidTunable, t.FreezeTime))
	}
	return errors.Join(errs...)
}

// ButtonProfile bundles everything authored for one kind of button
type ButtonProfile struct {
	Name       string            `yaml:"-"`
	Physical   PhysicalTunables  `yaml:"physical"`
	States     []StateAppearance `yaml:"states"`
	AutoFreeze bool              `yaml:"autoFreeze"`
}

// Validate checks the tunables and that each state is authored at most once.
// A state with no record is allowed; it is reported at runtime instead.
func (p ButtonProfile) Validate() error {
	var errs []error
	if err := p.Physical.Validate(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[ButtonState]bool, len(p.States))
	for _, rec := range p.States {
		if seen[rec.State] {
			errs = append(errs, fmt.Errorf("%w: state %s", ErrDuplicateAppearance, rec.State))
		}
		seen[rec.State] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}
