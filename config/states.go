package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ButtonState is the authoritative state of a single button
type ButtonState int

const (
	Unpressed ButtonState = iota
	Pressed
)

var buttonStateNames = map[ButtonState]string{
	Unpressed: "unpressed",
	Pressed:   "pressed",
}

func (s ButtonState) String() string {
	if name, ok := buttonStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ButtonState(%d)", int(s))
}

// ParseButtonState maps an authored name to a ButtonState.
func ParseButtonState(name string) (ButtonState, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for state, n := range buttonStateNames {
		if n == key {
			return state, nil
		}
	}
	return Unpressed, fmt.Errorf("unknown button state %q", name)
}

// UnmarshalYAML reads a state from its authored name.
func (s *ButtonState) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseButtonState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML writes the authored name.
func (s ButtonState) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
