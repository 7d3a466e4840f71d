package config

import "errors"

var (
	// ErrConfigurationMissing means no appearance record exists for a state.
	ErrConfigurationMissing = errors.New("configuration missing")
	// ErrInvalidTunable means a physical tunable is outside its legal range.
	ErrInvalidTunable = errors.New("invalid tunable")
	// ErrDuplicateAppearance means two appearance records share a state.
	ErrDuplicateAppearance = errors.New("duplicate appearance record")
	// ErrUnknownProfile means a scene referenced a profile that was never authored.
	ErrUnknownProfile = errors.New("unknown button profile")
)
