package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed buttons.yaml
var defaultProfilesYAML []byte

type profileFile struct {
	Profiles map[string]ButtonProfile `yaml:"profiles"`
}

// Profiles holds the authored button profiles, keyed by name
var Profiles map[string]ButtonProfile

// LoadProfiles decodes a YAML profile document. It does not validate values;
// use ValidateProfiles for that.
func LoadProfiles(r io.Reader) (map[string]ButtonProfile, error) {
	var file profileFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]ButtonProfile{}, nil
		}
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for name, p := range file.Profiles {
		p.Name = name
		file.Profiles[name] = p
	}
	if file.Profiles == nil {
		file.Profiles = map[string]ButtonProfile{}
	}
	return file.Profiles, nil
}

// ValidateProfiles validates every profile and joins the problems found.
func ValidateProfiles(profiles map[string]ButtonProfile) error {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := profiles[name].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LookupProfile returns the profile registered under name.
func LookupProfile(name string) (ButtonProfile, error) {
	p, ok := Profiles[name]
	if !ok {
		return ButtonProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ReloadProfiles replaces the registered profiles with the ones decoded from r.
// The previous set is kept when decoding fails.
func ReloadProfiles(r io.Reader) error {
	loaded, err := LoadProfiles(r)
	if err != nil {
		return err
	}
	Profiles = loaded
	return ValidateProfiles(loaded)
}

func init() {
	loaded, err := LoadProfiles(bytes.NewReader(defaultProfilesYAML))
	if err != nil {
		panic("embedded button profiles: " + err.Error())
	}
	Profiles = loaded
}
