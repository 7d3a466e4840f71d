package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const overridesKey = "tunables"

// SavedOverrides is the authoring data stored on disk. Keys are button names;
// a profile name applies to every button of that profile without its own entry.
type SavedOverrides struct {
	Tunables map[string]cfg.PhysicalTunables `json:"tunables"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for authoring overrides
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTunableOverrides loads saved tunables. A missing store or item yields nil.
func LoadTunableOverrides() (map[string]cfg.PhysicalTunables, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(overridesKey)
	if err != nil {
		log.Printf("Warning: Could not load tunable overrides: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	overrides, err := DecodeOverrides(data)
	if err != nil {
		log.Printf("Warning: Could not parse tunable overrides: %v", err)
		return nil, err
	}
	return overrides, nil
}

// SaveTunableOverrides stores tunables per button or profile name.
func SaveTunableOverrides(overrides map[string]cfg.PhysicalTunables) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := EncodeOverrides(overrides)
	if err != nil {
		log.Printf("Warning: Could not serialize tunable overrides: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(overridesKey, data); err != nil {
		log.Printf("Warning: Could not save tunable overrides: %v", err)
		return err
	}
	return nil
}

// ClearTunableOverrides removes any saved overrides
func ClearTunableOverrides() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(overridesKey, nil); err != nil {
		log.Printf("Warning: Could not clear tunable overrides: %v", err)
		return err
	}
	return nil
}

// EncodeOverrides serializes overrides in the on-disk format.
func EncodeOverrides(overrides map[string]cfg.PhysicalTunables) ([]byte, error) {
	return json.Marshal(SavedOverrides{Tunables: overrides})
}

// DecodeOverrides parses the on-disk format. Invalid entries are dropped with a warning.
func DecodeOverrides(data []byte) (map[string]cfg.PhysicalTunables, error) {
	var saved SavedOverrides
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	for name, t := range saved.Tunables {
		if err := t.Validate(); err != nil {
			log.Printf("Warning: dropping override for %q: %v", name, err)
			delete(saved.Tunables, name)
		}
	}
	return saved.Tunables, nil
}

// CurrentOverrides collects the tunables currently applied to each button,
// keyed by button name.
func CurrentOverrides(w donburi.World) map[string]cfg.PhysicalTunables {
	overrides := map[string]cfg.PhysicalTunables{}
	tags.Button.Each(w, func(e *donburi.Entry) {
		ctrl := components.ButtonController.Get(e)
		overrides[ctrl.Name] = ctrl.Tunables
	})
	return overrides
}

// OverrideFor picks the override of one button: its own entry first, then the
// entry of its profile.
func OverrideFor(overrides map[string]cfg.PhysicalTunables, button, profile string) (cfg.PhysicalTunables, bool) {
	if t, ok := overrides[button]; ok {
		return t, true
	}
	t, ok := overrides[profile]
	return t, ok
}
