package config

// ClipID names an audio clip referenced by authored appearance records
type ClipID string

const (
	ClipNone      ClipID = ""
	ClipClickDown ClipID = "click_down"
	ClipClickUp   ClipID = "click_up"
	ClipBuzz      ClipID = "buzz"
	ClipChime     ClipID = "chime"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps clip IDs to embedded file paths
type SoundConfig struct {
	ClipPaths         map[ClipID]string
	VolumeMultipliers map[ClipID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		ClipPaths: map[ClipID]string{
			ClipClickDown: "audio/sfx/click_down.wav",
			ClipClickUp:   "audio/sfx/click_up.wav",
			ClipBuzz:      "audio/sfx/buzz.wav",
			ClipChime:     "audio/sfx/chime.wav",
		},
		VolumeMultipliers: map[ClipID]float64{
			ClipBuzz: 0.6,
		},
	}
}
