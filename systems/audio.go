package systems

import (
	"log"
	"sync"

	"github.com/automoto/pushbutton/assets"
	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all clips at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.ClipPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: clip %q: %v", id, err)
		}
	}
}

// SFXSource is an AudioOutput backed by one ebiten player per button.
type SFXSource struct {
	clip   cfg.ClipID
	player *audio.Player
}

// NewSFXSource returns an audio output playing embedded clips.
func NewSFXSource() *SFXSource {
	initGlobalAudio()
	return &SFXSource{}
}

func (s *SFXSource) SetClip(clip cfg.ClipID) {
	if clip == s.clip {
		return
	}
	s.close()
	s.clip = clip
}

func (s *SFXSource) Play() {
	if globalSFXVolume <= 0 || s.clip == cfg.ClipNone {
		return
	}
	if s.player == nil {
		path, ok := cfg.Sound.ClipPaths[s.clip]
		if !ok {
			log.Printf("Warning: no file for clip %q", s.clip)
			return
		}
		player, err := globalAudioLoader.LoadSFX(path)
		if err != nil {
			log.Printf("Warning: clip %q: %v", s.clip, err)
			return
		}
		s.player = player
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[s.clip]; ok {
		volume *= mult
	}
	s.player.SetVolume(volume)
	if err := s.player.Rewind(); err != nil {
		log.Printf("Warning: clip %q: %v", s.clip, err)
	}
	s.player.Play()
}

func (s *SFXSource) Stop() {
	if s.player == nil {
		return
	}
	s.player.Pause()
}

func (s *SFXSource) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}

func (s *SFXSource) close() {
	if s.player != nil {
		_ = s.player.Close()
		s.player = nil
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	a := GetOrCreateAudio(e)
	a.SFXVolume = volume
	if !a.Muted {
		globalSFXVolume = volume
	}
}

// ToggleMute silences every SFXSource without forgetting the volume.
func ToggleMute(e *ecs.ECS) bool {
	a := GetOrCreateAudio(e)
	a.Muted = !a.Muted
	if a.Muted {
		globalSFXVolume = 0
	} else {
		globalSFXVolume = a.SFXVolume
	}
	return a.Muted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume: globalSFXVolume,
		})
	}
	return components.Audio.Get(entry)
}
