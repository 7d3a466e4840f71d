package components

import (
	cfg "github.com/automoto/pushbutton/config"
	"github.com/yohamta/donburi"
)

// AudioOutput is the audio collaborator a controller plays clips through
type AudioOutput interface {
	SetClip(clip cfg.ClipID)
	Play()
	Stop()
	IsPlaying() bool
}

// SilentAudio tracks clip and playing state without producing sound.
// It is used headless and whenever no audio device is available.
type SilentAudio struct {
	Clip    cfg.ClipID
	Playing bool
	Plays   int
}

func (a *SilentAudio) SetClip(clip cfg.ClipID) { a.Clip = clip }

func (a *SilentAudio) Play() {
	a.Playing = true
	a.Plays++
}

func (a *SilentAudio) Stop() { a.Playing = false }

func (a *SilentAudio) IsPlaying() bool { return a.Playing }

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume float64 // 0.0 - 1.0
	Muted     bool
}

var Audio = donburi.NewComponentType[AudioData]()
