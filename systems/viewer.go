package systems

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Buttons returns the controller entries ordered by name.
func Buttons(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Button.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.ButtonController.Get(out[i]).Name < components.ButtonController.Get(out[j]).Name
	})
	return out
}

// SelectedButton returns the controller the viewer currently targets.
func SelectedButton(w donburi.World) (*donburi.Entry, bool) {
	buttons := Buttons(w)
	if len(buttons) == 0 {
		return nil, false
	}
	viewer := getOrCreateViewer(w)
	viewer.Selected = wrapIndex(viewer.Selected, len(buttons))
	return buttons[viewer.Selected], true
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func getOrCreateViewer(w donburi.World) *components.ViewerData {
	entry, ok := components.Viewer.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Viewer))
	}
	return components.Viewer.Get(entry)
}

// UpdateViewer turns the actions polled by UpdateInput into scene operations.
func UpdateViewer(ecs *ecs.ECS) {
	input, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(input)
	viewer := getOrCreateViewer(ecs.World)

	if in.JustPressed(cfg.ActionToggleDebug) {
		viewer.Debug = !viewer.Debug
		cfg.Debug.ShowColliders = viewer.Debug
	}
	if in.JustPressed(cfg.ActionMute) {
		if ToggleMute(ecs) {
			viewer.LastStatus = "sound muted"
		} else {
			viewer.LastStatus = fmt.Sprintf("sound %.0f%%", GetSFXVolume()*100)
		}
	}
	if in.JustPressed(cfg.ActionSelectNext) {
		viewer.Selected++
	}
	if in.JustPressed(cfg.ActionSelectPrev) {
		viewer.Selected--
	}

	selected, ok := SelectedButton(ecs.World)
	if !ok {
		return
	}
	ctrl := components.ButtonController.Get(selected)

	switch {
	case in.JustPressed(cfg.ActionDropWeight):
		if presser, ok := nearestWeight(ecs.World, ctrl); ok {
			ToggleWeight(presser)
		}
	case in.JustPressed(cfg.ActionFreeze):
		if _, ok := Freeze(ecs.World, selected); !ok {
			viewer.LastStatus = fmt.Sprintf("%s: already frozen", ctrl.Name)
		}
	case in.JustPressed(cfg.ActionFreezeLonger):
		ctrl.Tunables.FreezeTime += cfg.Viewer.FreezeStep
		viewer.LastStatus = fmt.Sprintf("%s: freeze %.1fs", ctrl.Name, ctrl.Tunables.FreezeTime)
	case in.JustPressed(cfg.ActionFreezeShorter):
		ctrl.Tunables.FreezeTime = math.Max(0, ctrl.Tunables.FreezeTime-cfg.Viewer.FreezeStep)
		viewer.LastStatus = fmt.Sprintf("%s: freeze %.1fs", ctrl.Name, ctrl.Tunables.FreezeTime)
	case in.JustPressed(cfg.ActionSaveOverrides):
		if err := SaveTunableOverrides(CurrentOverrides(ecs.World)); err != nil {
			viewer.LastStatus = "save failed"
		} else {
			viewer.LastStatus = "overrides saved"
		}
	case in.JustPressed(cfg.ActionReconfigure):
		overrides, err := LoadTunableOverrides()
		if err != nil {
			log.Printf("Warning: reconfigure without overrides: %v", err)
		}
		ReconfigureAll(ecs.World, overrides)
		viewer.LastStatus = "reconfigured"
	}
}

// nearestWeight returns the drop presser closest to the button along X.
func nearestWeight(w donburi.World, ctrl *components.ButtonControllerData) (*components.PresserData, bool) {
	if !w.Valid(ctrl.Body) {
		return nil, false
	}
	x := components.ButtonBody.Get(w.Entry(ctrl.Body)).Position.X()

	var best *components.PresserData
	bestDist := math.Inf(1)
	tags.Presser.Each(w, func(e *donburi.Entry) {
		p := components.Presser.Get(e)
		if p.Motion != components.MotionDrop {
			return
		}
		if d := math.Abs(p.Position.X() - x); d < bestDist {
			best, bestDist = p, d
		}
	})
	return best, best != nil
}
