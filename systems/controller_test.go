package systems

import (
	"reflect"
	"testing"
	"time"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestApplyAppearanceDispatch(t *testing.T) {
	tests := []struct {
		name      string
		state     cfg.ButtonState
		playing   bool
		wantCalls []string
	}{
		{
			name:      "pressed with a clip already playing",
			state:     cfg.Pressed,
			playing:   true,
			wantCalls: []string{"stop", "set:click_down", "play"},
		},
		{
			name:      "pressed from silence",
			state:     cfg.Pressed,
			wantCalls: []string{"set:click_down", "play"},
		},
		{
			name:      "unpressed",
			state:     cfg.Unpressed,
			wantCalls: []string{"set:click_up", "play"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &recordingSurface{}
			audio := &recordingAudio{playing: tt.playing}
			ctrl := &components.ButtonControllerData{
				State:       tt.state,
				Appearances: redGreenAppearances(),
				Surface:     surface,
				Audio:       audio,
			}

			if !ApplyAppearance(ctrl) {
				t.Fatal("ApplyAppearance() = false, want true")
			}

			want := testRed
			if tt.state == cfg.Pressed {
				want = testGreen
			}
			if len(surface.colors) != 1 || surface.colors[0] != want {
				t.Errorf("SetColor calls = %v, want exactly [%v]", surface.colors, want)
			}
			if !reflect.DeepEqual(audio.calls, tt.wantCalls) {
				t.Errorf("audio calls = %v, want %v", audio.calls, tt.wantCalls)
			}
		})
	}
}

func TestApplyAppearanceWithoutRecords(t *testing.T) {
	for _, records := range [][]cfg.StateAppearance{
		nil,
		{{State: cfg.Unpressed, Color: testRed}},
	} {
		surface := &recordingSurface{}
		audio := &recordingAudio{}
		ctrl := &components.ButtonControllerData{
			State:       cfg.Pressed,
			Appearances: records,
			Surface:     surface,
			Audio:       audio,
		}

		if ApplyAppearance(ctrl) {
			t.Errorf("ApplyAppearance(%v) = true, want false", records)
		}
		if len(surface.colors) != 0 || len(audio.calls) != 0 {
			t.Errorf("collaborators touched: colors %v, audio %v", surface.colors, audio.calls)
		}
	}
}

func TestApplyAppearanceSilentRecord(t *testing.T) {
	audio := &recordingAudio{playing: true}
	ctrl := &components.ButtonControllerData{
		State:       cfg.Pressed,
		Appearances: []cfg.StateAppearance{{State: cfg.Pressed, Color: testGreen}},
		Surface:     &recordingSurface{},
		Audio:       audio,
	}
	ApplyAppearance(ctrl)
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none for a record without a clip", audio.calls)
	}
}

func TestApplyColorLeavesAudioAlone(t *testing.T) {
	surface := &recordingSurface{}
	audio := &recordingAudio{}
	ctrl := &components.ButtonControllerData{
		State:       cfg.Unpressed,
		Appearances: redGreenAppearances(),
		Surface:     surface,
		Audio:       audio,
	}
	if !ApplyColor(ctrl) {
		t.Fatal("ApplyColor() = false")
	}
	if len(surface.colors) != 1 || surface.colors[0] != testRed {
		t.Errorf("colors = %v, want [red]", surface.colors)
	}
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none", audio.calls)
	}
}

func TestControllerTunableAccessors(t *testing.T) {
	ctrl := &components.ButtonControllerData{Tunables: cfg.PhysicalTunables{ThrowDistance: 2, FreezeTime: -4}}
	if got := ThrowDistanceMeters(ctrl); got != 2*0.0254 {
		t.Errorf("ThrowDistanceMeters() = %v, want %v", got, 2*0.0254)
	}
	if got := FreezeDuration(ctrl); got != 0 {
		t.Errorf("FreezeDuration() = %v, want 0", got)
	}

	ctrl.Tunables.FreezeTime = 1.5
	if got := FreezeDuration(ctrl); got != 1500*time.Millisecond {
		t.Errorf("FreezeDuration() = %v, want 1.5s", got)
	}
}

func TestButtonStateIsPerInstance(t *testing.T) {
	e := newTestECS(t)
	a, _ := spawnTestButton(t, e, mgl64.Vec3{0.1, 0, 0}, scenarioTunables(), redGreenAppearances())
	b, _ := spawnTestButton(t, e, mgl64.Vec3{0.4, 0, 0}, scenarioTunables(), redGreenAppearances())

	body := a.body(e.World)
	body.SetY(body.PressLimit)
	stepBodies(e)

	if a.ctrl().State != cfg.Pressed {
		t.Errorf("pressed button state = %v, want Pressed", a.ctrl().State)
	}
	if b.ctrl().State != cfg.Unpressed {
		t.Errorf("other button state = %v, want Unpressed", b.ctrl().State)
	}
	if len(b.surface.colors) != 0 || len(b.audio.calls) != 0 {
		t.Errorf("other button collaborators touched")
	}
}

func TestPressDispatchesOnce(t *testing.T) {
	e := newTestECS(t)
	b, _ := spawnTestButton(t, e, mgl64.Vec3{0.2, 0, 0}, scenarioTunables(), redGreenAppearances())

	body := b.body(e.World)
	for i := 0; i < 10; i++ {
		body.SetY(body.PressLimit - 0.001)
		stepBodies(e)
	}

	if len(b.surface.colors) != 1 || b.surface.colors[0] != testGreen {
		t.Errorf("colors = %v, want one green", b.surface.colors)
	}
	if want := []string{"set:click_down", "play"}; !reflect.DeepEqual(b.audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", b.audio.calls, want)
	}
	if b.ctrl().Presses != 1 {
		t.Errorf("Presses = %d, want 1", b.ctrl().Presses)
	}
}

func TestEventsForRemovedControllerAreIgnored(t *testing.T) {
	e := newTestECS(t)
	b, _ := spawnTestButton(t, e, mgl64.Vec3{0.2, 0, 0}, scenarioTunables(), redGreenAppearances())
	bodyEntity := b.ctrl().Body
	controller := b.controller.Entity()

	components.PressedBoundary.Publish(e.World, components.BoundaryEvent{Body: bodyEntity, Controller: controller})
	e.World.Remove(controller)

	ProcessButtonEvents(e)

	if len(b.surface.colors) != 0 || len(b.audio.calls) != 0 {
		t.Errorf("removed controller still dispatched: colors %v, audio %v", b.surface.colors, b.audio.calls)
	}
}
