package systems

import (
	"sync/atomic"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FreezeHandle identifies one freeze of one body. A handle stays tied to the
// freeze that created it; a later freeze of the same body gets a new Seq.
type FreezeHandle struct {
	Body donburi.Entity
	Seq  uint64
}

var freezeSeq atomic.Uint64

// Active reports whether the freeze behind h is still pending.
func (h FreezeHandle) Active(w donburi.World) bool {
	_, ok := frozenEntry(w, h)
	return ok
}

func frozenEntry(w donburi.World, h FreezeHandle) (*donburi.Entry, bool) {
	if h.Seq == 0 || !w.Valid(h.Body) {
		return nil, false
	}
	e := w.Entry(h.Body)
	if !e.HasComponent(components.Freeze) || components.Freeze.Get(e).Seq != h.Seq {
		return nil, false
	}
	return e, true
}

// Freeze locks the body of a button for the configured freeze time and pins the
// controller to Pressed. Freezing an already frozen body is ignored: the handle
// of the pending freeze is returned with ok = false and its timer is untouched.
// A body that cannot be pressed is never frozen.
func Freeze(w donburi.World, controller *donburi.Entry) (h FreezeHandle, ok bool) {
	ctrl := components.ButtonController.Get(controller)
	if !w.Valid(ctrl.Body) {
		return FreezeHandle{}, false
	}
	body := w.Entry(ctrl.Body)
	if !components.ButtonBody.Get(body).Pressable {
		return FreezeHandle{}, false
	}
	if body.HasComponent(components.Freeze) {
		return FreezeHandle{Body: ctrl.Body, Seq: components.Freeze.Get(body).Seq}, false
	}

	d := FreezeDuration(ctrl)
	h = FreezeHandle{Body: ctrl.Body, Seq: freezeSeq.Add(1)}
	donburi.Add(body, components.Freeze, &components.FreezeData{
		Timer:    gween.New(1, 0, float32(d.Seconds()), ease.Linear),
		Duration: d,
		FrozenAt: Now(w),
		Seq:      h.Seq,
		Remain:   1,
	})
	if body.HasComponent(components.Spring) {
		components.Spring.Get(body).Velocity = 0
	}

	if ctrl.State != cfg.Pressed {
		press(ctrl)
	}
	return h, true
}

// ReleaseFreeze ends the freeze behind h now instead of waiting for its timer.
// The release is delivered with the next ProcessButtonEvents.
func ReleaseFreeze(w donburi.World, h FreezeHandle) bool {
	e, ok := frozenEntry(w, h)
	if !ok {
		return false
	}
	unfreeze(w, e)
	return true
}

// IsFrozen reports whether the body entity is in the frozen phase.
func IsFrozen(w donburi.World, body donburi.Entity) bool {
	return w.Valid(body) && w.Entry(body).HasComponent(components.Freeze)
}

// UpdateFreezeTimers advances every pending freeze by one step and returns
// expired bodies to the free phase.
func UpdateFreezeTimers(ecs *ecs.ECS) {
	dt := float32(stepSeconds(ecs.World))

	var expired []*donburi.Entry
	components.Freeze.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Freeze.Get(e)
		remain, done := f.Timer.Update(dt)
		f.Remain = remain
		if done {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		unfreeze(ecs.World, e)
	}
}

func unfreeze(w donburi.World, e *donburi.Entry) {
	seq := components.Freeze.Get(e).Seq
	body := components.ButtonBody.Get(e)
	body.Latched = false
	controller := body.Controller

	donburi.Remove[components.FreezeData](e, components.Freeze)

	components.FreezeExpired.Publish(w, components.FreezeExpiredEvent{
		Body:       e.Entity(),
		Controller: controller,
		Seq:        seq,
		At:         Now(w),
	})
}
