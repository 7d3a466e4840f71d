package scenes

import (
	"log"
	"time"

	"github.com/automoto/pushbutton/components"
	cfg "github.com/automoto/pushbutton/config"
	"github.com/automoto/pushbutton/systems"
	"github.com/automoto/pushbutton/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Runner advances a headless bench scene at a fixed tick rate.
type Runner struct {
	ecs      *ecs.ECS
	tickRate int
	realtime bool
	stopChan chan struct{}
}

// NewRunner returns a runner for e. A tick rate that is not positive falls
// back to cfg.Sim.TickRate.
func NewRunner(e *ecs.ECS, tickRate int, realtime bool) *Runner {
	if tickRate <= 0 {
		log.Printf("Warning: tick rate %d is not positive, using %d", tickRate, cfg.Sim.TickRate)
		tickRate = cfg.Sim.TickRate
	}
	return &Runner{
		ecs:      e,
		tickRate: tickRate,
		realtime: realtime,
		stopChan: make(chan struct{}),
	}
}

// Run steps the scene until the simulated duration has elapsed or Stop is called.
// In realtime mode ticks are paced by a wall clock ticker.
func (r *Runner) Run(duration time.Duration) {
	ticks := int(duration.Seconds() * float64(r.tickRate))
	log.Printf("Running %d ticks at %d ticks/second", ticks, r.tickRate)

	if !r.realtime {
		for i := 0; i < ticks; i++ {
			select {
			case <-r.stopChan:
				return
			default:
			}
			r.ecs.Update()
		}
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	for i := 0; i < ticks; i++ {
		select {
		case <-r.stopChan:
			log.Println("Runner stopped")
			return
		case <-ticker.C:
			r.ecs.Update()
		}
	}
}

func (r *Runner) Stop() {
	close(r.stopChan)
}

// DropAll releases every held weight in the scene.
func DropAll(e *ecs.ECS) {
	tags.Presser.Each(e.World, func(entry *donburi.Entry) {
		p := components.Presser.Get(entry)
		if p.Held {
			systems.ToggleWeight(p)
		}
	})
}

// Report logs the counters of every button.
func Report(e *ecs.ECS) {
	for _, entry := range systems.Buttons(e.World) {
		log.Println(systems.ButtonSummary(e, components.ButtonController.Get(entry)))
	}
}
