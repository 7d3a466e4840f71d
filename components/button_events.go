package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BoundaryEvent is published by a body when its cap reaches or leaves the press limit
type BoundaryEvent struct {
	Body       donburi.Entity
	Controller donburi.Entity
	At         time.Duration
}

// FreezeExpiredEvent is published when a frozen body returns to the free phase
type FreezeExpiredEvent struct {
	Body       donburi.Entity
	Controller donburi.Entity
	Seq        uint64
	At         time.Duration
}

var (
	PressedBoundary  = events.NewEventType[BoundaryEvent]()
	ReleasedBoundary = events.NewEventType[BoundaryEvent]()
	FreezeExpired    = events.NewEventType[FreezeExpiredEvent]()
)
