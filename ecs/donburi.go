package ecs

import (
	"github.com/phanxgames/retro"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for settled navigation
// operations.
var NavigationEventType = events.NewEventType[retro.NavigationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are queued on NavigationEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) retro.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event retro.NavigationEvent) {
	NavigationEventType.Publish(s.world, event)
}
