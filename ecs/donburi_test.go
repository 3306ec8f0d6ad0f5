package ecs

import (
	"testing"

	"github.com/phanxgames/retro"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []retro.NavigationEvent
	NavigationEventType.Subscribe(world, func(w donburi.World, e retro.NavigationEvent) {
		received = append(received, e)
	})

	store.EmitEvent(retro.NavigationEvent{
		Op:       retro.OperationPush,
		Kind:     retro.KindClock,
		Animated: true,
		Success:  true,
	})
	store.EmitEvent(retro.NavigationEvent{
		Op:      retro.OperationPop,
		Success: false,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	NavigationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Op != retro.OperationPush || e.Kind != retro.KindClock || !e.Success {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Op != retro.OperationPop || e.Success {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_FromNavigator(t *testing.T) {
	world := donburi.NewWorld()
	scene := retro.NewScene(100, 100)
	scene.Navigator().SetEventStore(NewDonburiStore(world))

	var received []retro.NavigationEvent
	NavigationEventType.Subscribe(world, func(w donburi.World, e retro.NavigationEvent) {
		received = append(received, e)
	})

	home := retro.NewColorView("home", retro.Rect{}, retro.ColorWhite)
	detail := retro.NewColorView("detail", retro.Rect{}, retro.ColorWhite)
	scene.Navigator().Push(home, false)
	if err := scene.Registry().Push(detail, retro.NewCrossFade()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60 && scene.Navigator().Busy(); i++ {
		scene.Advance(1.0 / 60)
	}
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[1]; e.Kind != retro.KindCrossFade || e.To != detail || !e.Success {
		t.Errorf("push event: %+v", e)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	NavigationEventType.Subscribe(world, func(w donburi.World, e retro.NavigationEvent) {
		count1++
	})
	NavigationEventType.Subscribe(world, func(w donburi.World, e retro.NavigationEvent) {
		count2++
	})

	store.EmitEvent(retro.NavigationEvent{Op: retro.OperationPush, Success: true})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
