// Package ecs provides ECS adapters for retro's navigation events.
//
// The primary adapter is [NewDonburiStore], which forwards every settled
// push and pop into a [Donburi] world as a typed event. Subscribe to
// [NavigationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.Navigator().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
