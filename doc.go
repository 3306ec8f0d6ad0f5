// Package retro is a library of screen-transition effects for a retained-mode
// 2D view tree rendered with [Ebitengine].
//
// A transition animates the swap between an outgoing and an incoming full
// screen view: circle and star reveals, a clock sweep, diamond and line
// wipes, a cross-fade, card flips, a tiled flip, a springy swing-in and a
// shrinking picture-in-picture effect. Most variants work by animating mask
// shapes on one of the views; the rest animate view properties or work on
// snapshots.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := retro.NewScene(360, 640)
//	scene.Navigator().Push(home, false)
//	// later, from the update callback:
//	scene.Registry().Push(detail, retro.NewCircle())
//	retro.Run(scene, retro.RunConfig{Title: "My App"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Views
//
// Every visual element is a [View]: a frame, an optional background color and
// image, children, alpha, scale and a horizontal flip angle. A [Mask] made of
// [ShapeLayer]s clips a view to the union of its shapes.
//
// # Animations
//
// A [Timeline] advances [Animation]s on mask paths and view properties and
// runs delayed tasks. [Chain] plays phases one after another and [Parallel]
// plays them together. Easing comes from [gween]'s ease package; [Spring]
// adds a damped spring curve.
//
// # Navigation
//
// A [Navigator] keeps a stack of screens. Each push or pop asks its
// [Delegate] for a [Transition]; a [Registry] hands out one transition per
// operation and is installed as the delegate while registrations are
// pending. A transition reports completion exactly once through its
// [TransitionContext].
//
// Settled operations are reported to [Navigator.OnSettle] and, as
// [NavigationEvent]s, to an [EventStore]. The ecs submodule forwards them to
// a donburi world.
//
// # Input and scripts
//
// A view with [View.OnTap] set receives taps whose press and release both
// land on it. Taps are ignored while a transition runs. [Scene.InjectTap]
// queues synthetic taps, and a [Script] loaded with [LoadScript] plays
// pushes, pops, taps and screenshots frame by frame.
//
// # Headless rendering
//
// [SoftRenderer] renders a view tree into CPU images. It is the [Capturer]
// used in tests and by the retro command's render subcommand.
//
// # Debug mode
//
// Call [Scene.SetDebugMode] or [SetDebugMode] to turn double completion and
// use of disposed views into panics and to log at debug level.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package retro
