package retro

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the view tree, the timeline, the
// navigator and the renderer. It is driven by ebiten through Run, or by hand
// with Advance and Draw.
type Scene struct {
	root     *View
	timeline *Timeline
	nav      *Navigator
	registry *Registry
	renderer *ebitenRenderer
	debug    bool
	busy     bool

	updateFunc func() error
	script     *Script

	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	touchIDs    []ebiten.TouchID
	touching    bool
}

// NewScene creates a scene whose root view is width×height points. The root
// is the navigator's container.
func NewScene(width, height float64) *Scene {
	root := NewView("root", Rect{Width: width, Height: height})
	tl := NewTimeline()
	r := newEbitenRenderer(1)
	nav := NewNavigator(root, tl, r)
	s := &Scene{
		root:          root,
		timeline:      tl,
		nav:           nav,
		registry:      NewRegistry(nav),
		renderer:      r,
		ClearColor:    Color{0, 0, 0, 1},
		ScreenshotDir: "screenshots",
	}
	return s
}

// Root returns the scene's root view.
func (s *Scene) Root() *View {
	return s.root
}

// Timeline returns the timeline all transitions run on.
func (s *Scene) Timeline() *Timeline {
	return s.timeline
}

// Navigator returns the scene's screen stack.
func (s *Scene) Navigator() *Navigator {
	return s.nav
}

// Registry returns the registry bound to the scene's navigator.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// SetScale sets the renderer's pixels per point, used for drawing and
// snapshots.
func (s *Scene) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.renderer.scale = scale
}

// SetUpdateFunc registers a callback run once per tick before the timeline
// advances. An error from fn stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update reads pointer input and advances the scene by one ebiten tick.
func (s *Scene) Update() error {
	s.processInput()
	return s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance consumes one injected pointer event, runs the update callback and
// the script step, then advances the timeline by dt seconds and refreshes
// world transforms.
func (s *Scene) Advance(dt float64) error {
	s.processInjectedInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.script != nil {
		if err := s.script.step(s); err != nil {
			return err
		}
	}
	s.timeline.Update(dt)
	updateWorldTransform(s.root, identityTransform, 1)

	busy := s.nav.Busy()
	if s.busy && !busy {
		// Snapshots uploaded for the finished transition are no longer drawn.
		s.renderer.release()
	}
	s.busy = busy
	return nil
}

// Draw clears screen and renders the view tree into it.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.RGBA())
	s.renderer.draw(screen, s.root)

	if s.debug {
		logger.Debug("frame",
			"draw", time.Since(t0),
			"animations", s.timeline.Len(),
			"pooled", s.renderer.pool.Len(),
		)
	}
	s.flushScreenshots(screen)
}

// Capture renders v with the scene's renderer.
func (s *Scene) Capture(v *View) (*Snapshot, error) {
	return s.renderer.Capture(v)
}

// SetDebugMode enables or disables debug mode. When enabled, double
// completion and disposed-view access panic, tree warnings are logged, and
// per-frame timing is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebugMode(enabled)
}
