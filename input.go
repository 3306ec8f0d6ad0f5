package retro

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the pointer's last position and the view under an
// active press.
type pointerState struct {
	x, y    float64
	pressed bool
	target  *View
}

// viewContainsLocal reports whether the local point lies inside v's bounds.
func viewContainsLocal(v *View, lx, ly float64) bool {
	return v.Bounds().Contains(lx, ly)
}

// hitTest returns the topmost tappable view under the world point, or nil.
// Children are tested before their parent, in reverse draw order.
func hitTest(v *View, wx, wy float64) *View {
	if v == nil || v.disposed || !v.Visible || v.Alpha <= 0 {
		return nil
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := hitTest(v.children[i], wx, wy); hit != nil {
			return hit
		}
	}
	if v.OnTap == nil {
		return nil
	}
	// A collapsed view covers nothing.
	m := v.worldTransform
	if det := m[0]*m[3] - m[1]*m[2]; det > -1e-9 && det < 1e-9 {
		return nil
	}
	lx, ly := v.WorldToLocal(wx, wy)
	if !viewContainsLocal(v, lx, ly) {
		return nil
	}
	return v
}

// processInput reads the first touch, or the mouse when nothing touches
// the screen, and feeds it through processPointer. Called from Scene.Update
// only; Advance consumes injected events.
func (s *Scene) processInput() {
	if len(s.injectQueue) > 0 {
		return
	}
	inv := 1 / s.renderer.scale

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		s.touching = true
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		s.processPointer(float64(tx)*inv, float64(ty)*inv, true)
		return
	}
	if s.touching {
		// Release a lifted touch where it was last seen.
		s.touching = false
		s.processPointer(s.pointer.x, s.pointer.y, false)
		return
	}

	mx, my := ebiten.CursorPosition()
	s.processPointer(float64(mx)*inv, float64(my)*inv, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processPointer turns press and release transitions into taps. Input is
// ignored while a transition runs, and a press that began during one is
// dropped.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	s.pointer.x, s.pointer.y = wx, wy
	if pressed == s.pointer.pressed {
		return
	}
	s.pointer.pressed = pressed
	if s.nav.Busy() {
		s.pointer.target = nil
		return
	}

	updateWorldTransform(s.root, identityTransform, 1)
	hit := hitTest(s.root, wx, wy)
	if pressed {
		s.pointer.target = hit
		return
	}
	target := s.pointer.target
	s.pointer.target = nil
	if hit == nil || hit != target {
		return
	}
	lx, ly := hit.WorldToLocal(wx, wy)
	logger.Debug("tap", "view", hit, "x", lx, "y", ly)
	hit.OnTap(lx, ly)
}
