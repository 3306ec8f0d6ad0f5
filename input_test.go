package retro

import "testing"

func tappable(name string, frame Rect, taps *[]string) *View {
	v := NewColorView(name, frame, ColorWhite)
	v.OnTap = func(x, y float64) { *taps = append(*taps, name) }
	return v
}

func TestHitTestTopmost(t *testing.T) {
	var taps []string
	root := NewView("root", Rect{Width: 100, Height: 100})
	below := tappable("below", Rect{Width: 100, Height: 100}, &taps)
	above := tappable("above", Rect{X: 10, Y: 10, Width: 20, Height: 20}, &taps)
	root.AddChild(below)
	root.AddChild(above)
	updateWorldTransform(root, identityTransform, 1)

	if hit := hitTest(root, 15, 15); hit != above {
		t.Errorf("hit = %v, want above", hit)
	}
	if hit := hitTest(root, 50, 50); hit != below {
		t.Errorf("hit = %v, want below", hit)
	}
	if hit := hitTest(root, 150, 50); hit != nil {
		t.Errorf("hit = %v, want nil outside", hit)
	}

	above.Visible = false
	if hit := hitTest(root, 15, 15); hit != below {
		t.Errorf("hidden view should be skipped, hit = %v", hit)
	}
	below.OnTap = nil
	if hit := hitTest(root, 50, 50); hit != nil {
		t.Errorf("view without OnTap should be transparent, hit = %v", hit)
	}
}

func TestHitTestTransformed(t *testing.T) {
	var taps []string
	root := NewView("root", Rect{Width: 100, Height: 100})
	v := tappable("v", Rect{X: 0, Y: 0, Width: 40, Height: 40}, &taps)
	v.SetScale(0.5, 0.5) // about the center: covers 10..30
	root.AddChild(v)
	updateWorldTransform(root, identityTransform, 1)

	if hitTest(root, 5, 5) != nil {
		t.Error("point outside the scaled view should miss")
	}
	if hitTest(root, 20, 20) != v {
		t.Error("point inside the scaled view should hit")
	}
}

func TestInjectTap(t *testing.T) {
	s := NewScene(100, 100)
	var gotX, gotY float64
	taps := 0
	v := NewColorView("v", Rect{X: 20, Y: 30, Width: 40, Height: 40}, ColorWhite)
	v.OnTap = func(x, y float64) {
		taps++
		gotX, gotY = x, y
	}
	s.Root().AddChild(v)

	s.InjectTap(25, 45)
	s.Advance(1.0 / 60)
	if taps != 0 {
		t.Error("press alone should not tap")
	}
	s.Advance(1.0 / 60)
	if taps != 1 {
		t.Fatalf("taps = %d, want 1", taps)
	}
	if gotX != 5 || gotY != 15 {
		t.Errorf("local point = (%v, %v), want (5, 15)", gotX, gotY)
	}
	if len(s.injectQueue) != 0 {
		t.Error("inject queue should be drained")
	}
}

func TestTapRequiresSameView(t *testing.T) {
	s := NewScene(100, 100)
	var taps []string
	s.Root().AddChild(tappable("a", Rect{Width: 50, Height: 100}, &taps))
	s.Root().AddChild(tappable("b", Rect{X: 50, Width: 50, Height: 100}, &taps))

	s.InjectPress(10, 10)
	s.InjectRelease(60, 10)
	s.Advance(0)
	s.Advance(0)
	if len(taps) != 0 {
		t.Errorf("taps = %v, want none for a press and release on different views", taps)
	}
}

func TestTapIgnoredWhileBusy(t *testing.T) {
	s := NewScene(100, 100)
	var taps []string
	home := tappable("home", Rect{}, &taps)
	s.Navigator().Push(home, false)
	s.Registry().Push(NewColorView("next", Rect{}, ColorWhite), NewCrossFade())
	if !s.Navigator().Busy() {
		t.Fatal("push should be animated")
	}

	s.InjectTap(50, 50)
	s.Advance(0)
	s.Advance(0)
	if len(taps) != 0 {
		t.Errorf("taps = %v, want none during a transition", taps)
	}
}

func TestScriptTapPushes(t *testing.T) {
	s := NewScene(100, 100)
	home := NewColorView("home", Rect{}, ColorWhite)
	detail := NewColorView("detail", Rect{}, ColorWhite)
	home.OnTap = func(x, y float64) {
		s.Registry().Push(detail, NewCircle())
	}
	script, err := LoadScript([]byte(`{"steps": [
		{"action": "push", "screen": "home"},
		{"action": "tap", "x": 50, "y": 50},
		{"action": "settle"}
	]}`), map[string]*View{"home": home})
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)
	for i := 0; i < 120 && !script.Done(); i++ {
		if err := s.Advance(1.0 / 60); err != nil {
			t.Fatal(err)
		}
	}
	if !script.Done() {
		t.Fatal("script should finish")
	}
	if s.Navigator().Top() != detail {
		t.Error("tap should have pushed detail")
	}
}

func TestHitTestCollapsedView(t *testing.T) {
	var taps []string
	root := NewView("root", Rect{Width: 100, Height: 100})
	v := tappable("v", Rect{Width: 100, Height: 100}, &taps)
	v.SetScale(0, 1)
	root.AddChild(v)
	updateWorldTransform(root, identityTransform, 1)

	if hit := hitTest(root, 50, 50); hit != nil {
		t.Errorf("collapsed view should not be hit, got %v", hit)
	}
}
