package retro

import (
	"errors"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene(320, 480)
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Frame != (Rect{Width: 320, Height: 480}) {
		t.Errorf("root.Frame = %v", s.root.Frame)
	}
	if s.Navigator().Container() != s.Root() {
		t.Error("the root should be the navigator's container")
	}
	if s.Navigator().Timeline() != s.Timeline() {
		t.Error("navigator and scene should share a timeline")
	}
	if s.ClearColor != (Color{0, 0, 0, 1}) {
		t.Errorf("ClearColor = %v, want opaque black", s.ClearColor)
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene(320, 480)
	if s.Root() != s.root {
		t.Error("Root() should return the internal root view")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(320, 480)
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneSetScale(t *testing.T) {
	s := NewScene(320, 480)
	s.SetScale(2)
	if s.renderer.scale != 2 {
		t.Errorf("scale = %v, want 2", s.renderer.scale)
	}
	s.SetScale(0)
	if s.renderer.scale != 1 {
		t.Errorf("scale = %v, want 1 for non-positive input", s.renderer.scale)
	}
}

func TestSceneAdvance(t *testing.T) {
	s := NewScene(320, 480)
	child := NewView("child", Rect{X: 10, Y: 20, Width: 50, Height: 50})
	s.Root().AddChild(child)

	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("update calls = %d, want 1", calls)
	}
	if s.Timeline().Now() != 0.5 {
		t.Errorf("Now = %v, want 0.5", s.Timeline().Now())
	}
	if wx, wy := child.LocalToWorld(0, 0); wx != 10 || wy != 20 {
		t.Errorf("world origin = (%v, %v), want (10, 20)", wx, wy)
	}
}

func TestSceneAdvanceStopsOnError(t *testing.T) {
	s := NewScene(320, 480)
	boom := errors.New("boom")
	s.SetUpdateFunc(func() error { return boom })
	if err := s.Advance(0.1); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if s.Timeline().Now() != 0 {
		t.Error("timeline should not advance after an update error")
	}
}

func TestSceneRegistryPush(t *testing.T) {
	s := NewScene(320, 480)
	first := NewColorView("first", Rect{}, ColorWhite)
	second := NewColorView("second", Rect{}, ColorWhite)
	s.Registry().Push(first, NewCrossFade())
	if err := s.Registry().Push(second, NewCrossFade()); err != nil {
		t.Fatal(err)
	}
	if !s.Navigator().Busy() {
		t.Fatal("push should be animated")
	}
	for i := 0; i < 60 && s.Navigator().Busy(); i++ {
		s.Advance(1.0 / 60)
	}
	if s.Navigator().Busy() || s.busy {
		t.Error("transition should have finished")
	}
	if first.Parent != nil || second.Parent != s.Root() {
		t.Error("second should have replaced first")
	}
}
