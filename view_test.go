package retro

import "testing"

var testFrame = Rect{Width: 100, Height: 50}

// --- Constructor defaults ---

func TestNewViewDefaults(t *testing.T) {
	v := NewView("test", testFrame)
	assertViewDefaults(t, v, "test")
	if v.Frame != testFrame {
		t.Errorf("Frame = %v, want %v", v.Frame, testFrame)
	}
}

func TestNewColorViewDefaults(t *testing.T) {
	c := Color{0.2, 0.4, 0.6, 1}
	v := NewColorView("color", testFrame, c)
	assertViewDefaults(t, v, "color")
	if v.Color != c {
		t.Errorf("Color = %v, want %v", v.Color, c)
	}
}

func assertViewDefaults(t *testing.T, v *View, name string) {
	t.Helper()
	if v.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if v.Name != name {
		t.Errorf("Name = %q, want %q", v.Name, name)
	}
	if v.ScaleX != 1 || v.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", v.ScaleX, v.ScaleY)
	}
	if v.Flip != 0 {
		t.Errorf("Flip = %v, want 0", v.Flip)
	}
	if v.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", v.Alpha)
	}
	if !v.Visible {
		t.Error("Visible should be true")
	}
	if v.GetMask() != nil {
		t.Error("mask should be nil")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewView("a", testFrame)
	b := NewView("b", testFrame)
	c := NewColorView("c", testFrame, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestBoundsIsLocal(t *testing.T) {
	v := NewView("v", Rect{X: 30, Y: 40, Width: 100, Height: 50})
	if got, want := v.Bounds(), (Rect{Width: 100, Height: 50}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestResetTransform(t *testing.T) {
	v := NewView("v", testFrame)
	v.SetScale(0.5, 2)
	v.Flip = 1
	v.ResetTransform()
	if v.ScaleX != 1 || v.ScaleY != 1 || v.Flip != 0 {
		t.Errorf("after reset scale = (%v, %v) flip = %v", v.ScaleX, v.ScaleY, v.Flip)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewView("parent", testFrame)
	child := NewView("child", testFrame)
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewView("p1", testFrame)
	p2 := NewView("p2", testFrame)
	child := NewView("child", testFrame)

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildMovesToTop(t *testing.T) {
	parent := NewView("parent", testFrame)
	a := NewView("a", testFrame)
	b := NewView("b", testFrame)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(a)

	if parent.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if parent.IndexOf(b) != 0 || parent.IndexOf(a) != 1 {
		t.Error("re-adding a should move it above b")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewView("parent", testFrame)
	child := NewView("child", testFrame)
	grandchild := NewView("grandchild", testFrame)
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildNilPanic(t *testing.T) {
	v := NewView("v", testFrame)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	v.AddChild(nil)
}

// --- AddChildAt ---

func TestAddChildAt(t *testing.T) {
	parent := NewView("parent", testFrame)
	a := NewView("a", testFrame)
	b := NewView("b", testFrame)
	c := NewView("c", testFrame)
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtOutOfRangePanic(t *testing.T) {
	parent := NewView("parent", testFrame)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.AddChildAt(NewView("a", testFrame), 2)
}

// --- Removal ---

func TestRemoveChild(t *testing.T) {
	parent := NewView("parent", testFrame)
	child := NewView("child", testFrame)
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewView("p1", testFrame)
	p2 := NewView("p2", testFrame)
	child := NewView("child", testFrame)
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	v := NewView("orphan", testFrame)
	v.RemoveFromParent()
	if v.Parent != nil {
		t.Error("orphan should stay parentless")
	}
}

func TestRemoveChildren(t *testing.T) {
	parent := NewView("parent", testFrame)
	a := NewView("a", testFrame)
	b := NewView("b", testFrame)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should be detached")
	}
	if a.IsDisposed() {
		t.Error("RemoveChildren should not dispose")
	}
}

func TestIndexOfMissing(t *testing.T) {
	parent := NewView("parent", testFrame)
	if got := parent.IndexOf(NewView("x", testFrame)); got != -1 {
		t.Errorf("IndexOf = %d, want -1", got)
	}
}

// --- Dispose ---

func TestDisposeRecursive(t *testing.T) {
	root := NewView("root", testFrame)
	parent := NewView("parent", testFrame)
	child := NewView("child", testFrame)
	root.AddChild(parent)
	parent.AddChild(child)
	parent.SetMask(NewMask())

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("parent and child should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed view should be removed from its parent")
	}
	if parent.ID != 0 {
		t.Errorf("ID = %d, want 0 after dispose", parent.ID)
	}
	if parent.GetMask() != nil {
		t.Error("mask should be released")
	}
}

func TestDisposeTwiceNoPanic(t *testing.T) {
	v := NewView("v", testFrame)
	v.Dispose()
	v.Dispose()
}

func TestViewString(t *testing.T) {
	var v *View
	if v.String() != "<nil>" {
		t.Errorf("nil String = %q", v.String())
	}
}
