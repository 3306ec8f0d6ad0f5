package retro

import (
	"fmt"
	"image"
)

// --- ID counter ---

// viewIDCounter is a plain counter; retro is single-threaded.
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// --- View ---

// View is the element transitions stage and animate: a rectangle with an
// optional background color, image content, children, and a shape mask.
// A single flat struct is used for every view, as in a retained scene graph.
//
// Scale and Flip are applied about the view's center, the way a platform
// view's transform pivots around its anchor point.
type View struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *View
	children []*View

	// Frame is the view's rectangle in its parent's coordinate space.
	Frame Rect

	// Transform (about the view's center)
	ScaleX, ScaleY float64
	// Flip is a rotation around the vertical axis in radians, rendered as an
	// orthographic projection (horizontal scale by cos(Flip)).
	Flip float64

	// Appearance
	Alpha   float64
	Visible bool
	Color   Color
	// Image is drawn stretched to the view's bounds when non-nil.
	Image image.Image

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64

	mask *Mask

	// OnTap is called with local coordinates when a press and release both
	// land on the view. Views without OnTap are transparent to taps.
	OnTap func(x, y float64)

	// Metadata
	UserData any

	disposed bool
}

// NewView creates a view with the given frame and default transform.
func NewView(name string, frame Rect) *View {
	return &View{
		ID:      nextViewID(),
		Name:    name,
		Frame:   frame,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
	}
}

// NewColorView creates a view filled with a solid color.
func NewColorView(name string, frame Rect, c Color) *View {
	v := NewView(name, frame)
	v.Color = c
	return v
}

// NewImageView creates a view that displays img stretched to its frame.
func NewImageView(name string, frame Rect, img image.Image) *View {
	v := NewView(name, frame)
	v.Image = img
	return v
}

// Bounds returns the view's rectangle in its own coordinate space.
func (v *View) Bounds() Rect {
	return Rect{Width: v.Frame.Width, Height: v.Frame.Height}
}

// SetFrame moves and resizes the view.
func (v *View) SetFrame(r Rect) {
	v.Frame = r
}

// SetScale sets the view's ScaleX and ScaleY.
func (v *View) SetScale(sx, sy float64) {
	v.ScaleX = sx
	v.ScaleY = sy
}

// ResetTransform restores identity scale and flip.
func (v *View) ResetTransform() {
	v.ScaleX = 1
	v.ScaleY = 1
	v.Flip = 0
}

// String implements fmt.Stringer for log output.
func (v *View) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", v.Name, v.ID)
}

// --- Tree manipulation ---

// AddChild appends child to this view's children, placing it on top of its
// siblings. If child already has a parent, it is removed from that parent
// first; re-adding an existing child moves it to the top.
// Panics if child is nil or child is an ancestor of this view (cycle).
func (v *View) AddChild(child *View) {
	if child == nil {
		panic("retro: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(v, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, v) {
		panic("retro: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = v
	v.children = append(v.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (v *View) AddChildAt(child *View, index int) {
	if child == nil {
		panic("retro: cannot add nil child")
	}
	if isAncestor(child, v) {
		panic("retro: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(v.children) {
		panic("retro: child index out of range")
	}
	child.Parent = v
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
}

// RemoveChild detaches child from this view.
// Panics if child.Parent != v.
func (v *View) RemoveChild(child *View) {
	if child.Parent != v {
		panic("retro: child's parent is not this view")
	}
	v.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.Parent == nil {
		return
	}
	v.Parent.RemoveChild(v)
}

// RemoveChildren detaches all children from this view.
// Children are NOT disposed.
func (v *View) RemoveChildren() {
	for _, child := range v.children {
		child.Parent = nil
	}
	v.children = v.children[:0]
}

// Children returns the child list, bottom-most first. The returned slice
// MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// IndexOf returns the index of child among v's children, or -1.
func (v *View) IndexOf(child *View) int {
	for i, c := range v.children {
		if c == child {
			return i
		}
	}
	return -1
}

// --- Disposal ---

// Dispose removes this view from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.RemoveFromParent()
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	v.ID = 0
	for _, child := range v.children {
		child.Parent = nil
		child.dispose()
	}
	v.children = nil
	v.Parent = nil
	v.mask = nil
	v.Image = nil
	v.UserData = nil
}

// IsDisposed returns true if this view has been disposed.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of view.
func isAncestor(candidate, view *View) bool {
	for p := view; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}
