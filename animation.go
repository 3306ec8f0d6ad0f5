package retro

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property names the value an Animation drives.
type Property uint8

const (
	PropPath     Property = iota // ShapeLayer.Path
	PropAlpha                    // View.Alpha
	PropScale                    // View.ScaleX, View.ScaleY
	PropFlip                     // View.Flip
	PropPosition                 // View.Frame.X, View.Frame.Y
)

var propertyNames = [...]string{"path", "alpha", "scale", "flip", "position"}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", p)
}

// FillMode decides what the target shows once an animation is removed.
type FillMode uint8

const (
	// FillRemoved restores the value the target had when the animation was
	// added.
	FillRemoved FillMode = iota
	// FillForwards keeps the animation's final value.
	FillForwards
)

// Animation interpolates one property of a view or shape layer from a start
// value to an end value. Create one with the property constructors
// (PathAnimation, AlphaAnimation, ...), adjust its fields, then hand it to a
// Timeline. An animation is single-use.
//
// OnFinish is called exactly once, after the animation has left the timeline:
// with true when it ran to its end, false when it was removed early.
type Animation struct {
	Property Property
	Duration float64
	Ease     ease.TweenFunc
	FillMode FillMode
	// RemovedOnCompletion removes the animation from the timeline at its
	// natural end. When false the animation holds its final value until it is
	// removed.
	RemovedOnCompletion bool
	// AutoReverses plays the animation backwards after it reaches the end,
	// doubling its running time.
	AutoReverses bool
	OnFinish     func(finished bool)

	layer *ShapeLayer
	view  *View

	fromPath, toPath Path
	from, to         Vec2

	model    Vec2
	modelPth Path

	tween     *gween.Tween
	reversing bool
	progress  float64
	ended     bool
	timeline  *Timeline
	finish    *Event
}

func newAnimation(prop Property, duration float64) *Animation {
	return &Animation{
		Property:            prop,
		Duration:            duration,
		Ease:                ease.Linear,
		RemovedOnCompletion: true,
	}
}

// PathAnimation animates layer's path from one shape to another.
func PathAnimation(layer *ShapeLayer, from, to Path, duration float64) *Animation {
	a := newAnimation(PropPath, duration)
	a.layer = layer
	a.fromPath = from
	a.toPath = to
	return a
}

// AlphaAnimation animates v.Alpha.
func AlphaAnimation(v *View, from, to, duration float64) *Animation {
	a := newAnimation(PropAlpha, duration)
	a.view = v
	a.from.X, a.to.X = from, to
	return a
}

// ScaleAnimation animates v.ScaleX and v.ScaleY.
func ScaleAnimation(v *View, from, to Vec2, duration float64) *Animation {
	a := newAnimation(PropScale, duration)
	a.view = v
	a.from, a.to = from, to
	return a
}

// FlipAnimation animates v.Flip, the rotation around the vertical axis.
func FlipAnimation(v *View, from, to, duration float64) *Animation {
	a := newAnimation(PropFlip, duration)
	a.view = v
	a.from.X, a.to.X = from, to
	return a
}

// PositionAnimation animates the origin of v.Frame.
func PositionAnimation(v *View, from, to Vec2, duration float64) *Animation {
	a := newAnimation(PropPosition, duration)
	a.view = v
	a.from, a.to = from, to
	return a
}

// Hold makes the animation keep its final value after it is removed. It
// returns a for chaining.
func (a *Animation) Hold() *Animation {
	a.FillMode = FillForwards
	return a
}

// WithEase sets the easing function and returns a for chaining.
func (a *Animation) WithEase(fn ease.TweenFunc) *Animation {
	a.Ease = fn
	return a
}

// Then sets OnFinish and returns a for chaining.
func (a *Animation) Then(fn func(finished bool)) *Animation {
	a.OnFinish = fn
	return a
}

// Progress returns the eased progress most recently applied, in [0, 1] for
// the standard easing curves.
func (a *Animation) Progress() float64 {
	return a.progress
}

// Running reports whether the animation is attached to a timeline.
func (a *Animation) Running() bool {
	return a.timeline != nil
}

// target identifies what the animation writes to. Two animations with the
// same target and property cannot run at once.
func (a *Animation) target() any {
	if a.layer != nil {
		return a.layer
	}
	return a.view
}

// start captures the model value and applies the start value.
func (a *Animation) start(tl *Timeline) {
	a.timeline = tl
	a.finish = NewEvent("animation "+a.Property.String(), a.OnFinish)
	fn := a.Ease
	if fn == nil {
		fn = ease.Linear
	}
	a.tween = gween.New(0, 1, float32(a.Duration), fn)
	a.captureModel()
	a.apply(0)
}

// advance moves the animation forward by dt seconds and reports whether it
// reached its end.
func (a *Animation) advance(dt float64) bool {
	if a.ended {
		return true
	}
	if a.view != nil && a.view.IsDisposed() {
		a.ended = true
		return true
	}
	if a.Duration <= 0 {
		a.ended = true
		if a.AutoReverses {
			a.apply(0)
		} else {
			a.apply(1)
		}
		return true
	}
	val, done := a.tween.Update(float32(dt))
	if !done {
		a.apply(float64(val))
		return false
	}
	if a.AutoReverses && !a.reversing {
		a.reversing = true
		fn := a.Ease
		if fn == nil {
			fn = ease.Linear
		}
		a.tween = gween.New(1, 0, float32(a.Duration), fn)
		a.apply(1)
		return false
	}
	if a.reversing {
		a.apply(0)
	} else {
		a.apply(1)
	}
	a.ended = true
	return true
}

// detach leaves the target showing the final value or the model value,
// depending on FillMode.
func (a *Animation) detach() {
	a.timeline = nil
	if a.FillMode != FillForwards {
		a.restoreModel()
	}
}

func (a *Animation) apply(t float64) {
	a.progress = t
	switch a.Property {
	case PropPath:
		a.layer.Path = a.fromPath.Lerp(a.toPath, t)
	case PropAlpha:
		a.view.Alpha = lerp(a.from.X, a.to.X, t)
	case PropScale:
		v := a.from.Lerp(a.to, t)
		a.view.ScaleX, a.view.ScaleY = v.X, v.Y
	case PropFlip:
		a.view.Flip = lerp(a.from.X, a.to.X, t)
	case PropPosition:
		v := a.from.Lerp(a.to, t)
		a.view.Frame.X, a.view.Frame.Y = v.X, v.Y
	}
}

func (a *Animation) captureModel() {
	switch a.Property {
	case PropPath:
		a.modelPth = a.layer.Path
	case PropAlpha:
		a.model.X = a.view.Alpha
	case PropScale:
		a.model = Vec2{a.view.ScaleX, a.view.ScaleY}
	case PropFlip:
		a.model.X = a.view.Flip
	case PropPosition:
		a.model = Vec2{a.view.Frame.X, a.view.Frame.Y}
	}
}

func (a *Animation) restoreModel() {
	switch a.Property {
	case PropPath:
		a.layer.Path = a.modelPth
	case PropAlpha:
		a.view.Alpha = a.model.X
	case PropScale:
		a.view.ScaleX, a.view.ScaleY = a.model.X, a.model.Y
	case PropFlip:
		a.view.Flip = a.model.X
	case PropPosition:
		a.view.Frame.X, a.view.Frame.Y = a.model.X, a.model.Y
	}
}
