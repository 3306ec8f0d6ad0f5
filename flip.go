package retro

import (
	"math"

	"github.com/tanema/gween/ease"
)

// flipPhases returns the two halves of a card flip lasting d seconds: front
// turns edge-on, swap runs, then back turns from edge-on to face-on. Run
// them with Chain.
func flipPhases(front, back *View, d float64, swap func()) []*Animation {
	out := FlipAnimation(front, 0, math.Pi/2, d/2).WithEase(ease.InQuad)
	out.OnFinish = func(bool) { swap() }
	in := FlipAnimation(back, -math.Pi/2, 0, d/2).WithEase(ease.OutQuad).Hold()
	return []*Animation{out, in}
}

// Flip turns the screen over around its vertical axis, from the right,
// showing the incoming view on the back.
type Flip struct {
	base
}

// NewFlip returns a Flip with the default duration.
func NewFlip() *Flip {
	return &Flip{base{DefaultDuration}}
}

func (t *Flip) Kind() Kind { return KindFlip }

func (t *Flip) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	container := ctx.Container()
	stage(container, from)

	phases := flipPhases(from, to, t.Duration, func() {
		from.Visible = false
		stage(container, to)
	})
	Chain(ctx.Timeline(), phases, finishWith(ctx, func() {
		from.Visible = true
	}))
	return nil
}

// MultiFlip defaults.
const (
	DefaultMultiFlipStepDistance = 0.333
	DefaultMultiFlipStepTime     = 0.333
)

// MultiFlip flips the outgoing view over and over, shrinking it by
// StepDistance on every turn until it has no scale left.
type MultiFlip struct {
	StepDistance float64
	StepTime     float64
}

// NewMultiFlip returns a MultiFlip with the default step parameters.
func NewMultiFlip() *MultiFlip {
	return &MultiFlip{StepDistance: DefaultMultiFlipStepDistance, StepTime: DefaultMultiFlipStepTime}
}

func (t *MultiFlip) Kind() Kind { return KindMultiFlip }

// TransitionDuration is derived from the step parameters.
func (t *MultiFlip) TransitionDuration() float64 {
	if t.StepDistance <= 0 {
		return 0
	}
	return 1 / t.StepDistance * t.StepTime
}

// multiFlipStep is the state between two MultiFlip turns.
type multiFlipStep struct {
	scale float64 // factor applied by the next turn
	total float64 // accumulated scale before the next turn
	flip  float64 // accumulated flip angle before the next turn
}

// next returns the state after the current turn, and false once the scale
// has been used up.
func (s multiFlipStep) next(distance float64) (multiFlipStep, bool) {
	n := multiFlipStep{
		scale: s.scale - distance,
		total: s.total * s.scale,
		flip:  s.flip + math.Pi,
	}
	return n, n.scale > 0
}

// MultiFlipScales returns the per-turn scale factors MultiFlip applies for
// the given step distance. Distances outside (0, 1] have no turns. The first
// turn always runs, so a distance of 1 is a single turn down to zero.
func MultiFlipScales(distance float64) []float64 {
	if distance <= 0 || distance > 1 {
		return nil
	}
	var out []float64
	s := multiFlipStep{scale: 1 - distance, total: 1}
	for {
		out = append(out, s.scale)
		var more bool
		if s, more = s.next(distance); !more {
			return out
		}
	}
}

func (t *MultiFlip) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	container := ctx.Container()
	stage(container, to)
	wrapper := NewView("multi-flip", from.Bounds())
	stage(container, wrapper)
	wrapper.AddChild(from)

	tl := ctx.Timeline()
	cleanup := func() {
		from.ResetTransform()
		idx := container.IndexOf(wrapper)
		wrapper.RemoveFromParent()
		if idx >= 0 {
			container.AddChildAt(from, idx)
		}
	}
	if t.StepDistance <= 0 || t.StepDistance > 1 {
		finishWith(ctx, cleanup)(true)
		return nil
	}

	var turn func(s multiFlipStep)
	turn = func(s multiFlipStep) {
		next, more := s.next(t.StepDistance)
		tl.Add(FlipAnimation(from, s.flip, next.flip, t.StepTime).WithEase(ease.InOutQuad).Hold())
		scale := ScaleAnimation(from, Vec2{s.total, s.total}, Vec2{next.total, next.total}, t.StepTime).WithEase(ease.InOutQuad).Hold()
		scale.OnFinish = func(bool) {
			if more {
				turn(next)
				return
			}
			finishWith(ctx, cleanup)(true)
		}
		tl.Add(scale)
	}
	turn(multiFlipStep{scale: 1 - t.StepDistance, total: from.ScaleX})
	return nil
}
