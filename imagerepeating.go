package retro

import "fmt"

// ImageRepeating defaults.
const (
	DefaultImageStepPercent = 0.05
	DefaultImageStepTime    = 0.2
)

// ImageRepeating stacks ever smaller copies of the outgoing screen over the
// incoming one, one every ImageStepTime, then takes them away again one at a
// time, youngest first.
type ImageRepeating struct {
	ImageStepPercent float64
	ImageStepTime    float64
}

// NewImageRepeating returns an ImageRepeating with the default step
// parameters.
func NewImageRepeating() *ImageRepeating {
	return &ImageRepeating{ImageStepPercent: DefaultImageStepPercent, ImageStepTime: DefaultImageStepTime}
}

func (t *ImageRepeating) Kind() Kind { return KindImageRepeating }

// Steps returns the number of overlays the transition is timed for.
func (t *ImageRepeating) Steps() int {
	if t.ImageStepPercent <= 0 {
		return 0
	}
	return int(0.5/t.ImageStepPercent + 1e-9)
}

// TransitionDuration is derived from the step parameters: every step is shown
// once on the way in and once on the way out.
func (t *ImageRepeating) TransitionDuration() float64 {
	return t.ImageStepTime * float64(t.Steps()) * 2
}

// repeatPhase tells whether overlays are being added or removed.
type repeatPhase uint8

const (
	repeatAdding repeatPhase = iota
	repeatRemoving
	repeatDone
)

// imageRepeatState is the ImageRepeating step machine. Every step either adds
// the overlay for rect or removes the youngest overlay.
type imageRepeatState struct {
	phase    repeatPhase
	rect     Rect // next overlay to add
	step     Vec2 // inset per side per step
	overlays []*View
}

func newImageRepeatState(bounds Rect, percent float64) *imageRepeatState {
	return &imageRepeatState{
		rect: bounds,
		step: Vec2{bounds.Width * percent, bounds.Height * percent},
	}
}

// advance performs one step. add creates an overlay for a rectangle; it is
// only called while adding. advance reports whether another step follows.
func (s *imageRepeatState) advance(add func(Rect) *View) bool {
	switch s.phase {
	case repeatAdding:
		s.overlays = append(s.overlays, add(s.rect))
		if s.rect.Width-s.step.X*2 <= 0 || s.rect.Height-s.step.Y*2 <= 0 {
			s.phase = repeatRemoving
			return true
		}
		s.rect = Rect{
			X:      s.rect.X + s.step.X,
			Y:      s.rect.Y + s.step.Y,
			Width:  s.rect.Width - s.step.X*2,
			Height: s.rect.Height - s.step.Y*2,
		}
		return true
	case repeatRemoving:
		n := len(s.overlays) - 1
		s.overlays[n].Dispose()
		s.overlays[n] = nil
		s.overlays = s.overlays[:n]
		if n == 0 {
			s.phase = repeatDone
			return false
		}
		return true
	}
	return false
}

func (t *ImageRepeating) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	snap, err := ctx.Capture(from)
	if err != nil {
		return transitionError(KindImageRepeating, "capture outgoing view", fmt.Errorf("%w: %v", ErrCaptureFailed, err))
	}
	container := ctx.Container()
	stage(container, to)

	if t.ImageStepPercent <= 0 {
		finishWith(ctx, nil)(true)
		return nil
	}

	tl := ctx.Timeline()
	state := newImageRepeatState(container.Bounds(), t.ImageStepPercent)
	add := func(r Rect) *View {
		v := NewImageView("repeat", r, snap.Image)
		stage(container, v)
		return v
	}
	done := finishWith(ctx, nil)

	var step func()
	step = func() {
		if !state.advance(add) {
			done(true)
			return
		}
		tl.After(t.ImageStepTime, step)
	}
	step()
	return nil
}
