package retro

import "github.com/tanema/gween/ease"

// SwingIn spring parameters and starting scale.
const (
	swingInDamping    = 0.6
	swingInVelocity   = 0.1
	swingInStartScale = 0.1
)

// SwingIn brings the incoming view in from off-screen, small, springing into
// place while it grows to full size.
type SwingIn struct {
	base
	Direction Direction
}

// NewSwingIn returns a SwingIn entering from the left.
func NewSwingIn() *SwingIn {
	return &SwingIn{base: base{defaultLongDuration}}
}

func (t *SwingIn) Kind() Kind { return KindSwingIn }

func (t *SwingIn) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	container := ctx.Container()
	stage(container, from)

	b := from.Bounds()
	startX := -b.Width
	if t.Direction == DirectionRight {
		startX = b.Width * 2
	}
	carrier := NewView("swing-in", Rect{startX, 0, to.Frame.Width, to.Frame.Height})
	carrier.AddChild(to)
	stage(container, carrier)

	tl := ctx.Timeline()
	start := Vec2{swingInStartScale, swingInStartScale}
	tl.Add(PositionAnimation(carrier, Vec2{startX, 0}, Vec2{b.X, b.Y}, t.Duration).
		WithEase(Spring(swingInDamping, swingInVelocity)).Hold())
	tl.Add(ScaleAnimation(to, start, Vec2{1, 1}, t.Duration).
		WithEase(ease.OutQuad).Hold().
		Then(finishWith(ctx, func() {
			idx := container.IndexOf(carrier)
			carrier.RemoveFromParent()
			if idx >= 0 {
				container.AddChildAt(to, idx)
			}
		})))
	return nil
}
