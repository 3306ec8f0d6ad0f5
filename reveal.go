package retro

// minRevealRadius is the radius a reveal collapses to or grows from. Zero-area
// masks are avoided so the shape never vanishes mid-animation.
const minRevealRadius = 1.0

// radialShape builds a reveal shape of the given radius around center.
type radialShape func(center Vec2, radius float64) Path

// stage adds views to the container bottom-most first.
func stage(container *View, views ...*View) {
	for _, v := range views {
		container.AddChild(v)
	}
}

// maskWith installs a one-layer mask on v whose path animates from start to
// end over d seconds and holds its final shape. The returned animation is not
// yet attached to a timeline.
func maskWith(v *View, name string, rule FillRule, start, end Path, d float64) *Animation {
	layer := NewShapeLayer(name, start)
	layer.FillRule = rule
	v.SetMask(NewMask(layer))
	return PathAnimation(layer, start, end, d).Hold()
}

// animateRadial runs a radius reveal. Unless grow is set the outgoing view sits
// on top and its mask shrinks from the bounding radius to a point; with grow
// the incoming view sits on top and its mask grows from a point.
func animateRadial(ctx TransitionContext, k Kind, d float64, shape radialShape, grow bool) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	masked := from
	if grow {
		stage(ctx.Container(), from, to)
		masked = to
	} else {
		stage(ctx.Container(), to, from)
	}

	b := masked.Bounds()
	center := b.Center()
	start := shape(center, BoundingRadius(b))
	end := shape(center, minRevealRadius)
	if grow {
		start, end = end, start
	}

	a := maskWith(masked, k.String(), FillNonZero, start, end, d)
	a.OnFinish = finishWith(ctx, masked.ClearMask)
	ctx.Timeline().Add(a)
	return nil
}

// Circle shrinks a circular mask on the outgoing view, uncovering the
// incoming view beneath it.
type Circle struct {
	base
}

// NewCircle returns a Circle with the default duration.
func NewCircle() *Circle {
	return &Circle{base{DefaultDuration}}
}

func (t *Circle) Kind() Kind { return KindCircle }

func (t *Circle) Animate(ctx TransitionContext) error {
	return animateRadial(ctx, KindCircle, t.Duration, CirclePath, false)
}

// ReverseCircle grows a circular mask on the incoming view, placed above the
// outgoing one.
type ReverseCircle struct {
	base
}

// NewReverseCircle returns a ReverseCircle with the default duration.
func NewReverseCircle() *ReverseCircle {
	return &ReverseCircle{base{DefaultDuration}}
}

func (t *ReverseCircle) Kind() Kind { return KindReverseCircle }

func (t *ReverseCircle) Animate(ctx TransitionContext) error {
	return animateRadial(ctx, KindReverseCircle, t.Duration, CirclePath, true)
}

// Star defaults.
const (
	DefaultStarPoints     = 5
	DefaultStarInnerRatio = 0.5
)

// StarReveal shrinks a star-shaped mask on the outgoing view.
type StarReveal struct {
	base
	Points     int
	InnerRatio float64
}

// NewStarReveal returns a five-pointed StarReveal with the default duration.
func NewStarReveal() *StarReveal {
	return &StarReveal{base: base{DefaultDuration}, Points: DefaultStarPoints, InnerRatio: DefaultStarInnerRatio}
}

func (t *StarReveal) Kind() Kind { return KindStarReveal }

func (t *StarReveal) Animate(ctx TransitionContext) error {
	return animateRadial(ctx, KindStarReveal, t.Duration, starShape(t.Points, t.InnerRatio), false)
}

// ReverseStarReveal grows a star-shaped mask on the incoming view.
type ReverseStarReveal struct {
	base
	Points     int
	InnerRatio float64
}

// NewReverseStarReveal returns a five-pointed ReverseStarReveal with the
// default duration.
func NewReverseStarReveal() *ReverseStarReveal {
	return &ReverseStarReveal{base: base{DefaultDuration}, Points: DefaultStarPoints, InnerRatio: DefaultStarInnerRatio}
}

func (t *ReverseStarReveal) Kind() Kind { return KindReverseStarReveal }

func (t *ReverseStarReveal) Animate(ctx TransitionContext) error {
	return animateRadial(ctx, KindReverseStarReveal, t.Duration, starShape(t.Points, t.InnerRatio), true)
}

func starShape(points int, innerRatio float64) radialShape {
	if points < 2 {
		points = DefaultStarPoints
	}
	return func(center Vec2, radius float64) Path {
		return StarPath(center, radius, points, innerRatio)
	}
}
