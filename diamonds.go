package retro

// diamondLayer returns a mask layer holding a diamond that travels from
// startCenter to endCenter over d seconds.
func diamondLayer(name string, startCenter, endCenter, size Vec2, d float64) (*ShapeLayer, *Animation) {
	start := DiamondPath(startCenter, size)
	layer := NewShapeLayer(name, start)
	return layer, PathAnimation(layer, start, DiamondPath(endCenter, size), d).Hold()
}

// diamondMove is one diamond's start center and travel.
type diamondMove struct {
	name  string
	start Vec2
	delta Vec2
}

// runDiamonds installs one mask layer per move on masked and animates them in
// parallel. The move at index last completes the transition.
func runDiamonds(ctx TransitionContext, masked *View, moves []diamondMove, size Vec2, d float64, last int) {
	mask := NewMask()
	phases := make([]*Animation, len(moves))
	for i, m := range moves {
		layer, a := diamondLayer(m.name, m.start, m.start.Add(m.delta), size, d)
		mask.AddLayer(layer)
		phases[i] = a
	}
	masked.SetMask(mask)
	Parallel(ctx.Timeline(), phases, last, finishWith(ctx, masked.ClearMask))
}

// CollidingDiamonds reveals the incoming view through two diamonds that
// enter from opposite sides and meet in the middle.
type CollidingDiamonds struct {
	base
	Orientation Orientation
}

// NewCollidingDiamonds returns a horizontal CollidingDiamonds with the
// default duration.
func NewCollidingDiamonds() *CollidingDiamonds {
	return &CollidingDiamonds{base: base{defaultLongDuration}}
}

func (t *CollidingDiamonds) Kind() Kind { return KindCollidingDiamonds }

func (t *CollidingDiamonds) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), from, to)

	b := from.Bounds()
	size := b.Size().Scale(2)
	var moves []diamondMove
	if t.Orientation == OrientationVertical {
		moves = []diamondMove{
			{"top", Vec2{b.Width / 2, -size.Y / 2}, Vec2{0, size.Y}},
			{"bottom", Vec2{b.Width / 2, b.Height + size.Y/2}, Vec2{0, -size.Y}},
		}
	} else {
		moves = []diamondMove{
			{"left", Vec2{-size.X / 2, b.Height / 2}, Vec2{size.X, 0}},
			{"right", Vec2{b.Width + size.X/2, b.Height / 2}, Vec2{-size.X, 0}},
		}
	}
	runDiamonds(ctx, to, moves, size, t.Duration, 1)
	return nil
}

// SplitFromCenter masks the outgoing view with four diamonds around its
// center that move apart, opening a gap onto the incoming view.
type SplitFromCenter struct {
	base
}

// NewSplitFromCenter returns a SplitFromCenter with the default duration.
func NewSplitFromCenter() *SplitFromCenter {
	return &SplitFromCenter{base{defaultLongDuration}}
}

func (t *SplitFromCenter) Kind() Kind { return KindSplitFromCenter }

func (t *SplitFromCenter) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	b := from.Bounds()
	size := b.Size().Scale(2)
	c := b.Center()
	hx, hy := size.X/2, size.Y/2
	moves := []diamondMove{
		{"top", Vec2{c.X, c.Y - hy}, Vec2{0, -hy}},
		{"bottom", Vec2{c.X, c.Y + hy}, Vec2{0, hy}},
		{"right", Vec2{c.X + hx, c.Y}, Vec2{hx, 0}},
		{"left", Vec2{c.X - hx, c.Y}, Vec2{-hx, 0}},
	}
	runDiamonds(ctx, from, moves, size, t.Duration, 0)
	return nil
}

// ShrinkingGrowingDiamonds reveals the incoming view through a diamond ring:
// two coincident diamonds, one growing and one shrinking, filled even-odd.
type ShrinkingGrowingDiamonds struct {
	base
}

// NewShrinkingGrowingDiamonds returns a ShrinkingGrowingDiamonds with the
// default duration.
func NewShrinkingGrowingDiamonds() *ShrinkingGrowingDiamonds {
	return &ShrinkingGrowingDiamonds{base{defaultLongDuration}}
}

func (t *ShrinkingGrowingDiamonds) Kind() Kind { return KindShrinkingGrowingDiamonds }

func (t *ShrinkingGrowingDiamonds) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), from, to)

	b := from.Bounds()
	center := b.Center()
	size := b.Size()
	start := ringOfDiamonds(center, size, size)
	end := ringOfDiamonds(center, size.Scale(2), Vec2{1, 1})

	a := maskWith(to, KindShrinkingGrowingDiamonds.String(), FillEvenOdd, start, end, t.Duration)
	a.OnFinish = finishWith(ctx, to.ClearMask)
	ctx.Timeline().Add(a)
	return nil
}

// ringOfDiamonds returns two concentric diamonds in one path. Filled even-odd
// the area between them is covered.
func ringOfDiamonds(center, outer, inner Vec2) Path {
	p := DiamondPath(center, outer)
	p.Append(DiamondPath(center, inner))
	return p
}
