package retro

// Rectangler geometry, in points.
const (
	rectanglerGrowth   = 60.0
	rectanglerInset    = rectanglerGrowth * 0.2
	rectanglerMaxRings = 8
)

// Rectangler cuts the outgoing view into concentric picture frames that thin
// out while the view fades away. It completes on a timer after Duration,
// independently of the frame animations.
type Rectangler struct {
	base
}

// NewRectangler returns a Rectangler with the default duration.
func NewRectangler() *Rectangler {
	return &Rectangler{base{DefaultDuration}}
}

func (t *Rectangler) Kind() Kind { return KindRectangler }

// rectanglerFrame returns the start and end path of one frame whose outer
// edge is outer, or false when the frame would be too thin to draw.
func rectanglerFrame(outer Rect) (start, end Path, ok bool) {
	if outer.Width <= rectanglerGrowth || outer.Height <= rectanglerGrowth {
		return Path{}, Path{}, false
	}
	inner := RectMovedIn(outer, rectanglerInset)
	if inner.Width <= rectanglerGrowth || inner.Height <= rectanglerGrowth {
		return Path{}, Path{}, false
	}
	return FramePath(outer, RectMovedIn(inner, rectanglerGrowth)), FramePath(outer, inner), true
}

// RectanglerFrames returns the start and end paths of every frame Rectangler
// draws on bounds, outermost first.
func RectanglerFrames(bounds Rect) (starts, ends []Path) {
	for i := 0; i < rectanglerMaxRings; i++ {
		m := float64(i) * rectanglerGrowth
		if m > bounds.Width || m > bounds.Height {
			continue
		}
		start, end, ok := rectanglerFrame(RectMovedIn(bounds, m))
		if !ok {
			continue
		}
		starts = append(starts, start)
		ends = append(ends, end)
	}
	return starts, ends
}

func (t *Rectangler) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	tl := ctx.Timeline()
	starts, ends := RectanglerFrames(from.Bounds())
	mask := NewMask()
	anims := make([]*Animation, 0, len(starts)+1)
	for i := range starts {
		layer := NewShapeLayer("frame", ends[i])
		layer.FillRule = FillEvenOdd
		mask.AddLayer(layer)
		anims = append(anims, PathAnimation(layer, starts[i], ends[i], t.Duration).Hold())
	}
	from.SetMask(mask)
	anims = append(anims, AlphaAnimation(from, from.Alpha, 0, t.Duration).Hold())
	for _, a := range anims {
		tl.Add(a)
	}

	finish := finishWith(ctx, func() {
		// The timer may fire a frame before the animations end.
		for _, a := range anims {
			tl.Remove(a)
		}
		from.Alpha = 1
		from.ClearMask()
	})
	tl.After(t.Duration, func() { finish(true) })
	return nil
}
