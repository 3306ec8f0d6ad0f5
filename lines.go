package retro

// AngleLine slides a triangular mask off the outgoing view diagonally,
// starting from the chosen corner.
type AngleLine struct {
	base
	Corner Corner
}

// NewAngleLine returns an AngleLine sliding from the top-left corner.
func NewAngleLine() *AngleLine {
	return &AngleLine{base: base{DefaultDuration}}
}

func (t *AngleLine) Kind() Kind { return KindAngleLine }

// AngleLinePaths returns the start and end triangle of the AngleLine mask for
// a view of size w×h.
func AngleLinePaths(corner Corner, w, h float64) (start, end Path) {
	switch corner {
	case CornerTopRight:
		start = PolygonPath(Vec2{0, -h}, Vec2{2 * w, h}, Vec2{0, h})
		end = PolygonPath(Vec2{-w, 0}, Vec2{w, 2 * h}, Vec2{-w, 2 * h})
	case CornerBottomLeft:
		start = PolygonPath(Vec2{w, 2 * h}, Vec2{-w, 0}, Vec2{w, 0})
		end = PolygonPath(Vec2{2 * w, h}, Vec2{0, -h}, Vec2{2 * w, -h})
	case CornerBottomRight:
		start = PolygonPath(Vec2{0, 2 * h}, Vec2{2 * w, 0}, Vec2{0, 0})
		end = PolygonPath(Vec2{-w, h}, Vec2{w, -h}, Vec2{-w, -h})
	default:
		start = PolygonPath(Vec2{w, -2 * h}, Vec2{-w, h}, Vec2{w, h})
		end = PolygonPath(Vec2{2 * w, h}, Vec2{0, 2 * h}, Vec2{2 * w, 2 * h})
	}
	return start, end
}

func (t *AngleLine) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	start, end := AngleLinePaths(t.Corner, from.Frame.Width, from.Frame.Height)
	a := maskWith(from, KindAngleLine.String(), FillNonZero, start, end, t.Duration)
	a.OnFinish = finishWith(ctx, from.ClearMask)
	ctx.Timeline().Add(a)
	return nil
}

// StraightLine collapses a rectangular mask on the outgoing view toward one
// edge.
type StraightLine struct {
	base
	Edge Edge
}

// NewStraightLine returns a StraightLine sliding from the left edge.
func NewStraightLine() *StraightLine {
	return &StraightLine{base: base{DefaultDuration}}
}

func (t *StraightLine) Kind() Kind { return KindStraightLine }

// StraightLineTarget returns the rectangle the StraightLine mask collapses to
// for a view of size w×h.
func StraightLineTarget(edge Edge, w, h float64) Rect {
	switch edge {
	case EdgeTop:
		return Rect{0, h, w, 0}
	case EdgeRight:
		return Rect{0, 0, 0, h}
	case EdgeBottom:
		return Rect{0, 0, w, 0}
	default:
		return Rect{w, 0, w, h}
	}
}

func (t *StraightLine) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	b := from.Bounds()
	end := RectPath(StraightLineTarget(t.Edge, from.Frame.Width, from.Frame.Height))
	a := maskWith(from, KindStraightLine.String(), FillNonZero, RectPath(b), end, t.Duration)
	a.OnFinish = finishWith(ctx, from.ClearMask)
	ctx.Timeline().Add(a)
	return nil
}
