package retro

import "math"

// multiCircleCell is the side of one grid cell, in points.
const multiCircleCell = 20.0

// MultiCircle covers the outgoing view with a grid of discs that all shrink
// to points at once. The top-left disc completes the transition; every disc
// shares one duration so they finish together.
type MultiCircle struct {
	base
}

// NewMultiCircle returns a MultiCircle with the default duration.
func NewMultiCircle() *MultiCircle {
	return &MultiCircle{base{DefaultDuration}}
}

func (t *MultiCircle) Kind() Kind { return KindMultiCircle }

// MultiCircleGrid returns the number of rows and columns of discs used to
// cover bounds. One extra row and two extra columns overlap the edges.
func MultiCircleGrid(bounds Rect) (rows, cols int) {
	rows = 1 + int(math.Ceil(bounds.Height/multiCircleCell))
	cols = 2 + int(math.Ceil(bounds.Width/multiCircleCell))
	return rows, cols
}

func (t *MultiCircle) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	rows, cols := MultiCircleGrid(from.Bounds())
	mask := NewMask()
	phases := make([]*Animation, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			center := Vec2{
				multiCircleCell/2 + float64(c)*multiCircleCell,
				multiCircleCell/2 + float64(r)*multiCircleCell,
			}
			start := CirclePath(center, multiCircleCell)
			layer := NewShapeLayer("disc", start)
			mask.AddLayer(layer)
			phases = append(phases, PathAnimation(layer, start, CirclePath(center, minRevealRadius), t.Duration).Hold())
		}
	}
	from.SetMask(mask)
	Parallel(ctx.Timeline(), phases, 0, finishWith(ctx, func() {
		from.RemoveFromParent()
		from.ClearMask()
	}))
	return nil
}
