package retro

import "math"

// clockPhases lists the start and end angle of each quarter sweep, as
// multiples of π. Ends overshoot slightly so no phase ends on a zero-sweep
// arc.
var clockPhases = [4][2]float64{
	{2.0, 1.50001},
	{1.5, 1.00001},
	{1.0, 0.50001},
	{0.5, 0.0001},
}

// Clock wipes the outgoing view away like a clock hand sweeping a full turn,
// in four chained quarter phases.
type Clock struct {
	base
}

// NewClock returns a Clock with the default duration.
func NewClock() *Clock {
	return &Clock{base{defaultClockTime}}
}

func (t *Clock) Kind() Kind { return KindClock }

func (t *Clock) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	stage(ctx.Container(), to, from)

	b := from.Bounds()
	radius := 2 * BoundingRadius(b)
	center := b.Center()
	wedge := func(end float64) Path {
		return WedgePath(center, radius, end*math.Pi)
	}

	layer := NewShapeLayer(KindClock.String(), wedge(2))
	from.SetMask(NewMask(layer))

	Chain(ctx.Timeline(), clockSweep(layer, wedge, t.Duration), finishWith(ctx, func() {
		from.ClearMask()
		from.RemoveFromParent()
	}))
	return nil
}

// clockSweep returns the quarter phases of a sweep lasting d seconds, each
// animating layer between two wedges built by wedge.
func clockSweep(layer *ShapeLayer, wedge func(end float64) Path, d float64) []*Animation {
	phases := make([]*Animation, len(clockPhases))
	for i, p := range clockPhases {
		phases[i] = PathAnimation(layer, wedge(p[0]), wedge(p[1]), d/4).Hold()
	}
	return phases
}
