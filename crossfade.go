package retro

// CrossFade fades the outgoing view out while the incoming view, stacked on
// top, fades in.
type CrossFade struct {
	base
}

// NewCrossFade returns a CrossFade with the default duration.
func NewCrossFade() *CrossFade {
	return &CrossFade{base{DefaultDuration}}
}

func (t *CrossFade) Kind() Kind { return KindCrossFade }

func (t *CrossFade) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	from.Alpha = 1
	to.Alpha = 0
	stage(ctx.Container(), from, to)

	tl := ctx.Timeline()
	tl.Add(AlphaAnimation(from, 1, 0, t.Duration).Hold())
	tl.Add(AlphaAnimation(to, 0, 1, t.Duration).Hold().Then(finishWith(ctx, func() {
		from.Alpha = 1
	})))
	return nil
}
