package retro

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// fakeContext is a TransitionContext driven directly by a test.
type fakeContext struct {
	from, to    *View
	container   *View
	tl          *Timeline
	capturer    Capturer
	cancelled   bool
	completions []bool
}

func newFakeContext(w, h float64) *fakeContext {
	frame := Rect{Width: w, Height: h}
	c := &fakeContext{
		from:      NewColorView("from", frame, Color{1, 0, 0, 1}),
		to:        NewColorView("to", frame, Color{0, 0, 1, 1}),
		container: NewView("container", frame),
		tl:        NewTimeline(),
		capturer:  NewSoftRenderer(1),
	}
	c.container.AddChild(c.from)
	return c
}

func (c *fakeContext) From() *View         { return c.from }
func (c *fakeContext) To() *View           { return c.to }
func (c *fakeContext) Container() *View    { return c.container }
func (c *fakeContext) Timeline() *Timeline { return c.tl }
func (c *fakeContext) WasCancelled() bool  { return c.cancelled }

func (c *fakeContext) Capture(v *View) (*Snapshot, error) {
	return c.capturer.Capture(v)
}

func (c *fakeContext) Complete(success bool) {
	c.completions = append(c.completions, success)
}

// run advances the timeline at 60 Hz until the context completes or limit
// seconds pass.
func (c *fakeContext) run(limit float64) {
	for c.tl.Now() < limit && len(c.completions) == 0 {
		c.tl.Update(1.0 / 60)
	}
	// Let same-frame stragglers settle.
	c.tl.Update(1.0 / 60)
}

func seeded(t Transition) Transition {
	if tf, ok := t.(*TiledFlip); ok {
		tf.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return t
}

func TestEveryKindCompletesOnce(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			ctx := newFakeContext(200, 200)
			tr := seeded(MustNew(k))
			if tr.Kind() != k {
				t.Fatalf("Kind = %v, want %v", tr.Kind(), k)
			}
			if err := tr.Animate(ctx); err != nil {
				t.Fatalf("Animate: %v", err)
			}
			ctx.run(tr.TransitionDuration() + 2)

			if !slices.Equal(ctx.completions, []bool{true}) {
				t.Fatalf("completions = %v, want [true]", ctx.completions)
			}
			if ctx.to.Parent != ctx.container {
				t.Errorf("incoming view parent = %v, want container", ctx.to.Parent)
			}
			for _, v := range []*View{ctx.from, ctx.to} {
				if v.GetMask() != nil {
					t.Errorf("%s still masked", v.Name)
				}
				if v.Alpha != 1 {
					t.Errorf("%s alpha = %v, want 1", v.Name, v.Alpha)
				}
				if !v.Visible {
					t.Errorf("%s hidden", v.Name)
				}
			}
			if ctx.to.ScaleX != 1 || ctx.to.ScaleY != 1 {
				t.Errorf("incoming scale = (%v, %v), want (1, 1)", ctx.to.ScaleX, ctx.to.ScaleY)
			}
		})
	}
}

func TestCompletedTransitionsLeaveTimelineIdle(t *testing.T) {
	for _, k := range Kinds() {
		ctx := newFakeContext(200, 200)
		tr := seeded(MustNew(k))
		if err := tr.Animate(ctx); err != nil {
			t.Fatalf("%v: Animate: %v", k, err)
		}
		ctx.run(tr.TransitionDuration() + 2)
		ctx.tl.Update(tr.TransitionDuration())
		if !ctx.tl.Idle() {
			t.Errorf("%v: %d animations left on the timeline", k, ctx.tl.Len())
		}
	}
}

func TestCancelledTransitionReportsFailure(t *testing.T) {
	for _, k := range Kinds() {
		ctx := newFakeContext(200, 200)
		ctx.cancelled = true
		tr := seeded(MustNew(k))
		if err := tr.Animate(ctx); err != nil {
			t.Fatalf("%v: Animate: %v", k, err)
		}
		ctx.run(tr.TransitionDuration() + 2)
		if !slices.Equal(ctx.completions, []bool{false}) {
			t.Errorf("%v: completions = %v, want [false]", k, ctx.completions)
		}
	}
}

func TestMissingViewIsAnError(t *testing.T) {
	for _, k := range Kinds() {
		ctx := newFakeContext(200, 200)
		ctx.to = nil
		err := MustNew(k).Animate(ctx)
		if !errors.Is(err, ErrMissingView) {
			t.Errorf("%v: err = %v, want ErrMissingView", k, err)
		}
		ctx.tl.Update(10)
		if len(ctx.completions) != 0 {
			t.Errorf("%v: completed without views: %v", k, ctx.completions)
		}
	}
}

type failingCapturer struct{}

func (failingCapturer) Capture(*View) (*Snapshot, error) {
	return nil, errors.New("no pixels")
}

func TestCaptureFailureIsTransitionError(t *testing.T) {
	for _, k := range []Kind{KindTiledFlip, KindImageRepeating} {
		ctx := newFakeContext(200, 200)
		ctx.capturer = failingCapturer{}
		err := MustNew(k).Animate(ctx)

		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("%v: err = %v, want *TransitionError", k, err)
		}
		if te.Kind != k {
			t.Errorf("%v: error kind = %v", k, te.Kind)
		}
		if !errors.Is(err, ErrCaptureFailed) {
			t.Errorf("%v: err should wrap ErrCaptureFailed", k)
		}
	}
}

// --- Variant specifics ---

func TestCircleRadii(t *testing.T) {
	ctx := newFakeContext(300, 600)
	if err := NewCircle().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	layer := ctx.from.GetMask().Layers()[0]
	if r := layer.Path.Segment(1).Radius; !approx(r, 335.4101966, 1e-6) {
		t.Errorf("start radius = %v, want ~335.41", r)
	}
	if ctx.container.Children()[1] != ctx.from {
		t.Error("outgoing view should be on top")
	}
	ctx.run(1)
	if r := layer.Path.Segment(1).Radius; !approx(r, minRevealRadius, 1e-6) {
		t.Errorf("end radius = %v, want %v", r, minRevealRadius)
	}
}

func TestReverseCircleGrowsOnIncoming(t *testing.T) {
	ctx := newFakeContext(300, 600)
	if err := NewReverseCircle().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.to.GetMask() == nil {
		t.Fatal("incoming view should be masked")
	}
	layer := ctx.to.GetMask().Layers()[0]
	if r := layer.Path.Segment(1).Radius; !approx(r, minRevealRadius, 1e-9) {
		t.Errorf("start radius = %v, want %v", r, minRevealRadius)
	}
	ctx.run(1)
	if r := layer.Path.Segment(1).Radius; !approx(r, 335.4101966, 1e-6) {
		t.Errorf("end radius = %v, want ~335.41", r)
	}
}

func TestClockSweepIsMonotone(t *testing.T) {
	ctx := newFakeContext(200, 200)
	if err := NewClock().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	layer := ctx.from.GetMask().Layers()[0]
	prev := math.Inf(1)
	for len(ctx.completions) == 0 && ctx.tl.Now() < 2 {
		end := layer.Path.Segment(2).End
		if end > prev+1e-9 {
			t.Fatalf("sweep end went back from %v to %v at t=%v", prev, end, ctx.tl.Now())
		}
		prev = end
		ctx.tl.Update(1.0 / 60)
	}
	if ctx.from.Parent != nil {
		t.Error("clock should remove the outgoing view")
	}
}

func TestStarRevealParameters(t *testing.T) {
	ctx := newFakeContext(200, 200)
	tr := NewStarReveal()
	tr.Points = 7
	if err := tr.Animate(ctx); err != nil {
		t.Fatal(err)
	}
	verts := ctx.from.GetMask().Layers()[0].Path.Vertices()
	if len(verts) != 14 {
		t.Errorf("vertices = %d, want 14", len(verts))
	}
}

func TestMultiFlipScales(t *testing.T) {
	got := MultiFlipScales(0.333)
	want := []float64{0.667, 0.334, 0.001}
	if len(got) != len(want) {
		t.Fatalf("scales = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i], 1e-9) {
			t.Errorf("scale %d = %v, want %v", i, got[i], want[i])
		}
	}
	if MultiFlipScales(0) != nil {
		t.Error("zero distance should have no turns")
	}
	if got := MultiFlipScales(1); !slices.Equal(got, []float64{0}) {
		t.Errorf("full distance scales = %v, want [0]", got)
	}
	if MultiFlipScales(1.5) != nil {
		t.Error("distance above 1 should have no turns")
	}
}

func TestMultiFlipFullStepFlipsOnce(t *testing.T) {
	ctx := newFakeContext(200, 200)
	m := NewMultiFlip()
	m.StepDistance = 1
	if err := m.Animate(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.completions) != 0 {
		t.Fatal("a full step should animate one turn before completing")
	}
	minScale := ctx.from.ScaleX
	for len(ctx.completions) == 0 && ctx.tl.Now() < 2 {
		minScale = math.Min(minScale, ctx.from.ScaleX)
		ctx.tl.Update(1.0 / 60)
	}
	if !slices.Equal(ctx.completions, []bool{true}) {
		t.Fatalf("completions = %v, want [true]", ctx.completions)
	}
	if minScale > 0.1 {
		t.Errorf("smallest scale = %v, want the turn to shrink to zero", minScale)
	}
	if now := ctx.tl.Now(); now < m.StepTime-1e-9 {
		t.Errorf("completed at %v, before one step of %v", now, m.StepTime)
	}
}

func TestMultiFlipDerivedDuration(t *testing.T) {
	m := NewMultiFlip()
	if !approx(m.TransitionDuration(), 1, 1e-9) {
		t.Errorf("duration = %v, want 1", m.TransitionDuration())
	}
	if DefaultDurationFor(KindMultiFlip) != m.TransitionDuration() {
		t.Error("DefaultDurationFor should match the derived duration")
	}
}

func TestMultiFlipRestoresOutgoingView(t *testing.T) {
	ctx := newFakeContext(200, 200)
	if err := NewMultiFlip().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.from.Parent == ctx.container {
		t.Fatal("outgoing view should be wrapped while flipping")
	}
	ctx.run(3)
	if ctx.from.Parent != ctx.container {
		t.Error("outgoing view should be back in the container")
	}
	if ctx.from.Flip != 0 || ctx.from.ScaleX != 1 {
		t.Errorf("outgoing transform not reset: flip=%v scale=%v", ctx.from.Flip, ctx.from.ScaleX)
	}
}

func TestImageRepeatingSteps(t *testing.T) {
	r := NewImageRepeating()
	if r.Steps() != 10 {
		t.Errorf("Steps = %d, want 10", r.Steps())
	}
	if !approx(r.TransitionDuration(), 4, 1e-9) {
		t.Errorf("duration = %v, want 4", r.TransitionDuration())
	}
}

func TestImageRepeatingStacksThenUnstacks(t *testing.T) {
	ctx := newFakeContext(200, 200)
	if err := NewImageRepeating().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	peak := 0
	var peakRects []Rect
	for len(ctx.completions) == 0 && ctx.tl.Now() < 6 {
		if n := ctx.container.NumChildren(); n > peak {
			peak = n
			peakRects = peakRects[:0]
			for _, v := range ctx.container.Children()[2:] {
				peakRects = append(peakRects, v.Frame)
			}
		}
		ctx.tl.Update(0.05)
	}
	// from, to and ten overlays.
	if peak != 12 {
		t.Errorf("peak children = %d, want 12", peak)
	}
	if len(peakRects) > 1 {
		if got, want := peakRects[1], (Rect{10, 10, 180, 180}); !approxRect(got, want) {
			t.Errorf("second overlay = %v, want %v", got, want)
		}
	}
	if n := ctx.container.NumChildren(); n != 2 {
		t.Errorf("children after completion = %d, want 2", n)
	}
	if now := ctx.tl.Now(); now < 3.7 || now > 3.9 {
		t.Errorf("completed at %v, want ~3.8", now)
	}
}

func approxRect(a, b Rect) bool {
	return approx(a.X, b.X, 1e-9) && approx(a.Y, b.Y, 1e-9) &&
		approx(a.Width, b.Width, 1e-9) && approx(a.Height, b.Height, 1e-9)
}

func TestRectanglerFrames(t *testing.T) {
	starts, ends := RectanglerFrames(Rect{Width: 300, Height: 600})
	if len(starts) == 0 || len(starts) != len(ends) {
		t.Fatalf("frames = %d/%d", len(starts), len(ends))
	}
	if len(starts) > rectanglerMaxRings {
		t.Errorf("frames = %d, want at most %d", len(starts), rectanglerMaxRings)
	}
	// The first frame's outer edge is the view bounds.
	if v := ends[0].Vertices()[0]; v != (Vec2{}) {
		t.Errorf("first frame starts at %v, want origin", v)
	}
	if s, _ := RectanglerFrames(Rect{Width: 40, Height: 40}); len(s) != 0 {
		t.Errorf("small view frames = %d, want 0", len(s))
	}
}

func TestAngleLinePaths(t *testing.T) {
	w, h := 100.0, 200.0
	for _, c := range []Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
		start, end := AngleLinePaths(c, w, h)
		if !start.Contains(Vec2{w / 2, h / 2}, FillNonZero) {
			t.Errorf("corner %d: start triangle should cover the center", c)
		}
		if end.Contains(Vec2{w / 2, h / 2}, FillNonZero) {
			t.Errorf("corner %d: end triangle should clear the center", c)
		}
	}
}

func TestStraightLineTarget(t *testing.T) {
	tests := []struct {
		edge Edge
		want Rect
	}{
		{EdgeLeft, Rect{100, 0, 100, 200}},
		{EdgeRight, Rect{0, 0, 0, 200}},
		{EdgeTop, Rect{0, 200, 100, 0}},
		{EdgeBottom, Rect{0, 0, 100, 0}},
	}
	for _, tt := range tests {
		if got := StraightLineTarget(tt.edge, 100, 200); got != tt.want {
			t.Errorf("edge %d: %v, want %v", tt.edge, got, tt.want)
		}
	}
}

func TestTiledFlipCells(t *testing.T) {
	cells := TiledFlipCells(Rect{Width: 300, Height: 600})
	if len(cells) != tiledFlipColumns*tiledFlipRows {
		t.Fatalf("cells = %d, want %d", len(cells), tiledFlipColumns*tiledFlipRows)
	}
	if got, want := cells[6], (Rect{60, 60, 60, 60}); got != want {
		t.Errorf("cells[6] = %v, want %v", got, want)
	}
	if TiledFlipCells(Rect{}) != nil {
		t.Error("empty bounds should have no cells")
	}
}

func TestMultiCircleGrid(t *testing.T) {
	rows, cols := MultiCircleGrid(Rect{Width: 300, Height: 600})
	if rows != 31 || cols != 17 {
		t.Errorf("grid = %dx%d, want 31x17", rows, cols)
	}
	ctx := newFakeContext(300, 600)
	if err := NewMultiCircle().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	if n := len(ctx.from.GetMask().Layers()); n != rows*cols {
		t.Errorf("layers = %d, want %d", n, rows*cols)
	}
}

func TestSwingInSettlesInPlace(t *testing.T) {
	ctx := newFakeContext(200, 200)
	tr := NewSwingIn()
	tr.Direction = DirectionRight
	if err := tr.Animate(ctx); err != nil {
		t.Fatal(err)
	}
	carrier := ctx.to.Parent
	if carrier == ctx.container || carrier.Frame.X != 400 {
		t.Fatalf("incoming view should start on a carrier at x=400")
	}
	ctx.run(3)
	if ctx.to.Parent != ctx.container || ctx.to.Frame.X != 0 {
		t.Errorf("incoming view not in place: parent=%v x=%v", ctx.to.Parent, ctx.to.Frame.X)
	}
}

// --- Kinds ---

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"circle", KindCircle},
		{"Star-Reveal", KindStarReveal},
		{"multi_circle", KindMultiCircle},
		{"image repeating", KindImageRepeating},
		{"crossfade", KindCrossFade},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseKind("wipe"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	if len(Kinds()) != 18 {
		t.Fatalf("Kinds = %d, want 18", len(Kinds()))
	}
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if s := Kind(200).String(); s != "Kind(200)" {
		t.Errorf("unknown kind String = %q", s)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind(200)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestDefaultDurations(t *testing.T) {
	tests := []struct {
		kind Kind
		want float64
	}{
		{KindCircle, 0.33},
		{KindClock, 0.7},
		{KindCollidingDiamonds, 1},
		{KindTiledFlip, 1},
		{KindSwingIn, 1},
		{KindImageRepeating, 4},
	}
	for _, tt := range tests {
		if got := DefaultDurationFor(tt.kind); !approx(got, tt.want, 1e-9) {
			t.Errorf("DefaultDurationFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
		if got := MustNew(tt.kind).TransitionDuration(); !approx(got, tt.want, 1e-9) {
			t.Errorf("%v duration = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func pathsClose(a, b Path, eps float64) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		x, y := a.Segment(i), b.Segment(i)
		if x.Verb != y.Verb || x.Clockwise != y.Clockwise {
			return false
		}
		if !approx(x.P.X, y.P.X, eps) || !approx(x.P.Y, y.P.Y, eps) ||
			!approx(x.Center.X, y.Center.X, eps) || !approx(x.Center.Y, y.Center.Y, eps) ||
			!approx(x.Radius, y.Radius, eps) || !approx(x.Start, y.Start, eps) || !approx(x.End, y.End, eps) {
			return false
		}
	}
	return true
}

func TestMaskGeometryStartAndEnd(t *testing.T) {
	bounds := Rect{Width: 200, Height: 200}
	mid := bounds.Center()
	r := BoundingRadius(bounds)
	star := func(radius float64) Path {
		return StarPath(mid, radius, DefaultStarPoints, DefaultStarInnerRatio)
	}
	diamond := func(x, y float64) Path {
		return DiamondPath(Vec2{x, y}, Vec2{400, 400})
	}
	vertical := NewCollidingDiamonds()
	vertical.Orientation = OrientationVertical

	tests := []struct {
		name       string
		tr         Transition
		masked     func(*fakeContext) *View
		rule       FillRule
		start, end []Path
	}{
		{
			name:   "star",
			tr:     NewStarReveal(),
			masked: func(c *fakeContext) *View { return c.from },
			start:  []Path{star(r)},
			end:    []Path{star(minRevealRadius)},
		},
		{
			name:   "reverse star",
			tr:     NewReverseStarReveal(),
			masked: func(c *fakeContext) *View { return c.to },
			start:  []Path{star(minRevealRadius)},
			end:    []Path{star(r)},
		},
		{
			name:   "colliding horizontal",
			tr:     NewCollidingDiamonds(),
			masked: func(c *fakeContext) *View { return c.to },
			start:  []Path{diamond(-200, 100), diamond(400, 100)},
			end:    []Path{diamond(200, 100), diamond(0, 100)},
		},
		{
			name:   "colliding vertical",
			tr:     vertical,
			masked: func(c *fakeContext) *View { return c.to },
			start:  []Path{diamond(100, -200), diamond(100, 400)},
			end:    []Path{diamond(100, 200), diamond(100, 0)},
		},
		{
			name:   "split",
			tr:     NewSplitFromCenter(),
			masked: func(c *fakeContext) *View { return c.from },
			start:  []Path{diamond(100, -100), diamond(100, 300), diamond(300, 100), diamond(-100, 100)},
			end:    []Path{diamond(100, -300), diamond(100, 500), diamond(500, 100), diamond(-300, 100)},
		},
		{
			name:   "diamond ring",
			tr:     NewShrinkingGrowingDiamonds(),
			masked: func(c *fakeContext) *View { return c.to },
			rule:   FillEvenOdd,
			start:  []Path{ringOfDiamonds(mid, Vec2{200, 200}, Vec2{200, 200})},
			end:    []Path{ringOfDiamonds(mid, Vec2{400, 400}, Vec2{1, 1})},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext(bounds.Width, bounds.Height)
			if err := tt.tr.Animate(ctx); err != nil {
				t.Fatal(err)
			}
			mask := tt.masked(ctx).GetMask()
			if mask == nil {
				t.Fatal("view not masked")
			}
			layers := slices.Clone(mask.Layers())
			if len(layers) != len(tt.start) {
				t.Fatalf("layers = %d, want %d", len(layers), len(tt.start))
			}
			for i, l := range layers {
				if l.FillRule != tt.rule {
					t.Errorf("layer %d fill rule = %v, want %v", i, l.FillRule, tt.rule)
				}
				if !pathsClose(l.Path, tt.start[i], 1e-6) {
					t.Errorf("layer %d start = %v, want %v", i, l.Path.Vertices(), tt.start[i].Vertices())
				}
			}
			ctx.run(tt.tr.TransitionDuration() + 1)
			if !slices.Equal(ctx.completions, []bool{true}) {
				t.Fatalf("completions = %v, want [true]", ctx.completions)
			}
			for i, l := range layers {
				if !pathsClose(l.Path, tt.end[i], 1e-6) {
					t.Errorf("layer %d end = %v, want %v", i, l.Path.Vertices(), tt.end[i].Vertices())
				}
			}
		})
	}
}

func TestClockPhasesFinishInOrder(t *testing.T) {
	tl := NewTimeline()
	center := Vec2{100, 100}
	wedge := func(end float64) Path {
		return WedgePath(center, 300, end*math.Pi)
	}
	layer := NewShapeLayer("clock", wedge(2))
	phases := clockSweep(layer, wedge, 1)
	if len(phases) != 4 {
		t.Fatalf("phases = %d, want 4", len(phases))
	}

	var order []int
	for i, a := range phases {
		a.OnFinish = func(finished bool) {
			if !finished {
				t.Errorf("phase %d finished early", i)
			}
			order = append(order, i)
		}
	}
	var dones int
	Chain(tl, phases, func(all bool) {
		if !all {
			t.Error("sweep should finish cleanly")
		}
		if len(order) != 4 {
			t.Errorf("sweep done after %d phases, want 4", len(order))
		}
		dones++
	})
	for range 90 {
		tl.Update(1.0 / 60)
	}

	if !slices.Equal(order, []int{0, 1, 2, 3}) {
		t.Errorf("phase order = %v, want [0 1 2 3]", order)
	}
	if dones != 1 {
		t.Errorf("done called %d times, want 1", dones)
	}
	if end := layer.Path.Segment(2).End; !approx(end, 0.0001*math.Pi, 1e-9) {
		t.Errorf("final sweep end = %v, want %v", end, 0.0001*math.Pi)
	}
}

func TestRectanglerFramesHaveHoles(t *testing.T) {
	ctx := newFakeContext(400, 400)
	if err := NewRectangler().Animate(ctx); err != nil {
		t.Fatal(err)
	}
	a := rasterizeMask(ctx.from.GetMask(), 400, 400, 1)
	if got := a.AlphaAt(30, 200).A; got != 255 {
		t.Errorf("outer frame alpha = %d, want 255", got)
	}
	if got := a.AlphaAt(200, 200).A; got != 0 {
		t.Errorf("innermost hole alpha = %d, want 0", got)
	}
}

func TestDiamondRingStartsEmpty(t *testing.T) {
	ctx := newFakeContext(200, 200)
	tr := NewShrinkingGrowingDiamonds()
	if err := tr.Animate(ctx); err != nil {
		t.Fatal(err)
	}
	layer := ctx.to.GetMask().Layers()[0]
	a := rasterizeMask(NewMask(layer), 200, 200, 1)
	if got := a.AlphaAt(100, 100).A; got != 0 {
		t.Errorf("center alpha at start = %d, want 0", got)
	}

	ctx.run(tr.Duration + 1)
	a = rasterizeMask(NewMask(layer), 200, 200, 1)
	if got := a.AlphaAt(150, 100).A; got != 255 {
		t.Errorf("ring alpha at end = %d, want 255", got)
	}
}
