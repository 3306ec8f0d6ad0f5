package retro

import "math"

// Verb identifies the kind of a path segment.
type Verb uint8

const (
	VerbMove  Verb = iota // start a new subpath at P
	VerbLine              // straight line to P
	VerbArc               // circular arc around Center
	VerbClose             // close the current subpath
)

// Segment is one drawing command. Arcs are kept parametric so that two
// arcs interpolate by radius and angle rather than by flattened points.
type Segment struct {
	Verb Verb
	P    Vec2

	// Arc fields (VerbArc).
	Center     Vec2
	Radius     float64
	Start, End float64
	Clockwise  bool
}

// Path is an ordered list of segments describing one or more subpaths.
// The zero value is an empty path ready to use.
type Path struct {
	segs []Segment
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Verb: VerbMove, P: pt})
}

// LineTo adds a straight line from the current point to pt.
func (p *Path) LineTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Verb: VerbLine, P: pt})
}

// Arc adds a circular arc. If the path has a current point, a line joins it
// to the arc's start. Clockwise arcs sweep toward increasing angles, which is
// clockwise on screen with Y pointing down.
func (p *Path) Arc(center Vec2, radius, start, end float64, clockwise bool) {
	p.segs = append(p.segs, Segment{
		Verb:      VerbArc,
		Center:    center,
		Radius:    radius,
		Start:     start,
		End:       end,
		Clockwise: clockwise,
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Verb: VerbClose})
}

// Append adds every segment of other to p.
func (p *Path) Append(other Path) {
	p.segs = append(p.segs, other.segs...)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// Segment returns the segment at index i.
func (p Path) Segment(i int) Segment {
	return p.segs[i]
}

// Segments returns the segment list. The returned slice MUST NOT be mutated.
func (p Path) Segments() []Segment {
	return p.segs
}

// Vertices returns the explicit points of the path in order (MoveTo and
// LineTo targets). Arcs contribute no vertices.
func (p Path) Vertices() []Vec2 {
	var out []Vec2
	for _, s := range p.segs {
		if s.Verb == VerbMove || s.Verb == VerbLine {
			out = append(out, s.P)
		}
	}
	return out
}

// Closed reports whether the last segment closes its subpath.
func (p Path) Closed() bool {
	return len(p.segs) > 0 && p.segs[len(p.segs)-1].Verb == VerbClose
}

// sameShape reports whether p and o have identical segment structure and can
// therefore be interpolated segment by segment.
func (p Path) sameShape(o Path) bool {
	if len(p.segs) != len(o.segs) {
		return false
	}
	for i := range p.segs {
		a, b := p.segs[i], o.segs[i]
		if a.Verb != b.Verb || (a.Verb == VerbArc && a.Clockwise != b.Clockwise) {
			return false
		}
	}
	return true
}

// Lerp interpolates from p toward to by t. Paths with different structure
// cannot be interpolated: the result snaps to p for t < 1 and to `to` at 1.
func (p Path) Lerp(to Path, t float64) Path {
	if !p.sameShape(to) {
		if t < 1 {
			return p
		}
		return to
	}
	out := Path{segs: make([]Segment, len(p.segs))}
	for i := range p.segs {
		a, b := p.segs[i], to.segs[i]
		s := a
		switch a.Verb {
		case VerbMove, VerbLine:
			s.P = a.P.Lerp(b.P, t)
		case VerbArc:
			s.Center = a.Center.Lerp(b.Center, t)
			s.Radius = lerp(a.Radius, b.Radius, t)
			s.Start = lerp(a.Start, b.Start, t)
			s.End = lerp(a.End, b.End, t)
		}
		out.segs[i] = s
	}
	return out
}

// --- Flattening ---

// defaultTolerance is the maximum chord deviation, in points, used when
// flattening arcs for rasterization and coverage tests.
const defaultTolerance = 0.25

// arcSweep returns the signed sweep of an arc segment. Clockwise arcs sweep
// positive, counter-clockwise arcs negative. A sweep of a full turn is kept.
func arcSweep(s Segment) float64 {
	sweep := s.End - s.Start
	if s.Clockwise {
		if sweep < 0 {
			sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
		}
		if sweep > 2*math.Pi {
			sweep = 2 * math.Pi
		}
	} else {
		if sweep > 0 {
			sweep = math.Mod(sweep, 2*math.Pi) - 2*math.Pi
		}
		if sweep < -2*math.Pi {
			sweep = -2 * math.Pi
		}
	}
	return sweep
}

// Flatten converts the path into closed polylines, one per subpath. Arcs are
// approximated by chords deviating at most tolerance points from the curve.
func (p Path) Flatten(tolerance float64) [][]Vec2 {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	var polys [][]Vec2
	var cur []Vec2
	flush := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
	}
	for _, s := range p.segs {
		switch s.Verb {
		case VerbMove:
			flush()
			cur = append(cur, s.P)
		case VerbLine:
			cur = append(cur, s.P)
		case VerbArc:
			sweep := arcSweep(s)
			n := arcSteps(s.Radius, sweep, tolerance)
			for i := 0; i <= n; i++ {
				a := s.Start + sweep*float64(i)/float64(n)
				sin, cos := math.Sincos(a)
				cur = append(cur, Vec2{s.Center.X + s.Radius*cos, s.Center.Y + s.Radius*sin})
			}
		case VerbClose:
			flush()
		}
	}
	flush()
	return polys
}

// arcSteps returns the number of chords needed to keep the sagitta of each
// chord under tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	r := math.Abs(radius)
	if r <= tolerance {
		return 8
	}
	step := 2 * math.Acos(1-tolerance/r)
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 8 {
		n = 8
	}
	return n
}

// Contains reports whether pt is inside the filled path under the given
// fill rule. Every subpath is treated as implicitly closed.
func (p Path) Contains(pt Vec2, rule FillRule) bool {
	winding := 0
	crossings := 0
	for _, poly := range p.Flatten(defaultTolerance) {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && cross(a, b, pt) > 0 {
					winding++
					crossings++
				}
			} else if b.Y <= pt.Y && cross(a, b, pt) < 0 {
				winding--
				crossings++
			}
		}
	}
	if rule == FillEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// --- Shape builders ---

// ArcPath returns a path that starts at the arc's first point and sweeps
// clockwise from start to end.
func ArcPath(center Vec2, radius, start, end float64) Path {
	var p Path
	sin, cos := math.Sincos(start)
	p.MoveTo(Vec2{center.X + radius*cos, center.Y + radius*sin})
	p.Arc(center, radius, start, end, true)
	return p
}

// CirclePath returns a full circle as a clockwise arc from angle 0 to 2π.
func CirclePath(center Vec2, radius float64) Path {
	return ArcPath(center, radius, 0, 2*math.Pi)
}

// WedgePath returns a pie sector anchored at center whose arc sweeps from
// angle 0 to end. Used by the clock wipe.
func WedgePath(center Vec2, radius, end float64) Path {
	var p Path
	p.MoveTo(center)
	p.LineTo(center)
	p.Arc(center, radius, 0, end, true)
	return p
}

// StarPath returns a closed star polygon with 2*points vertices. The first
// vertex is an outer one at -π/2; vertices alternate outer and inner every
// π/points radians, with inner vertices at radius*innerRatio. Shrinking or
// growing a star is done by changing radius, never the vertex order.
func StarPath(center Vec2, radius float64, points int, innerRatio float64) Path {
	var p Path
	increment := math.Pi * 2 / float64(points*2)
	start := -math.Pi / 2
	inner := radius * innerRatio

	p.MoveTo(Vec2{center.X + radius*math.Cos(start), center.Y + radius*math.Sin(start)})
	for i := 1; i < points*2; i++ {
		angle := start + increment*float64(i)
		r := inner
		if i%2 == 0 {
			r = radius
		}
		p.LineTo(Vec2{center.X + r*math.Cos(angle), center.Y + r*math.Sin(angle)})
	}
	p.Close()
	return p
}

// DiamondPath returns a closed diamond with vertices west, north, east and
// south of center, each size/2 away along its axis.
func DiamondPath(center Vec2, size Vec2) Path {
	var p Path
	p.MoveTo(Vec2{center.X - size.X/2, center.Y})
	p.LineTo(Vec2{center.X, center.Y - size.Y/2})
	p.LineTo(Vec2{center.X + size.X/2, center.Y})
	p.LineTo(Vec2{center.X, center.Y + size.Y/2})
	p.Close()
	return p
}

// RectPath returns the rectangle as a closed four-vertex path starting at its
// top-left corner.
func RectPath(r Rect) Path {
	var p Path
	p.MoveTo(Vec2{r.X, r.Y})
	p.LineTo(Vec2{r.X + r.Width, r.Y})
	p.LineTo(Vec2{r.X + r.Width, r.Y + r.Height})
	p.LineTo(Vec2{r.X, r.Y + r.Height})
	p.Close()
	return p
}

// PolygonPath returns a closed polygon through the given points.
func PolygonPath(points ...Vec2) Path {
	var p Path
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt)
			continue
		}
		p.LineTo(pt)
	}
	if len(points) > 0 {
		p.Close()
	}
	return p
}

// FramePath returns an outer rectangle with an inner rectangle cut out when
// filled with FillEvenOdd.
func FramePath(outer, inner Rect) Path {
	p := RectPath(outer)
	p.Append(RectPath(inner))
	return p
}
