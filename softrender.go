package retro

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftRenderer draws a view tree into CPU images. It is the Capturer used
// headless and in tests, and produces the same masking results as the ebiten
// renderer.
//
// Every visible view is drawn into its own layer image at Scale pixels per
// point, masked, then composited into its parent with its transform and
// alpha.
type SoftRenderer struct {
	// Scale is the number of pixels per point. Zero means 1.
	Scale float64
	// Interpolator resamples transformed layers. Nil uses bilinear.
	Interpolator xdraw.Interpolator
}

// NewSoftRenderer returns a renderer at the given pixel ratio.
func NewSoftRenderer(scale float64) *SoftRenderer {
	return &SoftRenderer{Scale: scale}
}

func (r *SoftRenderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

func (r *SoftRenderer) interpolator() xdraw.Interpolator {
	if r.Interpolator == nil {
		return xdraw.BiLinear
	}
	return r.Interpolator
}

// Capture renders v's content, children and mask into a new snapshot sized to
// v's bounds. The view's own transform and alpha are not applied.
func (r *SoftRenderer) Capture(v *View) (*Snapshot, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil view", ErrCaptureFailed)
	}
	b := v.Bounds()
	if b.Degenerate() {
		return nil, fmt.Errorf("%w: view %s has empty bounds", ErrCaptureFailed, v)
	}
	return &Snapshot{Image: r.layer(v), Scale: r.scale()}, nil
}

// Render draws v as it appears on screen: v's bounds filled with bg, then v
// composited with its transform and alpha.
func (r *SoftRenderer) Render(v *View, bg Color) *image.RGBA {
	s := r.scale()
	w, h := pixelSize(v.Frame.Width, v.Frame.Height, s)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg.A > 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
	}
	// Draw v in its own space: undo its frame origin.
	root := [6]float64{s, 0, 0, s, -v.Frame.X * s, -v.Frame.Y * s}
	r.composite(dst, v, root)
	return dst
}

// layer renders v in local space: background, image, children, then mask.
func (r *SoftRenderer) layer(v *View) *image.RGBA {
	s := r.scale()
	w, h := pixelSize(v.Frame.Width, v.Frame.Height, s)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	if v.Color.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(v.Color.RGBA()), image.Point{}, draw.Src)
	}
	if v.Image != nil {
		r.interpolator().Scale(img, img.Bounds(), v.Image, v.Image.Bounds(), xdraw.Over, nil)
	}
	local := [6]float64{s, 0, 0, s, 0, 0}
	for _, child := range v.children {
		r.composite(img, child, local)
	}
	if v.mask != nil {
		coverage := rasterizeMask(v.mask, w, h, s)
		masked := image.NewRGBA(img.Bounds())
		draw.DrawMask(masked, masked.Bounds(), img, image.Point{}, coverage, image.Point{}, draw.Src)
		img = masked
	}
	return img
}

// composite draws v into dst. parent maps v's parent space (points) to dst
// pixels.
func (r *SoftRenderer) composite(dst *image.RGBA, v *View, parent [6]float64) {
	if !v.Visible || v.Alpha <= 0 || v.Frame.Degenerate() {
		return
	}
	m := multiplyAffine(parent, computeLocalTransform(v))
	if det := m[0]*m[3] - m[1]*m[2]; math.Abs(det) < 1e-9 {
		return
	}
	src := r.layer(v)

	// Layer pixels are points scaled by s.
	s := r.scale()
	m = multiplyAffine(m, [6]float64{1 / s, 0, 0, 1 / s, 0, 0})

	var opts *xdraw.Options
	if v.Alpha < 1 {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(clamp01(v.Alpha) * 255)})}
	}

	if tx, ty, ok := integerTranslation(m); ok {
		rect := src.Bounds().Add(image.Pt(tx, ty))
		if opts != nil {
			draw.DrawMask(dst, rect, src, image.Point{}, opts.SrcMask, image.Point{}, draw.Over)
		} else {
			draw.Draw(dst, rect, src, image.Point{}, draw.Over)
		}
		return
	}
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}
	r.interpolator().Transform(dst, aff, src, src.Bounds(), xdraw.Over, opts)
}

// integerTranslation reports whether m is a pure translation by whole
// pixels.
func integerTranslation(m [6]float64) (int, int, bool) {
	const eps = 1e-9
	if math.Abs(m[0]-1) > eps || math.Abs(m[3]-1) > eps || math.Abs(m[1]) > eps || math.Abs(m[2]) > eps {
		return 0, 0, false
	}
	tx, ty := math.Round(m[4]), math.Round(m[5])
	if math.Abs(tx-m[4]) > eps || math.Abs(ty-m[5]) > eps {
		return 0, 0, false
	}
	return int(tx), int(ty), true
}

// pixelSize converts a size in points to whole pixels.
func pixelSize(w, h, scale float64) (int, int) {
	pw := int(math.Ceil(w*scale - 1e-9))
	ph := int(math.Ceil(h*scale - 1e-9))
	return max(pw, 0), max(ph, 0)
}
