package retro

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenRenderer draws a view tree with ebiten. Views without a mask are drawn
// straight into the target; masked views, and translucent views with
// children, are drawn into a pooled offscreen first and composited as one
// image.
type ebitenRenderer struct {
	scale    float64
	pool     renderTexturePool
	deferred []*ebiten.Image
	white    *ebiten.Image
	images   map[image.Image]*ebiten.Image
}

func newEbitenRenderer(scale float64) *ebitenRenderer {
	if scale <= 0 {
		scale = 1
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(ColorWhite.RGBA())
	return &ebitenRenderer{
		scale:  scale,
		white:  white,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// geoM converts a [6]float64 affine matrix to ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Capture renders v into a new, unpooled image sized to its bounds.
func (r *ebitenRenderer) Capture(v *View) (*Snapshot, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil view", ErrCaptureFailed)
	}
	w, h := pixelSize(v.Frame.Width, v.Frame.Height, r.scale)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: view %s has empty bounds", ErrCaptureFailed, v)
	}
	img := ebiten.NewImage(w, h)
	r.drawLayer(img, v, w, h)
	r.flush()
	return &Snapshot{Image: img, Scale: r.scale}, nil
}

// draw renders root into target at the origin.
func (r *ebitenRenderer) draw(target *ebiten.Image, root *View) {
	s := r.scale
	parent := [6]float64{s, 0, 0, s, 0, 0}
	r.drawView(target, root, parent, 1)
	r.flush()
}

// flush returns the frame's offscreens to the pool.
func (r *ebitenRenderer) flush() {
	for i, img := range r.deferred {
		r.pool.Release(img)
		r.deferred[i] = nil
	}
	r.deferred = r.deferred[:0]
}

func (r *ebitenRenderer) drawView(dst *ebiten.Image, v *View, parent [6]float64, alpha float64) {
	if !v.Visible || v.Alpha <= 0 || v.Frame.Degenerate() {
		return
	}
	m := multiplyAffine(parent, computeLocalTransform(v))
	if det := m[0]*m[3] - m[1]*m[2]; det > -1e-9 && det < 1e-9 {
		return
	}
	alpha *= v.Alpha

	if v.mask == nil && (v.Alpha >= 1 || len(v.children) == 0) {
		r.drawContent(dst, v, m, alpha)
		return
	}

	w, h := pixelSize(v.Frame.Width, v.Frame.Height, r.scale)
	if w == 0 || h == 0 {
		return
	}
	rt := r.pool.Acquire(w, h)
	r.deferred = append(r.deferred, rt)
	off := region(rt, w, h)
	r.drawLayer(off, v, w, h)

	inv := 1 / r.scale
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(multiplyAffine(m, [6]float64{inv, 0, 0, inv, 0, 0}))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(off, &op)
}

// drawLayer draws v in local space into off (w×h pixels) and applies its
// mask.
func (r *ebitenRenderer) drawLayer(off *ebiten.Image, v *View, w, h int) {
	s := r.scale
	r.drawContent(off, v, [6]float64{s, 0, 0, s, 0, 0}, 1)
	if v.mask == nil {
		return
	}
	coverage := rasterizeMask(v.mask, w, h, s)
	maskRT := r.pool.Acquire(w, h)
	r.deferred = append(r.deferred, maskRT)
	maskImg := region(maskRT, w, h)
	maskImg.WritePixels(alphaToRGBA(coverage))

	// Keep only the parts of off where the mask has alpha.
	var op ebiten.DrawImageOptions
	op.Blend = BlendMask.EbitenBlend()
	off.DrawImage(maskImg, &op)
}

// drawContent draws v's background, image and children with transform m.
func (r *ebitenRenderer) drawContent(dst *ebiten.Image, v *View, m [6]float64, alpha float64) {
	if v.Color.A > 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(v.Frame.Width, v.Frame.Height)
		op.GeoM.Concat(geoM(m))
		op.ColorScale.ScaleWithColor(v.Color.RGBA())
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(r.white, &op)
	}
	if v.Image != nil {
		img := r.ebitenImage(v.Image)
		b := img.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(v.Frame.Width/float64(b.Dx()), v.Frame.Height/float64(b.Dy()))
			op.GeoM.Concat(geoM(m))
			op.ColorScale.ScaleAlpha(float32(alpha))
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(img, &op)
		}
	}
	for _, child := range v.children {
		r.drawView(dst, child, m, alpha)
	}
}

// ebitenImage returns a GPU image for img, uploading CPU images once.
func (r *ebitenRenderer) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := r.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	r.images[img] = e
	return e
}

// release drops uploaded copies of CPU images. Called between transitions.
func (r *ebitenRenderer) release() {
	for k, e := range r.images {
		e.Deallocate()
		delete(r.images, k)
	}
}

// alphaToRGBA expands coverage into premultiplied white RGBA pixels.
func alphaToRGBA(a *image.Alpha) []byte {
	b := a.Bounds()
	out := make([]byte, 4*b.Dx()*b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := a.Pix[a.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			v := row[x]
			out[i], out[i+1], out[i+2], out[i+3] = v, v, v, v
			i += 4
		}
	}
	return out
}
