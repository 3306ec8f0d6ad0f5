package retro

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strings"
)

// Capturer renders a view subtree into a new bitmap.
type Capturer interface {
	Capture(v *View) (*Snapshot, error)
}

// Snapshot is a captured bitmap of a view. Scale is the number of pixels per
// point the view was rendered at.
type Snapshot struct {
	Image image.Image
	Scale float64
}

// Size returns the snapshot's extent in points.
func (s *Snapshot) Size() Vec2 {
	b := s.Image.Bounds()
	scale := s.scale()
	return Vec2{float64(b.Dx()) / scale, float64(b.Dy()) / scale}
}

func (s *Snapshot) scale() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the part of the snapshot covered by r, given in points. The
// rectangle is converted to pixels with the snapshot's scale and clipped to
// the image. Images that do not support sub-images are copied.
func (s *Snapshot) Crop(r Rect) *Snapshot {
	scale := s.scale()
	b := s.Image.Bounds()
	px := image.Rect(
		b.Min.X+int(math.Floor(r.X*scale)),
		b.Min.Y+int(math.Floor(r.Y*scale)),
		b.Min.X+int(math.Ceil((r.X+r.Width)*scale)),
		b.Min.Y+int(math.Ceil((r.Y+r.Height)*scale)),
	).Intersect(b)

	if si, ok := s.Image.(subImager); ok {
		return &Snapshot{Image: si.SubImage(px), Scale: s.Scale}
	}
	dst := image.NewRGBA(image.Rect(0, 0, px.Dx(), px.Dy()))
	draw.Draw(dst, dst.Bounds(), s.Image, px.Min, draw.Src)
	return &Snapshot{Image: dst, Scale: s.Scale}
}

// WritePNG encodes the snapshot to a PNG file at path.
func (s *Snapshot) WritePNG(path string) error {
	return writePNG(path, toNRGBA(s.Image))
}

// toNRGBA converts img to straight-alpha NRGBA. Premultiplied RGBA input is
// un-premultiplied.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		b = rgba.Bounds()
	}
	for y := 0; y < h; y++ {
		src := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := out.Pix[out.PixOffset(0, y):]
		for i := 0; i < 4*w; i += 4 {
			r, g, bl, a := src[i], src[i+1], src[i+2], src[i+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			dst[i] = r
			dst[i+1] = g
			dst[i+2] = bl
			dst[i+3] = a
		}
	}
	return out
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
