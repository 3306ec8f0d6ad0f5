package retro

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
)

// rasterizeMask renders the coverage of m into a w×h alpha image. Mask paths
// are in points and are scaled by scale pixels per point. Layers are
// combined as a union, each filled with its own rule.
//
// The rasterx GV scanner only fills with the non-zero rule. Even-odd layers
// are built by filling each subpath on its own and combining the coverages
// with exclusive or, which matches even-odd for subpaths that do not cross
// themselves.
func rasterizeMask(m *Mask, w, h int, scale float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if m == nil || w <= 0 || h <= 0 {
		return dst
	}
	scratch := image.NewAlpha(dst.Bounds())
	scanner := rasterx.NewScannerGV(w, h, scratch, scratch.Bounds())
	scanner.SetColor(color.Opaque)
	filler := rasterx.NewFiller(w, h, scanner)

	tolerance := defaultTolerance
	if scale > 0 {
		tolerance /= scale
	}
	var layerCov *image.Alpha
	for _, layer := range m.layers {
		polys := layer.Path.Flatten(tolerance)
		if len(polys) == 0 {
			continue
		}
		if layer.FillRule != FillEvenOdd {
			fillPolygons(filler, scratch, polys, scale)
			combineAlpha(dst, scratch, unionCoverage)
			continue
		}
		if layerCov == nil {
			layerCov = image.NewAlpha(dst.Bounds())
		} else {
			clear(layerCov.Pix)
		}
		for _, poly := range polys {
			fillPolygons(filler, scratch, [][]Vec2{poly}, scale)
			combineAlpha(layerCov, scratch, xorCoverage)
		}
		combineAlpha(dst, layerCov, unionCoverage)
	}
	return dst
}

// fillPolygons clears scratch and fills polys into it with the non-zero rule.
func fillPolygons(filler *rasterx.Filler, scratch *image.Alpha, polys [][]Vec2, scale float64) {
	clear(scratch.Pix)
	filler.Clear()
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		filler.Start(rasterx.ToFixedP(poly[0].X*scale, poly[0].Y*scale))
		for _, p := range poly[1:] {
			filler.Line(rasterx.ToFixedP(p.X*scale, p.Y*scale))
		}
		filler.Stop(true)
	}
	filler.Draw()
}

// combineAlpha merges src into dst pixel by pixel. Both images share bounds.
func combineAlpha(dst, src *image.Alpha, op func(a, b int) int) {
	for i, s := range src.Pix {
		if s == 0 {
			continue
		}
		dst.Pix[i] = uint8(op(int(dst.Pix[i]), int(s)))
	}
}

func unionCoverage(a, b int) int {
	return a + b - (a*b+127)/255
}

func xorCoverage(a, b int) int {
	return a + b - 2*((a*b+127)/255)
}
