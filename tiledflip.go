package retro

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// TiledFlip grid, in cells across and down.
const (
	tiledFlipColumns = 5
	tiledFlipRows    = 10
)

// TiledFlip cuts both screens into a grid of tiles and flips every tile from
// the outgoing picture to the incoming one, each after its own random delay
// within the first half of the duration.
type TiledFlip struct {
	base
	// Rand is the source of tile delays. Nil uses the global source.
	Rand *rand.Rand
}

// NewTiledFlip returns a TiledFlip with the default duration.
func NewTiledFlip() *TiledFlip {
	return &TiledFlip{base: base{defaultLongDuration}}
}

func (t *TiledFlip) Kind() Kind { return KindTiledFlip }

func (t *TiledFlip) random() float64 {
	if t.Rand != nil {
		return t.Rand.Float64()
	}
	return rand.Float64()
}

// tile is one cell of the grid.
type tile struct {
	rect  Rect
	delay float64
}

// TiledFlipCells returns the cell rectangles covering bounds, row by row.
func TiledFlipCells(bounds Rect) []Rect {
	cw := bounds.Width / tiledFlipColumns
	ch := bounds.Height / tiledFlipRows
	if cw <= 0 || ch <= 0 {
		return nil
	}
	cols := int(math.Ceil(bounds.Width/cw - 1e-9))
	rows := int(math.Ceil(bounds.Height/ch - 1e-9))
	out := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Rect{float64(c) * cw, float64(r) * ch, cw, ch})
		}
	}
	return out
}

func (t *TiledFlip) Animate(ctx TransitionContext) error {
	from, to, err := endpoints(ctx)
	if err != nil {
		return err
	}
	toSnap, err := ctx.Capture(to)
	if err != nil {
		return transitionError(KindTiledFlip, "capture incoming view", fmt.Errorf("%w: %v", ErrCaptureFailed, err))
	}
	fromSnap, err := ctx.Capture(from)
	if err != nil {
		return transitionError(KindTiledFlip, "capture outgoing view", fmt.Errorf("%w: %v", ErrCaptureFailed, err))
	}

	container := ctx.Container()
	from.RemoveFromParent()
	to.RemoveFromParent()
	board := NewView("tiles", from.Frame)
	stage(container, board)

	cleanup := func() {
		stage(container, to)
		board.Dispose()
	}

	cells := TiledFlipCells(from.Bounds())
	if len(cells) == 0 {
		finishWith(ctx, cleanup)(true)
		return nil
	}
	tiles := make([]tile, len(cells))
	last := 0
	for i, r := range cells {
		tiles[i] = tile{rect: r, delay: t.Duration * 0.5 * t.random()}
		if tiles[i].delay > tiles[last].delay {
			last = i
		}
	}

	tl := ctx.Timeline()
	flipTime := t.Duration / 2
	done := finishWith(ctx, cleanup)
	for i, tt := range tiles {
		local := Rect{Width: tt.rect.Width, Height: tt.rect.Height}
		cell := NewView("tile", tt.rect)
		front := NewImageView("front", local, fromSnap.Crop(tt.rect).Image)
		back := NewImageView("back", local, toSnap.Crop(tt.rect).Image)
		cell.AddChild(front)
		board.AddChild(cell)

		var onDone func(bool)
		if i == last {
			onDone = done
		}
		tl.After(tt.delay, func() {
			phases := flipPhases(cell, cell, flipTime, func() {
				front.RemoveFromParent()
				cell.AddChild(back)
			})
			Chain(tl, phases, onDone)
		})
	}
	return nil
}
