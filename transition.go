package retro

import (
	"fmt"
	"strings"
)

// Kind identifies one of the transition variants.
type Kind uint8

const (
	KindCircle Kind = iota
	KindReverseCircle
	KindClock
	KindCollidingDiamonds
	KindSplitFromCenter
	KindShrinkingGrowingDiamonds
	KindStarReveal
	KindReverseStarReveal
	KindRectangler
	KindMultiCircle
	KindAngleLine
	KindStraightLine
	KindCrossFade
	KindFlip
	KindMultiFlip
	KindTiledFlip
	KindSwingIn
	KindImageRepeating

	kindCount
)

var kindNames = [kindCount]string{
	KindCircle:                   "circle",
	KindReverseCircle:            "reverse-circle",
	KindClock:                    "clock",
	KindCollidingDiamonds:        "colliding-diamonds",
	KindSplitFromCenter:          "split-from-center",
	KindShrinkingGrowingDiamonds: "shrinking-growing-diamonds",
	KindStarReveal:               "star-reveal",
	KindReverseStarReveal:        "reverse-star-reveal",
	KindRectangler:               "rectangler",
	KindMultiCircle:              "multi-circle",
	KindAngleLine:                "angle-line",
	KindStraightLine:             "straight-line",
	KindCrossFade:                "cross-fade",
	KindFlip:                     "flip",
	KindMultiFlip:                "multi-flip",
	KindTiledFlip:                "tiled-flip",
	KindSwingIn:                  "swing-in",
	KindImageRepeating:           "image-repeating",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every transition kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind looks up a kind by name. Matching ignores case, and underscores
// or spaces are accepted in place of hyphens.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	for k, kn := range kindNames {
		if kn == n || strings.ReplaceAll(kn, "-", "") == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Transition animates the replacement of a context's outgoing view by its
// incoming view.
//
// Animate stages both views in the container, starts the animations on the
// context's timeline and returns. The context is completed later, exactly
// once, from the last animation's callback. If Animate returns an error the
// context is never completed.
type Transition interface {
	Kind() Kind
	TransitionDuration() float64
	Animate(ctx TransitionContext) error
}

// Default durations in seconds.
const (
	DefaultDuration     = 0.33
	defaultClockTime    = 0.7
	defaultLongDuration = 1.0
)

// DefaultDurationFor returns the default duration of a kind. For the stepped
// kinds this is the duration implied by their default step parameters.
func DefaultDurationFor(k Kind) float64 {
	switch k {
	case KindClock:
		return defaultClockTime
	case KindCollidingDiamonds, KindSplitFromCenter, KindShrinkingGrowingDiamonds,
		KindTiledFlip, KindSwingIn:
		return defaultLongDuration
	case KindMultiFlip:
		return NewMultiFlip().TransitionDuration()
	case KindImageRepeating:
		return NewImageRepeating().TransitionDuration()
	default:
		return DefaultDuration
	}
}

// base holds the duration shared by every variant.
type base struct {
	Duration float64
}

func (b *base) TransitionDuration() float64 {
	return b.Duration
}

func (b *base) setDuration(d float64) {
	b.Duration = d
}

// New returns a transition of kind k with default parameters.
func New(k Kind) (Transition, error) {
	switch k {
	case KindCircle:
		return NewCircle(), nil
	case KindReverseCircle:
		return NewReverseCircle(), nil
	case KindClock:
		return NewClock(), nil
	case KindCollidingDiamonds:
		return NewCollidingDiamonds(), nil
	case KindSplitFromCenter:
		return NewSplitFromCenter(), nil
	case KindShrinkingGrowingDiamonds:
		return NewShrinkingGrowingDiamonds(), nil
	case KindStarReveal:
		return NewStarReveal(), nil
	case KindReverseStarReveal:
		return NewReverseStarReveal(), nil
	case KindRectangler:
		return NewRectangler(), nil
	case KindMultiCircle:
		return NewMultiCircle(), nil
	case KindAngleLine:
		return NewAngleLine(), nil
	case KindStraightLine:
		return NewStraightLine(), nil
	case KindCrossFade:
		return NewCrossFade(), nil
	case KindFlip:
		return NewFlip(), nil
	case KindMultiFlip:
		return NewMultiFlip(), nil
	case KindTiledFlip:
		return NewTiledFlip(), nil
	case KindSwingIn:
		return NewSwingIn(), nil
	case KindImageRepeating:
		return NewImageRepeating(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// MustNew is like New but panics on an unknown kind.
func MustNew(k Kind) Transition {
	t, err := New(k)
	if err != nil {
		panic(err)
	}
	return t
}
