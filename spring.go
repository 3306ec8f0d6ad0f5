package retro

import (
	"math"

	"github.com/tanema/gween/ease"
)

// springSettle is the residual amplitude at which the spring counts as at
// rest; the stiffness is chosen so it is reached exactly at the end of the
// tween.
const springSettle = 1e-3

// Spring returns an easing function for a damped spring released from the
// start value toward the end value. damping is the damping ratio (below 1
// overshoots, 1 or more does not); velocity is the initial speed as a
// fraction of the total distance per second. The curve reaches the end value
// exactly when the tween's duration elapses.
func Spring(damping, velocity float64) ease.TweenFunc {
	if damping <= 0 {
		damping = 0.01
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		x := springPosition(damping, velocity*float64(d), float64(t/d))
		return b + c*float32(x)
	}
}

// springPosition returns the normalized displacement (0 at rest start, 1 at
// target) at normalized time tau in [0, 1].
func springPosition(zeta, v0, tau float64) float64 {
	omega := -math.Log(springSettle) / math.Min(zeta, 1)
	if zeta >= 1 {
		// Critically damped.
		return 1 - math.Exp(-omega*tau)*(1+(omega-v0)*tau)
	}
	wd := omega * math.Sqrt(1-zeta*zeta)
	env := math.Exp(-zeta * omega * tau)
	return 1 - env*(math.Cos(wd*tau)+(zeta*omega-v0)/wd*math.Sin(wd*tau))
}
