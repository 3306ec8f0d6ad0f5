package retro

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is a set of named transition definitions, usually loaded from a
// TOML file:
//
//	[transitions.intro]
//	kind = "star-reveal"
//	duration = 0.5
//	points = 7
//
//	[transitions.back]
//	kind = "angle-line"
//	corner = "bottom-right"
type Config struct {
	Transitions map[string]TransitionConfig `toml:"transitions"`
}

// TransitionConfig defines one transition. Kind is required; every other
// field is optional and only valid for the kinds that have the parameter.
type TransitionConfig struct {
	Kind     string   `toml:"kind"`
	Duration *float64 `toml:"duration"`

	// StarReveal, ReverseStarReveal
	Points     *int     `toml:"points"`
	InnerRatio *float64 `toml:"inner_ratio"`

	Orientation string `toml:"orientation"` // CollidingDiamonds
	Corner      string `toml:"corner"`      // AngleLine
	Edge        string `toml:"edge"`        // StraightLine
	Direction   string `toml:"direction"`   // SwingIn

	// MultiFlip
	StepDistance *float64 `toml:"step_distance"`
	// MultiFlip, ImageRepeating
	StepTime *float64 `toml:"step_time"`
	// ImageRepeating
	StepPercent *float64 `toml:"step_percent"`

	Seed *uint64 `toml:"seed"` // TiledFlip
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses TOML transition definitions. Unknown keys and
// definitions that do not build are errors.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	for _, name := range cfg.Names() {
		if _, err := cfg.Build(name); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Names returns the defined transition names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Transitions))
	for name := range c.Transitions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build returns a new transition from the definition called name.
func (c *Config) Build(name string) (Transition, error) {
	tc, ok := c.Transitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: no transition named %q", ErrInvalidConfig, name)
	}
	t, err := tc.Build()
	if err != nil {
		return nil, fmt.Errorf("transition %q: %w", name, err)
	}
	return t, nil
}

// Build returns a new transition from the definition.
func (tc TransitionConfig) Build() (Transition, error) {
	k, err := ParseKind(tc.Kind)
	if err != nil {
		return nil, err
	}
	t := MustNew(k)

	var used []string
	invalid := func(key, format string, args ...any) error {
		return fmt.Errorf("%w: %s %s: %s", ErrInvalidConfig, k, key, fmt.Sprintf(format, args...))
	}

	if tc.Duration != nil {
		d, ok := t.(interface{ setDuration(float64) })
		if !ok {
			return nil, invalid("duration", "derived from step parameters")
		}
		if *tc.Duration < 0 {
			return nil, invalid("duration", "must not be negative")
		}
		d.setDuration(*tc.Duration)
	}

	switch v := t.(type) {
	case *StarReveal:
		used = append(used, "points", "inner_ratio")
		if err := tc.starParams(&v.Points, &v.InnerRatio, invalid); err != nil {
			return nil, err
		}
	case *ReverseStarReveal:
		used = append(used, "points", "inner_ratio")
		if err := tc.starParams(&v.Points, &v.InnerRatio, invalid); err != nil {
			return nil, err
		}
	case *CollidingDiamonds:
		used = append(used, "orientation")
		if tc.Orientation != "" {
			o, err := parseOrientation(tc.Orientation)
			if err != nil {
				return nil, invalid("orientation", "%v", err)
			}
			v.Orientation = o
		}
	case *AngleLine:
		used = append(used, "corner")
		if tc.Corner != "" {
			c, err := parseCorner(tc.Corner)
			if err != nil {
				return nil, invalid("corner", "%v", err)
			}
			v.Corner = c
		}
	case *StraightLine:
		used = append(used, "edge")
		if tc.Edge != "" {
			e, err := parseEdge(tc.Edge)
			if err != nil {
				return nil, invalid("edge", "%v", err)
			}
			v.Edge = e
		}
	case *SwingIn:
		used = append(used, "direction")
		if tc.Direction != "" {
			d, err := parseDirection(tc.Direction)
			if err != nil {
				return nil, invalid("direction", "%v", err)
			}
			v.Direction = d
		}
	case *MultiFlip:
		used = append(used, "step_distance", "step_time")
		if tc.StepDistance != nil {
			if *tc.StepDistance <= 0 || *tc.StepDistance > 1 {
				return nil, invalid("step_distance", "%v not in (0, 1]", *tc.StepDistance)
			}
			v.StepDistance = *tc.StepDistance
		}
		if tc.StepTime != nil {
			if *tc.StepTime <= 0 {
				return nil, invalid("step_time", "must be positive")
			}
			v.StepTime = *tc.StepTime
		}
	case *ImageRepeating:
		used = append(used, "step_percent", "step_time")
		if tc.StepPercent != nil {
			if *tc.StepPercent <= 0 || *tc.StepPercent >= 0.5 {
				return nil, invalid("step_percent", "%v not in (0, 0.5)", *tc.StepPercent)
			}
			v.ImageStepPercent = *tc.StepPercent
		}
		if tc.StepTime != nil {
			if *tc.StepTime <= 0 {
				return nil, invalid("step_time", "must be positive")
			}
			v.ImageStepTime = *tc.StepTime
		}
	case *TiledFlip:
		used = append(used, "seed")
		if tc.Seed != nil {
			v.Rand = rand.New(rand.NewPCG(*tc.Seed, *tc.Seed))
		}
	}

	for _, key := range tc.setKeys() {
		if !slices.Contains(used, key) {
			return nil, invalid(key, "not a parameter of this kind")
		}
	}
	return t, nil
}

func (tc TransitionConfig) starParams(points *int, ratio *float64, invalid func(string, string, ...any) error) error {
	if tc.Points != nil {
		if *tc.Points < 2 {
			return invalid("points", "need at least 2, got %d", *tc.Points)
		}
		*points = *tc.Points
	}
	if tc.InnerRatio != nil {
		if *tc.InnerRatio <= 0 || *tc.InnerRatio > 1 {
			return invalid("inner_ratio", "%v not in (0, 1]", *tc.InnerRatio)
		}
		*ratio = *tc.InnerRatio
	}
	return nil
}

// setKeys lists the variant parameters present in the definition.
func (tc TransitionConfig) setKeys() []string {
	var keys []string
	add := func(set bool, key string) {
		if set {
			keys = append(keys, key)
		}
	}
	add(tc.Points != nil, "points")
	add(tc.InnerRatio != nil, "inner_ratio")
	add(tc.Orientation != "", "orientation")
	add(tc.Corner != "", "corner")
	add(tc.Edge != "", "edge")
	add(tc.Direction != "", "direction")
	add(tc.StepDistance != nil, "step_distance")
	add(tc.StepTime != nil, "step_time")
	add(tc.StepPercent != nil, "step_percent")
	add(tc.Seed != nil, "seed")
	return keys
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

func parseOrientation(s string) (Orientation, error) {
	switch normalizeName(s) {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func parseCorner(s string) (Corner, error) {
	switch normalizeName(s) {
	case "top-left":
		return CornerTopLeft, nil
	case "top-right":
		return CornerTopRight, nil
	case "bottom-left":
		return CornerBottomLeft, nil
	case "bottom-right":
		return CornerBottomRight, nil
	}
	return 0, fmt.Errorf("unknown corner %q", s)
}

func parseEdge(s string) (Edge, error) {
	switch normalizeName(s) {
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

func parseDirection(s string) (Direction, error) {
	switch normalizeName(s) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
