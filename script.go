package retro

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a navigation script.
type scriptStep struct {
	Action string  `json:"action"`
	Screen string  `json:"screen,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`

	kind Kind
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script plays navigation steps and screenshots across frames, for demos and
// automated visual checks. Attach to a Scene via SetScript.
//
//	{"steps": [
//	  {"action": "push", "screen": "detail", "kind": "circle"},
//	  {"action": "settle"},
//	  {"action": "screenshot", "label": "detail"},
//	  {"action": "pop", "kind": "clock"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "tap", "x": 40, "y": 60},
//	  {"action": "cancel"}
//	]}
//
// A push or pop without a kind is not animated.
type Script struct {
	steps     []scriptStep
	screens   map[string]*View
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadScript parses a JSON script. Push steps refer to views in screens by
// name.
func LoadScript(data []byte, screens map[string]*View) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "push":
			if screens[st.Screen] == nil {
				return nil, fmt.Errorf("parse script: step %d: unknown screen %q", i, st.Screen)
			}
			fallthrough
		case "pop":
			if st.Kind != "" {
				k, err := ParseKind(st.Kind)
				if err != nil {
					return nil, fmt.Errorf("parse script: step %d: %w", i, err)
				}
				st.kind = k
			}
		case "cancel", "settle", "screenshot", "tap", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, screens: screens}, nil
}

// SetScript attaches a script to the scene. Its step method runs from
// Scene.Advance before the timeline advances. Pass nil to detach.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Scene) error {
	if r.done {
		return nil
	}
	// Wait for injected taps to drain before advancing.
	if len(s.injectQueue) > 0 {
		return nil
	}
	if r.settling {
		if s.nav.Busy() {
			return nil
		}
		r.settling = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone(s)
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "push":
		if st.Kind == "" {
			err = s.nav.Push(r.screens[st.Screen], false)
		} else {
			err = s.registry.Push(r.screens[st.Screen], MustNew(st.kind))
		}
	case "pop":
		if st.Kind == "" {
			_, err = s.nav.Pop(false)
		} else {
			_, err = s.registry.Pop(MustNew(st.kind))
		}
	case "cancel":
		s.nav.Cancel()
	case "settle":
		r.settling = true
	case "screenshot":
		s.Screenshot(st.Label)
	case "tap":
		s.InjectTap(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		r.done = true
		return fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	r.checkDone(s)
	return nil
}

func (r *Script) checkDone(s *Scene) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(s.injectQueue) == 0 {
		r.done = true
	}
}
