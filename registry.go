package retro

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultRegistryLimit is the number of registrations a Registry accepts
// before Register fails.
const DefaultRegistryLimit = 16

// Token identifies one registration with a Registry.
type Token struct {
	id uuid.UUID
}

func (t Token) String() string {
	return t.id.String()
}

// IsZero reports whether t is the zero token.
func (t Token) IsZero() bool {
	return t.id == uuid.Nil
}

type registryEntry struct {
	token      Token
	transition Transition
}

// Registry hands one transition to the next navigation operation of its
// Navigator. While registrations are pending it is installed as the
// navigator's delegate; once the last one is consumed or released the
// previous delegate is restored.
//
// Registrations are last in, first out.
type Registry struct {
	nav       *Navigator
	entries   []registryEntry
	previous  Delegate
	installed bool

	// Limit caps pending registrations. Zero means DefaultRegistryLimit.
	Limit int
}

// NewRegistry creates a registry bound to nav.
func NewRegistry(nav *Navigator) *Registry {
	return &Registry{nav: nav, Limit: DefaultRegistryLimit}
}

// Pending returns the number of registrations not yet consumed.
func (r *Registry) Pending() int {
	return len(r.entries)
}

func (r *Registry) limit() int {
	if r.Limit <= 0 {
		return DefaultRegistryLimit
	}
	return r.Limit
}

// Register queues t for the next navigation operation and installs the
// registry as the navigator's delegate.
func (r *Registry) Register(t Transition) (Token, error) {
	if t == nil {
		return Token{}, ErrNilTransition
	}
	if len(r.entries) >= r.limit() {
		return Token{}, fmt.Errorf("%w: %d pending", ErrRegistryFull, len(r.entries))
	}
	if !r.installed {
		r.previous = r.nav.Delegate()
		r.nav.SetDelegate(r)
		r.installed = true
	}
	tok := Token{id: uuid.New()}
	r.entries = append(r.entries, registryEntry{token: tok, transition: t})
	logger.Debug("transition registered", "token", tok, "kind", t.Kind(), "pending", len(r.entries))
	return tok, nil
}

// AnimatorFor implements Delegate. It consumes the most recent registration,
// or returns nil when none is pending.
func (r *Registry) AnimatorFor(op Operation, from, to *View) Transition {
	n := len(r.entries)
	if n == 0 {
		r.uninstall()
		return nil
	}
	e := r.entries[n-1]
	r.entries[n-1] = registryEntry{}
	r.entries = r.entries[:n-1]
	if len(r.entries) == 0 {
		r.uninstall()
	}
	return e.transition
}

// Release drops a registration that no navigation operation consumed. Only
// the most recent registration can be released.
func (r *Registry) Release(tok Token) error {
	n := len(r.entries)
	if n > 0 && r.entries[n-1].token == tok {
		r.entries[n-1] = registryEntry{}
		r.entries = r.entries[:n-1]
		if len(r.entries) == 0 {
			r.uninstall()
		}
		return nil
	}
	if r.holds(tok) {
		return fmt.Errorf("release %s: %w", tok, ErrTokenOrder)
	}
	return fmt.Errorf("release %s: %w", tok, ErrUnknownToken)
}

func (r *Registry) holds(tok Token) bool {
	for _, e := range r.entries {
		if e.token == tok {
			return true
		}
	}
	return false
}

func (r *Registry) uninstall() {
	if !r.installed {
		return
	}
	if r.nav.Delegate() == Delegate(r) {
		r.nav.SetDelegate(r.previous)
	}
	r.previous = nil
	r.installed = false
}

// Push pushes v onto the navigator, animated by t.
func (r *Registry) Push(v *View, t Transition) error {
	tok, err := r.Register(t)
	if err != nil {
		return err
	}
	err = r.nav.Push(v, true)
	r.releaseUnused(tok)
	return err
}

// Pop pops the navigator's top screen, animated by t.
func (r *Registry) Pop(t Transition) (*View, error) {
	tok, err := r.Register(t)
	if err != nil {
		return nil, err
	}
	v, err := r.nav.Pop(true)
	r.releaseUnused(tok)
	return v, err
}

// releaseUnused drops tok if the navigation operation did not consume it, as
// happens for the first push or when the operation was rejected.
func (r *Registry) releaseUnused(tok Token) {
	if !r.holds(tok) {
		return
	}
	if err := r.Release(tok); err != nil {
		logger.Warn("could not release unused registration", "token", tok, "err", err)
	}
}
