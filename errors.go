package retro

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrMissingView is returned by Animate when the context has no from or to
	// view. The transition does not complete the context; the caller aborts.
	ErrMissingView = errors.New("retro: transition context is missing a view")

	// ErrCaptureFailed is returned when a view snapshot cannot be produced.
	ErrCaptureFailed = errors.New("retro: snapshot capture failed")

	ErrNilTransition        = errors.New("retro: nil transition")
	ErrRegistryFull         = errors.New("retro: too many pending transitions")
	ErrTokenOrder           = errors.New("retro: token is not the most recent registration")
	ErrUnknownToken         = errors.New("retro: unknown registration token")
	ErrTransitionInProgress = errors.New("retro: a transition is already running")
	ErrEmptyStack           = errors.New("retro: navigation stack has no screen to pop")
	ErrUnknownKind          = errors.New("retro: unknown transition kind")
	ErrInvalidConfig        = errors.New("retro: invalid transition config")
)

// TransitionError wraps a failure raised while a transition was being set up.
type TransitionError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("retro: %s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func transitionError(k Kind, op string, err error) error {
	return &TransitionError{Kind: k, Op: op, Err: err}
}
