package retro

// Operation is the navigation operation a transition animates.
type Operation uint8

const (
	OperationNone Operation = iota
	OperationPush
	OperationPop
)

func (op Operation) String() string {
	switch op {
	case OperationPush:
		return "push"
	case OperationPop:
		return "pop"
	default:
		return "none"
	}
}

// TransitionContext is what a transition sees of one navigation operation.
// It is created per operation by the Navigator.
type TransitionContext interface {
	// From returns the outgoing view, or nil.
	From() *View
	// To returns the incoming view, or nil.
	To() *View
	// Container returns the view both endpoints are staged in.
	Container() *View
	// Timeline returns the scheduler animations and delayed tasks run on.
	Timeline() *Timeline
	// Capture renders v into a new snapshot.
	Capture(v *View) (*Snapshot, error)
	// Complete ends the operation. Only the first call has an effect.
	Complete(success bool)
	// WasCancelled reports whether the operation has been cancelled.
	WasCancelled() bool
}

// endpoints returns the context's views or ErrMissingView when either is
// absent.
func endpoints(ctx TransitionContext) (from, to *View, err error) {
	from, to = ctx.From(), ctx.To()
	if from == nil || to == nil || ctx.Container() == nil {
		return nil, nil, ErrMissingView
	}
	return from, to, nil
}

// finishWith returns the terminal callback shared by every variant: it
// reports success unless the context was cancelled, then runs cleanup.
func finishWith(ctx TransitionContext, cleanup func()) func(bool) {
	return func(bool) {
		ctx.Complete(!ctx.WasCancelled())
		if cleanup != nil {
			cleanup()
		}
	}
}
