package retro

import (
	"fmt"
)

// Delegate supplies the transition for a navigation operation. Returning nil
// makes the navigator swap screens without animation.
type Delegate interface {
	AnimatorFor(op Operation, from, to *View) Transition
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(op Operation, from, to *View) Transition

func (f DelegateFunc) AnimatorFor(op Operation, from, to *View) Transition {
	return f(op, from, to)
}

// NavigationEvent describes a settled navigation operation. Kind is only
// meaningful when Animated is true.
type NavigationEvent struct {
	Op       Operation
	Kind     Kind
	Animated bool
	Success  bool
	From, To *View
}

// EventStore receives a NavigationEvent for every settled operation. ECS
// adapters implement it to forward navigation into their world.
type EventStore interface {
	EmitEvent(event NavigationEvent)
}

// Navigator is a stack of full-screen views shown in a container. Pushing or
// popping asks the delegate for a transition and runs it on the timeline.
// Only one transition runs at a time.
type Navigator struct {
	container *View
	timeline  *Timeline
	capturer  Capturer
	delegate  Delegate
	screens   []*View
	active    *navContext
	store     EventStore

	// OnSettle, if set, is called after each operation has settled.
	OnSettle func(op Operation, success bool)
}

// NewNavigator creates a navigator that stages screens in container and runs
// transitions on tl. capturer may be nil if no transition needs snapshots.
func NewNavigator(container *View, tl *Timeline, capturer Capturer) *Navigator {
	return &Navigator{container: container, timeline: tl, capturer: capturer}
}

// Container returns the view screens are staged in.
func (n *Navigator) Container() *View { return n.container }

// Timeline returns the timeline transitions run on.
func (n *Navigator) Timeline() *Timeline { return n.timeline }

// SetCapturer replaces the capturer handed to transitions.
func (n *Navigator) SetCapturer(c Capturer) { n.capturer = c }

// Delegate returns the installed delegate, or nil.
func (n *Navigator) Delegate() Delegate { return n.delegate }

// SetDelegate installs d as the delegate. Nil removes it.
func (n *Navigator) SetDelegate(d Delegate) { n.delegate = d }

// SetEventStore sets where settled operations are reported. Pass nil to
// stop reporting.
func (n *Navigator) SetEventStore(store EventStore) { n.store = store }

// Top returns the visible screen, or nil when the stack is empty.
func (n *Navigator) Top() *View {
	if len(n.screens) == 0 {
		return nil
	}
	return n.screens[len(n.screens)-1]
}

// Len returns the number of screens on the stack.
func (n *Navigator) Len() int { return len(n.screens) }

// Busy reports whether a transition is running.
func (n *Navigator) Busy() bool { return n.active != nil }

// Cancel marks the running transition as cancelled. The transition still
// plays out; it then completes unsuccessfully and the operation is reverted.
// Cancel reports whether a transition was running.
func (n *Navigator) Cancel() bool {
	if n.active == nil {
		return false
	}
	n.active.cancelled = true
	return true
}

// Push makes v the visible screen. The frame of v is set to fill the
// container.
func (n *Navigator) Push(v *View, animated bool) error {
	if v == nil {
		return fmt.Errorf("push: %w", ErrMissingView)
	}
	if n.active != nil {
		return fmt.Errorf("push %s: %w", v, ErrTransitionInProgress)
	}
	from := n.Top()
	v.SetFrame(n.container.Bounds())
	n.screens = append(n.screens, v)
	if err := n.run(OperationPush, from, v, animated); err != nil {
		n.screens = n.screens[:len(n.screens)-1]
		return fmt.Errorf("push %s: %w", v, err)
	}
	return nil
}

// Pop removes the visible screen and reveals the one beneath it. It returns
// the removed screen. Popping the last screen is an error.
func (n *Navigator) Pop(animated bool) (*View, error) {
	if n.active != nil {
		return nil, fmt.Errorf("pop: %w", ErrTransitionInProgress)
	}
	if len(n.screens) < 2 {
		return nil, fmt.Errorf("pop: %w", ErrEmptyStack)
	}
	from := n.screens[len(n.screens)-1]
	to := n.screens[len(n.screens)-2]
	to.SetFrame(n.container.Bounds())
	n.screens = n.screens[:len(n.screens)-1]
	if err := n.run(OperationPop, from, to, animated); err != nil {
		n.screens = append(n.screens, from)
		return nil, fmt.Errorf("pop %s: %w", from, err)
	}
	return from, nil
}

// run performs the view swap for an operation whose stack change has already
// been applied.
func (n *Navigator) run(op Operation, from, to *View, animated bool) error {
	var t Transition
	if animated && from != nil && n.delegate != nil {
		t = n.delegate.AnimatorFor(op, from, to)
	}
	if t == nil {
		if from != nil {
			from.RemoveFromParent()
		}
		n.container.AddChild(to)
		n.settled(NavigationEvent{Op: op, Success: true, From: from, To: to})
		return nil
	}

	ctx := &navContext{nav: n, op: op, kind: t.Kind(), from: from, to: to}
	ctx.done = NewEvent(fmt.Sprintf("%s %s", op, t.Kind()), ctx.complete)
	n.active = ctx
	logger.Debug("transition started", "op", op, "kind", t.Kind(), "duration", t.TransitionDuration(), "from", from, "to", to)
	if err := t.Animate(ctx); err != nil {
		logger.Error("transition aborted", "op", op, "kind", t.Kind(), "err", err)
		n.active = nil
		n.restore(from, to)
		return err
	}
	return nil
}

// restore puts the container back the way it was before an operation that
// did not happen.
func (n *Navigator) restore(from, to *View) {
	if to != nil {
		to.ClearMask()
		to.ResetTransform()
		to.Alpha = 1
		to.Visible = true
		to.RemoveFromParent()
	}
	if from != nil {
		from.ClearMask()
		from.ResetTransform()
		from.Alpha = 1
		from.Visible = true
		if from.Parent != n.container {
			n.container.AddChild(from)
		}
	}
}

// finish settles the running operation once the transition has cleaned up.
func (n *Navigator) finish(ctx *navContext, success bool) {
	if n.active == ctx {
		n.active = nil
	}
	if success {
		if ctx.from != nil {
			ctx.from.RemoveFromParent()
		}
		if ctx.to.Parent != n.container {
			n.container.AddChild(ctx.to)
		}
		n.settled(ctx.event(true))
		return
	}

	switch ctx.op {
	case OperationPush:
		if top := n.Top(); top == ctx.to {
			n.screens = n.screens[:len(n.screens)-1]
		}
	case OperationPop:
		n.screens = append(n.screens, ctx.from)
	}
	n.restore(ctx.from, ctx.to)
	n.settled(ctx.event(false))
}

func (n *Navigator) settled(ev NavigationEvent) {
	logger.Debug("navigation settled", "op", ev.Op, "success", ev.Success, "depth", len(n.screens))
	if n.store != nil {
		n.store.EmitEvent(ev)
	}
	if n.OnSettle != nil {
		n.OnSettle(ev.Op, ev.Success)
	}
}

// navContext is the TransitionContext of one navigation operation.
type navContext struct {
	nav       *Navigator
	op        Operation
	kind      Kind
	from, to  *View
	cancelled bool
	done      *Event
}

func (c *navContext) event(success bool) NavigationEvent {
	return NavigationEvent{Op: c.op, Kind: c.kind, Animated: true, Success: success, From: c.from, To: c.to}
}

func (c *navContext) From() *View         { return c.from }
func (c *navContext) To() *View           { return c.to }
func (c *navContext) Container() *View    { return c.nav.container }
func (c *navContext) Timeline() *Timeline { return c.nav.timeline }
func (c *navContext) WasCancelled() bool  { return c.cancelled }

func (c *navContext) Capture(v *View) (*Snapshot, error) {
	if c.nav.capturer == nil {
		return nil, fmt.Errorf("%w: no capturer", ErrCaptureFailed)
	}
	return c.nav.capturer.Capture(v)
}

func (c *navContext) Complete(success bool) {
	c.done.Fire(success)
}

// complete defers settling until the transition's own cleanup, which runs
// right after Complete, has finished with the views.
func (c *navContext) complete(success bool) {
	logger.Debug("transition completed", "op", c.op, "kind", c.kind, "success", success)
	c.nav.timeline.After(0, func() {
		c.nav.finish(c, success)
	})
}
