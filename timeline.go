package retro

import (
	"slices"
)

// Task is a function scheduled on a Timeline after a delay.
type Task struct {
	at        float64
	seq       uint64
	fn        func()
	tl        *Timeline
	cancelled bool
}

// Cancel prevents the task from running. It reports whether the task was
// still pending.
func (t *Task) Cancel() bool {
	if t.cancelled || t.tl == nil {
		return false
	}
	t.cancelled = true
	t.tl.removeTask(t)
	return true
}

// Timeline advances animations and delayed tasks. It has no clock of its
// own: the owner calls Update with the elapsed time each frame, which keeps
// it deterministic under test.
type Timeline struct {
	now   float64
	seq   uint64
	anims []*Animation
	tasks []*Task

	finished []*Animation // scratch reused by Update
}

// NewTimeline creates an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the total time the timeline has been advanced, in seconds.
func (tl *Timeline) Now() float64 {
	return tl.now
}

// Len returns the number of attached animations.
func (tl *Timeline) Len() int {
	return len(tl.anims)
}

// Idle reports whether no animations or tasks are pending.
func (tl *Timeline) Idle() bool {
	return len(tl.anims) == 0 && len(tl.tasks) == 0
}

// Add attaches a to the timeline and applies its start value. An animation
// already running for the same target and property is removed first and
// finishes with false.
func (tl *Timeline) Add(a *Animation) {
	if a == nil {
		return
	}
	if a.timeline != nil {
		panic("retro: animation is already attached to a timeline")
	}
	if a.finish != nil {
		panic("retro: animation cannot be reused")
	}
	key := a.target()
	for _, other := range tl.anims {
		if other.Property == a.Property && other.target() == key {
			tl.Remove(other)
			break
		}
	}
	tl.anims = append(tl.anims, a)
	a.start(tl)
}

// Remove detaches a before its natural end. Its OnFinish fires with false,
// or with true if it had already reached its end and was being held.
func (tl *Timeline) Remove(a *Animation) {
	i := slices.Index(tl.anims, a)
	if i < 0 {
		return
	}
	tl.anims = slices.Delete(tl.anims, i, i+1)
	a.detach()
	if !a.finish.Fired() {
		a.finish.Fire(a.ended)
	}
}

// Clear removes every animation and cancels every task. Animations finish
// with false in attach order.
func (tl *Timeline) Clear() {
	for _, t := range tl.tasks {
		t.cancelled = true
		t.tl = nil
	}
	tl.tasks = tl.tasks[:0]
	for len(tl.anims) > 0 {
		tl.Remove(tl.anims[0])
	}
}

// After schedules fn to run once the timeline has advanced by delay seconds.
// Tasks due in the same update run in order of due time, then scheduling
// order.
func (tl *Timeline) After(delay float64, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	tl.seq++
	t := &Task{at: tl.now + delay, seq: tl.seq, fn: fn, tl: tl}
	tl.tasks = append(tl.tasks, t)
	return t
}

// Update advances the timeline by dt seconds. Animations are advanced first;
// those that reached their end are removed and their OnFinish callbacks run
// in attach order. Due tasks run last. Animations added by callbacks start
// advancing on the next Update.
func (tl *Timeline) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	tl.now += dt

	tl.finished = tl.finished[:0]
	live := tl.anims[:0]
	for _, a := range tl.anims {
		wasEnded := a.ended
		if a.advance(dt) {
			if a.RemovedOnCompletion {
				tl.finished = append(tl.finished, a)
				continue
			}
			if !wasEnded {
				// Held animations report their natural end once.
				tl.finished = append(tl.finished, a)
			}
		}
		live = append(live, a)
	}
	clear(tl.anims[len(live):])
	tl.anims = live

	for _, a := range tl.finished {
		if a.RemovedOnCompletion {
			a.detach()
		}
		// A callback earlier in this loop may have removed a held animation.
		if !a.finish.Fired() {
			a.finish.Fire(true)
		}
	}
	clear(tl.finished)

	tl.runDueTasks()
}

func (tl *Timeline) runDueTasks() {
	for {
		next := -1
		for i, t := range tl.tasks {
			if t.at > tl.now+1e-9 {
				continue
			}
			if next < 0 || t.at < tl.tasks[next].at ||
				(t.at == tl.tasks[next].at && t.seq < tl.tasks[next].seq) {
				next = i
			}
		}
		if next < 0 {
			return
		}
		t := tl.tasks[next]
		tl.tasks = slices.Delete(tl.tasks, next, next+1)
		t.tl = nil
		t.fn()
	}
}

func (tl *Timeline) removeTask(t *Task) {
	if i := slices.Index(tl.tasks, t); i >= 0 {
		tl.tasks = slices.Delete(tl.tasks, i, i+1)
	}
	t.tl = nil
}
