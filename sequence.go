package retro

// Chain runs phases one after another on tl: phase k+1 is added from inside
// phase k's finish callback, so it never starts before phase k ends. Each
// phase's own OnFinish still runs, before the next phase is added. done runs
// exactly once, after the last phase finishes, with true only if every phase
// ran to its end.
func Chain(tl *Timeline, phases []*Animation, done func(finished bool)) {
	if len(phases) == 0 {
		if done != nil {
			done(true)
		}
		return
	}
	all := true
	for i, a := range phases {
		own := a.OnFinish
		a.OnFinish = func(finished bool) {
			all = all && finished
			if own != nil {
				own(finished)
			}
			if i+1 < len(phases) {
				tl.Add(phases[i+1])
				return
			}
			if done != nil {
				done(all)
			}
		}
	}
	tl.Add(phases[0])
}

// Parallel adds every phase to tl at once. Only phases[last] is wired to
// done; the other members finish on their own with no ordering between them.
// Members are expected to share a duration so the designated one ends last.
func Parallel(tl *Timeline, phases []*Animation, last int, done func(finished bool)) {
	if len(phases) == 0 {
		if done != nil {
			done(true)
		}
		return
	}
	if last < 0 || last >= len(phases) {
		last = len(phases) - 1
	}
	lead := phases[last]
	own := lead.OnFinish
	lead.OnFinish = func(finished bool) {
		if own != nil {
			own(finished)
		}
		if done != nil {
			done(finished)
		}
	}
	for _, a := range phases {
		tl.Add(a)
	}
}
