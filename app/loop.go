package app

// Run drives the callback lifecycle with an explicit single-threaded
// loop: drain the pending input events, dispatch each to HandleEvent,
// render one frame with Iterate, and stop as soon as the result is not
// ResultContinue. The gogpu driver realizes the same contract through
// its vsync callbacks; Run is the headless equivalent used by tests
// and by drivers that poll.
func Run(a *App, src EventSource) Result {
	for {
		for {
			ev, ok := src.PollEvent()
			if !ok {
				break
			}
			a.HandleEvent(ev)
		}
		if res := a.Iterate(); res != ResultContinue {
			return res
		}
	}
}
