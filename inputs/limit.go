package inputs

type frameLimit struct {
	p     Poller
	limit uint64
	polls uint64
}

// LimitFrames wraps p so that the poll after the first n reports Exit.
// A limit of zero returns p unchanged.
func LimitFrames(p Poller, n uint64) Poller {
	if n == 0 {
		return p
	}
	return &frameLimit{p: p, limit: n}
}

func (f *frameLimit) PollFrameInput() State {
	s := f.p.PollFrameInput()
	if f.polls >= f.limit {
		s.Exit = true
	}
	f.polls++
	return s
}
