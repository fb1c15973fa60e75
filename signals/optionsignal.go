package signals

// OptionSignal lifts an optional signal of T into a signal of Option[T].
// Without an inner signal it yields None once, then terminates. With one,
// every value v becomes Some(v).
type OptionSignal[T any, S Signal[T]] struct {
	inner    S
	hasInner bool
	phase    phase
}

func NewOption[T any, S Signal[T]](inner Option[S]) *OptionSignal[T, S] {
	s, ok := inner.Get()
	return &OptionSignal[T, S]{
		inner:    s,
		hasInner: ok,
	}
}

func (s *OptionSignal[T, S]) PollChange(cx *Context) Poll[Option[T]] {
	if s.phase == phaseTerminated {
		return PollDone[Option[T]]()
	}
	if !s.hasInner {
		s.phase = phaseTerminated
		return PollReady(None[T]())
	}

	p := observe(&s.phase, s.inner.PollChange(cx))
	return MapPoll(p, Some[T])
}
