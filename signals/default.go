package signals

// DefaultSignal yields the inner signal's values when there is one, and
// otherwise a single default value followed by termination.
type DefaultSignal[T any, S Signal[T]] struct {
	def      T
	inner    S
	hasInner bool
	phase    phase
}

func NewDefault[T any, S Signal[T]](def T, inner Option[S]) *DefaultSignal[T, S] {
	s, ok := inner.Get()
	return &DefaultSignal[T, S]{
		def:      def,
		inner:    s,
		hasInner: ok,
	}
}

func (s *DefaultSignal[T, S]) PollChange(cx *Context) Poll[T] {
	if s.phase == phaseTerminated {
		return PollDone[T]()
	}
	if s.hasInner {
		return observe(&s.phase, s.inner.PollChange(cx))
	}

	// the default fires exactly once and is released with it
	v := s.def
	var zero T
	s.def = zero
	s.phase = phaseTerminated
	return PollReady(v)
}
