package signaltest

import "github.com/delaneyj/signalhelpers/signals"

// Script replays a fixed sequence of polls and reports Done once it runs
// out. A scripted Pending wakes the context straight away, so a driver polls
// again.
type Script[T any] struct {
	steps     []signals.Poll[T]
	next      int
	polls     int
	afterDone int
	done      bool
}

func NewScript[T any](steps ...signals.Poll[T]) *Script[T] {
	return &Script[T]{steps: steps}
}

// Values scripts one Ready per value, then Done.
func Values[T any](vs ...T) *Script[T] {
	steps := make([]signals.Poll[T], len(vs))
	for i, v := range vs {
		steps[i] = signals.PollReady(v)
	}
	return NewScript(steps...)
}

func (s *Script[T]) PollChange(cx *signals.Context) signals.Poll[T] {
	s.polls++
	if s.done {
		s.afterDone++
		return signals.PollDone[T]()
	}
	if s.next >= len(s.steps) {
		s.done = true
		return signals.PollDone[T]()
	}

	p := s.steps[s.next]
	s.next++
	switch p.State {
	case signals.Pending:
		cx.Wake()
	case signals.Done:
		s.done = true
	}
	return p
}

// Polls counts every PollChange call.
func (s *Script[T]) Polls() int { return s.polls }

// PolledAfterDone counts calls made after the script had reported Done.
func (s *Script[T]) PolledAfterDone() int { return s.afterDone }
