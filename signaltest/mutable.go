package signaltest

import "github.com/delaneyj/signalhelpers/signals"

// Mutable is a writable source. The first poll always yields the current
// value; later polls yield only changes, and suspend until the next SetValue
// or Close otherwise.
type Mutable[T comparable] struct {
	value   T
	changed bool
	closed  bool
	waker   signals.Waker
}

func NewMutable[T comparable](initialValue T) *Mutable[T] {
	return &Mutable[T]{
		value:   initialValue,
		changed: true,
	}
}

func (m *Mutable[T]) Value() T {
	return m.value
}

func (m *Mutable[T]) SetValue(v T) {
	if m.closed || m.value == v {
		return
	}
	m.value = v
	m.changed = true
	m.wake()
}

// Close terminates the source once any pending change has been delivered.
func (m *Mutable[T]) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.wake()
}

func (m *Mutable[T]) wake() {
	if w := m.waker; w != nil {
		m.waker = nil
		w.Wake()
	}
}

func (m *Mutable[T]) PollChange(cx *signals.Context) signals.Poll[T] {
	if m.changed {
		m.changed = false
		return signals.PollReady(m.value)
	}
	if m.closed {
		return signals.PollDone[T]()
	}
	m.waker = cx.Waker()
	return signals.PollPending[T]()
}
