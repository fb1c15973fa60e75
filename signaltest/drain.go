package signaltest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/signalhelpers/signals"
)

// Recorder is a Waker that counts how often it was woken.
type Recorder struct {
	wakes int
}

func (r *Recorder) Wake() { r.wakes++ }

func (r *Recorder) Wakes() int { return r.wakes }

// Trace is the sequence of polls a signal answered.
type Trace[T any] []signals.Poll[T]

// Values returns the produced values in order.
func (t Trace[T]) Values() []T {
	vs := make([]T, 0, len(t))
	for _, p := range t {
		if p.IsReady() {
			vs = append(vs, p.Value)
		}
	}
	return vs
}

// Done reports whether the trace ends in termination.
func (t Trace[T]) Done() bool {
	return len(t) > 0 && t[len(t)-1].IsDone()
}

// Digest hashes the states and values of the trace, so two runs can be
// compared without keeping both around.
func (t Trace[T]) Digest() uint64 {
	d := xxhash.New()
	for _, p := range t {
		fmt.Fprintf(d, "%s;", p)
	}
	return d.Sum64()
}

// Drain polls sig until it reports Done, limit polls have been made, or it
// suspends without waking. A limit <= 0 means no limit.
func Drain[T any](sig signals.Signal[T], limit int) Trace[T] {
	rec := &Recorder{}
	cx := signals.NewContext(rec)

	var trace Trace[T]
	for limit <= 0 || len(trace) < limit {
		before := rec.Wakes()
		p := sig.PollChange(cx)
		trace = append(trace, p)
		if p.IsDone() {
			break
		}
		if p.IsPending() && rec.Wakes() == before {
			// nothing will wake us, a real driver would park here
			break
		}
	}
	return trace
}
