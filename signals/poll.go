package signals

import "fmt"

type State uint8

const (
	// Pending means no value is available yet. The signal has arranged for
	// the context's waker to be called when it can make progress.
	Pending State = iota
	// Ready means a value was produced.
	Ready
	// Done means the signal terminated. It is absorbing.
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Poll is the result of a single PollChange call. Value is only meaningful
// when State is Ready.
type Poll[T any] struct {
	State State
	Value T
}

func PollReady[T any](v T) Poll[T] {
	return Poll[T]{State: Ready, Value: v}
}

func PollPending[T any]() Poll[T] {
	return Poll[T]{State: Pending}
}

func PollDone[T any]() Poll[T] {
	return Poll[T]{State: Done}
}

func (p Poll[T]) IsReady() bool   { return p.State == Ready }
func (p Poll[T]) IsPending() bool { return p.State == Pending }
func (p Poll[T]) IsDone() bool    { return p.State == Done }

func (p Poll[T]) String() string {
	if p.State == Ready {
		return fmt.Sprintf("ready(%v)", p.Value)
	}
	return p.State.String()
}

// MapPoll rewrites the value of a Ready poll. Pending and Done pass through.
func MapPoll[T, U any](p Poll[T], fn func(T) U) Poll[U] {
	if p.State != Ready {
		return Poll[U]{State: p.State}
	}
	return PollReady(fn(p.Value))
}

// phase is the lifecycle shared by every combinator: active until the first
// Done is reported, terminated forever after.
type phase uint8

const (
	phaseActive phase = iota
	phaseTerminated
)

// observe latches termination and returns p unchanged.
func observe[T any](ph *phase, p Poll[T]) Poll[T] {
	if p.State == Done {
		*ph = phaseTerminated
	}
	return p
}
