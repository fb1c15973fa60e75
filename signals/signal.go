package signals

// Signal is a lazily polled stream of values. A consumer must not poll the
// same signal from two goroutines at once.
type Signal[T any] interface {
	PollChange(cx *Context) Poll[T]
}

// SignalFunc adapts a plain function to Signal.
type SignalFunc[T any] func(cx *Context) Poll[T]

func (f SignalFunc[T]) PollChange(cx *Context) Poll[T] {
	return f(cx)
}
