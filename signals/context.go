package signals

// Waker is supplied by the driver of a signal. A signal that returns Pending
// must call Wake once it is able to make progress.
type Waker interface {
	Wake()
}

type WakerFunc func()

func (f WakerFunc) Wake() { f() }

type noopWaker struct{}

func (noopWaker) Wake() {}

// NoopWaker ignores every wake.
var NoopWaker Waker = noopWaker{}

// Context is handed to every PollChange call.
type Context struct {
	waker Waker
}

func NewContext(w Waker) *Context {
	if w == nil {
		w = NoopWaker
	}
	return &Context{waker: w}
}

var background = &Context{waker: NoopWaker}

// Background returns a context whose waker does nothing. It is useful for
// signals that never suspend, and in tests.
func Background() *Context {
	return background
}

func (cx *Context) Waker() Waker {
	if cx == nil || cx.waker == nil {
		return NoopWaker
	}
	return cx.waker
}

func (cx *Context) Wake() {
	cx.Waker().Wake()
}
