package signals

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Factory builds a new, independently owned signal on every call.
//
// Prefer a factory when deriving the signal again is cheap and each use wants
// its own instance to poll. When derivation is expensive, share one
// persistent signal instead.
type Factory[T any] interface {
	Call() Signal[T]
}

// SignalFn is the plain function form of a Factory.
type SignalFn[T any] func() Signal[T]

func (f SignalFn[T]) Call() Signal[T] {
	return f()
}

func erase[T any, S Signal[T]](fn func() S) SignalFn[T] {
	return func() Signal[T] {
		return fn()
	}
}

// BoxSignalFn is a factory with a single owner. Ownership moves with Take.
type BoxSignalFn[T any] struct {
	fn SignalFn[T]
}

func BoxFn[T any, S Signal[T]](fn func() S) *BoxSignalFn[T] {
	return &BoxSignalFn[T]{fn: erase[T](fn)}
}

func (b *BoxSignalFn[T]) Call() Signal[T] {
	if b.fn == nil {
		panic("signals: call on moved BoxSignalFn")
	}
	return b.fn()
}

// Take moves the factory into a new handle and leaves b empty.
func (b *BoxSignalFn[T]) Take() *BoxSignalFn[T] {
	if b.fn == nil {
		panic("signals: take from moved BoxSignalFn")
	}
	moved := &BoxSignalFn[T]{fn: b.fn}
	b.fn = nil
	return moved
}

func (b *BoxSignalFn[T]) Valid() bool {
	return b != nil && b.fn != nil
}

// RcSignalFn is a factory shared between several owners. Each owner holds its
// own handle from Clone and gives it up with Release; the wrapped function is
// dropped with the last owner.
type RcSignalFn[T any] struct {
	shared *rcShared[T]
}

type rcShared[T any] struct {
	fn     SignalFn[T]
	owners mapset.Set[*RcSignalFn[T]]
}

func RcFn[T any, S Signal[T]](fn func() S) *RcSignalFn[T] {
	shared := &rcShared[T]{
		fn:     erase[T](fn),
		owners: mapset.NewThreadUnsafeSet[*RcSignalFn[T]](),
	}
	r := &RcSignalFn[T]{shared: shared}
	shared.owners.Add(r)
	return r
}

func (r *RcSignalFn[T]) mustShared(op string) *rcShared[T] {
	if r.shared == nil {
		panic("signals: " + op + " on released RcSignalFn")
	}
	return r.shared
}

func (r *RcSignalFn[T]) Clone() *RcSignalFn[T] {
	shared := r.mustShared("clone")
	c := &RcSignalFn[T]{shared: shared}
	shared.owners.Add(c)
	return c
}

func (r *RcSignalFn[T]) Call() Signal[T] {
	return r.mustShared("call").fn()
}

// Release gives up this handle. It reports whether this was the last owner.
// Releasing twice is a no-op that reports false.
func (r *RcSignalFn[T]) Release() (last bool) {
	shared := r.shared
	if shared == nil {
		return false
	}
	r.shared = nil
	shared.owners.Remove(r)
	if shared.owners.Cardinality() == 0 {
		shared.fn = nil
		return true
	}
	return false
}

// Owners returns how many handles share the factory, 0 once r is released.
func (r *RcSignalFn[T]) Owners() int {
	if r.shared == nil {
		return 0
	}
	return r.shared.owners.Cardinality()
}
