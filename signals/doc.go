// Package signals provides combinators over pollable value streams.
//
// A Signal is polled by whatever drives it and answers with one of three
// states: a produced value (Ready), nothing yet (Pending, the context's waker
// will be called once progress is possible) or terminated (Done). Once a
// combinator in this package reports Done it keeps reporting Done, and it
// never polls its inner signal again.
//
// DefaultSignal, OptionSignal and EitherSignal let a function return one of
// several signal shapes without erasing them to an interface. When the set of
// shapes is open ended, BoxSignalFn and RcSignalFn wrap a function that builds
// a fresh signal each time it is called.
package signals
