package signals

// EitherSignal holds exactly one of two concrete signals producing the same
// type. It lets a function return one of two shapes without boxing either.
// The held variant never changes.
type EitherSignal[T any, L Signal[T], R Signal[T]] struct {
	left    L
	right   R
	isRight bool
	phase   phase
}

// Left builds an EitherSignal holding l. The right type has to be named:
//
//	e := signals.Left[int, *Derived](always)
func Left[T any, R Signal[T], L Signal[T]](l L) EitherSignal[T, L, R] {
	return EitherSignal[T, L, R]{left: l}
}

// Right builds an EitherSignal holding r.
func Right[T any, L Signal[T], R Signal[T]](r R) EitherSignal[T, L, R] {
	return EitherSignal[T, L, R]{right: r, isRight: true}
}

func (e *EitherSignal[T, L, R]) IsLeft() bool {
	return !e.isRight
}

func (e *EitherSignal[T, L, R]) LeftSignal() (L, bool) {
	return e.left, !e.isRight
}

func (e *EitherSignal[T, L, R]) RightSignal() (R, bool) {
	return e.right, e.isRight
}

func (e *EitherSignal[T, L, R]) PollChange(cx *Context) Poll[T] {
	if e.phase == phaseTerminated {
		return PollDone[T]()
	}
	if e.isRight {
		return observe(&e.phase, e.right.PollChange(cx))
	}
	return observe(&e.phase, e.left.PollChange(cx))
}
