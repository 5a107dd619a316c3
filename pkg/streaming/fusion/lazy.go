package fusion

// Lazy is a value computed on first use. A Lazy is not safe for concurrent use.
type Lazy[A any] struct {
	thunk  func() A
	value  A
	forced bool
}

// Defer returns a Lazy that evaluates thunk the first time it is forced.
func Defer[A any](thunk func() A) *Lazy[A] {
	return &Lazy[A]{thunk: thunk}
}

// Ready returns an already evaluated Lazy.
func Ready[A any](v A) *Lazy[A] {
	return &Lazy[A]{value: v, forced: true}
}

// Force evaluates the thunk if needed and returns its value.
func (l *Lazy[A]) Force() A {
	if !l.forced {
		l.value = l.thunk()
		l.forced = true
		l.thunk = nil
	}
	return l.value
}

// Forced reports whether the value has been computed.
func (l *Lazy[A]) Forced() bool {
	return l.forced
}
