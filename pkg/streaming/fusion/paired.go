package fusion

import (
	"cmp"
	"context"

	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

// pairPhase records which side of a lockstep traversal is stepped next.
type pairPhase int

const (
	// stepLeft: no left element is pending.
	stepLeft pairPhase = iota
	// stepRight: a left element is pending a partner from the right.
	stepRight
)

// lockstep walks a and b in step without buffering either side. match is
// called for every pair of elements and stops the walk by returning false.
// When a walk is not stopped, lockstep reports how it ended: 0 when both
// sides ran out together, -1 when a ran out first, +1 when b did.
func lockstep[A, B any](ctx context.Context, a Stream[A], b Stream[B], match func(A, B) bool) (int, bool, error) {
	left, right := a.Open(), b.Open()
	phase := stepLeft
	var x A
	for {
		switch phase {
		case stepLeft:
			st, err := advance(ctx, left)
			if err != nil {
				return 0, false, err
			}
			switch st.Kind() {
			case step.Skip:
				continue
			case step.Done:
				_, more, err := nextYield(ctx, right)
				if err != nil {
					return 0, false, err
				}
				if more {
					return -1, true, nil
				}
				return 0, true, nil
			}
			x, _ = st.Value()
			phase = stepRight
		case stepRight:
			st, err := advance(ctx, right)
			if err != nil {
				return 0, false, err
			}
			switch st.Kind() {
			case step.Skip:
				continue
			case step.Done:
				return 1, true, nil
			}
			y, _ := st.Value()
			if !match(x, y) {
				return 0, false, nil
			}
			phase = stepLeft
		}
	}
}

// EqBy reports whether a and b have the same length and eq holds for every
// pair of elements at the same position. It stops at the first mismatch.
func EqBy[A, B any](ctx context.Context, a Stream[A], b Stream[B], eq func(A, B) bool) (bool, error) {
	end, finished, err := lockstep(ctx, a, b, eq)
	if err != nil {
		return false, err
	}
	return finished && end == 0, nil
}

// Eq reports whether a and b yield equal elements.
func Eq[T comparable](ctx context.Context, a, b Stream[T]) (bool, error) {
	return EqBy(ctx, a, b, func(x, y T) bool { return x == y })
}

// CmpBy compares a and b lexicographically using compare. The result is
// negative, zero or positive as in cmp.Compare; a proper prefix orders first.
func CmpBy[A, B any](ctx context.Context, a Stream[A], b Stream[B], compare func(A, B) int) (int, error) {
	order := 0
	end, finished, err := lockstep(ctx, a, b, func(x A, y B) bool {
		order = compare(x, y)
		return order == 0
	})
	if err != nil {
		return 0, err
	}
	if !finished {
		return normalize(order), nil
	}
	return end, nil
}

// Cmp compares a and b lexicographically. It returns -1, 0 or +1.
func Cmp[T cmp.Ordered](ctx context.Context, a, b Stream[T]) (int, error) {
	return CmpBy(ctx, a, b, cmp.Compare[T])
}

func normalize(order int) int {
	switch {
	case order < 0:
		return -1
	case order > 0:
		return 1
	default:
		return 0
	}
}
