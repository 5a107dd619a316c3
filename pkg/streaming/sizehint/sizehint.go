// Package sizehint describes what is statically known about the length of a
// stream and how that knowledge changes under each stream transformation.
//
// Hints are advisory. A consumer may use them to presize buffers but must never
// skip a correctness check because of one.
package sizehint

import (
	"fmt"
	"math"
)

// Kind identifies the form of a Hint.
type Kind uint8

const (
	// KindUnknown carries no guarantee about the length.
	KindUnknown Kind = iota

	// KindExact promises exactly N elements.
	KindExact

	// KindAtMost promises no more than N elements.
	KindAtMost
)

// presizeLimit caps buffer presizing for upper-bound hints, which may be loose.
const presizeLimit = 4096

// Hint is an Exact, AtMost or Unknown length estimate. The zero value is Unknown.
type Hint struct {
	kind Kind
	n    int
}

// Exact returns a hint promising exactly n elements. Negative n is treated as 0.
func Exact(n int) Hint {
	return Hint{kind: KindExact, n: max(n, 0)}
}

// AtMost returns a hint promising at most n elements. Negative n is treated as 0.
func AtMost(n int) Hint {
	return Hint{kind: KindAtMost, n: max(n, 0)}
}

// Unknown returns a hint carrying no information.
func Unknown() Hint {
	return Hint{}
}

// Kind returns the form of the hint.
func (h Hint) Kind() Kind {
	return h.kind
}

// Upper returns the upper bound on the length, if one is known.
func (h Hint) Upper() (int, bool) {
	if h.kind == KindUnknown {
		return 0, false
	}
	return h.n, true
}

// Exactly returns the exact length, if it is known.
func (h Hint) Exactly() (int, bool) {
	if h.kind != KindExact {
		return 0, false
	}
	return h.n, true
}

// Capacity returns a buffer capacity suitable for collecting the stream.
func (h Hint) Capacity() int {
	switch h.kind {
	case KindExact:
		return h.n
	case KindAtMost:
		return min(h.n, presizeLimit)
	default:
		return 0
	}
}

// Degrade turns an exact hint into an upper bound. Filtering combinators
// (filter, takeWhile, dropWhile) use it.
func (h Hint) Degrade() Hint {
	if h.kind == KindExact {
		return AtMost(h.n)
	}
	return h
}

// Take returns the hint of the first n elements of a stream with hint h.
func (h Hint) Take(n int) Hint {
	n = max(n, 0)
	switch h.kind {
	case KindExact:
		return Exact(min(n, h.n))
	case KindAtMost:
		return AtMost(min(n, h.n))
	default:
		return AtMost(n)
	}
}

// Drop returns the hint of a stream with hint h after its first n elements
// are discarded. Bounds are floored at 0.
func (h Hint) Drop(n int) Hint {
	n = max(n, 0)
	if h.kind == KindUnknown {
		return h
	}
	return Hint{kind: h.kind, n: max(h.n-n, 0)}
}

// Add returns the hint of the concatenation of two streams.
func Add(a, b Hint) Hint {
	switch {
	case a.kind == KindUnknown || b.kind == KindUnknown:
		return Unknown()
	case a.kind == KindExact && b.kind == KindExact:
		return Exact(saturatingAdd(a.n, b.n))
	default:
		return AtMost(saturatingAdd(a.n, b.n))
	}
}

// Min returns the hint of a stream that stops as soon as either of two
// streams stops, as zipping does.
func Min(a, b Hint) Hint {
	switch {
	case a.kind == KindExact && b.kind == KindExact:
		return Exact(min(a.n, b.n))
	case a.kind == KindUnknown && b.kind == KindUnknown:
		return Unknown()
	case a.kind == KindUnknown:
		return AtMost(b.n)
	case b.kind == KindUnknown:
		return AtMost(a.n)
	default:
		return AtMost(min(a.n, b.n))
	}
}

// Admits reports whether a stream that produced count elements is consistent with h.
func (h Hint) Admits(count int) bool {
	switch h.kind {
	case KindExact:
		return count == h.n
	case KindAtMost:
		return count <= h.n
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (h Hint) String() string {
	switch h.kind {
	case KindExact:
		return fmt.Sprintf("Exact(%d)", h.n)
	case KindAtMost:
		return fmt.Sprintf("AtMost(%d)", h.n)
	default:
		return "Unknown"
	}
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
