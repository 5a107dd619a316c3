package fusion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vnykmshr/gostep/internal/testutil"
	gferrors "github.com/vnykmshr/gostep/pkg/common/errors"
)

func TestFolds(t *testing.T) {
	ctx := context.Background()
	xs := FromSlice([]string{"a", "b", "c"})

	left, err := Foldl(ctx, xs, "", func(acc, x string) string { return "(" + acc + x + ")" })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, left, "(((a)b)c)")

	right, err := Foldr(ctx, xs, "", func(x, acc string) string { return "(" + x + acc + ")" })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, right, "(a(b(c)))")

	left1, err := Foldl1(ctx, xs, func(acc, x string) string { return acc + "-" + x })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, left1, "a-b-c")

	right1, err := Foldr1(ctx, xs, func(x, acc string) string { return x + "+" + acc })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, right1, "a+b+c")
}

func TestFoldOneFailsOnEmpty(t *testing.T) {
	ctx := context.Background()

	_, err := Foldl1(ctx, Empty[int](), add)
	testutil.AssertErrorIs(t, err, gferrors.ErrEmptyInput)

	_, err = Foldr1(ctx, Filter(FromSlice([]int{1}), isEven), add)
	testutil.AssertErrorIs(t, err, gferrors.ErrEmptyInput)

	var emptyErr *gferrors.EmptyInputError
	testutil.AssertEqual(t, errors.As(err, &emptyErr), true)
	testutil.AssertEqual(t, emptyErr.Op, "Foldr1")
}

func TestFoldlM(t *testing.T) {
	ctx := context.Background()
	sum, err := FoldlM(ctx, FromSlice([]int{1, 2, 3}), 0, func(_ context.Context, acc, x int) (int, error) {
		return acc + x, nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sum, 6)

	seen := 0
	_, err = FoldlM(ctx, FromSlice([]int{1, 2, 3}), 0, func(_ context.Context, acc, x int) (int, error) {
		seen++
		if x == 2 {
			return 0, errBoom
		}
		return acc + x, nil
	})
	testutil.AssertErrorIs(t, err, errBoom)
	testutil.AssertEqual(t, seen, 2)
}

func TestFoldlDeferred(t *testing.T) {
	calls := 0
	l, err := FoldlDeferred(context.Background(), FromSlice([]int{1, 2, 3}), 0, func(a, x int) int {
		calls++
		return a + x
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, calls, 0)
	testutil.AssertEqual(t, l.Force(), 6)
	testutil.AssertEqual(t, calls, 3)
}

func TestFoldrLazyShortCircuits(t *testing.T) {
	pulls := 0
	// Finds the first element above 3 in an infinite stream.
	got, err := FoldrLazy(context.Background(), counted(naturals(), &pulls), -1, func(x int, rest *Lazy[int]) int {
		if x > 3 {
			return x
		}
		return rest.Force()
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, 4)
	testutil.AssertEqual(t, pulls, 5)

	joined, err := FoldrLazy(context.Background(), FromSlice([]string{"a", "b"}), "!", func(x string, rest *Lazy[string]) string {
		return x + rest.Force()
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, joined, "ab!")

	_, err = FoldrLazy(context.Background(), failing(1), 0, func(x int, rest *Lazy[int]) int { return x + rest.Force() })
	testutil.AssertErrorIs(t, err, errBoom)
}

func TestConsumption(t *testing.T) {
	ctx := context.Background()

	n, err := Length(ctx, skippy(1, 2, 3))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 3)

	empty, err := Null(ctx, Empty[int]())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, empty, true)

	pulls := 0
	empty, err = Null(ctx, counted(naturals(), &pulls))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, empty, false)
	testutil.AssertEqual(t, pulls, 1)

	var b strings.Builder
	err = ForEach(ctx, FromSlice([]string{"x", "y"}), func(s string) { b.WriteString(s) })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.String(), "xy")

	visited := 0
	err = ForEachM(ctx, FromSlice([]int{1, 2, 3}), func(_ context.Context, x int) error {
		visited++
		if x == 2 {
			return errBoom
		}
		return nil
	})
	testutil.AssertErrorIs(t, err, errBoom)
	testutil.AssertEqual(t, visited, 2)
}

func TestLengthAndNullAgreeWithSlices(t *testing.T) {
	ctx := context.Background()
	for _, xs := range [][]int{nil, {1}, {1, 2, 3, 4, 5}} {
		n, err := Length(ctx, FromSlice(xs))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, len(xs))

		empty, err := Null(ctx, FromSlice(xs))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, empty, len(xs) == 0)

		testutil.AssertSliceEqual(t, collect(t, FromSlice(xs)), xs)
	}
}

func TestPredicates(t *testing.T) {
	ctx := context.Background()

	all, err := All(ctx, FromSlice([]int{2, 4, 5}), isEven)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, all, false)

	all, err = All(ctx, Empty[int](), isEven)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, all, true)

	pulls := 0
	anyEven, err := Any(ctx, counted(naturals(), &pulls), func(x int) bool { return x > 2 })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, anyEven, true)
	testutil.AssertEqual(t, pulls, 4)

	and, err := And(ctx, FromSlice([]bool{true, true}))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, and, true)

	or, err := Or(ctx, FromSlice([]bool{false, false}))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, or, false)
}

func TestExtrema(t *testing.T) {
	ctx := context.Background()
	xs := FromSlice([]int{3, 1, 4, 1, 5})

	lo, err := Minimum(ctx, xs)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, lo, 1)

	hi, err := Maximum(ctx, xs)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, hi, 5)

	type item struct {
		key  int
		name string
	}
	items := FromSlice([]item{{1, "a"}, {2, "b"}, {1, "c"}, {2, "d"}})
	byKey := func(a, b item) int { return a.key - b.key }

	first, err := MinimumBy(ctx, items, byKey)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first.name, "a")

	last, err := MaximumBy(ctx, items, byKey)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, last.name, "d")

	_, err = Maximum(ctx, Empty[float64]())
	testutil.AssertErrorIs(t, err, gferrors.ErrEmptyInput)
}

func TestFoldsPropagateFailure(t *testing.T) {
	ctx := context.Background()

	_, err := Foldl(ctx, failing(1, 2), 0, add)
	testutil.AssertErrorIs(t, err, errBoom)

	_, err = Foldr(ctx, failing(1), 0, add)
	testutil.AssertErrorIs(t, err, errBoom)

	_, err = Length(ctx, failing(1))
	testutil.AssertErrorIs(t, err, errBoom)

	_, err = Minimum(ctx, failing(1))
	testutil.AssertErrorIs(t, err, errBoom)
}
