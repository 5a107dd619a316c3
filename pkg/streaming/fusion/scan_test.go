package fusion

import (
	"context"
	"testing"

	"github.com/vnykmshr/gostep/internal/testutil"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
)

func add(a, b int) int { return a + b }

func TestPrescanlIsExclusive(t *testing.T) {
	s := Prescanl(FromSlice([]int{1, 2, 3, 4}), 10, add)
	testutil.AssertSliceEqual(t, collect(t, s), []int{10, 11, 13, 16})
	testutil.AssertEqual(t, s.SizeHint(), sizehint.Exact(4))

	testutil.AssertSliceEqual(t, collect(t, Prescanl(Empty[int](), 10, add)), nil)
}

func TestScans(t *testing.T) {
	xs := []int{1, 2, 3}
	testutil.AssertSliceEqual(t, collect(t, Postscanl(skippy(xs...), 0, add)), []int{1, 3, 6})
	testutil.AssertSliceEqual(t, collect(t, Scanl(FromSlice(xs), 0, add)), []int{0, 1, 3, 6})
	testutil.AssertSliceEqual(t, collect(t, Scanl1(FromSlice(xs), add)), []int{1, 3, 6})
	testutil.AssertSliceEqual(t, collect(t, Scanl1(Empty[int](), add)), nil)
	testutil.AssertEqual(t, Scanl(FromSlice(xs), 0, add).SizeHint(), sizehint.Exact(4))
}

func TestPrescanlRestartsPerRun(t *testing.T) {
	s := Prescanl(FromSlice([]int{1, 1}), 0, add)
	testutil.AssertSliceEqual(t, collect(t, s), []int{0, 1})
	testutil.AssertSliceEqual(t, collect(t, s), []int{0, 1})
}

func TestPrescanlDeferred(t *testing.T) {
	calls := 0
	counting := func(a, x int) int {
		calls++
		return a + x
	}

	lazies, err := ToSlice(context.Background(), PrescanlDeferred(FromSlice([]int{1, 2, 3}), 0, counting))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(lazies), 3)
	testutil.AssertEqual(t, calls, 0)

	testutil.AssertEqual(t, lazies[2].Force(), 3)
	testutil.AssertEqual(t, calls, 2)
	testutil.AssertEqual(t, lazies[1].Forced(), true)
	testutil.AssertEqual(t, lazies[0].Force(), 0)
	testutil.AssertEqual(t, calls, 2)
}
