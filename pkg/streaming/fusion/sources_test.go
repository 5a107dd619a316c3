package fusion

import (
	"context"
	"testing"
	"time"

	"github.com/vnykmshr/gostep/internal/testutil"
	"github.com/vnykmshr/gostep/pkg/streaming/sizehint"
	"github.com/vnykmshr/gostep/pkg/streaming/step"
)

func TestZeroStreamIsEmpty(t *testing.T) {
	var s Stream[int]
	testutil.AssertSliceEqual(t, collect(t, s), nil)
	testutil.AssertEqual(t, s.SizeHint(), sizehint.Exact(0))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		s    Stream[int]
		want []int
		hint sizehint.Hint
	}{
		{"empty", Empty[int](), nil, sizehint.Exact(0)},
		{"singleton", Singleton(7), []int{7}, sizehint.Exact(1)},
		{"replicate", Replicate(3, 1), []int{1, 1, 1}, sizehint.Exact(3)},
		{"replicate negative", Replicate(-2, 1), nil, sizehint.Exact(0)},
		{"generate", Generate(4, func(i int) int { return i * i }), []int{0, 1, 4, 9}, sizehint.Exact(4)},
		{"iterateN", IterateN(4, func(x int) int { return x * 2 }, 1), []int{1, 2, 4, 8}, sizehint.Exact(4)},
		{"enumFromStepN", EnumFromStepN(10, -3, 4), []int{10, 7, 4, 1}, sizehint.Exact(4)},
		{"fromSlice", FromSlice([]int{1, 2, 3}), []int{1, 2, 3}, sizehint.Exact(3)},
		{"fromSliceN short", FromSliceN(2, []int{1, 2, 3}), []int{1, 2}, sizehint.Exact(2)},
		{"fromSliceN long", FromSliceN(9, []int{1, 2, 3}), []int{1, 2, 3}, sizehint.Exact(3)},
		{"unfoldN", UnfoldN(3, func(n int) (int, int, bool) { return n, n + 1, true }, 5), []int{5, 6, 7}, sizehint.AtMost(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertSliceEqual(t, collect(t, tt.s), tt.want)
			testutil.AssertEqual(t, tt.s.SizeHint(), tt.hint)
		})
	}
}

func TestUnfold(t *testing.T) {
	s := Unfold(func(n int) (int, int, bool) {
		if n < 5 {
			return n, n + 1, true
		}
		return 0, n, false
	}, 0)

	testutil.AssertSliceEqual(t, collect(t, s), []int{0, 1, 2, 3, 4})
	testutil.AssertEqual(t, s.SizeHint(), sizehint.Unknown())
}

func TestStreamIsReusable(t *testing.T) {
	s := Map(FromSlice([]int{1, 2, 3}), func(x int) int { return x + 1 })

	testutil.AssertSliceEqual(t, collect(t, s), []int{2, 3, 4})
	testutil.AssertSliceEqual(t, collect(t, s), []int{2, 3, 4})
}

func TestFromAutomatonStopsAfterDone(t *testing.T) {
	calls := 0
	s := FromAutomaton(0, func(n int) (step.Step[int], int) {
		calls++
		if n == 2 {
			return step.Finished[int](), n
		}
		return step.Of(n), n + 1
	}, sizehint.Unknown())

	c := s.Open()
	for i := 0; i < 5; i++ {
		_, err := c.Step(context.Background())
		testutil.AssertNoError(t, err)
	}
	testutil.AssertEqual(t, calls, 3)
}

func TestUnfoldMPropagatesFailure(t *testing.T) {
	s := UnfoldM(func(_ context.Context, n int) (int, int, bool, error) {
		if n == 2 {
			return 0, n, false, errBoom
		}
		return n, n + 1, true, nil
	}, 0)

	_, err := ToSlice(context.Background(), s)
	testutil.AssertErrorIs(t, err, errBoom)
}

func TestGenerateM(t *testing.T) {
	s := GenerateM(3, func(_ context.Context, i int) (string, error) {
		return string(rune('a' + i)), nil
	})
	testutil.AssertSliceEqual(t, collect(t, s), []string{"a", "b", "c"})
}

func TestRepeatedly(t *testing.T) {
	n := 0
	s := Take(Repeatedly(func() int { n++; return n }), 3)
	testutil.AssertSliceEqual(t, collect(t, s), []int{1, 2, 3})
}

func TestFromChannel(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "hello"
	ch <- "world"
	ch <- "test"
	close(ch)

	testutil.AssertSliceEqual(t, collect(t, FromChannel(ch)), []string{"hello", "world", "test"})
}

func TestFromChannelHonoursCancellation(t *testing.T) {
	ch := make(chan int)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ToSlice(ctx, FromChannel(ch))
	testutil.AssertErrorIs(t, err, context.DeadlineExceeded)
}

func TestFromChannelWithProducer(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 4; i++ {
			ch <- i
		}
	}()

	sum, err := Foldl(context.Background(), FromChannel(ch), 0, func(a, x int) int { return a + x })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sum, 10)
}

func TestTerminalsHonourCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Length(ctx, Filter(naturals(), func(int) bool { return false }))
	testutil.AssertErrorIs(t, err, context.Canceled)
}
