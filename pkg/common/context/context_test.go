package context

import (
	"context"
	"testing"
	"time"
)

func TestIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if IsCanceled(ctx) {
		t.Fatal("fresh context should not be canceled")
	}
	cancel()
	if !IsCanceled(ctx) {
		t.Fatal("canceled context should report canceled")
	}
	if IsCanceled(context.Background()) {
		t.Fatal("background context is never canceled")
	}
}

func TestIsTimedOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	if !IsTimedOut(ctx) {
		t.Fatal("expired context should report timed out")
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	cancel2()
	if IsTimedOut(ctx2) {
		t.Fatal("canceled context is not a timeout")
	}
}

func TestCheckpoint(t *testing.T) {
	if err := Checkpoint(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Checkpoint(ctx); err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
