package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRealSleepCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := Real{}.Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Sleep err = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("Sleep did not return promptly on cancelled context")
	}
}

func TestFakeRecordsSleeps(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	f := NewFake(start)
	_ = f.Sleep(context.Background(), 3*time.Second)
	_ = f.Sleep(context.Background(), 6*time.Second)

	got := f.Sleeps()
	if len(got) != 2 || got[0] != 3*time.Second || got[1] != 6*time.Second {
		t.Fatalf("Sleeps = %v", got)
	}
	if !f.Now().Equal(start.Add(9 * time.Second)) {
		t.Fatalf("Now = %v", f.Now())
	}
}
