package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsJobs(t *testing.T) {
	p := New(4, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	var ran int32
	jobs := 100
	for i := 0; i < jobs; i++ {
		err := p.Submit(func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	p.Close()

	if got := atomic.LoadInt32(&ran); int(got) != jobs {
		t.Fatalf("expected %d jobs executed, got %d", jobs, got)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p := New(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	p.Close()
	cancel()
	if err := p.Submit(func(ctx context.Context) error { return nil }); err == nil {
		t.Fatalf("expected error submitting to closed pool")
	}
}

func TestContextCancellationStopsWorkers(t *testing.T) {
	p := New(2, 16)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	cancel()
	done := make(chan struct{}, 1)
	go func() {
		p.Close()
		done <- struct{}{}
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("Close blocked after context cancellation")
	}
}

func TestRunPreservesOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}
	results, errs := Run(context.Background(), 3, items, func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	})
	for i, err := range errs {
		if err != nil {
			t.Fatalf("item %d: unexpected error %v", i, err)
		}
	}
	want := []int{25, 1, 16, 4, 9}
	for i, w := range want {
		if results[i] != w {
			t.Errorf("results[%d] = %d, want %d", i, results[i], w)
		}
	}
}

func TestRunCollectsPerItemErrors(t *testing.T) {
	items := []int{1, 2, 3}
	boom := errors.New("boom")
	_, errs := Run(context.Background(), 2, items, func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if errs[0] != nil || errs[2] != nil {
		t.Fatalf("expected nil errors for items 0 and 2, got %v, %v", errs[0], errs[2])
	}
	if errs[1] != boom {
		t.Fatalf("errs[1] = %v, want %v", errs[1], boom)
	}
}
