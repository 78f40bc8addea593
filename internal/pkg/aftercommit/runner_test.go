package aftercommit

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSync_RunsInOrderAndIsolatesFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var order []string

	Sync{Logger: zap.New(core)}.Run(context.Background(),
		Action{Name: "first", Fn: func(context.Context) error {
			order = append(order, "first")
			return errors.New("boom")
		}},
		Action{Name: "second", Fn: func(context.Context) error {
			order = append(order, "second")
			panic("kaboom")
		}},
		Action{Name: "third", Fn: func(context.Context) error {
			order = append(order, "third")
			return nil
		}},
	)

	if len(order) != 3 || order[0] != "first" || order[2] != "third" {
		t.Fatalf("unexpected order: %v", order)
	}
	if logs.Len() != 2 {
		t.Fatalf("expected 2 warnings, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["action"]; got != "first" {
		t.Fatalf("unexpected action field: %v", got)
	}
}

func TestAsync_DetachesFromCallerContext(t *testing.T) {
	a := NewAsync(time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	result := make(chan error, 1)
	a.Run(ctx, Action{Name: "probe", Fn: func(runCtx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		result <- runCtx.Err()
		return nil
	}})

	<-started
	cancel()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	if err := a.Wait(waitCtx); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if err := <-result; err != nil {
		t.Fatalf("action context must survive caller cancellation, got %v", err)
	}
}

func TestAsync_Timeout(t *testing.T) {
	a := NewAsync(10*time.Millisecond, nil)
	result := make(chan error, 1)
	a.Run(context.Background(), Action{Name: "slow", Fn: func(runCtx context.Context) error {
		<-runCtx.Done()
		result <- runCtx.Err()
		return runCtx.Err()
	}})

	select {
	case err := <-result:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("action was not bounded by the timeout")
	}
}
