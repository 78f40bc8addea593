// Package aftercommit runs best-effort actions once a state change has been
// committed. Actions run in order; a failing action is logged and the next
// one still runs. Nothing is retried.
package aftercommit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Action struct {
	Name string
	Fn   func(ctx context.Context) error
}

type Runner interface {
	Run(ctx context.Context, actions ...Action)
}

func runAll(ctx context.Context, logger *zap.Logger, actions []Action) {
	for _, a := range actions {
		if a.Fn == nil {
			continue
		}
		if err := runOne(ctx, a); err != nil {
			logger.Warn("after-commit action failed", zap.String("action", a.Name), zap.Error(err))
		}
	}
}

func runOne(ctx context.Context, a Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return a.Fn(ctx)
}

type panicError struct{ value any }

func (p *panicError) Error() string {
	return "panic in after-commit action"
}

// Sync runs actions on the caller's goroutine with the caller's context.
type Sync struct {
	Logger *zap.Logger
}

func (s Sync) Run(ctx context.Context, actions ...Action) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runAll(ctx, logger, actions)
}

// Async runs actions on a new goroutine. The context is detached from the
// caller's cancellation and bounded by Timeout instead.
type Async struct {
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewAsync(timeout time.Duration, logger *zap.Logger) *Async {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Async{timeout: timeout, logger: logger}
}

func (a *Async) Run(ctx context.Context, actions ...Action) {
	if len(actions) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		runCtx, cancel := context.WithTimeout(detached, a.timeout)
		defer cancel()
		runAll(runCtx, a.logger, actions)
	}()
}

// Wait blocks until in-flight actions finish or ctx is done.
func (a *Async) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
