package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"github.com/cenkalti/backoff/v4"
)

// retryWithBudget calls op until it succeeds, waiting interval between attempts.
// It gives up once the waits would add up to more than budget and reports the
// last error it saw.
func retryWithBudget[T any](
	ctx context.Context,
	clock ports.Clock,
	logger *slog.Logger,
	operation string,
	interval, budget time.Duration,
	op func(context.Context) (T, error),
) (T, error) {
	var (
		result  T
		lastErr error
		retries uint64
	)
	if interval > 0 && budget > 0 {
		retries = uint64(budget / interval)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), retries), ctx)
	notify := func(err error, wait time.Duration) {
		logger.Warn("call failed, retrying", "operation", operation, "wait", wait, "error", err)
	}

	err := backoff.RetryNotifyWithTimer(func() error {
		value, err := op(ctx)
		if err != nil {
			lastErr = err
			return err
		}
		result = value
		return nil
	}, policy, notify, &clockTimer{ctx: ctx, clock: clock})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		return result, &domain.RetryBudgetExceededError{Operation: operation, Budget: budget, LastErr: lastErr}
	}

	return result, nil
}

// clockTimer drives backoff waits through ports.Clock so tests never sleep.
type clockTimer struct {
	ctx   context.Context
	clock ports.Clock
	c     chan time.Time
}

func (t *clockTimer) Start(d time.Duration) {
	c := make(chan time.Time, 1)
	t.c = c
	go func() {
		if err := t.clock.Sleep(t.ctx, d); err != nil {
			return
		}
		c <- t.clock.Now()
	}()
}

func (t *clockTimer) Stop() {}

func (t *clockTimer) C() <-chan time.Time {
	return t.c
}
