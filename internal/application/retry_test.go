package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBudgetGivesUpAfterBudget(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	cause := errors.New("RequestLimitExceeded")
	calls := 0

	_, err := retryWithBudget(context.Background(), clock, loggerOrDiscard(nil), "describe vpcs",
		2*time.Second, 180*time.Second,
		func(context.Context) (int, error) {
			calls++
			return 0, cause
		})

	require.ErrorIs(t, err, domain.ErrRetryBudgetExceeded)
	require.ErrorIs(t, err, cause)
	var budgetErr *domain.RetryBudgetExceededError
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, "describe vpcs", budgetErr.Operation)
	assert.Equal(t, 180*time.Second, budgetErr.Budget)

	assert.Equal(t, 91, calls)
	assert.Len(t, clock.Sleeps(), 90)
	assert.Equal(t, 180*time.Second, clock.Slept())
}

func TestRetryWithBudgetReturnsFirstSuccess(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	calls := 0

	got, err := retryWithBudget(context.Background(), clock, loggerOrDiscard(nil), "describe subnets",
		2*time.Second, 180*time.Second,
		func(context.Context) (string, error) {
			calls++
			if calls < 4 {
				return "", errors.New("throttled")
			}
			return "subnet-1", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "subnet-1", got)
	assert.Equal(t, 4, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, clock.Sleeps())
}

func TestRetryWithBudgetStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := retryWithBudget(ctx, newFakeClock(), loggerOrDiscard(nil), "describe vpcs",
		2*time.Second, 180*time.Second,
		func(context.Context) (int, error) {
			calls++
			cancel()
			return 0, errors.New("throttled")
		})

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrRetryBudgetExceeded)
	assert.Equal(t, 1, calls)
}
