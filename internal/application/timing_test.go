package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingWithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		timing Timing
		want   Timing
	}{
		{name: "zero value", timing: Timing{}, want: DefaultTiming()},
		{
			name: "negative waits",
			timing: Timing{
				CreatePollInterval: -time.Second,
				CreateGracePeriod:  -time.Second,
				RoleReadyTimeout:   -time.Second,
				VPCSettleDelay:     -time.Second,
				VPCRetryBackoff:    -time.Second,
				VPCRetryBudget:     -time.Second,
			},
			want: DefaultTiming(),
		},
		{
			name:   "overrides kept",
			timing: Timing{CreateGracePeriod: 3 * time.Second, VPCSettleDelay: 5 * time.Second},
			want: Timing{
				CreatePollInterval: DefaultCreatePollInterval,
				CreateGracePeriod:  3 * time.Second,
				RoleReadyTimeout:   DefaultRoleReadyTimeout,
				VPCSettleDelay:     5 * time.Second,
				VPCRetryBackoff:    DefaultVPCRetryBackoff,
				VPCRetryBudget:     DefaultVPCRetryBudget,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.timing.withDefaults())
		})
	}
}

func TestZeroTimingStillWaitsForGraceAndSettle(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), mockAnyContext()).
		Return(domain.CreateAccountStatus{RequestID: "car-4", State: domain.CreateAccountSucceeded, AccountID: "222222222222"}, nil).Once()

	createClock := newFakeClock()
	_, err := NewDirectory(org, createClock, DirectoryConfig{Timing: Timing{}}).CreateAccount(context.Background(), sandboxDesired())
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{DefaultCreateGracePeriod}, createClock.Sleeps())

	network := mocks.NewMockNetwork(t)
	network.EXPECT().ListVPCs(mockAnyContext()).Return(defaultVPCs(), nil).Once()
	network.EXPECT().ListSubnets(mockAnyContext()).Return(nil, nil).Once()
	network.EXPECT().ListInternetGateways(mockAnyContext()).Return(nil, nil).Once()
	network.EXPECT().DeleteVPC(mockAnyContext(), "vpc-default", false).Return(nil).Once()

	settleClock := newFakeClock()
	_, err = NewVPCDecommissioner(settleClock, Timing{}, nil).DeleteDefaultVPC(context.Background(), network, "111111111111", false)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{DefaultVPCSettleDelay}, settleClock.Sleeps())
}
