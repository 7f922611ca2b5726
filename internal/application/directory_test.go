package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountPage(token string, accounts ...domain.Account) domain.Page[domain.Account] {
	return domain.Page[domain.Account]{Items: accounts, NextToken: token}
}

func TestDirectoryAccountsFetchesPagesLazily(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mockAnyContext(), "").
		Return(accountPage("next", domain.Account{ID: "111111111111", Name: "first"}), nil).Once()

	directory := NewDirectory(org, newFakeClock(), DirectoryConfig{})

	var seen []domain.AccountID
	for account, err := range directory.Accounts(context.Background()) {
		require.NoError(t, err)
		seen = append(seen, account.ID)
		break
	}

	assert.Equal(t, []domain.AccountID{"111111111111"}, seen)
}

func TestDirectoryFindAccountID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lookup    string
		wantID    domain.AccountID
		wantFound bool
	}{
		{name: "match on second page", lookup: "sandbox", wantID: "222222222222", wantFound: true},
		{name: "surrounding whitespace ignored", lookup: "  sandbox ", wantID: "222222222222", wantFound: true},
		{name: "first match wins", lookup: "shared", wantID: "333333333333", wantFound: true},
		{name: "case sensitive", lookup: "Sandbox"},
		{name: "absent", lookup: "missing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			org := mocks.NewMockOrganization(t)
			org.EXPECT().ListAccounts(mockAnyContext(), "").
				Return(accountPage("p2",
					domain.Account{ID: "111111111111", Name: "management"},
					domain.Account{ID: "333333333333", Name: "shared"},
				), nil).Maybe()
			org.EXPECT().ListAccounts(mockAnyContext(), "p2").
				Return(accountPage("",
					domain.Account{ID: "222222222222", Name: "sandbox "},
					domain.Account{ID: "444444444444", Name: "shared"},
				), nil).Maybe()

			id, found, err := NewDirectory(org, newFakeClock(), DirectoryConfig{}).FindAccountID(context.Background(), tc.lookup)

			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, found)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestDirectoryFindAccountIDByEmail(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mockAnyContext(), "").
		Return(accountPage("", domain.Account{ID: "222222222222", Name: "renamed", Email: "Sandbox@Example.com"}), nil).Once()

	id, found, err := NewDirectory(org, newFakeClock(), DirectoryConfig{}).FindAccountIDByEmail(context.Background(), "sandbox@example.com")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.AccountID("222222222222"), id)
}

func TestDirectoryFindAccountIDPropagatesListError(t *testing.T) {
	t.Parallel()

	listErr := errors.New("TooManyRequestsException")
	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mockAnyContext(), "").Return(domain.Page[domain.Account]{}, listErr).Once()

	_, found, err := NewDirectory(org, newFakeClock(), DirectoryConfig{}).FindAccountID(context.Background(), "x")

	require.ErrorIs(t, err, listErr)
	assert.False(t, found)
}

func sandboxDesired() domain.DesiredAccount {
	return domain.DesiredAccount{FullName: "sandbox", Email: "sandbox@example.com", OUPath: "/", AllowBilling: true}
}

func TestDirectoryCreateAccountPollsUntilSucceeded(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), domain.CreateAccountRequest{
		Name:          "sandbox",
		Email:         "sandbox@example.com",
		RoleName:      domain.DefaultAccessRoleName,
		BillingAccess: domain.BillingAccessAllow,
	}).Return(domain.CreateAccountStatus{RequestID: "car-1", State: domain.CreateAccountInProgress}, nil).Once()
	org.EXPECT().DescribeCreateAccountStatus(mockAnyContext(), "car-1").
		Return(domain.CreateAccountStatus{RequestID: "car-1", State: domain.CreateAccountInProgress}, nil).Once()
	org.EXPECT().DescribeCreateAccountStatus(mockAnyContext(), "car-1").
		Return(domain.CreateAccountStatus{RequestID: "car-1", State: domain.CreateAccountSucceeded, AccountID: "555555555555"}, nil).Once()

	clock := newFakeClock()
	id, err := NewDirectory(org, clock, DirectoryConfig{}).CreateAccount(context.Background(), sandboxDesired())

	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("555555555555"), id)
	assert.Equal(t, []time.Duration{time.Second, time.Second, 10 * time.Second}, clock.Sleeps())
}

func TestDirectoryCreateAccountFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), mockAnyContext()).
		Return(domain.CreateAccountStatus{RequestID: "car-2", State: domain.CreateAccountInProgress}, nil).Once()
	org.EXPECT().DescribeCreateAccountStatus(mockAnyContext(), "car-2").
		Return(domain.CreateAccountStatus{State: domain.CreateAccountFailed, FailureReason: "EMAIL_ALREADY_EXISTS"}, nil).Once()

	clock := newFakeClock()
	_, err := NewDirectory(org, clock, DirectoryConfig{}).CreateAccount(context.Background(), sandboxDesired())

	require.ErrorIs(t, err, domain.ErrAccountCreationFailed)
	assert.EqualError(t, err, "failed to create account sandbox: EMAIL_ALREADY_EXISTS")
	assert.Equal(t, []time.Duration{time.Second}, clock.Sleeps())
}

func TestDirectoryCreateAccountImmediateSuccessSkipsPolling(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), mockAnyContext()).
		Return(domain.CreateAccountStatus{RequestID: "car-3", State: domain.CreateAccountSucceeded, AccountID: "666666666666"}, nil).Once()

	clock := newFakeClock()
	directory := NewDirectory(org, clock, DirectoryConfig{Timing: Timing{CreateGracePeriod: 3 * time.Second}})
	id, err := directory.CreateAccount(context.Background(), sandboxDesired())

	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("666666666666"), id)
	assert.Equal(t, []time.Duration{3 * time.Second}, clock.Sleeps())
}

func TestDirectoryCreateAccountUsesReadinessProbe(t *testing.T) {
	t.Parallel()

	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), domain.CreateAccountRequest{
		Name:          "sandbox",
		Email:         "sandbox@example.com",
		RoleName:      "Admin",
		BillingAccess: domain.BillingAccessDeny,
	}).Return(domain.CreateAccountStatus{RequestID: "car-4", State: domain.CreateAccountSucceeded, AccountID: "777777777777"}, nil).Once()

	probes := 0
	clock := newFakeClock()
	directory := NewDirectory(org, clock, DirectoryConfig{
		RoleName: "Admin",
		Probe: func(_ context.Context, accountID domain.AccountID) error {
			assert.Equal(t, domain.AccountID("777777777777"), accountID)
			probes++
			if probes < 3 {
				return errors.New("AccessDenied")
			}
			return nil
		},
	})

	desired := sandboxDesired()
	desired.AllowBilling = false
	_, err := directory.CreateAccount(context.Background(), desired)

	require.NoError(t, err)
	assert.Equal(t, 3, probes)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, clock.Sleeps())
}

func TestDirectoryCreateAccountStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	org := mocks.NewMockOrganization(t)
	org.EXPECT().CreateAccount(mockAnyContext(), mockAnyContext()).
		RunAndReturn(func(context.Context, domain.CreateAccountRequest) (domain.CreateAccountStatus, error) {
			cancel()
			return domain.CreateAccountStatus{RequestID: "car-5", State: domain.CreateAccountInProgress}, nil
		}).Once()

	_, err := NewDirectory(org, newFakeClock(), DirectoryConfig{}).CreateAccount(ctx, sandboxDesired())

	require.ErrorIs(t, err, context.Canceled)
}
