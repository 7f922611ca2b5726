package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountNameMatchesIgnoresSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	assert.True(t, Account{Name: " Foo"}.NameMatches("Foo"))
	assert.True(t, Account{Name: "Foo"}.NameMatches(" Foo "))
	assert.False(t, Account{Name: "foo"}.NameMatches("Foo"))
	assert.False(t, Account{Name: "F oo"}.NameMatches("Foo"))
}

func TestAccountEmailMatchesIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.True(t, Account{Email: "Team@Example.com"}.EmailMatches("team@example.com "))
	assert.False(t, Account{Email: "team@example.com"}.EmailMatches(""))
}

func TestSplitOUPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: nil},
		{path: "", want: nil},
		{path: "//", want: nil},
		{path: "eu", want: []string{"eu"}},
		{path: "/eu/dev/", want: []string{"eu", "dev"}},
		{path: "eu/dev/team a", want: []string{"eu", "dev", "team a"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, SplitOUPath(tt.path))
		})
	}
}

func TestDesiredAccountValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		account DesiredAccount
		wantErr string
	}{
		{name: "valid", account: DesiredAccount{FullName: "dev", Email: "dev@example.com", OUPath: "/"}},
		{name: "missing name", account: DesiredAccount{Email: "dev@example.com", OUPath: "/"}, wantErr: "full name is required"},
		{name: "missing email", account: DesiredAccount{FullName: "dev", OUPath: "/"}, wantErr: "email is required"},
		{name: "blank ou path", account: DesiredAccount{FullName: "dev", Email: "dev@example.com", OUPath: "  "}, wantErr: "organizational unit path is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.account.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDesiredAccountDefaults(t *testing.T) {
	t.Parallel()

	account := DesiredAccount{FullName: "sandbox", AllowBilling: true}
	assert.Equal(t, "sandbox", account.EffectiveAlias())
	assert.Equal(t, BillingAccessAllow, account.BillingAccess())

	account.Alias = "sbx"
	account.AllowBilling = false
	assert.Equal(t, "sbx", account.EffectiveAlias())
	assert.Equal(t, BillingAccessDeny, account.BillingAccess())
}

func TestDesiredAccountContactsOrder(t *testing.T) {
	t.Parallel()

	account := DesiredAccount{
		BillingContact:    &AlternateContact{Type: ContactTypeBilling, Name: "b"},
		OperationsContact: &AlternateContact{Type: ContactTypeOperations, Name: "o"},
	}

	contacts := account.Contacts()
	require.Len(t, contacts, 2)
	assert.Equal(t, ContactTypeOperations, contacts[0].Type)
	assert.Equal(t, ContactTypeBilling, contacts[1].Type)
}

func TestParseContactType(t *testing.T) {
	t.Parallel()

	got, err := ParseContactType(" security ")
	require.NoError(t, err)
	assert.Equal(t, ContactTypeSecurity, got)

	_, err = ParseContactType("finance")
	require.ErrorIs(t, err, ErrUnsupportedContactType)
	assert.ErrorContains(t, err, `"finance"`)
}

func TestCredentialsExpired(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.False(t, Credentials{}.Expired(now))
	assert.False(t, Credentials{Expires: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Credentials{Expires: now}.Expired(now))
}

func TestRoleARN(t *testing.T) {
	assert.Equal(t, "arn:aws:iam::123456789012:role/OrganizationAccountAccessRole",
		RoleARN("", "123456789012", DefaultAccessRoleName))
	assert.Equal(t, "arn:aws-us-gov:iam::123456789012:role/Admin", RoleARN("aws-us-gov", "123456789012", "Admin"))
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	t.Parallel()

	cause := errors.New("throttled")
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "ou not found", err: &OUNotFoundError{Path: "a/b", Segment: "b"}, sentinel: ErrOUNotFound},
		{name: "creation failed", err: &AccountCreationFailedError{Name: "dev", Reason: "EMAIL_ALREADY_EXISTS"}, sentinel: ErrAccountCreationFailed},
		{name: "unsafe move", err: &UnsafeMoveError{AccountID: "1", From: "ou-a", To: "ou-b"}, sentinel: ErrUnsafeMove},
		{name: "contact type", err: &UnsupportedContactTypeError{Type: "x"}, sentinel: ErrUnsupportedContactType},
		{name: "retry budget", err: &RetryBudgetExceededError{Operation: "describe vpcs", LastErr: cause}, sentinel: ErrRetryBudgetExceeded},
		{name: "step wraps cause", err: &StepError{Account: "dev", Step: StepTag, Err: cause}, sentinel: cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
		})
	}
}

func TestOUNotFoundErrorNamesSegmentAndChildren(t *testing.T) {
	err := &OUNotFoundError{Path: "eu/prod", Segment: "prod", ChildrenSeen: []string{"dev", "test"}}

	assert.Equal(t, `organizational unit "prod" of path "eu/prod" not found (children: [dev, test])`, err.Error())
}
