package domain

import "strings"

type AccountID string

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusPending   AccountStatus = "PENDING_CLOSURE"
)

// Account is a member account as reported by the organization.
type Account struct {
	ID     AccountID
	Name   string
	Email  string
	Status AccountStatus
}

// NameMatches compares display names with surrounding whitespace ignored on both sides.
func (a Account) NameMatches(name string) bool {
	return strings.TrimSpace(a.Name) == strings.TrimSpace(name)
}

func (a Account) EmailMatches(email string) bool {
	want := strings.TrimSpace(email)
	return want != "" && strings.EqualFold(strings.TrimSpace(a.Email), want)
}

type CreateAccountState string

const (
	CreateAccountInProgress CreateAccountState = "IN_PROGRESS"
	CreateAccountSucceeded  CreateAccountState = "SUCCEEDED"
	CreateAccountFailed     CreateAccountState = "FAILED"
)

type CreateAccountStatus struct {
	RequestID     string
	AccountID     AccountID
	AccountName   string
	State         CreateAccountState
	FailureReason string
}

type BillingAccess string

const (
	BillingAccessAllow BillingAccess = "ALLOW"
	BillingAccessDeny  BillingAccess = "DENY"
)

type CreateAccountRequest struct {
	Name          string
	Email         string
	RoleName      string
	BillingAccess BillingAccess
}
