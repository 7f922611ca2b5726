package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrJournalEntryNotFound   = errors.New("journal entry not found")
	ErrOUNotFound             = errors.New("organizational unit not found")
	ErrAccountCreationFailed  = errors.New("account creation failed")
	ErrUnsafeMove             = errors.New("unsafe move between organizational units")
	ErrUnsupportedContactType = errors.New("unsupported alternate contact type")
	ErrRetryBudgetExceeded    = errors.New("retry budget exceeded")
	ErrAliasAlreadyExists     = errors.New("account alias already exists")
	ErrInvalidConfig          = errors.New("invalid configuration")
)

type OUNotFoundError struct {
	Path         string
	Segment      string
	ChildrenSeen []string
}

func (e *OUNotFoundError) Error() string {
	return fmt.Sprintf("organizational unit %q of path %q not found (children: [%s])",
		e.Segment, e.Path, strings.Join(e.ChildrenSeen, ", "))
}

func (e *OUNotFoundError) Is(target error) bool { return target == ErrOUNotFound }

type AccountCreationFailedError struct {
	Name   string
	Reason string
}

func (e *AccountCreationFailedError) Error() string {
	return fmt.Sprintf("failed to create account %s: %s", e.Name, e.Reason)
}

func (e *AccountCreationFailedError) Is(target error) bool { return target == ErrAccountCreationFailed }

type UnsafeMoveError struct {
	AccountID AccountID
	From      OUID
	To        OUID
}

func (e *UnsafeMoveError) Error() string {
	return fmt.Sprintf("refusing to move account %s directly from %s to %s: move it to the root first", e.AccountID, e.From, e.To)
}

func (e *UnsafeMoveError) Is(target error) bool { return target == ErrUnsafeMove }

type UnsupportedContactTypeError struct {
	Type string
}

func (e *UnsupportedContactTypeError) Error() string {
	return fmt.Sprintf("contact type %q is not supported", e.Type)
}

func (e *UnsupportedContactTypeError) Is(target error) bool { return target == ErrUnsupportedContactType }

type RetryBudgetExceededError struct {
	Operation string
	Budget    time.Duration
	LastErr   error
}

func (e *RetryBudgetExceededError) Error() string {
	return fmt.Sprintf("%s did not succeed within %s: %v", e.Operation, e.Budget, e.LastErr)
}

func (e *RetryBudgetExceededError) Is(target error) bool { return target == ErrRetryBudgetExceeded }

func (e *RetryBudgetExceededError) Unwrap() error { return e.LastErr }

// StepError carries enough context to pick the account up again by hand.
type StepError struct {
	Account   string
	AccountID AccountID
	Step      Step
	Err       error
}

func (e *StepError) Error() string {
	if e.AccountID == "" {
		return fmt.Sprintf("account %s: %s: %v", e.Account, e.Step, e.Err)
	}
	return fmt.Sprintf("account %s (%s): %s: %v", e.Account, e.AccountID, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
