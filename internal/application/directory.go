package application

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

// ReadinessProbe reports whether a freshly created account can be entered yet.
type ReadinessProbe func(ctx context.Context, accountID domain.AccountID) error

type DirectoryConfig struct {
	RoleName string
	Timing   Timing
	// Probe replaces the fixed grace period after creation when set.
	Probe  ReadinessProbe
	Logger *slog.Logger
}

// Directory looks member accounts up and creates missing ones.
type Directory struct {
	org      ports.Organization
	clock    ports.Clock
	roleName string
	timing   Timing
	probe    ReadinessProbe
	logger   *slog.Logger
}

func NewDirectory(org ports.Organization, clock ports.Clock, cfg DirectoryConfig) *Directory {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	roleName := cfg.RoleName
	if roleName == "" {
		roleName = domain.DefaultAccessRoleName
	}

	return &Directory{
		org:      org,
		clock:    clock,
		roleName: roleName,
		timing:   cfg.Timing.withDefaults(),
		probe:    cfg.Probe,
		logger:   loggerOrDiscard(cfg.Logger),
	}
}

// Accounts yields every member account, fetching pages only as the caller
// keeps ranging. A listing error is yielded once and ends the sequence.
func (d *Directory) Accounts(ctx context.Context) iter.Seq2[domain.Account, error] {
	return func(yield func(domain.Account, error) bool) {
		var token string
		for {
			page, err := d.org.ListAccounts(ctx, token)
			if err != nil {
				yield(domain.Account{}, fmt.Errorf("list accounts: %w", err))
				return
			}
			for _, account := range page.Items {
				if !yield(account, nil) {
					return
				}
			}
			if page.NextToken == "" {
				return
			}
			token = page.NextToken
		}
	}
}

// FindAccountID returns the id of the first account whose name matches.
func (d *Directory) FindAccountID(ctx context.Context, name string) (domain.AccountID, bool, error) {
	return d.find(ctx, func(account domain.Account) bool {
		return account.NameMatches(name)
	})
}

func (d *Directory) FindAccountIDByEmail(ctx context.Context, email string) (domain.AccountID, bool, error) {
	return d.find(ctx, func(account domain.Account) bool {
		return account.EmailMatches(email)
	})
}

func (d *Directory) find(ctx context.Context, match func(domain.Account) bool) (domain.AccountID, bool, error) {
	for account, err := range d.Accounts(ctx) {
		if err != nil {
			return "", false, err
		}
		if match(account) {
			return account.ID, true, nil
		}
	}
	return "", false, nil
}

// CreateAccount submits a creation request, polls it to a terminal state and
// waits until the access role can be used before returning the new id.
func (d *Directory) CreateAccount(ctx context.Context, desired domain.DesiredAccount) (domain.AccountID, error) {
	status, err := d.org.CreateAccount(ctx, domain.CreateAccountRequest{
		Name:          desired.FullName,
		Email:         desired.Email,
		RoleName:      d.roleName,
		BillingAccess: desired.BillingAccess(),
	})
	if err != nil {
		return "", fmt.Errorf("request account creation: %w", err)
	}
	d.logger.Info("account creation requested", "account", desired.FullName, "request_id", status.RequestID)

	final, err := d.awaitCreation(ctx, desired.FullName, status)
	if err != nil {
		return "", err
	}
	d.logger.Info("account created", "account", desired.FullName, "account_id", final.AccountID)

	if err := d.awaitAccessRole(ctx, final.AccountID); err != nil {
		return "", err
	}

	return final.AccountID, nil
}

func (d *Directory) awaitCreation(ctx context.Context, name string, status domain.CreateAccountStatus) (domain.CreateAccountStatus, error) {
	requestID := status.RequestID
	machine := newCreationMachine()

	for {
		if err := observeCreation(ctx, machine, status.State); err != nil {
			return status, fmt.Errorf("track account creation %s: %w", requestID, err)
		}

		switch machine.MustState() {
		case domain.CreateAccountSucceeded:
			return status, nil
		case domain.CreateAccountFailed:
			reason := status.FailureReason
			if reason == "" {
				reason = "no failure reason reported"
			}
			return status, &domain.AccountCreationFailedError{Name: name, Reason: reason}
		}

		if err := d.clock.Sleep(ctx, d.timing.CreatePollInterval); err != nil {
			return status, err
		}

		next, err := d.org.DescribeCreateAccountStatus(ctx, requestID)
		if err != nil {
			return status, fmt.Errorf("describe account creation %s: %w", requestID, err)
		}
		if next.RequestID == "" {
			next.RequestID = requestID
		}
		status = next
		d.logger.Debug("account creation polled", "account", name, "state", status.State)
	}
}

func (d *Directory) awaitAccessRole(ctx context.Context, accountID domain.AccountID) error {
	if d.probe == nil {
		d.logger.Debug("waiting for access role", "account_id", accountID, "grace", d.timing.CreateGracePeriod)
		return d.clock.Sleep(ctx, d.timing.CreateGracePeriod)
	}

	_, err := retryWithBudget(ctx, d.clock, d.logger, "assume "+d.roleName+" in "+string(accountID),
		d.timing.CreatePollInterval, d.timing.RoleReadyTimeout,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, d.probe(ctx, accountID)
		})
	if err != nil {
		return fmt.Errorf("wait for access role: %w", err)
	}

	return nil
}
