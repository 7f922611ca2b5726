package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

type ReconcileOptions struct {
	DryRun           bool
	CreateAccounts   bool
	DeleteDefaultVPC bool
	// MatchByEmail looks accounts up by email before falling back to the name.
	MatchByEmail bool
	VPCRegions   []string
	RunID        string
}

type ReconcilerDeps struct {
	Organization   ports.Organization
	Clients        ports.AccountClients
	Directory      *Directory
	Resolver       *OUResolver
	Contacts       *ContactManager
	Decommissioner *VPCDecommissioner
	// Journal is optional.
	Journal ports.JournalRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

// ReconcileResult describes what one reconcile did, or would have done in a dry run.
type ReconcileResult struct {
	Account       string
	AccountID     domain.AccountID
	Created       bool
	PlannedCreate bool
	SourceOU      domain.OUID
	TargetOU      domain.OUID
	Moved         bool
	TagsApplied   int
	Alias         string
	AliasExisted  bool
	Contacts      []domain.ContactType
	VPCs          []domain.VPCOutcome
	Steps         []domain.Step
	DryRun        bool
	Err           error
}

type Report struct {
	RunID   string
	DryRun  bool
	Results []ReconcileResult
}

func (r Report) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}

// Reconciler drives each desired account to its configured state: lookup or
// create, move, tag, alias, alternate contacts, then default VPC removal.
type Reconciler struct {
	org            ports.Organization
	clients        ports.AccountClients
	directory      *Directory
	resolver       *OUResolver
	contacts       *ContactManager
	decommissioner *VPCDecommissioner
	journal        ports.JournalRepository
	clock          ports.Clock
	logger         *slog.Logger
	opts           ReconcileOptions
}

func NewReconciler(deps ReconcilerDeps, opts ReconcileOptions) *Reconciler {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	return &Reconciler{
		org:            deps.Organization,
		clients:        deps.Clients,
		directory:      deps.Directory,
		resolver:       deps.Resolver,
		contacts:       deps.Contacts,
		decommissioner: deps.Decommissioner,
		journal:        deps.Journal,
		clock:          clock,
		logger:         loggerOrDiscard(deps.Logger),
		opts:           opts,
	}
}

type reconcileStep struct {
	step domain.Step
	run  func(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error
}

// Reconcile applies one desired account. Steps run in order and the first failure
// stops the account; completed steps are not rolled back.
func (r *Reconciler) Reconcile(ctx context.Context, desired domain.DesiredAccount) (ReconcileResult, error) {
	result := ReconcileResult{Account: desired.FullName, DryRun: r.opts.DryRun}
	logger := r.logger.With("account", desired.FullName, "run_id", r.opts.RunID)

	if err := desired.Validate(); err != nil {
		return result, r.stepError(desired, result, domain.StepLookup, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err))
	}

	steps := []reconcileStep{
		{step: domain.StepLookup, run: r.ensureAccount},
		{step: domain.StepMove, run: r.move},
		{step: domain.StepTag, run: r.tag},
		{step: domain.StepAlias, run: r.alias},
		{step: domain.StepContacts, run: r.updateContacts},
		{step: domain.StepVPC, run: r.deleteDefaultVPCs},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return result, r.stepError(desired, result, s.step, err)
		}
		if err := s.run(ctx, desired, &result); err != nil {
			return result, r.stepError(desired, result, s.step, err)
		}
		result.Steps = append(result.Steps, s.step)
		if s.step == domain.StepLookup && result.Created {
			result.Steps = append(result.Steps, domain.StepCreate)
		}

		if result.AccountID == "" {
			logger.Info("account does not exist yet, remaining steps skipped", "dry_run", r.opts.DryRun)
			break
		}
	}

	logger.Info("account reconciled", "account_id", result.AccountID, "steps", len(result.Steps))
	return result, nil
}

// ReconcileAll reconciles accounts one at a time in input order. A failing account
// does not stop the others; failures come back aggregated.
func (r *Reconciler) ReconcileAll(ctx context.Context, accounts []domain.DesiredAccount) (Report, error) {
	report := Report{RunID: r.opts.RunID, DryRun: r.opts.DryRun}
	var failures *multierror.Error

	for _, desired := range accounts {
		if err := ctx.Err(); err != nil {
			failures = multierror.Append(failures, err)
			break
		}

		result, err := r.Reconcile(ctx, desired)
		result.Err = err
		report.Results = append(report.Results, result)
		if err != nil {
			r.logger.Error("account reconcile failed", "account", desired.FullName, "error", err)
			failures = multierror.Append(failures, err)
		}
		r.record(ctx, desired, result)
	}

	return report, failures.ErrorOrNil()
}

func (r *Reconciler) ensureAccount(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	accountID, found, err := r.lookup(ctx, desired)
	if err != nil {
		return err
	}
	if found {
		result.AccountID = accountID
		return nil
	}

	if !r.opts.CreateAccounts {
		return fmt.Errorf("%w: %q and account creation is disabled", domain.ErrAccountNotFound, desired.FullName)
	}
	if r.opts.DryRun {
		result.PlannedCreate = true
		r.logger.Info("dry run: would create account", "account", desired.FullName, "email", desired.Email)
		return nil
	}

	accountID, err = r.directory.CreateAccount(ctx, desired)
	if err != nil {
		return &domain.StepError{Account: desired.FullName, Step: domain.StepCreate, Err: err}
	}
	result.AccountID = accountID
	result.Created = true

	return nil
}

func (r *Reconciler) lookup(ctx context.Context, desired domain.DesiredAccount) (domain.AccountID, bool, error) {
	if r.opts.MatchByEmail {
		accountID, found, err := r.directory.FindAccountIDByEmail(ctx, desired.Email)
		if err != nil || found {
			return accountID, found, err
		}
	}
	return r.directory.FindAccountID(ctx, desired.FullName)
}

func (r *Reconciler) move(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	target, err := r.resolver.Resolve(ctx, desired.OUPath, "")
	if err != nil {
		return err
	}
	current, err := r.org.ParentOf(ctx, result.AccountID)
	if err != nil {
		return fmt.Errorf("get parent of account %s: %w", result.AccountID, err)
	}
	result.SourceOU, result.TargetOU = current, target

	if current == target {
		r.logger.Debug("account already in place", "account_id", result.AccountID, "ou_id", target)
		return nil
	}
	if err := domain.CheckMove(result.AccountID, current, target, r.resolver.RootID(), desired.AllowDirectMoveBetweenOU); err != nil {
		return err
	}
	if r.opts.DryRun {
		r.logger.Info("dry run: would move account", "account_id", result.AccountID, "from", current, "to", target)
		return nil
	}

	if err := r.org.MoveAccount(ctx, result.AccountID, current, target); err != nil {
		return fmt.Errorf("move account %s from %s to %s: %w", result.AccountID, current, target, err)
	}
	result.Moved = true
	r.logger.Info("account moved", "account_id", result.AccountID, "from", current, "to", target)

	return nil
}

func (r *Reconciler) tag(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	if len(desired.Tags) == 0 {
		return nil
	}
	if r.opts.DryRun {
		r.logger.Info("dry run: would tag account", "account_id", result.AccountID, "tags", tagKeys(desired.Tags))
		return nil
	}

	if err := r.org.TagAccount(ctx, result.AccountID, desired.Tags); err != nil {
		return fmt.Errorf("tag account %s: %w", result.AccountID, err)
	}
	result.TagsApplied = len(desired.Tags)

	return nil
}

func (r *Reconciler) alias(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	alias := desired.EffectiveAlias()
	result.Alias = alias
	if r.opts.DryRun {
		r.logger.Info("dry run: would set account alias", "account_id", result.AccountID, "alias", alias)
		return nil
	}

	manager, err := r.clients.AliasManager(ctx, result.AccountID)
	if err != nil {
		return fmt.Errorf("open iam in account %s: %w", result.AccountID, err)
	}
	if err := manager.CreateAccountAlias(ctx, alias); err != nil {
		if errors.Is(err, domain.ErrAliasAlreadyExists) {
			result.AliasExisted = true
			r.logger.Info("account alias already set", "account_id", result.AccountID, "alias", alias)
			return nil
		}
		return fmt.Errorf("create account alias %q: %w", alias, err)
	}

	return nil
}

func (r *Reconciler) updateContacts(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	if !desired.UpdateAlternateContacts {
		return nil
	}

	for _, contact := range desired.Contacts() {
		if r.opts.DryRun {
			contactType, err := domain.ParseContactType(string(contact.Type))
			if err != nil {
				return err
			}
			r.logger.Info("dry run: would update alternate contact", "account_id", result.AccountID, "type", contactType)
			continue
		}

		if err := r.contacts.Put(ctx, result.AccountID, contact); err != nil {
			return err
		}
		result.Contacts = append(result.Contacts, contact.Type)
	}

	return nil
}

func (r *Reconciler) deleteDefaultVPCs(ctx context.Context, desired domain.DesiredAccount, result *ReconcileResult) error {
	if !desired.DeleteDefaultVPC || !r.opts.DeleteDefaultVPC {
		return nil
	}

	for _, region := range r.opts.VPCRegions {
		network, err := r.clients.Network(ctx, result.AccountID, region)
		if err != nil {
			return fmt.Errorf("open ec2 in account %s region %s: %w", result.AccountID, region, err)
		}

		outcome, err := r.decommissioner.DeleteDefaultVPC(ctx, network, result.AccountID, r.opts.DryRun)
		outcome.Region = region
		result.VPCs = append(result.VPCs, outcome)
		if err != nil {
			return fmt.Errorf("region %s: %w", region, err)
		}
	}

	return nil
}

func (r *Reconciler) stepError(desired domain.DesiredAccount, result ReconcileResult, step domain.Step, err error) error {
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) {
		return err
	}
	return &domain.StepError{Account: desired.FullName, AccountID: result.AccountID, Step: step, Err: err}
}

func (r *Reconciler) record(ctx context.Context, desired domain.DesiredAccount, result ReconcileResult) {
	if r.journal == nil {
		return
	}

	entry := domain.JournalEntry{
		Name:       desired.FullName,
		AccountID:  result.AccountID,
		Email:      desired.Email,
		OUPath:     desired.OUPath,
		OUID:       result.TargetOU,
		RunID:      r.opts.RunID,
		Steps:      result.Steps,
		Created:    result.Created,
		DryRun:     result.DryRun,
		FinishedAt: r.clock.Now().UTC(),
	}
	if result.Err != nil {
		entry.Error = result.Err.Error()
	}

	if err := r.journal.Save(context.WithoutCancel(ctx), entry); err != nil {
		r.logger.Warn("journal entry not saved", "account", desired.FullName, "error", err)
	}
}

func tagKeys(tags []domain.Tag) string {
	keys := make([]string, 0, len(tags))
	for _, tag := range tags {
		keys = append(keys, tag.Key)
	}
	return strings.Join(keys, ",")
}
