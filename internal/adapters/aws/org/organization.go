package org

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"golang.org/x/time/rate"
)

// Organizations throttles most operations to a handful of calls per second.
const (
	DefaultRate  rate.Limit = 2
	DefaultBurst            = 4
)

// API is the subset of the Organizations client the adapter calls.
type API interface {
	ListRoots(ctx context.Context, params *organizations.ListRootsInput, optFns ...func(*organizations.Options)) (*organizations.ListRootsOutput, error)
	DescribeOrganization(ctx context.Context, params *organizations.DescribeOrganizationInput, optFns ...func(*organizations.Options)) (*organizations.DescribeOrganizationOutput, error)
	ListOrganizationalUnitsForParent(ctx context.Context, params *organizations.ListOrganizationalUnitsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListOrganizationalUnitsForParentOutput, error)
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
	ListParents(ctx context.Context, params *organizations.ListParentsInput, optFns ...func(*organizations.Options)) (*organizations.ListParentsOutput, error)
	MoveAccount(ctx context.Context, params *organizations.MoveAccountInput, optFns ...func(*organizations.Options)) (*organizations.MoveAccountOutput, error)
	CreateAccount(ctx context.Context, params *organizations.CreateAccountInput, optFns ...func(*organizations.Options)) (*organizations.CreateAccountOutput, error)
	DescribeCreateAccountStatus(ctx context.Context, params *organizations.DescribeCreateAccountStatusInput, optFns ...func(*organizations.Options)) (*organizations.DescribeCreateAccountStatusOutput, error)
	TagResource(ctx context.Context, params *organizations.TagResourceInput, optFns ...func(*organizations.Options)) (*organizations.TagResourceOutput, error)
}

type Organization struct {
	api     API
	limiter *rate.Limiter
}

var _ ports.Organization = (*Organization)(nil)

func New(api API, limiter *rate.Limiter) *Organization {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Organization{api: api, limiter: limiter}
}

func NewFromConfig(cfg aws.Config) *Organization {
	return New(organizations.NewFromConfig(cfg), rate.NewLimiter(DefaultRate, DefaultBurst))
}

func (o *Organization) RootID(ctx context.Context) (domain.OUID, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return "", err
	}

	out, err := o.api.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return "", fmt.Errorf("list roots: %w", err)
	}
	if len(out.Roots) == 0 {
		return "", errors.New("list roots: organization has no root")
	}

	return domain.OUID(aws.ToString(out.Roots[0].Id)), nil
}

func (o *Organization) ManagementAccountID(ctx context.Context) (domain.AccountID, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return "", err
	}

	out, err := o.api.DescribeOrganization(ctx, &organizations.DescribeOrganizationInput{})
	if err != nil {
		return "", fmt.Errorf("describe organization: %w", err)
	}
	if out.Organization == nil {
		return "", errors.New("describe organization: empty response")
	}

	return domain.AccountID(aws.ToString(out.Organization.MasterAccountId)), nil
}

func (o *Organization) ListChildOUs(ctx context.Context, parentID domain.OUID, nextToken string) (domain.Page[domain.OrganizationalUnit], error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return domain.Page[domain.OrganizationalUnit]{}, err
	}

	out, err := o.api.ListOrganizationalUnitsForParent(ctx, &organizations.ListOrganizationalUnitsForParentInput{
		ParentId:  aws.String(string(parentID)),
		NextToken: token(nextToken),
	})
	if err != nil {
		return domain.Page[domain.OrganizationalUnit]{}, fmt.Errorf("list organizational units for parent: %w", err)
	}

	page := domain.Page[domain.OrganizationalUnit]{NextToken: aws.ToString(out.NextToken)}
	for _, unit := range out.OrganizationalUnits {
		page.Items = append(page.Items, domain.OrganizationalUnit{
			ID:       domain.OUID(aws.ToString(unit.Id)),
			Name:     aws.ToString(unit.Name),
			ParentID: parentID,
		})
	}

	return page, nil
}

func (o *Organization) ListAccounts(ctx context.Context, nextToken string) (domain.Page[domain.Account], error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return domain.Page[domain.Account]{}, err
	}

	out, err := o.api.ListAccounts(ctx, &organizations.ListAccountsInput{NextToken: token(nextToken)})
	if err != nil {
		return domain.Page[domain.Account]{}, fmt.Errorf("list accounts: %w", err)
	}

	page := domain.Page[domain.Account]{NextToken: aws.ToString(out.NextToken)}
	for _, account := range out.Accounts {
		page.Items = append(page.Items, domain.Account{
			ID:     domain.AccountID(aws.ToString(account.Id)),
			Name:   aws.ToString(account.Name),
			Email:  aws.ToString(account.Email),
			Status: domain.AccountStatus(account.Status),
		})
	}

	return page, nil
}

func (o *Organization) ParentOf(ctx context.Context, accountID domain.AccountID) (domain.OUID, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return "", err
	}

	out, err := o.api.ListParents(ctx, &organizations.ListParentsInput{ChildId: aws.String(string(accountID))})
	if err != nil {
		var notFound *orgtypes.ChildNotFoundException
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("list parents of %s: %w", accountID, domain.ErrAccountNotFound)
		}
		return "", fmt.Errorf("list parents of %s: %w", accountID, err)
	}
	if len(out.Parents) == 0 {
		return "", fmt.Errorf("list parents of %s: no parent returned", accountID)
	}

	return domain.OUID(aws.ToString(out.Parents[0].Id)), nil
}

func (o *Organization) MoveAccount(ctx context.Context, accountID domain.AccountID, from, to domain.OUID) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := o.api.MoveAccount(ctx, &organizations.MoveAccountInput{
		AccountId:           aws.String(string(accountID)),
		SourceParentId:      aws.String(string(from)),
		DestinationParentId: aws.String(string(to)),
	})
	if err != nil {
		return fmt.Errorf("move account: %w", err)
	}

	return nil
}

func (o *Organization) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (domain.CreateAccountStatus, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return domain.CreateAccountStatus{}, err
	}

	out, err := o.api.CreateAccount(ctx, &organizations.CreateAccountInput{
		AccountName:            aws.String(req.Name),
		Email:                  aws.String(req.Email),
		RoleName:               aws.String(req.RoleName),
		IamUserAccessToBilling: orgtypes.IAMUserAccessToBilling(req.BillingAccess),
	})
	if err != nil {
		return domain.CreateAccountStatus{}, fmt.Errorf("create account: %w", err)
	}

	return fromCreateStatus(out.CreateAccountStatus), nil
}

func (o *Organization) DescribeCreateAccountStatus(ctx context.Context, requestID string) (domain.CreateAccountStatus, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return domain.CreateAccountStatus{}, err
	}

	out, err := o.api.DescribeCreateAccountStatus(ctx, &organizations.DescribeCreateAccountStatusInput{
		CreateAccountRequestId: aws.String(requestID),
	})
	if err != nil {
		return domain.CreateAccountStatus{}, fmt.Errorf("describe create account status: %w", err)
	}

	return fromCreateStatus(out.CreateAccountStatus), nil
}

func (o *Organization) TagAccount(ctx context.Context, accountID domain.AccountID, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	sdkTags := make([]orgtypes.Tag, 0, len(tags))
	for _, tag := range tags {
		sdkTags = append(sdkTags, orgtypes.Tag{Key: aws.String(tag.Key), Value: aws.String(tag.Value)})
	}

	_, err := o.api.TagResource(ctx, &organizations.TagResourceInput{
		ResourceId: aws.String(string(accountID)),
		Tags:       sdkTags,
	})
	if err != nil {
		return fmt.Errorf("tag resource: %w", err)
	}

	return nil
}

func fromCreateStatus(status *orgtypes.CreateAccountStatus) domain.CreateAccountStatus {
	if status == nil {
		return domain.CreateAccountStatus{State: domain.CreateAccountFailed, FailureReason: "empty create account status"}
	}

	return domain.CreateAccountStatus{
		RequestID:     aws.ToString(status.Id),
		AccountID:     domain.AccountID(aws.ToString(status.AccountId)),
		AccountName:   aws.ToString(status.AccountName),
		State:         domain.CreateAccountState(status.State),
		FailureReason: string(status.FailureReason),
	}
}

func token(value string) *string {
	if value == "" {
		return nil
	}
	return aws.String(value)
}
