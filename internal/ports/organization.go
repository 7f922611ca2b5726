package ports

import (
	"context"

	"github.com/bnema/aws-accounts-cli/internal/domain"
)

// Organization is the management-account view of AWS Organizations. List calls
// return one page at a time; an empty token asks for the first page.
type Organization interface {
	RootID(ctx context.Context) (domain.OUID, error)
	ManagementAccountID(ctx context.Context) (domain.AccountID, error)
	ListChildOUs(ctx context.Context, parentID domain.OUID, nextToken string) (domain.Page[domain.OrganizationalUnit], error)
	ListAccounts(ctx context.Context, nextToken string) (domain.Page[domain.Account], error)
	ParentOf(ctx context.Context, accountID domain.AccountID) (domain.OUID, error)
	MoveAccount(ctx context.Context, accountID domain.AccountID, from, to domain.OUID) error
	CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (domain.CreateAccountStatus, error)
	DescribeCreateAccountStatus(ctx context.Context, requestID string) (domain.CreateAccountStatus, error)
	TagAccount(ctx context.Context, accountID domain.AccountID, tags []domain.Tag) error
}
