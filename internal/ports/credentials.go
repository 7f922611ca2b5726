package ports

import (
	"context"

	"github.com/bnema/aws-accounts-cli/internal/domain"
)

type CredentialProvider interface {
	AssumeRole(ctx context.Context, accountID domain.AccountID) (domain.Credentials, error)
}

// AccountClients builds clients scoped to one member account. Every call assumes
// the access role again; nothing is pooled across accounts.
type AccountClients interface {
	AliasManager(ctx context.Context, accountID domain.AccountID) (AliasManager, error)
	Network(ctx context.Context, accountID domain.AccountID, region string) (Network, error)
}
