package ports

import "context"

// AliasManager is bound to a single member account.
type AliasManager interface {
	// CreateAccountAlias returns domain.ErrAliasAlreadyExists when the alias is already set.
	CreateAccountAlias(ctx context.Context, alias string) error
}
