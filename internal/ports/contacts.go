package ports

import (
	"context"

	"github.com/bnema/aws-accounts-cli/internal/domain"
)

type AccountContacts interface {
	PutAlternateContact(ctx context.Context, accountID domain.AccountID, contact domain.AlternateContact) error
	DeleteAlternateContact(ctx context.Context, accountID domain.AccountID, contactType domain.ContactType) error
}
