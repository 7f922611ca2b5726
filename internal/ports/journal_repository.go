package ports

import (
	"context"

	"github.com/bnema/aws-accounts-cli/internal/domain"
)

type JournalRepository interface {
	GetByName(ctx context.Context, name string) (domain.JournalEntry, error)
	List(ctx context.Context) ([]domain.JournalEntry, error)
	Save(ctx context.Context, entry domain.JournalEntry) error
}
