package alias

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

type API interface {
	CreateAccountAlias(ctx context.Context, params *iam.CreateAccountAliasInput, optFns ...func(*iam.Options)) (*iam.CreateAccountAliasOutput, error)
}

// Manager sets the IAM account alias of the account its client belongs to.
type Manager struct {
	api API
}

var _ ports.AliasManager = (*Manager)(nil)

func New(api API) *Manager {
	return &Manager{api: api}
}

func NewFromConfig(cfg aws.Config) *Manager {
	return New(iam.NewFromConfig(cfg))
}

func (m *Manager) CreateAccountAlias(ctx context.Context, alias string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := m.api.CreateAccountAlias(ctx, &iam.CreateAccountAliasInput{AccountAlias: aws.String(alias)})
	if err != nil {
		var exists *iamtypes.EntityAlreadyExistsException
		if errors.As(err, &exists) {
			return domain.ErrAliasAlreadyExists
		}
		return fmt.Errorf("create account alias: %w", err)
	}

	return nil
}
