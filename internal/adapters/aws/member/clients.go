package member

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/alias"
	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/network"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

// Clients hands out SDK clients scoped to one member account. Credentials are
// requested again for every client and never shared between accounts.
type Clients struct {
	base        aws.Config
	credentials ports.CredentialProvider
}

var _ ports.AccountClients = (*Clients)(nil)

func NewClients(base aws.Config, provider ports.CredentialProvider) *Clients {
	return &Clients{base: base, credentials: provider}
}

func (c *Clients) AliasManager(ctx context.Context, accountID domain.AccountID) (ports.AliasManager, error) {
	cfg, err := c.configFor(ctx, accountID, "")
	if err != nil {
		return nil, err
	}
	return alias.NewFromConfig(cfg), nil
}

func (c *Clients) Network(ctx context.Context, accountID domain.AccountID, region string) (ports.Network, error) {
	cfg, err := c.configFor(ctx, accountID, region)
	if err != nil {
		return nil, err
	}
	return network.NewFromConfig(cfg), nil
}

func (c *Clients) configFor(ctx context.Context, accountID domain.AccountID, region string) (aws.Config, error) {
	creds, err := c.credentials.AssumeRole(ctx, accountID)
	if err != nil {
		return aws.Config{}, err
	}

	cfg := c.base.Copy()
	cfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
		creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken,
	))
	if region != "" {
		cfg.Region = region
	}
	return cfg, nil
}
