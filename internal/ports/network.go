package ports

import (
	"context"

	"github.com/bnema/aws-accounts-cli/internal/domain"
)

// Network is bound to a single member account and region.
type Network interface {
	ListVPCs(ctx context.Context) ([]domain.VPC, error)
	ListSubnets(ctx context.Context) ([]domain.Subnet, error)
	ListInternetGateways(ctx context.Context) ([]domain.InternetGateway, error)
	DeleteSubnet(ctx context.Context, subnetID string, dryRun bool) error
	DetachInternetGateway(ctx context.Context, gatewayID, vpcID string, dryRun bool) error
	DeleteInternetGateway(ctx context.Context, gatewayID string, dryRun bool) error
	DeleteVPC(ctx context.Context, vpcID string, dryRun bool) error
}
