package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

// dryRunSucceeded is the code EC2 answers with when a dry run would have been allowed.
const dryRunSucceeded = "DryRunOperation"

type API interface {
	ec2.DescribeVpcsAPIClient
	ec2.DescribeSubnetsAPIClient
	ec2.DescribeInternetGatewaysAPIClient
	DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
	DetachInternetGateway(ctx context.Context, params *ec2.DetachInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DetachInternetGatewayOutput, error)
	DeleteInternetGateway(ctx context.Context, params *ec2.DeleteInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteInternetGatewayOutput, error)
	DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error)
}

// Network is an EC2 client bound to one account and region.
type Network struct {
	api API
}

var _ ports.Network = (*Network)(nil)

func New(api API) *Network {
	return &Network{api: api}
}

func NewFromConfig(cfg aws.Config) *Network {
	return New(ec2.NewFromConfig(cfg))
}

func (n *Network) ListVPCs(ctx context.Context) ([]domain.VPC, error) {
	var vpcs []domain.VPC
	paginator := ec2.NewDescribeVpcsPaginator(n.api, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe vpcs: %w", err)
		}
		for _, vpc := range page.Vpcs {
			vpcs = append(vpcs, domain.VPC{ID: aws.ToString(vpc.VpcId), IsDefault: aws.ToBool(vpc.IsDefault)})
		}
	}
	return vpcs, nil
}

func (n *Network) ListSubnets(ctx context.Context) ([]domain.Subnet, error) {
	var subnets []domain.Subnet
	paginator := ec2.NewDescribeSubnetsPaginator(n.api, &ec2.DescribeSubnetsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe subnets: %w", err)
		}
		for _, subnet := range page.Subnets {
			subnets = append(subnets, domain.Subnet{ID: aws.ToString(subnet.SubnetId), VPCID: aws.ToString(subnet.VpcId)})
		}
	}
	return subnets, nil
}

func (n *Network) ListInternetGateways(ctx context.Context) ([]domain.InternetGateway, error) {
	var gateways []domain.InternetGateway
	paginator := ec2.NewDescribeInternetGatewaysPaginator(n.api, &ec2.DescribeInternetGatewaysInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe internet gateways: %w", err)
		}
		for _, gateway := range page.InternetGateways {
			converted := domain.InternetGateway{ID: aws.ToString(gateway.InternetGatewayId)}
			for _, attachment := range gateway.Attachments {
				converted.AttachedVPCs = append(converted.AttachedVPCs, aws.ToString(attachment.VpcId))
			}
			gateways = append(gateways, converted)
		}
	}
	return gateways, nil
}

func (n *Network) DeleteSubnet(ctx context.Context, subnetID string, dryRun bool) error {
	_, err := n.api.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{SubnetId: aws.String(subnetID), DryRun: aws.Bool(dryRun)})
	return check("delete subnet", err)
}

func (n *Network) DetachInternetGateway(ctx context.Context, gatewayID, vpcID string, dryRun bool) error {
	_, err := n.api.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(gatewayID),
		VpcId:             aws.String(vpcID),
		DryRun:            aws.Bool(dryRun),
	})
	return check("detach internet gateway", err)
}

func (n *Network) DeleteInternetGateway(ctx context.Context, gatewayID string, dryRun bool) error {
	_, err := n.api.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
		InternetGatewayId: aws.String(gatewayID),
		DryRun:            aws.Bool(dryRun),
	})
	return check("delete internet gateway", err)
}

func (n *Network) DeleteVPC(ctx context.Context, vpcID string, dryRun bool) error {
	_, err := n.api.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: aws.String(vpcID), DryRun: aws.Bool(dryRun)})
	return check("delete vpc", err)
}

// check treats a successful dry run as success.
func check(operation string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == dryRunSucceeded {
		return nil
	}

	return fmt.Errorf("%s: %w", operation, err)
}
