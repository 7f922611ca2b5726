package member

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"github.com/google/uuid"
)

const sessionNamePrefix = "aa-"

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// RoleAssumer assumes the organization access role in member accounts from the
// management account credentials.
type RoleAssumer struct {
	api      STSAPI
	roleName string

	mu        sync.Mutex
	partition string
}

var _ ports.CredentialProvider = (*RoleAssumer)(nil)

func NewRoleAssumer(api STSAPI, roleName string) *RoleAssumer {
	if roleName == "" {
		roleName = domain.DefaultAccessRoleName
	}
	return &RoleAssumer{api: api, roleName: roleName}
}

func NewRoleAssumerFromConfig(cfg aws.Config, roleName string) *RoleAssumer {
	return NewRoleAssumer(sts.NewFromConfig(cfg), roleName)
}

func (r *RoleAssumer) AssumeRole(ctx context.Context, accountID domain.AccountID) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	partition, err := r.callerPartition(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}

	out, err := r.api.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(domain.RoleARN(partition, accountID, r.roleName)),
		RoleSessionName: aws.String(sessionNamePrefix + uuid.NewString()),
	})
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("assume role %s in %s: %w", r.roleName, accountID, err)
	}
	if out.Credentials == nil {
		return domain.Credentials{}, fmt.Errorf("assume role %s in %s: no credentials returned", r.roleName, accountID)
	}

	return domain.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Expires:         aws.ToTime(out.Credentials.Expiration),
	}, nil
}

// callerPartition is resolved once per assumer.
func (r *RoleAssumer) callerPartition(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.partition != "" {
		return r.partition, nil
	}

	out, err := r.api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("get caller identity: %w", err)
	}

	parsed, err := arn.Parse(aws.ToString(out.Arn))
	if err != nil {
		return "", fmt.Errorf("parse caller arn: %w", err)
	}

	r.partition = parsed.Partition
	return r.partition, nil
}
