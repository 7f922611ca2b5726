package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/bnema/aws-accounts-cli/internal/logs"
)

type Options struct {
	Profile string
	Region  string
	// Logger receives SDK retry logs when set.
	Logger *slog.Logger
}

// Load builds the management-account configuration from the default credential
// chain, narrowed by profile and region when given.
func Load(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRetryMode(aws.RetryModeAdaptive),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Logger != nil {
		loadOpts = append(loadOpts,
			config.WithLogger(logs.SDKLogger(opts.Logger)),
			config.WithClientLogMode(aws.LogRetries),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}

	return cfg, nil
}
