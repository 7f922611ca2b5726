package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/contacts"
	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/member"
	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/org"
	"github.com/bnema/aws-accounts-cli/internal/adapters/aws/session"
	"github.com/bnema/aws-accounts-cli/internal/adapters/render/report"
	tomlrepo "github.com/bnema/aws-accounts-cli/internal/adapters/repo/toml"
	"github.com/bnema/aws-accounts-cli/internal/application"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/logs"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	settingsDir  = ".aa"
	settingsName = "config"
	settingsType = "toml"
	envPrefix    = "AA"

	keyProfile            = "aws.profile"
	keyRegion             = "aws.region"
	keyRootOUID           = "organization.root_ou_id"
	keyRoleName           = "organization.role_name"
	keyLogLevel           = "log.level"
	keyCreatePollInterval = "timing.create_poll_interval"
	keyCreateGracePeriod  = "timing.create_grace_period"
	keyRoleReadyTimeout   = "timing.role_ready_timeout"
	keyVPCSettleDelay     = "timing.vpc_settle_delay"
	keyVPCRetryBackoff    = "timing.vpc_retry_backoff"
	keyVPCRetryBudget     = "timing.vpc_retry_budget"
)

// backend groups the management-account clients. It is built on first use so
// commands that never talk to AWS work without credentials.
type backend struct {
	org         ports.Organization
	contacts    ports.AccountContacts
	clients     ports.AccountClients
	credentials ports.CredentialProvider
}

type backendBuilder func(ctx context.Context, settings *viper.Viper, logger *slog.Logger) (*backend, error)

// newBackend and appClock are replaced in tests.
var (
	newBackend backendBuilder = awsBackend
	appClock   ports.Clock    = ports.SystemClock{}
)

type app struct {
	settings       *viper.Viper
	journal        ports.JournalRepository
	buildBackend   backendBuilder
	renderReport   func(application.Report) (string, error)
	renderJournal  func([]domain.JournalEntry, report.JournalOptions) (string, error)
	renderAccounts func([]domain.Account) (string, error)
	clock          ports.Clock
	now            func() time.Time

	backendOnce sync.Once
	backend     *backend
	backendErr  error
}

func wireApp() (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	journal, err := tomlrepo.NewJournalRepository(settings)
	if err != nil {
		return nil, fmt.Errorf("wire journal repository: %w", err)
	}

	return &app{
		settings:       settings,
		journal:        journal,
		buildBackend:   newBackend,
		renderReport:   report.Render,
		renderJournal:  report.RenderJournal,
		renderAccounts: report.RenderAccounts,
		clock:          appClock,
		now:            time.Now,
	}, nil
}

func loadSettings() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	settings := viper.New()
	settings.SetConfigName(settingsName)
	settings.SetConfigType(settingsType)
	settings.AddConfigPath(filepath.Join(homeDir, settingsDir))
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()

	defaults := application.DefaultTiming()
	settings.SetDefault(keyRoleName, domain.DefaultAccessRoleName)
	settings.SetDefault(keyLogLevel, "info")
	settings.SetDefault(keyCreatePollInterval, defaults.CreatePollInterval)
	settings.SetDefault(keyCreateGracePeriod, defaults.CreateGracePeriod)
	settings.SetDefault(keyRoleReadyTimeout, defaults.RoleReadyTimeout)
	settings.SetDefault(keyVPCSettleDelay, defaults.VPCSettleDelay)
	settings.SetDefault(keyVPCRetryBackoff, defaults.VPCRetryBackoff)
	settings.SetDefault(keyVPCRetryBudget, defaults.VPCRetryBudget)

	if err := settings.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return settings, nil
}

func awsBackend(ctx context.Context, settings *viper.Viper, logger *slog.Logger) (*backend, error) {
	cfg, err := session.Load(ctx, session.Options{
		Profile: settings.GetString(keyProfile),
		Region:  settings.GetString(keyRegion),
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	organization := org.NewFromConfig(cfg)
	management, err := organization.ManagementAccountID(ctx)
	if err != nil {
		return nil, fmt.Errorf("wire organization: %w", err)
	}

	credentials := member.NewRoleAssumerFromConfig(cfg, settings.GetString(keyRoleName))

	return &backend{
		org:         organization,
		contacts:    contacts.NewFromConfig(cfg, management),
		clients:     member.NewClients(cfg, credentials),
		credentials: credentials,
	}, nil
}

func (a *app) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logs.ParseLevel(a.settings.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	return logs.ConsoleLogger(cmd.ErrOrStderr(), level), nil
}

func (a *app) backendFor(ctx context.Context, logger *slog.Logger) (*backend, error) {
	a.backendOnce.Do(func() {
		a.backend, a.backendErr = a.buildBackend(ctx, a.settings, logger)
	})
	return a.backend, a.backendErr
}

// rootID prefers the configured root and asks the organization otherwise.
func (a *app) rootID(ctx context.Context, b *backend) (domain.OUID, error) {
	if configured := strings.TrimSpace(a.settings.GetString(keyRootOUID)); configured != "" {
		return domain.OUID(configured), nil
	}

	rootID, err := b.org.RootID(ctx)
	if err != nil {
		return "", fmt.Errorf("discover organization root: %w", err)
	}
	return rootID, nil
}

func (a *app) timing() application.Timing {
	return application.Timing{
		CreatePollInterval: a.settings.GetDuration(keyCreatePollInterval),
		CreateGracePeriod:  a.settings.GetDuration(keyCreateGracePeriod),
		RoleReadyTimeout:   a.settings.GetDuration(keyRoleReadyTimeout),
		VPCSettleDelay:     a.settings.GetDuration(keyVPCSettleDelay),
		VPCRetryBackoff:    a.settings.GetDuration(keyVPCRetryBackoff),
		VPCRetryBudget:     a.settings.GetDuration(keyVPCRetryBudget),
	}
}

func (a *app) directory(b *backend, logger *slog.Logger, waitForRole bool) *application.Directory {
	cfg := application.DirectoryConfig{
		RoleName: a.settings.GetString(keyRoleName),
		Timing:   a.timing(),
		Logger:   logger,
	}
	if waitForRole {
		cfg.Probe = func(ctx context.Context, accountID domain.AccountID) error {
			_, err := b.credentials.AssumeRole(ctx, accountID)
			return err
		}
	}

	return application.NewDirectory(b.org, a.clock, cfg)
}
