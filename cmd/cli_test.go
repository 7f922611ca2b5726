package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRootID = domain.OUID("r-ab12")

const sandboxConfig = `Accounts:
  - AccountFullName: sandbox
    Email: sandbox@example.com
    OrganizationalUnitPath: /dev
    Alias: sandbox-alias
    Tags:
      - team: platform
`

func TestVersionPrintsBuildInfo(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aa dev (commit none, built unknown)")

	stdout, _, err = executeCLI(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestValidateListsAccountsWithoutCallingAWS(t *testing.T) {
	home := t.TempDir()
	configDir := writeConfigDir(t, sandboxConfig)
	forbidBackend(t)

	stdout, _, err := executeCLI(t, home, "validate", "--config-dir", configDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "sandbox\tsandbox@example.com\t/dev")
	assert.Contains(t, stdout, "1 accounts valid")
}

func TestValidateRequiresConfigDir(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"config-dir\" not set")
}

func TestValidateRejectsInvalidConfig(t *testing.T) {
	configDir := writeConfigDir(t, "Accounts:\n  - AccountFullName: broken\n    OrganizationalUnitPath: /\n")

	_, _, err := executeCLI(t, t.TempDir(), "validate", "--config-dir", configDir)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "missing Email")
}

func TestReconcileDryRunRendersPlanAndRecordsJournal(t *testing.T) {
	home := t.TempDir()
	configDir := writeConfigDir(t, sandboxConfig)

	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mock.Anything, "").Return(domain.Page[domain.Account]{
		Items: []domain.Account{{ID: "111111111111", Name: "sandbox", Email: "sandbox@example.com", Status: domain.AccountStatusActive}},
	}, nil)
	org.EXPECT().ListChildOUs(mock.Anything, testRootID, "").Return(domain.Page[domain.OrganizationalUnit]{
		Items: []domain.OrganizationalUnit{{ID: "ou-ab12-dev", Name: "dev", ParentID: testRootID}},
	}, nil)
	org.EXPECT().ParentOf(mock.Anything, domain.AccountID("111111111111")).Return(testRootID, nil)
	useBackend(t, &backend{org: org})

	stdout, _, err := executeCLI(t, home, "reconcile", "--config-dir", configDir, "--dry-run", "--root-ou-id", string(testRootID))
	require.NoError(t, err)
	assert.Contains(t, stdout, "(dry run)")
	assert.Contains(t, stdout, "sandbox (111111111111)")
	assert.Contains(t, stdout, "would move: r-ab12 -> ou-ab12-dev")
	assert.Contains(t, stdout, "alias: sandbox-alias")

	stdout, _, err = executeCLI(t, home, "journal", "--account", "sandbox", "--json")
	require.NoError(t, err)

	var entries []domain.JournalEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AccountID("111111111111"), entries[0].AccountID)
	assert.Equal(t, domain.OUID("ou-ab12-dev"), entries[0].OUID)
	assert.True(t, entries[0].DryRun)
	assert.True(t, entries[0].Succeeded())
}

func TestReconcileAppliesChanges(t *testing.T) {
	home := t.TempDir()
	configDir := writeConfigDir(t, sandboxConfig)

	org := mocks.NewMockOrganization(t)
	org.EXPECT().RootID(mock.Anything).Return(testRootID, nil)
	org.EXPECT().ListAccounts(mock.Anything, "").Return(domain.Page[domain.Account]{
		Items: []domain.Account{{ID: "111111111111", Name: "sandbox"}},
	}, nil)
	org.EXPECT().ListChildOUs(mock.Anything, testRootID, "").Return(domain.Page[domain.OrganizationalUnit]{
		Items: []domain.OrganizationalUnit{{ID: "ou-ab12-dev", Name: "dev"}},
	}, nil)
	org.EXPECT().ParentOf(mock.Anything, domain.AccountID("111111111111")).Return(testRootID, nil)
	org.EXPECT().MoveAccount(mock.Anything, domain.AccountID("111111111111"), testRootID, domain.OUID("ou-ab12-dev")).Return(nil)
	org.EXPECT().TagAccount(mock.Anything, domain.AccountID("111111111111"), []domain.Tag{{Key: "team", Value: "platform"}}).Return(nil)

	aliases := mocks.NewMockAliasManager(t)
	aliases.EXPECT().CreateAccountAlias(mock.Anything, "sandbox-alias").Return(domain.ErrAliasAlreadyExists)

	clients := mocks.NewMockAccountClients(t)
	clients.EXPECT().AliasManager(mock.Anything, domain.AccountID("111111111111")).Return(aliases, nil)

	useBackend(t, &backend{org: org, clients: clients})

	stdout, _, err := executeCLI(t, home, "reconcile", "--config-dir", configDir, "--json")
	require.NoError(t, err)

	var out reportJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Results, 1)
	assert.Zero(t, out.Failed)
	assert.True(t, out.Results[0].Moved)
	assert.Equal(t, 1, out.Results[0].TagsApplied)
	assert.True(t, out.Results[0].AliasExisted)
	assert.Equal(t, []domain.Step{domain.StepLookup, domain.StepMove, domain.StepTag, domain.StepAlias, domain.StepContacts, domain.StepVPC}, out.Results[0].Steps)
}

func TestReconcileFailsWhenAccountIsMissingAndCreationDisabled(t *testing.T) {
	home := t.TempDir()
	configDir := writeConfigDir(t, sandboxConfig)

	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mock.Anything, "").Return(domain.Page[domain.Account]{}, nil)
	useBackend(t, &backend{org: org})

	stdout, _, err := executeCLI(t, home, "reconcile", "--config-dir", configDir, "--root-ou-id", string(testRootID))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "1 of 1 accounts failed")
	assert.Contains(t, stdout, "accounts: 1  failed: 1")
}

func TestOUResolvePrintsID(t *testing.T) {
	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListChildOUs(mock.Anything, testRootID, "").Return(domain.Page[domain.OrganizationalUnit]{
		Items: []domain.OrganizationalUnit{{ID: "ou-ab12-prod", Name: "prod"}},
	}, nil)
	org.EXPECT().ListChildOUs(mock.Anything, domain.OUID("ou-ab12-prod"), "").Return(domain.Page[domain.OrganizationalUnit]{
		Items: []domain.OrganizationalUnit{{ID: "ou-ab12-web", Name: "web"}},
	}, nil)
	useBackend(t, &backend{org: org})

	stdout, _, err := executeCLI(t, t.TempDir(), "ou", "resolve", "/prod/web", "--root-ou-id", string(testRootID))
	require.NoError(t, err)
	assert.Equal(t, "ou-ab12-web\n", stdout)
}

func TestOUResolveUnknownSegment(t *testing.T) {
	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListChildOUs(mock.Anything, testRootID, "").Return(domain.Page[domain.OrganizationalUnit]{
		Items: []domain.OrganizationalUnit{{ID: "ou-ab12-prod", Name: "prod"}},
	}, nil)
	useBackend(t, &backend{org: org})

	_, _, err := executeCLI(t, t.TempDir(), "ou", "resolve", "/staging", "--root-ou-id", string(testRootID))
	require.ErrorIs(t, err, domain.ErrOUNotFound)
}

func TestAccountListJSON(t *testing.T) {
	org := mocks.NewMockOrganization(t)
	org.EXPECT().ListAccounts(mock.Anything, "").Return(domain.Page[domain.Account]{
		Items:     []domain.Account{{ID: "111111111111", Name: "sandbox"}},
		NextToken: "page-2",
	}, nil)
	org.EXPECT().ListAccounts(mock.Anything, "page-2").Return(domain.Page[domain.Account]{
		Items: []domain.Account{{ID: "222222222222", Name: "prod"}},
	}, nil)
	useBackend(t, &backend{org: org})

	stdout, _, err := executeCLI(t, t.TempDir(), "account", "list", "--json")
	require.NoError(t, err)

	var accounts []domain.Account
	require.NoError(t, json.Unmarshal([]byte(stdout), &accounts))
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.AccountID("222222222222"), accounts[1].ID)
}

func TestContactDelete(t *testing.T) {
	contacts := mocks.NewMockAccountContacts(t)
	contacts.EXPECT().DeleteAlternateContact(mock.Anything, domain.AccountID("111111111111"), domain.ContactTypeBilling).Return(nil)
	useBackend(t, &backend{contacts: contacts})

	stdout, _, err := executeCLI(t, t.TempDir(), "contact", "delete", "--account", "111111111111", "--type", "billing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed billing contact from 111111111111")
}

func TestContactDeleteRejectsUnknownTypeBeforeCallingAWS(t *testing.T) {
	forbidBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), "contact", "delete", "--account", "111111111111", "--type", "legal")
	require.ErrorIs(t, err, domain.ErrUnsupportedContactType)
}

func TestJournalEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "journal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No reconcile runs recorded.")
}

func TestJournalUnknownAccount(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "journal", "--account", "ghost")
	require.ErrorIs(t, err, domain.ErrJournalEntryNotFound)
}

func TestBackendFailureIsReported(t *testing.T) {
	previous := newBackend
	newBackend = func(context.Context, *viper.Viper, *slog.Logger) (*backend, error) {
		return nil, assert.AnError
	}
	t.Cleanup(func() { newBackend = previous })

	_, _, err := executeCLI(t, t.TempDir(), "account", "list")
	require.ErrorIs(t, err, assert.AnError)
}

func TestInvalidLogLevelFailsBeforeCallingAWS(t *testing.T) {
	forbidBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), "ou", "resolve", "/prod", "--log-level", "bogus", "--root-ou-id", string(testRootID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log.level")
	assert.Contains(t, err.Error(), `parse log level "bogus"`)
}

func TestLogLevelFromEnvironment(t *testing.T) {
	forbidBackend(t)
	t.Setenv("AA_LOG_LEVEL", "loud")

	_, _, err := executeCLI(t, t.TempDir(), "contact", "delete", "--account", "111111111111", "--type", "billing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log.level")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"login\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("AA_ORGANIZATION_ROOT_OU_ID", "")

	previous := appClock
	appClock = instantClock{}
	t.Cleanup(func() { appClock = previous })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func useBackend(t *testing.T, b *backend) {
	t.Helper()

	previous := newBackend
	newBackend = func(context.Context, *viper.Viper, *slog.Logger) (*backend, error) {
		return b, nil
	}
	t.Cleanup(func() { newBackend = previous })
}

func forbidBackend(t *testing.T) {
	t.Helper()

	previous := newBackend
	newBackend = func(context.Context, *viper.Viper, *slog.Logger) (*backend, error) {
		t.Fatal("backend must not be built")
		return nil, nil
	}
	t.Cleanup(func() { newBackend = previous })
}

func writeConfigDir(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.yaml"), []byte(body), 0o644))
	return dir
}

// instantClock returns from Sleep immediately.
type instantClock struct{}

func (instantClock) Now() time.Time {
	return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
}

func (instantClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
