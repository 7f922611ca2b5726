package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aa",
		Short:         "AWS Accounts CLI (aa): reconcile organization member accounts",
		Long:          "aa (AWS Accounts CLI) creates and places AWS Organizations member accounts from declarative YAML, then applies tags, aliases, alternate contacts and optional default VPC removal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	flags := rootCmd.PersistentFlags()
	flags.String("profile", "", "AWS shared config profile of the management account")
	flags.String("region", "", "AWS region for management account clients")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("root-ou-id", "", "Organization root id (default: discovered)")
	flags.String("role-name", "", "Role assumed in member accounts (default: OrganizationAccountAccessRole)")

	for key, flag := range map[string]string{
		keyProfile:  "profile",
		keyRegion:   "region",
		keyLogLevel: "log-level",
		keyRootOUID: "root-ou-id",
		keyRoleName: "role-name",
	} {
		_ = app.settings.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newReconcileCmd(app),
		newValidateCmd(),
		newOUCmd(app),
		newAccountCmd(app),
		newContactCmd(app),
		newJournalCmd(app),
	)

	return rootCmd
}
