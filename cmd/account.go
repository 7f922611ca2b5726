package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/aws-accounts-cli/internal/adapters/render/report"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect organization member accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every account of the organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := app.logger(cmd)
			if err != nil {
				return err
			}
			b, err := app.backendFor(cmd.Context(), logger)
			if err != nil {
				return err
			}

			directory := app.directory(b, logger, false)
			var accounts []domain.Account
			fetch := func(ctx context.Context) error {
				for account, err := range directory.Accounts(ctx) {
					if err != nil {
						return err
					}
					accounts = append(accounts, account)
				}
				return nil
			}
			if err := report.Progress(cmd.Context(), cmd.ErrOrStderr(), "Listing organization accounts", fetch); err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(accounts)
			}

			rendered, err := app.renderAccounts(accounts)
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
