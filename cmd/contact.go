package cmd

import (
	"fmt"

	"github.com/bnema/aws-accounts-cli/internal/application"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newContactCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage alternate contacts",
	}

	cmd.AddCommand(newContactDeleteCmd(app))

	return cmd
}

func newContactDeleteCmd(app *app) *cobra.Command {
	var accountID string
	var contactType string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove one alternate contact from an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := domain.ParseContactType(contactType); err != nil {
				return err
			}

			logger, err := app.logger(cmd)
			if err != nil {
				return err
			}
			b, err := app.backendFor(cmd.Context(), logger)
			if err != nil {
				return err
			}

			manager := application.NewContactManager(b.contacts, logger)
			if err := manager.Delete(cmd.Context(), domain.AccountID(accountID), contactType); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s contact from %s\n", contactType, accountID)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&contactType, "type", "", "Contact type (OPERATIONS, SECURITY, BILLING)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
