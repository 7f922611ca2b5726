package cmd

import (
	"fmt"

	"github.com/bnema/aws-accounts-cli/internal/application"
	"github.com/spf13/cobra"
)

func newOUCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ou",
		Short: "Inspect organizational units",
	}

	cmd.AddCommand(newOUResolveCmd(app))

	return cmd
}

func newOUResolveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH",
		Short: "Print the id of the organizational unit at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := app.logger(cmd)
			if err != nil {
				return err
			}
			b, err := app.backendFor(ctx, logger)
			if err != nil {
				return err
			}
			rootID, err := app.rootID(ctx, b)
			if err != nil {
				return err
			}

			resolver := application.NewOUResolver(b.org, rootID)
			ouID, err := resolver.Resolve(ctx, args[0], resolver.RootID())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ouID)
			return err
		},
	}
}
