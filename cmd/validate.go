package cmd

import (
	"fmt"

	yamlconfig "github.com/bnema/aws-accounts-cli/internal/adapters/config/yaml"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the YAML account definitions without calling AWS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desired, err := yamlconfig.LoadDir(cmd.Context(), configDir)
			if err != nil {
				return err
			}

			for _, account := range desired {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", account.FullName, account.Email, account.OUPath)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d accounts valid\n", len(desired))
			return err
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "", "Directory holding *.yaml account definitions")
	_ = cmd.MarkFlagRequired("config-dir")

	return cmd
}
