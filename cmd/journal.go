package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/aws-accounts-cli/internal/adapters/render/report"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *app) *cobra.Command {
	var name string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the last recorded reconcile outcome of each account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := loadJournal(cmd, app, name)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			rendered, err := app.renderJournal(entries, report.JournalOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render journal: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "account", "", "Account full name (default: all accounts)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func loadJournal(cmd *cobra.Command, app *app, name string) ([]domain.JournalEntry, error) {
	if name == "" {
		return app.journal.List(cmd.Context())
	}

	entry, err := app.journal.GetByName(cmd.Context(), name)
	if err != nil {
		return nil, fmt.Errorf("journal entry %q: %w", name, err)
	}

	return []domain.JournalEntry{entry}, nil
}
