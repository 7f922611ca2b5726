package cmd

import (
	"encoding/json"
	"fmt"

	yamlconfig "github.com/bnema/aws-accounts-cli/internal/adapters/config/yaml"
	"github.com/bnema/aws-accounts-cli/internal/application"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type reconcileFlags struct {
	configDir        string
	dryRun           bool
	createAccounts   bool
	deleteDefaultVPC bool
	matchEmail       bool
	waitForRole      bool
	vpcRegions       []string
	asJSON           bool
}

func newReconcileCmd(app *app) *cobra.Command {
	var flags reconcileFlags

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Bring organization accounts in line with the YAML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configDir, "config-dir", "", "Directory holding *.yaml account definitions")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report intended changes without applying them")
	cmd.Flags().BoolVar(&flags.createAccounts, "create-accounts", false, "Create accounts that do not exist yet")
	cmd.Flags().BoolVar(&flags.deleteDefaultVPC, "delete-default-vpc", false, "Delete default VPCs of accounts that ask for it")
	cmd.Flags().BoolVar(&flags.matchEmail, "match-email", false, "Look accounts up by email before falling back to the name")
	cmd.Flags().BoolVar(&flags.waitForRole, "wait-for-role", false, "Wait until the access role can be assumed instead of a fixed grace period")
	cmd.Flags().StringSliceVar(&flags.vpcRegions, "vpc-region", nil, "Region to remove default VPCs from (repeatable, default: --region)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("config-dir")

	return cmd
}

func runReconcile(cmd *cobra.Command, app *app, flags reconcileFlags) error {
	ctx := cmd.Context()

	desired, err := yamlconfig.LoadDir(ctx, flags.configDir)
	if err != nil {
		return err
	}

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

	regions := flags.vpcRegions
	if len(regions) == 0 {
		regions = []string{app.settings.GetString(keyRegion)}
	}

	reconciler := application.NewReconciler(application.ReconcilerDeps{
		Organization:   b.org,
		Clients:        b.clients,
		Directory:      app.directory(b, logger, flags.waitForRole),
		Resolver:       application.NewOUResolver(b.org, rootID),
		Contacts:       application.NewContactManager(b.contacts, logger),
		Decommissioner: application.NewVPCDecommissioner(app.clock, app.timing(), logger),
		Journal:        app.journal,
		Clock:          app.clock,
		Logger:         logger,
	}, application.ReconcileOptions{
		DryRun:           flags.dryRun,
		CreateAccounts:   flags.createAccounts,
		DeleteDefaultVPC: flags.deleteDefaultVPC,
		MatchByEmail:     flags.matchEmail,
		VPCRegions:       regions,
	})

	result, runErr := reconciler.ReconcileAll(ctx, desired)
	if err := writeReport(cmd, app, result, flags.asJSON); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("%d of %d accounts failed: %w", result.Failed(), len(result.Results), runErr)
	}

	return nil
}

type reportJSON struct {
	RunID   string       `json:"run_id"`
	DryRun  bool         `json:"dry_run"`
	Failed  int          `json:"failed"`
	Results []resultJSON `json:"results"`
}

type resultJSON struct {
	Account       string               `json:"account"`
	AccountID     domain.AccountID     `json:"account_id,omitempty"`
	Created       bool                 `json:"created"`
	PlannedCreate bool                 `json:"planned_create,omitempty"`
	SourceOU      domain.OUID          `json:"source_ou,omitempty"`
	TargetOU      domain.OUID          `json:"target_ou,omitempty"`
	Moved         bool                 `json:"moved"`
	TagsApplied   int                  `json:"tags_applied"`
	Alias         string               `json:"alias,omitempty"`
	AliasExisted  bool                 `json:"alias_existed,omitempty"`
	Contacts      []domain.ContactType `json:"contacts,omitempty"`
	VPCs          []domain.VPCOutcome  `json:"vpcs,omitempty"`
	Steps         []domain.Step        `json:"steps"`
	Error         string               `json:"error,omitempty"`
}

func writeReport(cmd *cobra.Command, app *app, result application.Report, asJSON bool) error {
	if asJSON {
		out := reportJSON{RunID: result.RunID, DryRun: result.DryRun, Failed: result.Failed()}
		for _, r := range result.Results {
			encoded := resultJSON{
				Account:       r.Account,
				AccountID:     r.AccountID,
				Created:       r.Created,
				PlannedCreate: r.PlannedCreate,
				SourceOU:      r.SourceOU,
				TargetOU:      r.TargetOU,
				Moved:         r.Moved,
				TagsApplied:   r.TagsApplied,
				Alias:         r.Alias,
				AliasExisted:  r.AliasExisted,
				Contacts:      r.Contacts,
				VPCs:          r.VPCs,
				Steps:         r.Steps,
			}
			if r.Err != nil {
				encoded.Error = r.Err.Error()
			}
			out.Results = append(out.Results, encoded)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rendered, err := app.renderReport(result)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
