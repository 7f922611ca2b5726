package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/application"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type JournalOptions struct {
	Now time.Time
}

func Render(report application.Report) (string, error) {
	return run(func(s styles) string { return renderReport(report, s) })
}

func RenderJournal(entries []domain.JournalEntry, opts JournalOptions) (string, error) {
	return run(func(s styles) string { return renderJournal(entries, opts, s) })
}

func RenderAccounts(accounts []domain.Account) (string, error) {
	return run(func(s styles) string { return renderAccounts(accounts, s) })
}

func renderReport(report application.Report, s styles) string {
	title := "Reconcile run " + report.RunID
	if report.DryRun {
		title += " (dry run)"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("accounts: %d  failed: %d", len(report.Results), report.Failed())),
	}

	if len(report.Results) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, result := range report.Results {
		lines = append(lines, s.section.Render(renderResult(result, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResult(result application.ReconcileResult, s styles) string {
	parts := []string{s.account.Render(accountTitle(result.Account, result.AccountID, result.PlannedCreate))}

	if result.Err != nil {
		parts = append(parts, s.failure.Render("failed: "+result.Err.Error()))
	} else {
		parts = append(parts, s.ok.Render("ok"))
	}

	switch {
	case result.Created:
		parts = append(parts, s.detail.Render("created"))
	case result.PlannedCreate:
		parts = append(parts, s.planned.Render("would create"))
	}

	if line := moveLine(result); line != "" {
		style := s.detail
		if result.DryRun && result.SourceOU != result.TargetOU {
			style = s.planned
		}
		parts = append(parts, style.Render(line))
	}

	if result.TagsApplied > 0 {
		parts = append(parts, s.detail.Render(fmt.Sprintf("tags: %d", result.TagsApplied)))
	}

	if result.Alias != "" {
		alias := "alias: " + result.Alias
		if result.AliasExisted {
			alias += " (already set)"
		}
		parts = append(parts, s.detail.Render(alias))
	}

	if len(result.Contacts) > 0 {
		types := make([]string, 0, len(result.Contacts))
		for _, contactType := range result.Contacts {
			types = append(types, string(contactType))
		}
		parts = append(parts, s.detail.Render("contacts: "+strings.Join(types, ", ")))
	}

	for _, outcome := range result.VPCs {
		line := vpcLine(outcome)
		if len(outcome.FailedSubnets) > 0 {
			parts = append(parts, s.warning.Render(line))
			continue
		}
		parts = append(parts, s.detail.Render(line))
	}

	if len(result.Steps) > 0 {
		parts = append(parts, s.header.Render("steps: "+joinSteps(result.Steps)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(name string, id domain.AccountID, planned bool) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case id != "":
		return fmt.Sprintf("%s (%s)", trimmed, id)
	case planned:
		return trimmed + " (planned)"
	default:
		return trimmed
	}
}

func moveLine(result application.ReconcileResult) string {
	switch {
	case result.TargetOU == "":
		return ""
	case result.SourceOU == result.TargetOU:
		return fmt.Sprintf("in place: %s", result.TargetOU)
	case result.Moved:
		return fmt.Sprintf("moved: %s -> %s", result.SourceOU, result.TargetOU)
	default:
		return fmt.Sprintf("would move: %s -> %s", result.SourceOU, result.TargetOU)
	}
}

func vpcLine(outcome domain.VPCOutcome) string {
	region := outcome.Region
	if region == "" {
		region = "default region"
	}

	if outcome.Status == domain.VPCOutcomeNoDefaultVPC {
		return fmt.Sprintf("default vpc %s: none", region)
	}

	verb := "deleted"
	if outcome.DryRun {
		verb = "would delete"
	}

	line := fmt.Sprintf("default vpc %s: %s %s (%d subnets", region, verb, outcome.VPCID, len(outcome.DeletedSubnets))
	if len(outcome.FailedSubnets) > 0 {
		line += fmt.Sprintf(", %d failed: %s", len(outcome.FailedSubnets), strings.Join(outcome.FailedSubnets, ", "))
	}
	if outcome.InternetGatewayID != "" {
		line += ", igw " + outcome.InternetGatewayID
	}

	return line + ")"
}

func joinSteps(steps []domain.Step) string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, string(step))
	}
	return strings.Join(names, " > ")
}

func renderJournal(entries []domain.JournalEntry, opts JournalOptions, s styles) string {
	lines := []string{
		s.title.Render("Run journal"),
		s.header.Render(fmt.Sprintf("entries: %d", len(entries))),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No reconcile runs recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		parts := []string{s.account.Render(accountTitle(entry.Name, entry.AccountID, false))}

		if entry.Succeeded() {
			parts = append(parts, s.ok.Render("ok"))
		} else {
			parts = append(parts, s.failure.Render("failed: "+entry.Error))
		}

		target := entry.OUPath
		if entry.OUID != "" {
			target = fmt.Sprintf("%s (%s)", entry.OUPath, entry.OUID)
		}
		parts = append(parts, s.detail.Render("ou: "+target))

		run := "run " + entry.RunID
		if entry.DryRun {
			run += " (dry run)"
		}
		run += ", " + formatFinished(entry.FinishedAt, opts.Now)
		parts = append(parts, s.detail.Render(run))

		if len(entry.Steps) > 0 {
			parts = append(parts, s.header.Render("steps: "+joinSteps(entry.Steps)))
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatFinished(finished, now time.Time) string {
	if finished.IsZero() {
		return "finished at unknown time"
	}
	if now.IsZero() || finished.After(now) {
		return "finished " + finished.Format(time.RFC3339)
	}

	elapsed := now.Sub(finished)
	switch {
	case elapsed < time.Minute:
		return "finished just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("finished %s ago", plural(int(elapsed.Minutes()), "minute"))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("finished %s ago", plural(int(elapsed.Hours()), "hour"))
	default:
		days := int(math.Floor(elapsed.Hours() / 24))
		return fmt.Sprintf("finished %s ago (%s)", plural(days, "day"), finished.Format("15:04 on 02 Jan"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func renderAccounts(accounts []domain.Account, s styles) string {
	lines := []string{
		s.title.Render("Organization accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	nameWidth := 0
	for _, account := range accounts {
		nameWidth = max(nameWidth, len(strings.TrimSpace(account.Name)))
	}

	rows := make([]string, 0, len(accounts))
	for _, account := range accounts {
		status := s.detail
		if account.Status != "" && account.Status != domain.AccountStatusActive {
			status = s.warning
		}
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.account.Render(string(account.ID)),
			"  ",
			s.detail.Render(fmt.Sprintf("%-*s", nameWidth, strings.TrimSpace(account.Name))),
			"  ",
			s.header.Render(account.Email),
			"  ",
			status.Render(string(account.Status)),
		))
	}

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
