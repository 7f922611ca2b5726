package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	"github.com/qmuntal/stateless"
)

type teardownState string

const (
	stateFindVPC       teardownState = "FIND_VPC"
	stateFindSubnets   teardownState = "FIND_SUBNETS"
	stateDeleteSubnets teardownState = "DELETE_SUBNETS"
	stateFindIGW       teardownState = "FIND_IGW"
	stateDetachIGW     teardownState = "DETACH_IGW"
	stateDeleteIGW     teardownState = "DELETE_IGW"
	stateSettle        teardownState = "WAIT"
	stateDeleteVPC     teardownState = "DELETE_VPC"
	stateDone          teardownState = "DONE"
)

type teardownTrigger string

const (
	triggerVPCFound       teardownTrigger = "vpc_found"
	triggerVPCMissing     teardownTrigger = "vpc_missing"
	triggerSubnetsListed  teardownTrigger = "subnets_listed"
	triggerSubnetsDeleted teardownTrigger = "subnets_deleted"
	triggerIGWFound       teardownTrigger = "igw_found"
	triggerIGWMissing     teardownTrigger = "igw_missing"
	triggerIGWDetached    teardownTrigger = "igw_detached"
	triggerIGWDeleted     teardownTrigger = "igw_deleted"
	triggerSettled        teardownTrigger = "settled"
	triggerVPCDeleted     teardownTrigger = "vpc_deleted"
)

func newTeardownMachine() *stateless.StateMachine {
	machine := stateless.NewStateMachine(stateFindVPC)

	machine.Configure(stateFindVPC).
		Permit(triggerVPCFound, stateFindSubnets).
		Permit(triggerVPCMissing, stateDone)
	machine.Configure(stateFindSubnets).
		Permit(triggerSubnetsListed, stateDeleteSubnets)
	machine.Configure(stateDeleteSubnets).
		Permit(triggerSubnetsDeleted, stateFindIGW)
	machine.Configure(stateFindIGW).
		Permit(triggerIGWFound, stateDetachIGW).
		Permit(triggerIGWMissing, stateSettle)
	machine.Configure(stateDetachIGW).
		Permit(triggerIGWDetached, stateDeleteIGW)
	machine.Configure(stateDeleteIGW).
		Permit(triggerIGWDeleted, stateSettle)
	machine.Configure(stateSettle).
		Permit(triggerSettled, stateDeleteVPC)
	machine.Configure(stateDeleteVPC).
		Permit(triggerVPCDeleted, stateDone)
	machine.Configure(stateDone)

	return machine
}

// VPCDecommissioner removes the default VPC of one account and region together
// with its subnets and internet gateway.
type VPCDecommissioner struct {
	clock  ports.Clock
	timing Timing
	logger *slog.Logger
}

func NewVPCDecommissioner(clock ports.Clock, timing Timing, logger *slog.Logger) *VPCDecommissioner {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &VPCDecommissioner{
		clock:  clock,
		timing: timing.withDefaults(),
		logger: loggerOrDiscard(logger),
	}
}

// DeleteDefaultVPC runs the teardown to completion. Discovery calls are retried
// within the configured budget; subnet deletions are best effort; any other
// failure stops the teardown where it is.
func (d *VPCDecommissioner) DeleteDefaultVPC(ctx context.Context, network ports.Network, accountID domain.AccountID, dryRun bool) (domain.VPCOutcome, error) {
	run := &teardown{
		decommissioner: d,
		network:        network,
		logger:         d.logger.With("account_id", accountID),
		dryRun:         dryRun,
		outcome:        domain.VPCOutcome{DryRun: dryRun},
	}
	machine := newTeardownMachine()

	for {
		state := machine.MustState().(teardownState)
		if state == stateDone {
			return run.outcome, nil
		}

		trigger, err := run.handle(ctx, state)
		if err != nil {
			return run.outcome, fmt.Errorf("default vpc %s: %w", state, err)
		}
		if err := machine.FireCtx(ctx, trigger); err != nil {
			return run.outcome, fmt.Errorf("default vpc %s: %w", state, err)
		}
	}
}

type teardown struct {
	decommissioner *VPCDecommissioner
	network        ports.Network
	logger         *slog.Logger
	dryRun         bool

	subnets []domain.Subnet
	gateway *domain.InternetGateway
	outcome domain.VPCOutcome
}

func (t *teardown) handle(ctx context.Context, state teardownState) (teardownTrigger, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch state {
	case stateFindVPC:
		return t.findVPC(ctx)
	case stateFindSubnets:
		return t.findSubnets(ctx)
	case stateDeleteSubnets:
		return t.deleteSubnets(ctx)
	case stateFindIGW:
		return t.findInternetGateway(ctx)
	case stateDetachIGW:
		return t.detachInternetGateway(ctx)
	case stateDeleteIGW:
		return t.deleteInternetGateway(ctx)
	case stateSettle:
		return t.settle(ctx)
	case stateDeleteVPC:
		return t.deleteVPC(ctx)
	default:
		return "", fmt.Errorf("no handler for state %s", state)
	}
}

func (t *teardown) findVPC(ctx context.Context) (teardownTrigger, error) {
	vpcs, err := retryDiscovery(ctx, t, "describe vpcs", t.network.ListVPCs)
	if err != nil {
		return "", err
	}

	for _, vpc := range vpcs {
		if vpc.IsDefault {
			t.outcome.VPCID = vpc.ID
			t.logger.Info("default vpc found", "vpc_id", vpc.ID)
			return triggerVPCFound, nil
		}
	}

	t.outcome.Status = domain.VPCOutcomeNoDefaultVPC
	t.logger.Info("no default vpc")
	return triggerVPCMissing, nil
}

func (t *teardown) findSubnets(ctx context.Context) (teardownTrigger, error) {
	subnets, err := retryDiscovery(ctx, t, "describe subnets", t.network.ListSubnets)
	if err != nil {
		return "", err
	}

	t.subnets = t.subnets[:0]
	for _, subnet := range subnets {
		if subnet.VPCID == t.outcome.VPCID {
			t.subnets = append(t.subnets, subnet)
		}
	}

	return triggerSubnetsListed, nil
}

func (t *teardown) deleteSubnets(ctx context.Context) (teardownTrigger, error) {
	for _, subnet := range t.subnets {
		if err := t.network.DeleteSubnet(ctx, subnet.ID, t.dryRun); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			t.logger.Warn("delete subnet failed", "subnet_id", subnet.ID, "error", err)
			t.outcome.FailedSubnets = append(t.outcome.FailedSubnets, subnet.ID)
			continue
		}
		t.outcome.DeletedSubnets = append(t.outcome.DeletedSubnets, subnet.ID)
	}

	return triggerSubnetsDeleted, nil
}

func (t *teardown) findInternetGateway(ctx context.Context) (teardownTrigger, error) {
	gateways, err := retryDiscovery(ctx, t, "describe internet gateways", t.network.ListInternetGateways)
	if err != nil {
		return "", err
	}

	for i := range gateways {
		if gateway := &gateways[i]; gateway.AttachedTo(t.outcome.VPCID) {
			t.gateway = gateway
			t.outcome.InternetGatewayID = gateway.ID
			return triggerIGWFound, nil
		}
	}

	return triggerIGWMissing, nil
}

func (t *teardown) detachInternetGateway(ctx context.Context) (teardownTrigger, error) {
	if err := t.network.DetachInternetGateway(ctx, t.gateway.ID, t.outcome.VPCID, t.dryRun); err != nil {
		return "", fmt.Errorf("detach internet gateway %s: %w", t.gateway.ID, err)
	}
	return triggerIGWDetached, nil
}

func (t *teardown) deleteInternetGateway(ctx context.Context) (teardownTrigger, error) {
	if err := t.network.DeleteInternetGateway(ctx, t.gateway.ID, t.dryRun); err != nil {
		return "", fmt.Errorf("delete internet gateway %s: %w", t.gateway.ID, err)
	}
	t.logger.Info("internet gateway deleted", "gateway_id", t.gateway.ID, "dry_run", t.dryRun)
	return triggerIGWDeleted, nil
}

func (t *teardown) settle(ctx context.Context) (teardownTrigger, error) {
	if err := t.decommissioner.clock.Sleep(ctx, t.decommissioner.timing.VPCSettleDelay); err != nil {
		return "", err
	}
	return triggerSettled, nil
}

func (t *teardown) deleteVPC(ctx context.Context) (teardownTrigger, error) {
	if err := t.network.DeleteVPC(ctx, t.outcome.VPCID, t.dryRun); err != nil {
		return "", fmt.Errorf("delete vpc %s: %w", t.outcome.VPCID, err)
	}
	t.outcome.Status = domain.VPCOutcomeDeleted
	t.logger.Info("default vpc deleted", "vpc_id", t.outcome.VPCID, "dry_run", t.dryRun)
	return triggerVPCDeleted, nil
}

func retryDiscovery[T any](ctx context.Context, t *teardown, operation string, list func(context.Context) ([]T, error)) ([]T, error) {
	timing := t.decommissioner.timing
	return retryWithBudget(ctx, t.decommissioner.clock, t.logger, operation, timing.VPCRetryBackoff, timing.VPCRetryBudget, list)
}
