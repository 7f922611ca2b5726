package application

import (
	"context"
	"fmt"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/qmuntal/stateless"
)

type creationTrigger string

const (
	creationStillRunning creationTrigger = "still_running"
	creationSucceeded    creationTrigger = "succeeded"
	creationFailed       creationTrigger = "failed"
)

// newCreationMachine tracks one CreateAccount request. IN_PROGRESS may be observed
// any number of times; SUCCEEDED and FAILED are terminal.
func newCreationMachine() *stateless.StateMachine {
	machine := stateless.NewStateMachine(domain.CreateAccountInProgress)

	machine.Configure(domain.CreateAccountInProgress).
		PermitReentry(creationStillRunning).
		Permit(creationSucceeded, domain.CreateAccountSucceeded).
		Permit(creationFailed, domain.CreateAccountFailed)
	machine.Configure(domain.CreateAccountSucceeded)
	machine.Configure(domain.CreateAccountFailed)

	return machine
}

func observeCreation(ctx context.Context, machine *stateless.StateMachine, state domain.CreateAccountState) error {
	var trigger creationTrigger
	switch state {
	case domain.CreateAccountInProgress:
		trigger = creationStillRunning
	case domain.CreateAccountSucceeded:
		trigger = creationSucceeded
	case domain.CreateAccountFailed:
		trigger = creationFailed
	default:
		return fmt.Errorf("unknown creation state %q", state)
	}

	return machine.FireCtx(ctx, trigger)
}
