package application

import (
	"log/slog"
	"time"
)

const (
	DefaultCreatePollInterval = time.Second
	DefaultCreateGracePeriod  = 10 * time.Second
	DefaultRoleReadyTimeout   = time.Minute
	DefaultVPCSettleDelay     = 10 * time.Second
	DefaultVPCRetryBackoff    = 2 * time.Second
	DefaultVPCRetryBudget     = 180 * time.Second
)

// Timing holds every wait the workflows perform. Zero or negative fields fall
// back to the defaults, so no wait can be configured away.
type Timing struct {
	CreatePollInterval time.Duration
	CreateGracePeriod  time.Duration
	RoleReadyTimeout   time.Duration
	VPCSettleDelay     time.Duration
	VPCRetryBackoff    time.Duration
	VPCRetryBudget     time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		CreatePollInterval: DefaultCreatePollInterval,
		CreateGracePeriod:  DefaultCreateGracePeriod,
		RoleReadyTimeout:   DefaultRoleReadyTimeout,
		VPCSettleDelay:     DefaultVPCSettleDelay,
		VPCRetryBackoff:    DefaultVPCRetryBackoff,
		VPCRetryBudget:     DefaultVPCRetryBudget,
	}
}

func (t Timing) withDefaults() Timing {
	defaults := DefaultTiming()
	if t.CreatePollInterval <= 0 {
		t.CreatePollInterval = defaults.CreatePollInterval
	}
	if t.CreateGracePeriod <= 0 {
		t.CreateGracePeriod = defaults.CreateGracePeriod
	}
	if t.RoleReadyTimeout <= 0 {
		t.RoleReadyTimeout = defaults.RoleReadyTimeout
	}
	if t.VPCSettleDelay <= 0 {
		t.VPCSettleDelay = defaults.VPCSettleDelay
	}
	if t.VPCRetryBackoff <= 0 {
		t.VPCRetryBackoff = defaults.VPCRetryBackoff
	}
	if t.VPCRetryBudget <= 0 {
		t.VPCRetryBudget = defaults.VPCRetryBudget
	}
	return t
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
