package domain

import "time"

// JournalEntry is the last recorded reconcile outcome for one desired account.
type JournalEntry struct {
	Name       string
	AccountID  AccountID
	Email      string
	OUPath     string
	OUID       OUID
	RunID      string
	Steps      []Step
	Error      string
	Created    bool
	DryRun     bool
	FinishedAt time.Time
}

func (e JournalEntry) Succeeded() bool {
	return e.Error == ""
}
