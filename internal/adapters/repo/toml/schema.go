package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Entries []entrySchema `toml:"entries"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type entrySchema struct {
	Name       string   `toml:"name"`
	AccountID  string   `toml:"account_id,omitempty"`
	Email      string   `toml:"email"`
	OUPath     string   `toml:"ou_path"`
	OUID       string   `toml:"ou_id,omitempty"`
	RunID      string   `toml:"run_id"`
	Steps      []string `toml:"steps"`
	Error      string   `toml:"error,omitempty"`
	Created    bool     `toml:"created"`
	DryRun     bool     `toml:"dry_run"`
	FinishedAt string   `toml:"finished_at"`
}
