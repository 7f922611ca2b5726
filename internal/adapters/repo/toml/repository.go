package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	JournalPathKey    = "journal.path"
	journalFileMode   = 0o600
	journalDirMode    = 0o700
	journalConfigDir  = ".aa"
	journalConfigFile = "journal.toml"
	tempFilePattern   = ".journal-*.toml.tmp"
)

// JournalRepository keeps the last reconcile outcome of every desired account in
// a single TOML file.
type JournalRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.JournalRepository = (*JournalRepository)(nil)

func NewJournalRepository(cfg *viper.Viper) (*JournalRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(JournalPathKey, filepath.Join(homeDir, journalConfigDir, journalConfigFile))

	path := cfg.GetString(JournalPathKey)
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &JournalRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *JournalRepository) Path() string {
	return r.path
}

// Save replaces the entry with the same account name or appends a new one.
func (r *JournalRepository) Save(ctx context.Context, entry domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(entry)
	updated := false
	for i := range file.Entries {
		if file.Entries[i].Name == encoded.Name {
			file.Entries[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Entries = append(file.Entries, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *JournalRepository) GetByName(ctx context.Context, name string) (domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.JournalEntry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.JournalEntry{}, err
	}

	for _, entry := range file.Entries {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.JournalEntry{}, domain.ErrJournalEntryNotFound
}

func (r *JournalRepository) List(ctx context.Context) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(file.Entries))
	for _, entry := range file.Entries {
		entries = append(entries, fromSchema(entry))
	}

	return entries, nil
}

func (r *JournalRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode journal file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *JournalRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode journal file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}
	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath shares one lock between repositories opened on the same file.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(entry domain.JournalEntry) entrySchema {
	steps := make([]string, 0, len(entry.Steps))
	for _, step := range entry.Steps {
		steps = append(steps, string(step))
	}

	return entrySchema{
		Name:       entry.Name,
		AccountID:  string(entry.AccountID),
		Email:      entry.Email,
		OUPath:     entry.OUPath,
		OUID:       string(entry.OUID),
		RunID:      entry.RunID,
		Steps:      steps,
		Error:      entry.Error,
		Created:    entry.Created,
		DryRun:     entry.DryRun,
		FinishedAt: formatTime(entry.FinishedAt),
	}
}

func fromSchema(entry entrySchema) domain.JournalEntry {
	var steps []domain.Step
	for _, step := range entry.Steps {
		steps = append(steps, domain.Step(step))
	}

	return domain.JournalEntry{
		Name:       entry.Name,
		AccountID:  domain.AccountID(entry.AccountID),
		Email:      entry.Email,
		OUPath:     entry.OUPath,
		OUID:       domain.OUID(entry.OUID),
		RunID:      entry.RunID,
		Steps:      steps,
		Error:      entry.Error,
		Created:    entry.Created,
		DryRun:     entry.DryRun,
		FinishedAt: parseTime(entry.FinishedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
