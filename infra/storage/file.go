// Package storage persists department schedules on disk as a single JSON
// document.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/timegridhq/timegrid/core/model"
	corestorage "github.com/timegridhq/timegrid/core/storage"
)

// ScheduleStore mirrors the core storage interface.
type ScheduleStore = corestorage.ScheduleStore

// FileStore reads and writes all schedules to one JSON file. Saves go
// through a temp file and rename so a crash never leaves a half-written
// document behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given path. The parent
// directory is created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads every schedule from the file. A missing file yields an empty
// department rather than an error.
func (f *FileStore) Load(ctx context.Context) ([]model.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read schedules: %w", err)
	}
	var schedules []model.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}
	return schedules, nil
}

// Save writes all schedules atomically.
func (f *FileStore) Save(ctx context.Context, schedules []model.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(schedules, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedules: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".schedules-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write schedules: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace schedules file: %w", err)
	}
	return nil
}
