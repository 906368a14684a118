package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"prontuario/internal/model"
	"prontuario/internal/storage"
)

// File names under the data directory. The paths are fixed by the
// persisted document contract and are not configurable at runtime.
const (
	recordsFile = "prontuarios.json"
	usersFile   = "users.json"
)

// Storage is the flat-file implementation of the storage interface.
// Each collection lives in one UTF-8 JSON document that is rewritten
// whole on every save.
type Storage struct {
	cfg Config

	// Guards read-modify-write cycles within this process only.
	// Concurrent processes pointed at the same directory still race
	// last-write-wins.
	mu sync.Mutex
}

// New creates a file-backed storage instance
func New(cfg Config) *Storage {
	if cfg.Dir == "" {
		cfg.Dir = DefaultConfig().Dir
	}
	return &Storage{cfg: cfg}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// LoadRecords reads the records document. A missing or empty document is
// initialized to an empty collection; a malformed document yields an empty
// collection without an error and without rewriting the file.
func (s *Storage) LoadRecords(ctx context.Context) ([]model.PatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.cfg.Dir, recordsFile)

	data, initialized, err := s.readOrInit(path, []model.PatientRecord{})
	if err != nil {
		return nil, err
	}
	if initialized {
		return []model.PatientRecord{}, nil
	}

	var records []model.PatientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupted document: silently recover with an empty collection
		return []model.PatientRecord{}, nil
	}
	if records == nil {
		records = []model.PatientRecord{}
	}
	return records, nil
}

// SaveRecords replaces the records document with the given collection
func (s *Storage) SaveRecords(ctx context.Context, records []model.PatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []model.PatientRecord{}
	}
	return s.write(filepath.Join(s.cfg.Dir, recordsFile), records)
}

// LoadUsers reads the credentials document. A missing or empty document is
// seeded with the default admin credential and persisted. A malformed or
// non-mapping document yields an empty mapping with no bootstrap; only the
// missing/empty branch seeds the default.
func (s *Storage) LoadUsers(ctx context.Context) (model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.cfg.Dir, usersFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		users := model.Credentials{model.AdminUsername: model.DefaultAdminPassword}
		if err := s.write(path, users); err != nil {
			return nil, err
		}
		return users, nil
	}
	if err != nil {
		return nil, err
	}

	var users model.Credentials
	if err := json.Unmarshal(data, &users); err != nil {
		return model.Credentials{}, nil
	}
	if users == nil {
		users = model.Credentials{}
	}
	return users, nil
}

// SaveUsers replaces the credentials document with the given mapping
func (s *Storage) SaveUsers(ctx context.Context, users model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if users == nil {
		users = model.Credentials{}
	}
	return s.write(filepath.Join(s.cfg.Dir, usersFile), users)
}

// readOrInit reads path, creating it with the given initial value when it
// is absent or empty. The second return reports whether it initialized.
func (s *Storage) readOrInit(path string, initial any) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		if err := s.write(path, initial); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// write marshals v and replaces the document at path, creating the data
// directory if needed. Output is 4-space indented with non-ASCII text kept
// verbatim.
func (s *Storage) write(path string, v any) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
