package memory

import (
	"context"
	"sync"

	"prontuario/internal/model"
	"prontuario/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It follows the same recovery contract as the file backend: loading
// credentials from a never-written store seeds the default admin user.
type Storage struct {
	mu sync.RWMutex

	records []model.PatientRecord
	users   model.Credentials
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadRecords(ctx context.Context) ([]model.PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PatientRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Storage) SaveRecords(ctx context.Context, records []model.PatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]model.PatientRecord, len(records))
	copy(s.records, records)
	return nil
}

func (s *Storage) LoadUsers(ctx context.Context) (model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users == nil {
		s.users = model.Credentials{model.AdminUsername: model.DefaultAdminPassword}
	}

	out := make(model.Credentials, len(s.users))
	for k, v := range s.users {
		out[k] = v
	}
	return out, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(model.Credentials, len(users))
	for k, v := range users {
		s.users[k] = v
	}
	return nil
}
