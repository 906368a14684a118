package storage

import (
	"context"

	"prontuario/internal/model"
)

// Storage defines the interface for data persistence.
//
// Both collections are read and written whole: there are no partial or
// streaming updates. Callers load, mutate the in-memory collection, then
// save the entire collection back. Saves are full replacements, so
// independent writers race last-write-wins with no conflict detection.
type Storage interface {
	// Record operations
	LoadRecords(ctx context.Context) ([]model.PatientRecord, error)
	SaveRecords(ctx context.Context, records []model.PatientRecord) error

	// Credential operations
	LoadUsers(ctx context.Context) (model.Credentials, error)
	SaveUsers(ctx context.Context, users model.Credentials) error
}
