package users

import (
	"context"
	"log/slog"
	"sort"

	"prontuario/internal/model"
	"prontuario/internal/storage"
)

// Service owns the username to password mapping. Like the records service
// it loads fresh on every call and persists the whole mapping on mutation.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new users service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns all usernames in sorted order. Passwords are never exposed.
func (s *Service) List(ctx context.Context) ([]string, error) {
	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Add inserts a new credential and persists the mapping. The username must
// not already exist and both fields must be non-empty.
func (s *Service) Add(ctx context.Context, username, password string) error {
	if username == "" {
		return model.NewValidationError("username")
	}
	if password == "" {
		return model.NewValidationError("password")
	}

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return err
	}

	if _, exists := users[username]; exists {
		return model.ErrUserExists
	}

	users[username] = password
	if err := s.storage.SaveUsers(ctx, users); err != nil {
		return err
	}

	s.logger.Info("user added", slog.String("username", username))

	return nil
}
