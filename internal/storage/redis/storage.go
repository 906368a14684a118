package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"prontuario/internal/model"
	"prontuario/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each collection is serialized whole into a single value and replaced
// with a plain SET on every save, preserving the full-replace,
// last-write-wins persistence model of the file backend.
type Storage struct {
	client *redis.Client
	cfg    Config

	mu sync.Mutex
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// LoadRecords reads the records collection. A missing key is initialized
// to an empty collection; a malformed value yields an empty collection
// without an error.
func (s *Storage) LoadRecords(ctx context.Context) ([]model.PatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.client.Get(ctx, recordsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			if err := s.set(ctx, recordsKey(), []model.PatientRecord{}); err != nil {
				return nil, err
			}
			return []model.PatientRecord{}, nil
		}
		return nil, err
	}

	var records []model.PatientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []model.PatientRecord{}, nil
	}
	if records == nil {
		records = []model.PatientRecord{}
	}
	return records, nil
}

// SaveRecords replaces the records collection
func (s *Storage) SaveRecords(ctx context.Context, records []model.PatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []model.PatientRecord{}
	}
	return s.set(ctx, recordsKey(), records)
}

// LoadUsers reads the credentials mapping. A missing key is seeded with the
// default admin credential and persisted; a malformed or non-mapping value
// yields an empty mapping with no bootstrap.
func (s *Storage) LoadUsers(ctx context.Context) (model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.client.Get(ctx, usersKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			users := model.Credentials{model.AdminUsername: model.DefaultAdminPassword}
			if err := s.set(ctx, usersKey(), users); err != nil {
				return nil, err
			}
			return users, nil
		}
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

// SaveUsers replaces the credentials mapping
func (s *Storage) SaveUsers(ctx context.Context, users model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if users == nil {
		users = model.Credentials{}
	}
	return s.set(ctx, usersKey(), users)
}

// set marshals v and replaces the value at key. No TTL: clinical records
// never expire.
func (s *Storage) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}
