package secret

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrKeyNotFound is returned by Get when no key has been set or loaded.
	ErrKeyNotFound = errors.New("api key not found")
	// ErrEmptyKey is returned when an empty key is set.
	ErrEmptyKey = errors.New("api key must not be empty")
)

// SetStatus describes how far a Set call got.
type SetStatus int

const (
	// SetFailed means nothing changed.
	SetFailed SetStatus = iota
	// SetMemoryOnly means the key is live in memory but was not written to disk.
	SetMemoryOnly
	// SetPersisted means memory and disk both hold the new key.
	SetPersisted
)

func (s SetStatus) String() string {
	switch s {
	case SetPersisted:
		return "persisted"
	case SetMemoryOnly:
		return "memory_only"
	default:
		return "failed"
	}
}

// SetResult is the outcome of Store.Set.
type SetResult struct {
	Status SetStatus
	// Err is nil only when Status is SetPersisted.
	Err error
}

// OK reports whether the key reached memory.
func (r SetResult) OK() bool {
	return r.Status != SetFailed
}

// Persister reads and writes the on-disk copy of the key.
type Persister interface {
	// Load returns the stored key and whether one was present.
	Load() (string, bool, error)
	// Save replaces the stored record with value.
	Save(value string) error
}

// Observer is called with every newly set key while the store lock is held.
type Observer func(value string)

// Option configures a Store.
type Option func(*Store)

// WithObserver registers fn to be notified of every new key.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, fn)
	}
}

// Store owns the API key. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	value     string
	present   bool
	persister Persister
	observers []Observer
	logger    *zap.Logger
}

// NewStore creates an empty store backed by persister.
func NewStore(persister Persister, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted record into memory. A missing record leaves the store empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.persister.Load()
	if err != nil {
		return fmt.Errorf("failed to load persisted api key: %w", err)
	}
	if !ok || value == "" {
		s.logger.Debug("No persisted API key found")
		return nil
	}

	s.value = value
	s.present = true
	s.notify(value)
	s.logger.Info("Loaded persisted API key")
	return nil
}

// Set replaces the key in memory and rewrites the persisted record.
// The in-memory update happens even if the write fails.
func (s *Store) Set(value string) SetResult {
	if value == "" {
		return SetResult{Status: SetFailed, Err: ErrEmptyKey}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.present = true
	s.notify(value)

	if err := s.persister.Save(value); err != nil {
		s.logger.Error("Failed to persist API key, keeping in-memory value", zap.Error(err))
		return SetResult{Status: SetMemoryOnly, Err: fmt.Errorf("failed to persist api key: %w", err)}
	}

	s.logger.Info("API key updated")
	return SetResult{Status: SetPersisted}
}

// Get returns the current key or ErrKeyNotFound.
func (s *Store) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return "", ErrKeyNotFound
	}
	return s.value, nil
}

func (s *Store) notify(value string) {
	for _, fn := range s.observers {
		fn(value)
	}
}
