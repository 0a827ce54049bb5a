package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
)

var ErrSessionNotFound = errors.New("form session not found")

// Store keeps the form state of each user session between requests.
type Store interface {
	Load(ctx context.Context, key string) (*domain.FormSession, error)
	Save(ctx context.Context, key string, form *domain.FormSession) error
	Delete(ctx context.Context, key string) error
}

// Key scopes a session id to one screen's form.
func Key(sessionID string, screen domain.Screen) string {
	return sessionID + ":" + string(screen)
}

type memoryEntry struct {
	form      domain.FormSession
	expiresAt time.Time
}

// MemoryStore is the store used in local mode and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) (*domain.FormSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, ErrSessionNotFound
	}
	form := e.form
	form.Options = append([]domain.Option(nil), e.form.Options...)
	return &form, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, form *domain.FormSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *form
	stored.Options = append([]domain.Option(nil), form.Options...)
	s.entries[key] = memoryEntry{form: stored, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
