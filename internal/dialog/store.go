package dialog

import (
	"context"
	"sync"
	"time"
)

// Store хранилище диалоговых сессий. Get возвращает (nil, nil), если
// сессии нет. Реализации: in-memory ниже и Redis в internal/repository.
type Store interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Clear(ctx context.Context, userID int64) error
}

// MemoryStore хранит сессии в памяти процесса, по одной на пользователя.
type MemoryStore struct {
	mu  sync.RWMutex
	m   map[int64]*Session
	ttl time.Duration
}

// NewMemoryStore создает хранилище. ttl > 0 включает вытеснение
// брошенных диалогов; ttl == 0 отключает его.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{m: make(map[int64]*Session), ttl: ttl}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.m[userID]
	if !ok {
		return nil, nil
	}
	if s.expired(sess, time.Now()) {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *MemoryStore) Set(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sess
	cp.UpdatedAt = time.Now()
	s.m[cp.UserID] = &cp
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, userID)
	return nil
}

// StartJanitor периодически удаляет истекшие сессии. Без TTL janitor
// не нужен и сразу возвращается.
func (s *MemoryStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.sweep(now)
			}
		}
	}()
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.m {
		if s.expired(sess, now) {
			delete(s.m, id)
		}
	}
}

func (s *MemoryStore) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.UpdatedAt) > s.ttl
}
