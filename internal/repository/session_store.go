package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotelier/internal/dialog"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore хранит диалоговые сессии в Redis. TTL ключа играет
// роль таймаута брошенного диалога; ttl == 0 — ключи не истекают.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("dialog:session:%d", userID)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID int64) (*dialog.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", userID, err)
	}

	var sess dialog.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess *dialog.Session) error {
	cp := *sess
	cp.UpdatedAt = time.Now()

	data, err := json.Marshal(&cp)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", cp.UserID, err)
	}
	if err := s.client.Set(ctx, sessionKey(cp.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session %d: %w", cp.UserID, err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear session %d: %w", userID, err)
	}
	return nil
}
