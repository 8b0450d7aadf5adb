package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"roomly/models"
)

// ErrSessionNotFound means the session expired or never existed; the UI
// reopens the panel to get a fresh snapshot.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore persists booking sessions between requests. Each browser tab
// owns one session; nothing is shared across them.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "booking:session:"

// RedisSessionStore keeps sessions in redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal booking session: %w", err)
	}
	return s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (models.BookingSession, error) {
	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.BookingSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.BookingSession{}, fmt.Errorf("load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return models.BookingSession{}, fmt.Errorf("parse booking session: %w", err)
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process store used in tests; it ignores TTLs.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (s *MemorySessionStore) Save(_ context.Context, session models.BookingSession, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = session
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return models.BookingSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
