package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cardiocoach/webgateway/internal/coachapi"
)

// Session is the per-user chat overlay state. The backend owns the
// durable transcript and the quota; the session just mirrors them so
// the chat screen stays snappy between sends, plus purely local bits
// like the on-device model download progress.
type Session struct {
	RemainingQuota int                    `json:"remainingQuota"`
	QuotaSeeded    bool                   `json:"quotaSeeded"`
	Transcript     []coachapi.ChatMessage `json:"transcript"`
	ModelProgress  int                    `json:"modelProgress"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("chat:session:%s", userID)
}

func sendingKey(userID string) string {
	return fmt.Sprintf("chat:sending:%s", userID)
}

// Get returns the stored session, or a fresh empty one when the user
// has no session yet (or it expired).
func (s *Store) Get(ctx context.Context, userID string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal chat session: %w", err)
	}
	return &session, nil
}

func (s *Store) Save(ctx context.Context, userID string, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal chat session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

// AcquireSend takes the per-user sending lock. Returns false when a
// send is already in flight, which the handler turns into a 409. The
// lock expires on its own so a crashed send cannot wedge the user.
func (s *Store) AcquireSend(ctx context.Context, userID string) (bool, error) {
	return s.rdb.SetNX(ctx, sendingKey(userID), 1, 30*time.Second).Result()
}

func (s *Store) ReleaseSend(ctx context.Context, userID string) {
	s.rdb.Del(ctx, sendingKey(userID))
}
