package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kart-checkout/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "session:"

// record is the stored session payload. The expiry is duplicated inside the
// value so a session that outlives its deadline (clock skew, manual TTL
// changes) is still reported as expired rather than invalid.
type record struct {
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is a Redis-backed session store. Sessions live outside process
// memory so they survive restarts and are shared across instances.
type Store struct {
	rdb    *redis.Client
	now    func() time.Time
	logger zerolog.Logger
}

// NewStore creates a new session store.
func NewStore(rdb *redis.Client, logger zerolog.Logger) *Store {
	return &Store{
		rdb:    rdb,
		now:    time.Now,
		logger: logger.With().Str("component", "session-store").Logger(),
	}
}

// Issue creates a new opaque session token for the user with the given TTL.
func (s *Store) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(record{
		UserID:    userID,
		ExpiresAt: s.now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode session record: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+token, payload, ttl).Err(); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to store session")
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Verify resolves a session token to its user id.
func (s *Store) Verify(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, model.ErrInvalidToken
	}

	payload, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrInvalidToken
		}
		s.logger.Error().Err(err).Msg("failed to read session")
		return 0, fmt.Errorf("failed to read session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.logger.Error().Err(err).Msg("malformed session record")
		return 0, model.ErrInvalidToken
	}

	if s.now().After(rec.ExpiresAt) {
		return 0, model.ErrTokenExpired
	}

	return rec.UserID, nil
}

// Revoke deletes a session token.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
