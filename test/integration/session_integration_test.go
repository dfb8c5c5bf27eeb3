package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kart-checkout/internal/model"
	"kart-checkout/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_IssueAndVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rdb := SetupTestRedis(t)
	store := session.NewStore(rdb, zerolog.Nop())
	ctx := context.Background()

	token, err := store.Issue(ctx, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	// Each issued token is distinct even for the same user.
	other, err := store.Issue(ctx, 42, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestSessionStore_VerifyUnknownToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rdb := SetupTestRedis(t)
	store := session.NewStore(rdb, zerolog.Nop())

	_, err := store.Verify(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = store.Verify(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestSessionStore_VerifyExpiredToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rdb := SetupTestRedis(t)
	store := session.NewStore(rdb, zerolog.Nop())
	ctx := context.Background()

	// Seed a record whose embedded deadline has already passed while the
	// Redis key itself is still alive.
	token := uuid.NewString()
	payload, err := json.Marshal(struct {
		UserID    int64     `json:"userId"`
		ExpiresAt time.Time `json:"expiresAt"`
	}{
		UserID:    42,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	require.NoError(t, rdb.Set(ctx, "session:"+token, payload, time.Hour).Err())

	_, err = store.Verify(ctx, token)
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestSessionStore_VerifyMalformedRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rdb := SetupTestRedis(t)
	store := session.NewStore(rdb, zerolog.Nop())
	ctx := context.Background()

	token := uuid.NewString()
	require.NoError(t, rdb.Set(ctx, "session:"+token, "not-json", time.Hour).Err())

	_, err := store.Verify(ctx, token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestSessionStore_Revoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	rdb := SetupTestRedis(t)
	store := session.NewStore(rdb, zerolog.Nop())
	ctx := context.Background()

	token, err := store.Issue(ctx, 42, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Verify(ctx, token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	// Revoking an already-absent token is not an error.
	assert.NoError(t, store.Revoke(ctx, token))
}
