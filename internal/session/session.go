package session

import (
	"context"
	"time"
)

// Verifier resolves an opaque bearer token to a user id. Implementations
// fail with model.ErrInvalidToken or model.ErrTokenExpired; the returned id
// is trusted as ground truth for user-identity comparisons.
type Verifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// Issuer creates session tokens. Used by the session-issuing collaborator
// and by tests.
type Issuer interface {
	Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error)
}
