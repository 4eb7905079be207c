package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRevocations stores destroyed session token IDs until the token's
// natural expiry. Key format: session:revoked:<token_id>
type SessionRevocations struct {
	client *redis.Client
}

// NewSessionRevocations creates a SessionRevocations wrapping the given
// Redis client.
func NewSessionRevocations(client *redis.Client) *SessionRevocations {
	return &SessionRevocations{client: client}
}

// Revoke marks the token ID as destroyed for ttl.
func (s *SessionRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID has been destroyed.
func (s *SessionRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionRevocations) key(tokenID string) string {
	return "session:revoked:" + tokenID
}
