package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// RevocationStore remembers destroyed session token IDs until their natural
// expiry. Backed by Redis in production.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionManager issues HS256-signed session tokens carried in an HttpOnly
// cookie. The token embeds identity plus audit metadata (issuing IP and
// user agent); Destroy marks the token ID revoked so the token stops
// reading as logged-in before its expiry.
type SessionManager struct {
	secret     []byte
	ttl        time.Duration
	revocation RevocationStore
	log        zerolog.Logger
}

func NewSessionManager(secret string, ttl time.Duration, revocation RevocationStore, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl, revocation: revocation, log: log}
}

// Issue creates a signed token for the user.
func (m *SessionManager) Issue(_ context.Context, user *domain.User, ip, userAgent string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"jti":       uuid.NewString(),
		"sub":       user.ID,
		"email":     user.Email,
		"role":      string(user.Role),
		"logged_in": true,
		"ip":        ip,
		"ua":        userAgent,
		"iat":       now.Unix(),
		"exp":       now.Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Read decodes and validates a token. Any malformed, expired, or revoked
// token reads as absent; Read never surfaces an error to the caller.
func (m *SessionManager) Read(ctx context.Context, token string) (*domain.Session, bool) {
	if token == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}

	sess := sessionFromClaims(claims)
	if sess.TokenID == "" || sess.UserID == "" || !sess.LoggedIn {
		return nil, false
	}

	revoked, err := m.revocation.IsRevoked(ctx, sess.TokenID)
	if err != nil {
		// The store being unreachable must not lock every user out; the
		// middleware still re-checks the user row before granting access.
		m.log.Warn().Err(err).Msg("revocation check failed, treating session as live")
	} else if revoked {
		return nil, false
	}

	return sess, true
}

// Destroy revokes the token for the remainder of its lifetime. Destroying
// an invalid or already-expired token is a no-op.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	sess, ok := m.Read(ctx, token)
	if !ok {
		return nil
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return m.revocation.Revoke(ctx, sess.TokenID, ttl)
}

func sessionFromClaims(claims jwt.MapClaims) *domain.Session {
	sess := &domain.Session{}
	sess.TokenID, _ = claims["jti"].(string)
	sess.UserID, _ = claims["sub"].(string)
	sess.Email, _ = claims["email"].(string)
	if role, ok := claims["role"].(string); ok {
		sess.Role = domain.Role(role)
	}
	sess.LoggedIn, _ = claims["logged_in"].(bool)
	sess.IP, _ = claims["ip"].(string)
	sess.UserAgent, _ = claims["ua"].(string)
	if iat, ok := claims["iat"].(float64); ok {
		sess.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := claims["exp"].(float64); ok {
		sess.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return sess
}
