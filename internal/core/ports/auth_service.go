package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// LoginInput carries the credentials plus the client metadata recorded in
// the session for auditing.
type LoginInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token                  string
	User                   *domain.User
	RequiresPasswordChange bool
}

// AuthService implements login, logout, and password changes.
type AuthService interface {
	// Login verifies credentials and issues a session token. The error for
	// an unknown email and for a wrong password is the same
	// (domain.ErrInvalidCredentials) so responses cannot be used to probe
	// which emails are registered.
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)

	// Logout revokes the session token. Reads after Logout report absent.
	Logout(ctx context.Context, token string) error

	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// SessionManager issues, reads, and destroys session tokens.
type SessionManager interface {
	Issue(ctx context.Context, user *domain.User, ip, userAgent string) (string, error)

	// Read decodes and validates a token. It fails open: any malformed,
	// expired, or revoked token yields (nil, false) rather than an error.
	Read(ctx context.Context, token string) (*domain.Session, bool)

	Destroy(ctx context.Context, token string) error
}
