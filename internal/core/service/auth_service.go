package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// AuthService implements login, logout, and password changes.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both return domain.ErrInvalidCredentials so the response
// cannot be used to probe which emails are registered. A blocked account is
// only reported as blocked after the password has been verified.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == domain.AccountBlocked {
		return nil, domain.ErrForbidden
	}

	token, err := s.sessions.Issue(ctx, user, in.IP, in.UserAgent)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")

	return &ports.LoginResult{
		Token:                  token,
		User:                   user,
		RequiresPasswordChange: user.MustChangePassword,
	}, nil
}

// Logout revokes the session token. A token that no longer reads as a live
// session is already logged out, so Logout succeeds on it.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// ChangePassword verifies the current password before storing the new hash
// and clears the must-change-password flag.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, hash, false); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
