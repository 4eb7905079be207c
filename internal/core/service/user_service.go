package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// NotificationDispatcher enqueues a best-effort notification job.
type NotificationDispatcher interface {
	Enqueue(n ports.Notification)
}

// UserService implements the admin-facing use cases over artists.
type UserService struct {
	users    ports.UserRepository
	notifier NotificationDispatcher
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, notifier NotificationDispatcher, log zerolog.Logger) *UserService {
	return &UserService{users: users, notifier: notifier, log: log}
}

// CreateArtist creates an artist account with a generated one-time password
// and links it to the creating admin. The user row and the relation are
// written in one transaction; the temporary password is mailed to the
// artist after the commit.
func (s *UserService) CreateArtist(ctx context.Context, in ports.CreateArtistInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	tempPassword, err := generateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	artist := &domain.User{
		FullName:           strings.TrimSpace(in.FullName),
		Email:              email,
		PasswordHash:       hash,
		Role:               domain.RoleArtist,
		Status:             domain.AccountActive,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.users.CreateArtist(ctx, artist, in.AdminID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("artist_id", created.ID).Str("admin_id", in.AdminID).Msg("artist created")

	s.notifier.Enqueue(ports.Notification{
		Kind:         ports.NotificationWelcome,
		Recipient:    created.Email,
		Name:         created.FullName,
		TempPassword: tempPassword,
	})

	return created, nil
}

// GetArtist returns the artist record if the admin holds a relation to it.
func (s *UserService) GetArtist(ctx context.Context, adminID, artistID string) (*domain.User, error) {
	if err := s.requireRelation(ctx, adminID, artistID); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, artistID)
}

// ListArtists returns the artists linked to the admin.
func (s *UserService) ListArtists(ctx context.Context, adminID string) ([]*domain.User, error) {
	return s.users.ListArtistsByAdmin(ctx, adminID)
}

// UpdateArtist changes the artist's profile fields.
func (s *UserService) UpdateArtist(ctx context.Context, in ports.UpdateArtistInput) (*domain.User, error) {
	if err := s.requireRelation(ctx, in.AdminID, in.ArtistID); err != nil {
		return nil, err
	}
	return s.users.UpdateProfile(ctx, in.ArtistID, strings.TrimSpace(in.FullName))
}

// SetArtistStatus activates or blocks the artist account. Blocking does not
// delete anything; it only stops the account from authenticating.
func (s *UserService) SetArtistStatus(ctx context.Context, adminID, artistID string, status domain.AccountStatus) error {
	if err := s.requireRelation(ctx, adminID, artistID); err != nil {
		return err
	}

	if err := s.users.UpdateStatus(ctx, artistID, status); err != nil {
		return err
	}

	s.log.Info().Str("artist_id", artistID).Str("status", string(status)).Str("admin_id", adminID).Msg("artist status changed")
	return nil
}

// AddNote appends a note to the artist's record.
func (s *UserService) AddNote(ctx context.Context, in ports.AddNoteInput) (*domain.Note, error) {
	if err := s.requireRelation(ctx, in.AdminID, in.ArtistID); err != nil {
		return nil, err
	}

	note := &domain.Note{
		ArtistID:  in.ArtistID,
		AuthorID:  in.AdminID,
		Body:      strings.TrimSpace(in.Body),
		CreatedAt: time.Now().UTC(),
	}
	return s.users.AddNote(ctx, note)
}

// ListNotes returns the notes on the artist's record, newest first.
func (s *UserService) ListNotes(ctx context.Context, adminID, artistID string) ([]*domain.Note, error) {
	if err := s.requireRelation(ctx, adminID, artistID); err != nil {
		return nil, err
	}
	return s.users.ListNotes(ctx, artistID)
}

// requireRelation gates every artist-scoped admin operation on an explicit
// admin↔artist relation.
func (s *UserService) requireRelation(ctx context.Context, adminID, artistID string) error {
	ok, err := s.users.HasRelation(ctx, adminID, artistID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
