package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// UserRepository defines persistence operations for users, notes, and
// admin↔artist relations.
type UserRepository interface {
	// CreateArtist inserts the artist row and the admin↔artist relation in a
	// single transaction. Returns domain.ErrEmailTaken when the email is
	// already registered; in that case no row is created.
	CreateArtist(ctx context.Context, artist *domain.User, adminID string) (*domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListArtistsByAdmin returns the artists linked to the admin by an
	// explicit relation.
	ListArtistsByAdmin(ctx context.Context, adminID string) ([]*domain.User, error)

	// HasRelation reports whether the admin is linked to the artist.
	HasRelation(ctx context.Context, adminID, artistID string) (bool, error)

	UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error

	// UpdatePassword stores a new password hash and sets the
	// must-change-password flag.
	UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error

	AddNote(ctx context.Context, note *domain.Note) (*domain.Note, error)
	ListNotes(ctx context.Context, artistID string) ([]*domain.Note, error)
}
