package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// CreateArtistInput carries the data an admin supplies when onboarding an
// artist. The initial password is generated server-side and mailed to the
// artist; it is never chosen by the admin.
type CreateArtistInput struct {
	AdminID  string
	FullName string
	Email    string
}

// UpdateArtistInput carries the mutable profile fields.
type UpdateArtistInput struct {
	AdminID  string
	ArtistID string
	FullName string
}

// AddNoteInput appends a free-text note to an artist's record.
type AddNoteInput struct {
	AdminID  string
	ArtistID string
	Body     string
}

// UserService defines the admin-facing use cases over artists. Every
// operation that names an artist re-checks the admin↔artist relation.
type UserService interface {
	CreateArtist(ctx context.Context, in CreateArtistInput) (*domain.User, error)
	GetArtist(ctx context.Context, adminID, artistID string) (*domain.User, error)
	ListArtists(ctx context.Context, adminID string) ([]*domain.User, error)
	UpdateArtist(ctx context.Context, in UpdateArtistInput) (*domain.User, error)
	SetArtistStatus(ctx context.Context, adminID, artistID string, status domain.AccountStatus) error
	AddNote(ctx context.Context, in AddNoteInput) (*domain.Note, error)
	ListNotes(ctx context.Context, adminID, artistID string) ([]*domain.Note, error)
}
