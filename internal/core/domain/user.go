package domain

import (
	"errors"
	"time"
)

// Role identifies what an authenticated actor is allowed to do.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArtist:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a user account. Blocked users keep
// their data but cannot log in or act; accounts are never hard-deleted.
type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

// Valid reports whether s is one of the known account statuses.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountBlocked:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
type User struct {
	ID                 string        `json:"id"`
	FullName           string        `json:"full_name"`
	Email              string        `json:"email"`
	PasswordHash       string        `json:"-"`
	Role               Role          `json:"role"`
	Status             AccountStatus `json:"status"`
	MustChangePassword bool          `json:"must_change_password"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Note is a free-text annotation an admin leaves on an artist's record.
// Notes are append-only.
type Note struct {
	ID        string    `json:"id"`
	ArtistID  string    `json:"artist_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
