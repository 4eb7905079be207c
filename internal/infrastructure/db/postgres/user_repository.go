package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository provides Postgres-backed persistence for users, notes, and
// admin↔artist relations.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, full_name, email, password_hash, role, status, must_change_password, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.MustChangePassword, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateArtist inserts the artist row and the admin↔artist relation in one
// transaction, so a failed relation insert leaves no orphaned user behind.
func (r *UserRepository) CreateArtist(ctx context.Context, artist *domain.User, adminID string) (*domain.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create artist: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	created, err := scanUser(tx.QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, role, status, must_change_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING `+userColumns,
		uuid.NewString(), artist.FullName, artist.Email, artist.PasswordHash,
		artist.Role, artist.Status, artist.MustChangePassword, artist.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create artist: insert user: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO admin_artist_relations (admin_id, artist_id) VALUES ($1, $2)`,
		adminID, created.ID,
	); err != nil {
		return nil, fmt.Errorf("create artist: insert relation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create artist: commit: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ListArtistsByAdmin(ctx context.Context, adminID string) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.full_name, u.email, u.password_hash, u.role, u.status, u.must_change_password, u.created_at, u.updated_at
		FROM users u
		JOIN admin_artist_relations r ON r.artist_id = u.id
		WHERE r.admin_id = $1
		ORDER BY u.created_at DESC`,
		adminID,
	)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var out []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list artists: scan: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) HasRelation(ctx context.Context, adminID, artistID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM admin_artist_relations WHERE admin_id = $1 AND artist_id = $2
		)`,
		adminID, artistID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check relation: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET full_name = $2, updated_at = $3 WHERE id = $1
		RETURNING `+userColumns,
		id, fullName, time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, must_change_password = $3, updated_at = $4 WHERE id = $1`,
		id, passwordHash, mustChange, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) AddNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	var created domain.Note
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notes (id, artist_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, artist_id, author_id, body, created_at`,
		uuid.NewString(), note.ArtistID, note.AuthorID, note.Body, note.CreatedAt,
	).Scan(&created.ID, &created.ArtistID, &created.AuthorID, &created.Body, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) ListNotes(ctx context.Context, artistID string) ([]*domain.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, artist_id, author_id, body, created_at
		FROM notes WHERE artist_id = $1
		ORDER BY created_at DESC`,
		artistID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []*domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.ArtistID, &n.AuthorID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("list notes: scan: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}
