package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

var _ ports.WithdrawalRepository = (*WithdrawalRepository)(nil)

// WithdrawalRepository provides Postgres-backed persistence for withdrawal
// requests.
type WithdrawalRepository struct {
	pool *pgxpool.Pool
}

func NewWithdrawalRepository(pool *pgxpool.Pool) *WithdrawalRepository {
	return &WithdrawalRepository{pool: pool}
}

const withdrawalColumns = `id, user_id, amount, status, requested_at, resolved_by, resolved_at, rejection_reason`

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var (
		w          domain.WithdrawalRequest
		resolvedBy *string
		reason     *string
	)
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Status, &w.RequestedAt, &resolvedBy, &w.ResolvedAt, &reason)
	if err != nil {
		return nil, err
	}
	if resolvedBy != nil {
		w.ResolvedBy = *resolvedBy
	}
	if reason != nil {
		w.RejectionReason = *reason
	}
	return &w, nil
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	created, err := scanWithdrawal(r.pool.QueryRow(ctx, `
		INSERT INTO withdrawal_requests (id, user_id, amount, status, requested_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+withdrawalColumns,
		uuid.NewString(), w.UserID, w.Amount, w.Status, w.RequestedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create withdrawal: %w", err)
	}
	return created, nil
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	w, err := scanWithdrawal(r.pool.QueryRow(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("find withdrawal: %w", err)
	}
	return w, nil
}

func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.WithdrawalRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+withdrawalColumns+`
		FROM withdrawal_requests WHERE user_id = $1
		ORDER BY requested_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	return collectWithdrawals(rows)
}

func (r *WithdrawalRepository) ListByAdmin(ctx context.Context, adminID string) ([]*domain.WithdrawalRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT w.id, w.user_id, w.amount, w.status, w.requested_at, w.resolved_by, w.resolved_at, w.rejection_reason
		FROM withdrawal_requests w
		JOIN admin_artist_relations r ON r.artist_id = w.user_id
		WHERE r.admin_id = $1
		ORDER BY w.requested_at DESC`,
		adminID,
	)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals by admin: %w", err)
	}
	defer rows.Close()
	return collectWithdrawals(rows)
}

// Resolve flips a pending request to a terminal status. The WHERE clause
// pins the current status to pending, so under concurrent admin actions
// exactly one resolution wins; the losing call distinguishes "already
// resolved" from "does not exist" with a follow-up read.
func (r *WithdrawalRepository) Resolve(ctx context.Context, id string, status domain.WithdrawalStatus, resolverID, reason string, resolvedAt time.Time) (*domain.WithdrawalRequest, error) {
	resolved, err := scanWithdrawal(r.pool.QueryRow(ctx, `
		UPDATE withdrawal_requests
		SET status = $2, resolved_by = $3, resolved_at = $4, rejection_reason = NULLIF($5, '')
		WHERE id = $1 AND status = $6
		RETURNING `+withdrawalColumns,
		id, status, resolverID, resolvedAt, reason, domain.WithdrawalPending,
	))
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("resolve withdrawal: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM withdrawal_requests WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("resolve withdrawal: existence check: %w", err)
	}
	if exists {
		return nil, domain.ErrWithdrawalResolved
	}
	return nil, domain.ErrWithdrawalNotFound
}

func collectWithdrawals(rows pgx.Rows) ([]*domain.WithdrawalRequest, error) {
	var out []*domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
