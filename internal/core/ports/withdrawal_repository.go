package ports

import (
	"context"
	"time"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// WithdrawalRepository defines persistence operations for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.WithdrawalRequest, error)

	// ListByAdmin returns withdrawals belonging to artists the admin has a
	// relation with.
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.WithdrawalRequest, error)

	// Resolve flips a pending request to a terminal status, persisting the
	// resolver and timestamp in the same statement. The update is conditional
	// on the current status being pending so that two admins cannot both
	// resolve the same request. Returns domain.ErrWithdrawalResolved when the
	// request exists but is no longer pending, domain.ErrWithdrawalNotFound
	// when it does not exist.
	Resolve(ctx context.Context, id string, status domain.WithdrawalStatus, resolverID, reason string, resolvedAt time.Time) (*domain.WithdrawalRequest, error)
}
