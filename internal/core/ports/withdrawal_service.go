package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// RequestWithdrawalInput creates a new pending withdrawal for the artist.
type RequestWithdrawalInput struct {
	UserID string
	Amount float64
}

// GetWithdrawalInput identifies a withdrawal together with the caller, so
// the service can enforce ownership (artist) or relation scoping (admin).
type GetWithdrawalInput struct {
	ID       string
	CallerID string
	Role     domain.Role
}

// ResolveWithdrawalInput carries an admin decision on a pending request.
// Reason is required for rejections and ignored for approvals.
type ResolveWithdrawalInput struct {
	ID      string
	AdminID string
	Reason  string
}

// WithdrawalService defines the withdrawal workflow use cases.
type WithdrawalService interface {
	Request(ctx context.Context, in RequestWithdrawalInput) (*domain.WithdrawalRequest, error)
	Get(ctx context.Context, in GetWithdrawalInput) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, callerID string, role domain.Role) ([]*domain.WithdrawalRequest, error)

	// Approve and Reject flip a pending request to its terminal state and
	// fire a best-effort notification. Both fail with
	// domain.ErrWithdrawalResolved when the request is already terminal.
	Approve(ctx context.Context, in ResolveWithdrawalInput) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, in ResolveWithdrawalInput) (*domain.WithdrawalRequest, error)
}
