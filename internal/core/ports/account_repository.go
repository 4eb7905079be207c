package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	// Create persists the account. When a.IsDefault is set, the previous
	// default for the same owner is cleared in the same transaction, so a
	// failed insert leaves no partial state behind.
	Create(ctx context.Context, a *domain.BankAccount) (*domain.BankAccount, error)
	FindByID(ctx context.Context, id string) (*domain.BankAccount, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error)
	Update(ctx context.Context, a *domain.BankAccount) (*domain.BankAccount, error)

	// SetDefault marks the account as the owner's default, clearing any
	// previous default in the same transaction so the at-most-one invariant
	// holds at every point observable outside the transaction. Returns
	// domain.ErrBankAccountNotFound when the account does not exist or does
	// not belong to userID.
	SetDefault(ctx context.Context, userID, accountID string) error
}
