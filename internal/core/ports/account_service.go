package ports

import (
	"context"

	"github.com/artistpay/payout-portal/internal/core/domain"
)

// CreateBankAccountInput registers a payout destination for the artist.
// Number and Clabe arrive in full from the client and are masked before
// persistence; the portal never stores full account identifiers.
type CreateBankAccountInput struct {
	UserID      string
	AccountType domain.AccountType
	HolderName  string
	BankName    string
	Number      string
	Clabe       string
	MakeDefault bool
}

// UpdateBankAccountInput carries the mutable bank account fields.
type UpdateBankAccountInput struct {
	UserID     string
	AccountID  string
	HolderName string
	BankName   string
}

// BankAccountService defines the artist-facing bank account use cases. All
// operations are owner-scoped: an account that exists but belongs to
// someone else behaves exactly like one that does not exist.
type BankAccountService interface {
	Create(ctx context.Context, in CreateBankAccountInput) (*domain.BankAccount, error)
	List(ctx context.Context, userID string) ([]*domain.BankAccount, error)
	Update(ctx context.Context, in UpdateBankAccountInput) (*domain.BankAccount, error)
	SetDefault(ctx context.Context, userID, accountID string) error
}
