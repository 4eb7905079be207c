package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// BankAccountService implements the artist-facing bank account use cases.
type BankAccountService struct {
	accounts ports.BankAccountRepository
	log      zerolog.Logger
}

func NewBankAccountService(accounts ports.BankAccountRepository, log zerolog.Logger) *BankAccountService {
	return &BankAccountService{accounts: accounts, log: log}
}

// Create registers a payout destination. Identifiers are masked before they
// reach the repository. The owner's first account becomes the default
// automatically. The default flag travels with the insert so the repository
// can persist both in one transaction; a failure leaves no row behind.
func (s *BankAccountService) Create(ctx context.Context, in ports.CreateBankAccountInput) (*domain.BankAccount, error) {
	existing, err := s.accounts.ListByUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.BankAccount{
		UserID:       in.UserID,
		AccountType:  in.AccountType,
		HolderName:   strings.TrimSpace(in.HolderName),
		BankName:     strings.TrimSpace(in.BankName),
		MaskedNumber: maskIdentifier(in.Number),
		MaskedClabe:  maskIdentifier(in.Clabe),
		IsDefault:    in.MakeDefault || len(existing) == 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("user_id", in.UserID).Msg("bank account created")
	return created, nil
}

// List returns the artist's own accounts.
func (s *BankAccountService) List(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	return s.accounts.ListByUser(ctx, userID)
}

// Update changes holder and bank names. An account owned by someone else
// reads as not found.
func (s *BankAccountService) Update(ctx context.Context, in ports.UpdateBankAccountInput) (*domain.BankAccount, error) {
	account, err := s.accounts.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != in.UserID {
		return nil, domain.ErrBankAccountNotFound
	}

	if name := strings.TrimSpace(in.HolderName); name != "" {
		account.HolderName = name
	}
	if name := strings.TrimSpace(in.BankName); name != "" {
		account.BankName = name
	}
	account.UpdatedAt = time.Now().UTC()

	return s.accounts.Update(ctx, account)
}

// SetDefault marks the account as the artist's payout default. The
// repository clears the previous default atomically with setting the new
// one, keeping the at-most-one invariant.
func (s *BankAccountService) SetDefault(ctx context.Context, userID, accountID string) error {
	if err := s.accounts.SetDefault(ctx, userID, accountID); err != nil {
		return err
	}
	s.log.Info().Str("account_id", accountID).Str("user_id", userID).Msg("default account changed")
	return nil
}

// maskIdentifier keeps the last four characters of an account identifier.
func maskIdentifier(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if len(id) <= 4 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-4) + id[len(id)-4:]
}
