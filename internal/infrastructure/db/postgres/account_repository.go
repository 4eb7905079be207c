package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

var _ ports.BankAccountRepository = (*BankAccountRepository)(nil)

// BankAccountRepository provides Postgres-backed persistence for bank
// accounts.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

const accountColumns = `id, user_id, account_type, holder_name, bank_name, masked_number, masked_clabe, is_default, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.BankAccount, error) {
	var a domain.BankAccount
	err := row.Scan(&a.ID, &a.UserID, &a.AccountType, &a.HolderName, &a.BankName, &a.MaskedNumber, &a.MaskedClabe, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the account, clearing the owner's previous default in the
// same transaction when the new account is to be the default. Either both
// changes land or neither does.
func (r *BankAccountRepository) Create(ctx context.Context, a *domain.BankAccount) (*domain.BankAccount, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create bank account: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if a.IsDefault {
		if _, err := tx.Exec(ctx, `
			UPDATE bank_accounts SET is_default = FALSE
			WHERE user_id = $1 AND is_default`,
			a.UserID,
		); err != nil {
			return nil, fmt.Errorf("create bank account: clear previous default: %w", err)
		}
	}

	created, err := scanAccount(tx.QueryRow(ctx, `
		INSERT INTO bank_accounts (id, user_id, account_type, holder_name, bank_name, masked_number, masked_clabe, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING `+accountColumns,
		uuid.NewString(), a.UserID, a.AccountType, a.HolderName, a.BankName, a.MaskedNumber, a.MaskedClabe, a.IsDefault, a.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create bank account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create bank account: commit: %w", err)
	}
	return created, nil
}

func (r *BankAccountRepository) FindByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM bank_accounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("find bank account: %w", err)
	}
	return a, nil
}

func (r *BankAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM bank_accounts WHERE user_id = $1
		ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var out []*domain.BankAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("list bank accounts: scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *BankAccountRepository) Update(ctx context.Context, a *domain.BankAccount) (*domain.BankAccount, error) {
	updated, err := scanAccount(r.pool.QueryRow(ctx, `
		UPDATE bank_accounts
		SET holder_name = $2, bank_name = $3, updated_at = $4
		WHERE id = $1
		RETURNING `+accountColumns,
		a.ID, a.HolderName, a.BankName, a.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("update bank account: %w", err)
	}
	return updated, nil
}

// SetDefault clears the owner's previous default and sets the new one in a
// single transaction, so the partial unique index never sees two defaults
// and readers never see zero defaults between the two statements.
func (r *BankAccountRepository) SetDefault(ctx context.Context, userID, accountID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("set default: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		UPDATE bank_accounts SET is_default = FALSE
		WHERE user_id = $1 AND is_default AND id <> $2`,
		userID, accountID,
	); err != nil {
		return fmt.Errorf("set default: clear previous: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE bank_accounts SET is_default = TRUE
		WHERE id = $2 AND user_id = $1`,
		userID, accountID,
	)
	if err != nil {
		return fmt.Errorf("set default: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBankAccountNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("set default: commit: %w", err)
	}
	return nil
}
