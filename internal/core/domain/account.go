package domain

import (
	"errors"
	"time"
)

// AccountType distinguishes the kinds of bank accounts an artist can register.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	}
	return false
}

var ErrBankAccountNotFound = errors.New("bank account not found")

// BankAccount holds an artist's payout destination. Account identifiers are
// stored masked; at most one account per owner carries the default flag.
type BankAccount struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	AccountType   AccountType `json:"account_type"`
	HolderName    string      `json:"holder_name"`
	BankName      string      `json:"bank_name"`
	MaskedNumber  string      `json:"masked_number"`
	MaskedClabe   string      `json:"masked_clabe,omitempty"`
	IsDefault     bool        `json:"is_default"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
