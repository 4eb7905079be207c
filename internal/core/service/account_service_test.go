package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

func TestBankAccountService_FirstAccountBecomesDefault(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewBankAccountService(repo, zerolog.Nop())

	a, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID:      "artist-1",
		AccountType: domain.AccountTypeChecking,
		HolderName:  "Artist One",
		BankName:    "Banco Norte",
		Number:      "001234567890",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !a.IsDefault {
		t.Fatalf("first account should be default")
	}
	if a.MaskedNumber != "********7890" {
		t.Fatalf("number not masked: %s", a.MaskedNumber)
	}
}

func TestBankAccountService_SetDefaultClearsPrevious(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewBankAccountService(repo, zerolog.Nop())

	first, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeChecking, HolderName: "A", BankName: "B1", Number: "1111222233334444",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !first.IsDefault {
		t.Fatalf("first account should start as default")
	}
	second, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeSavings, HolderName: "A", BankName: "B2", Number: "5555666677778888",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.IsDefault {
		t.Fatalf("second account should not be default yet")
	}

	if err := svc.SetDefault(context.Background(), "artist-1", second.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}

	accounts, err := svc.List(context.Background(), "artist-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defaults := 0
	for _, a := range accounts {
		if a.IsDefault {
			defaults++
			if a.ID != second.ID {
				t.Fatalf("wrong default account: %s", a.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestBankAccountService_CreateDefaultAtomicallyReplacesPrevious(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewBankAccountService(repo, zerolog.Nop())

	first, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeChecking, HolderName: "A", BankName: "B1", Number: "1111222233334444",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeSavings, HolderName: "A", BankName: "B2", Number: "5555666677778888",
		MakeDefault: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !second.IsDefault {
		t.Fatalf("account created with make_default should be default")
	}

	accounts, err := svc.List(context.Background(), "artist-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defaults := 0
	for _, a := range accounts {
		if a.IsDefault {
			defaults++
			if a.ID == first.ID {
				t.Fatalf("previous default not cleared")
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestBankAccountService_SetDefaultNotOwned(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewBankAccountService(repo, zerolog.Nop())

	a, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeChecking, HolderName: "A", BankName: "B", Number: "1234",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.SetDefault(context.Background(), "artist-2", a.ID); err != domain.ErrBankAccountNotFound {
		t.Fatalf("expected ErrBankAccountNotFound for foreign account, got %v", err)
	}
}

func TestBankAccountService_UpdateNotOwnedReadsNotFound(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewBankAccountService(repo, zerolog.Nop())

	a, err := svc.Create(context.Background(), ports.CreateBankAccountInput{
		UserID: "artist-1", AccountType: domain.AccountTypeChecking, HolderName: "A", BankName: "B", Number: "12345678",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateBankAccountInput{UserID: "artist-2", AccountID: a.ID, HolderName: "X"}); err != domain.ErrBankAccountNotFound {
		t.Fatalf("expected ErrBankAccountNotFound, got %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateBankAccountInput{UserID: "artist-1", AccountID: a.ID, HolderName: "New Holder"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.HolderName != "New Holder" {
		t.Fatalf("holder not updated: %s", updated.HolderName)
	}
}

func TestMaskIdentifier(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"123":                "***",
		"1234":               "****",
		"12345":              "*2345",
		"002137008411223344": "**************3344",
	}
	for in, want := range cases {
		if got := maskIdentifier(in); got != want {
			t.Fatalf("maskIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAlertConfigStore_Patch(t *testing.T) {
	store := NewAlertConfigStore(AlertConfig{AmountThreshold: 10000, WithdrawalCount: 5, ReviewWindowDays: 7})

	amount := 2500.0
	got := store.Patch(&amount, nil, nil)
	if got.AmountThreshold != 2500 || got.WithdrawalCount != 5 || got.ReviewWindowDays != 7 {
		t.Fatalf("partial patch produced %+v", got)
	}

	count, window := 9, 14
	got = store.Patch(nil, &count, &window)
	if got.WithdrawalCount != 9 || got.ReviewWindowDays != 14 || got.AmountThreshold != 2500 {
		t.Fatalf("second patch produced %+v", got)
	}

	if store.Get() != got {
		t.Fatalf("Get disagrees with Patch result")
	}
}
