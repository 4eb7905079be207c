package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// ---- user repository stub ----

type stubUserRepo struct {
	users     map[string]*domain.User
	relations map[string]map[string]bool
	notes     []*domain.Note
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:     make(map[string]*domain.User),
		relations: make(map[string]map[string]bool),
	}
}

func (r *stubUserRepo) genID() string {
	r.nextID++
	return fmt.Sprintf("id-%d", r.nextID)
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		u.ID = r.genID()
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) relate(adminID, artistID string) {
	if r.relations[adminID] == nil {
		r.relations[adminID] = make(map[string]bool)
	}
	r.relations[adminID][artistID] = true
}

func (r *stubUserRepo) CreateArtist(_ context.Context, artist *domain.User, adminID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == artist.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := r.add(cloneUser(artist))
	r.relate(adminID, created.ID)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListArtistsByAdmin(_ context.Context, adminID string) ([]*domain.User, error) {
	var out []*domain.User
	for artistID := range r.relations[adminID] {
		if u, ok := r.users[artistID]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) HasRelation(_ context.Context, adminID, artistID string) (bool, error) {
	return r.relations[adminID][artistID], nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, fullName string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FullName = fullName
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, status domain.AccountStatus) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string, mustChange bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.MustChangePassword = mustChange
	return nil
}

func (r *stubUserRepo) AddNote(_ context.Context, note *domain.Note) (*domain.Note, error) {
	clone := *note
	clone.ID = r.genID()
	r.notes = append(r.notes, &clone)
	return &clone, nil
}

func (r *stubUserRepo) ListNotes(_ context.Context, artistID string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range r.notes {
		if n.ArtistID == artistID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---- withdrawal repository stub ----

type stubWithdrawalRepo struct {
	withdrawals map[string]*domain.WithdrawalRequest
	nextID      int
}

func newStubWithdrawalRepo() *stubWithdrawalRepo {
	return &stubWithdrawalRepo{withdrawals: make(map[string]*domain.WithdrawalRequest)}
}

func cloneWithdrawal(w *domain.WithdrawalRequest) *domain.WithdrawalRequest {
	clone := *w
	return &clone
}

func (r *stubWithdrawalRepo) Create(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	r.nextID++
	clone := cloneWithdrawal(w)
	clone.ID = fmt.Sprintf("wd-%d", r.nextID)
	r.withdrawals[clone.ID] = clone
	return cloneWithdrawal(clone), nil
}

func (r *stubWithdrawalRepo) FindByID(_ context.Context, id string) (*domain.WithdrawalRequest, error) {
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	return cloneWithdrawal(w), nil
}

func (r *stubWithdrawalRepo) ListByUser(_ context.Context, userID string) ([]*domain.WithdrawalRequest, error) {
	var out []*domain.WithdrawalRequest
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			out = append(out, cloneWithdrawal(w))
		}
	}
	return out, nil
}

func (r *stubWithdrawalRepo) ListByAdmin(_ context.Context, _ string) ([]*domain.WithdrawalRequest, error) {
	var out []*domain.WithdrawalRequest
	for _, w := range r.withdrawals {
		out = append(out, cloneWithdrawal(w))
	}
	return out, nil
}

// Resolve mirrors the conditional-update semantics of the Postgres
// implementation: the flip only happens when the request is still pending.
func (r *stubWithdrawalRepo) Resolve(_ context.Context, id string, status domain.WithdrawalStatus, resolverID, reason string, resolvedAt time.Time) (*domain.WithdrawalRequest, error) {
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	if w.Status != domain.WithdrawalPending {
		return nil, domain.ErrWithdrawalResolved
	}
	w.Status = status
	w.ResolvedBy = resolverID
	w.RejectionReason = reason
	w.ResolvedAt = &resolvedAt
	return cloneWithdrawal(w), nil
}

// ---- bank account repository stub ----

type stubAccountRepo struct {
	accounts map[string]*domain.BankAccount
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.BankAccount)}
}

func cloneAccount(a *domain.BankAccount) *domain.BankAccount {
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.BankAccount) (*domain.BankAccount, error) {
	if a.IsDefault {
		for _, existing := range r.accounts {
			if existing.UserID == a.UserID {
				existing.IsDefault = false
			}
		}
	}
	r.nextID++
	clone := cloneAccount(a)
	clone.ID = fmt.Sprintf("acct-%d", r.nextID)
	r.accounts[clone.ID] = clone
	return cloneAccount(clone), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.BankAccount, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrBankAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) ListByUser(_ context.Context, userID string) ([]*domain.BankAccount, error) {
	var out []*domain.BankAccount
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, cloneAccount(a))
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, a *domain.BankAccount) (*domain.BankAccount, error) {
	if _, ok := r.accounts[a.ID]; !ok {
		return nil, domain.ErrBankAccountNotFound
	}
	r.accounts[a.ID] = cloneAccount(a)
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) SetDefault(_ context.Context, userID, accountID string) error {
	target, ok := r.accounts[accountID]
	if !ok || target.UserID != userID {
		return domain.ErrBankAccountNotFound
	}
	for _, a := range r.accounts {
		if a.UserID == userID {
			a.IsDefault = a.ID == accountID
		}
	}
	return nil
}

// ---- notification dispatcher stub ----

type stubDispatcher struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (d *stubDispatcher) Enqueue(n ports.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, n)
}

func (d *stubDispatcher) all() []ports.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]ports.Notification(nil), d.sent...)
}

// ---- revocation store stub ----

type memRevocations struct {
	mu      sync.Mutex
	revoked map[string]bool
	err     error
}

func newMemRevocations() *memRevocations {
	return &memRevocations{revoked: make(map[string]bool)}
}

func (m *memRevocations) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.revoked[tokenID] = true
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.revoked[tokenID], nil
}
