package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/ports"
)

// WithdrawalService implements the withdrawal workflow: artists open
// pending requests, admins resolve them exactly once.
type WithdrawalService struct {
	withdrawals ports.WithdrawalRepository
	users       ports.UserRepository
	notifier    NotificationDispatcher
	log         zerolog.Logger
}

func NewWithdrawalService(
	withdrawals ports.WithdrawalRepository,
	users ports.UserRepository,
	notifier NotificationDispatcher,
	log zerolog.Logger,
) *WithdrawalService {
	return &WithdrawalService{
		withdrawals: withdrawals,
		users:       users,
		notifier:    notifier,
		log:         log,
	}
}

// Request opens a pending withdrawal for the artist.
func (s *WithdrawalService) Request(ctx context.Context, in ports.RequestWithdrawalInput) (*domain.WithdrawalRequest, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("request withdrawal: amount must be positive")
	}

	w := &domain.WithdrawalRequest{
		UserID:      in.UserID,
		Amount:      in.Amount,
		Status:      domain.WithdrawalPending,
		RequestedAt: time.Now().UTC(),
	}

	created, err := s.withdrawals.Create(ctx, w)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("withdrawal_id", created.ID).Str("user_id", in.UserID).Float64("amount", in.Amount).Msg("withdrawal requested")
	return created, nil
}

// Get returns a withdrawal visible to the caller. Artists only see their
// own requests — a request owned by someone else reads as not found so the
// response does not reveal that the ID exists. Admins need a relation to
// the owning artist.
func (s *WithdrawalService) Get(ctx context.Context, in ports.GetWithdrawalInput) (*domain.WithdrawalRequest, error) {
	w, err := s.withdrawals.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	switch in.Role {
	case domain.RoleArtist:
		if w.UserID != in.CallerID {
			return nil, domain.ErrWithdrawalNotFound
		}
	case domain.RoleAdmin:
		ok, err := s.users.HasRelation(ctx, in.CallerID, w.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	return w, nil
}

// List returns the caller's own withdrawals for artists, or the withdrawals
// of all related artists for admins.
func (s *WithdrawalService) List(ctx context.Context, callerID string, role domain.Role) ([]*domain.WithdrawalRequest, error) {
	switch role {
	case domain.RoleArtist:
		return s.withdrawals.ListByUser(ctx, callerID)
	case domain.RoleAdmin:
		return s.withdrawals.ListByAdmin(ctx, callerID)
	}
	return nil, domain.ErrForbidden
}

// Approve flips a pending request to approved. The status check and flip
// happen in one conditional update, so a request two admins race on is
// resolved exactly once; the loser gets domain.ErrWithdrawalResolved.
func (s *WithdrawalService) Approve(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
	resolved, err := s.withdrawals.Resolve(ctx, in.ID, domain.WithdrawalApproved, in.AdminID, "", time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("withdrawal_id", resolved.ID).Str("admin_id", in.AdminID).Msg("withdrawal approved")
	s.notifyOutcome(ctx, resolved)
	return resolved, nil
}

// Reject flips a pending request to rejected, recording the mandatory
// reason.
func (s *WithdrawalService) Reject(ctx context.Context, in ports.ResolveWithdrawalInput) (*domain.WithdrawalRequest, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.ErrRejectionReasonRequired
	}

	resolved, err := s.withdrawals.Resolve(ctx, in.ID, domain.WithdrawalRejected, in.AdminID, reason, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("withdrawal_id", resolved.ID).Str("admin_id", in.AdminID).Msg("withdrawal rejected")
	s.notifyOutcome(ctx, resolved)
	return resolved, nil
}

// notifyOutcome enqueues the outcome email. The state change has already
// committed, so a failure here is logged and swallowed.
func (s *WithdrawalService) notifyOutcome(ctx context.Context, w *domain.WithdrawalRequest) {
	owner, err := s.users.FindByID(ctx, w.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", w.ID).Msg("owner lookup failed, outcome notification skipped")
		return
	}

	kind := ports.NotificationWithdrawalApproved
	if w.Status == domain.WithdrawalRejected {
		kind = ports.NotificationWithdrawalRejected
	}

	s.notifier.Enqueue(ports.Notification{
		Kind:      kind,
		Recipient: owner.Email,
		Name:      owner.FullName,
		Amount:    w.Amount,
		Reason:    w.RejectionReason,
	})
}
