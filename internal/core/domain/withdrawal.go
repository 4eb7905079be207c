package domain

import (
	"errors"
	"time"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions. Approved
// and rejected are terminal.
var validTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending: {WithdrawalApproved, WithdrawalRejected},
}

var ErrWithdrawalNotFound = errors.New("withdrawal not found")
var ErrWithdrawalResolved = errors.New("withdrawal already resolved")
var ErrRejectionReasonRequired = errors.New("rejection reason required")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s WithdrawalStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// WithdrawalRequest is an artist's request to pay out funds. Created by the
// owning artist, resolved exactly once by an admin, immutable afterwards.
type WithdrawalRequest struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Amount          float64          `json:"amount"`
	Status          WithdrawalStatus `json:"status"`
	RequestedAt     time.Time        `json:"requested_at"`
	ResolvedBy      string           `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time       `json:"resolved_at,omitempty"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
}
