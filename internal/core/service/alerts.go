package service

import "sync"

// AlertConfig holds the thresholds admins tune to flag withdrawals for
// manual review.
type AlertConfig struct {
	AmountThreshold  float64 `json:"amount_threshold"`
	WithdrawalCount  int     `json:"withdrawal_count"`
	ReviewWindowDays int     `json:"review_window_days"`
}

// AlertConfigStore is an injected, process-local store for alert
// thresholds. It is seeded from configuration at startup and mutable
// through the admin API; changes do not survive a restart and are not
// shared between instances.
type AlertConfigStore struct {
	mu  sync.RWMutex
	cfg AlertConfig
}

func NewAlertConfigStore(seed AlertConfig) *AlertConfigStore {
	return &AlertConfigStore{cfg: seed}
}

// Get returns the current thresholds.
func (s *AlertConfigStore) Get() AlertConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Patch applies the non-nil fields and returns the resulting config.
func (s *AlertConfigStore) Patch(amount *float64, count, windowDays *int) AlertConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount != nil {
		s.cfg.AmountThreshold = *amount
	}
	if count != nil {
		s.cfg.WithdrawalCount = *count
	}
	if windowDays != nil {
		s.cfg.ReviewWindowDays = *windowDays
	}
	return s.cfg
}
