// Package metrics defines and registers all custom Prometheus metrics for
// the payout portal. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payout"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// WithdrawalsCreatedTotal counts newly opened withdrawal requests.
var WithdrawalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "withdrawals_created_total",
		Help:      "Total number of withdrawal requests opened by artists.",
	},
)

// WithdrawalsResolvedTotal counts admin resolutions.
// Label:
//   - outcome: "approved" or "rejected"
var WithdrawalsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "withdrawals_resolved_total",
		Help:      "Total number of withdrawal requests resolved, by outcome.",
	},
	[]string{"outcome"},
)

// ArtistsCreatedTotal counts artist accounts created by admins.
var ArtistsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artists_created_total",
		Help:      "Total number of artist accounts created.",
	},
)

// NotificationsTotal counts notification delivery attempts.
// Labels:
//   - kind: notification kind (e.g. "withdrawal_approved")
//   - result: "sent", "error", or "dropped" (queue full)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification delivery attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)
