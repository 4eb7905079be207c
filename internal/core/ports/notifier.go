package ports

import "context"

// NotificationKind selects the email template.
type NotificationKind string

const (
	NotificationWithdrawalApproved NotificationKind = "withdrawal_approved"
	NotificationWithdrawalRejected NotificationKind = "withdrawal_rejected"
	NotificationWelcome            NotificationKind = "welcome"
)

// Notification is a single outbound email job. Delivery is best-effort:
// the state change that triggered it has already committed by the time the
// job is enqueued, so a delivery failure is logged and swallowed.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Name      string
	Amount    float64
	Reason    string
	// TempPassword is set only for welcome notifications.
	TempPassword string
}

// Notifier delivers a single notification synchronously.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
