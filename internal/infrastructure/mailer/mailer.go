// Package mailer delivers outcome and onboarding emails over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/artistpay/payout-portal/internal/core/ports"
)

// Config captures the SMTP settings for outbound mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ ports.Notifier = (*Mailer)(nil)

// Mailer sends notification emails through a single SMTP endpoint.
type Mailer struct {
	client *mail.Client
	from   string
}

// New builds a Mailer. Authentication is only configured when a username is
// provided, so a local relay without auth keeps working in development.
func New(cfg Config) (*Mailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers a single notification synchronously.
func (m *Mailer) Send(ctx context.Context, n ports.Notification) error {
	subject, body := compose(n)

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mailer: from: %w", err)
	}
	if err := msg.To(n.Recipient); err != nil {
		return fmt.Errorf("mailer: to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

func compose(n ports.Notification) (subject, body string) {
	switch n.Kind {
	case ports.NotificationWithdrawalApproved:
		return "Tu retiro fue aprobado",
			fmt.Sprintf("Hola %s,\n\nTu solicitud de retiro por $%.2f fue aprobada y será procesada a tu cuenta predeterminada.\n\nEquipo ArtistPay", n.Name, n.Amount)
	case ports.NotificationWithdrawalRejected:
		return "Tu retiro fue rechazado",
			fmt.Sprintf("Hola %s,\n\nTu solicitud de retiro por $%.2f fue rechazada.\n\nMotivo: %s\n\nEquipo ArtistPay", n.Name, n.Amount, n.Reason)
	case ports.NotificationWelcome:
		return "Bienvenido a ArtistPay",
			fmt.Sprintf("Hola %s,\n\nTu cuenta fue creada. Tu contraseña temporal es: %s\n\nDeberás cambiarla en tu primer inicio de sesión.\n\nEquipo ArtistPay", n.Name, n.TempPassword)
	}
	return "Notificación de ArtistPay", fmt.Sprintf("Hola %s,\n\nTienes una nueva notificación.\n\nEquipo ArtistPay", n.Name)
}
