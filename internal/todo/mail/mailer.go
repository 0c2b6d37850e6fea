// Package mail composes and delivers the account emails: address
// verification and password reset.
package mail

import (
	"context"

	"github.com/samber/oops"
)

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport delivers a rendered message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer renders account emails and hands them to a Transport.
type Mailer struct {
	transport Transport
	appName   string
}

func New(t Transport, appName string) *Mailer {
	if appName == "" {
		appName = "Todo"
	}
	return &Mailer{transport: t, appName: appName}
}

// SendVerificationEmail mails the link that confirms ownership of to.
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, username, link string) error {
	msg, err := render(verificationTemplate, to, "Please verify your email", templateData{
		AppName:  m.appName,
		Username: username,
		Link:     link,
	})
	if err != nil {
		return err
	}
	if err := m.transport.Send(ctx, msg); err != nil {
		return oops.Code("MAIL_SEND_FAILED").With("kind", "verification").Wrap(err)
	}
	return nil
}

// SendPasswordResetEmail mails the link that lets the user pick a new password.
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, username, link string) error {
	msg, err := render(passwordResetTemplate, to, "Password reset request", templateData{
		AppName:  m.appName,
		Username: username,
		Link:     link,
	})
	if err != nil {
		return err
	}
	if err := m.transport.Send(ctx, msg); err != nil {
		return oops.Code("MAIL_SEND_FAILED").With("kind", "password_reset").Wrap(err)
	}
	return nil
}
