// Package mail sends transactional email for the API.
package mail

import (
	"context"
	"fmt"
)

// Message is a single plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines the delivery operation across backends.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// PasswordRecovery composes the recovery email for a stored password.
func PasswordRecovery(to, password string) Message {
	return Message{
		To:      to,
		Subject: "Planetary API password recovery",
		Body:    fmt.Sprintf("your planetary API password is %s", password),
	}
}
