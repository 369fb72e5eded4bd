package service

import "context"

// Mailer defines the interface for outgoing mail. The marketplace sends two
// kinds of messages: the confirmation token after registration and order
// status changes after checkout or cancellation. Dispatch is an explicit
// step in the use cases, not a persistence side effect.
type Mailer interface {
	// Send delivers a plain-text message to the recipients.
	Send(ctx context.Context, subject, body string, to []string) error
}
