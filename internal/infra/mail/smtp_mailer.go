// Package mail implements the outgoing mail collaborator over plain SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// smtpMailer delivers plain-text messages through a single SMTP relay.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is missing")
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.UserName,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
	}, nil
}

// Send delivers a plain-text message to the recipients. The context is
// honored up to connection establishment; SMTP itself has no cancellation.
func (m *smtpMailer) Send(ctx context.Context, subject, body string, to []string) error {
	if len(to) == 0 {
		return errors.New("no recipients given")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := smtp.SendMail(addr, auth, m.from, to, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", strings.Join(to, ","))
	}

	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
