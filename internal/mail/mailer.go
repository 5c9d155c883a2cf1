package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Config holds SMTP settings. An empty Host disables sending entirely, which
// is the default for local runs.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends booking confirmation mail over SMTP.
type Mailer struct {
	cfg Config

	// Send is swapped out in tests to capture messages without a server.
	Send func(m *gomail.Message) error
}

func NewMailer(cfg Config) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		cfg:  cfg,
		Send: func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

// Enabled reports whether SMTP is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.cfg.Host != ""
}

// SendBookingConfirmation mails a short plain-text confirmation. Errors are
// returned to the caller for logging; callers treat mail as best-effort.
func (m *Mailer) SendBookingConfirmation(to, name, bookingID string, amount string) error {
	if !m.Enabled() {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmed: %s", bookingID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour booking %s is confirmed. Amount paid: %s.\n\nHappy travels!\n",
		name, bookingID, amount,
	))
	return m.Send(msg)
}
