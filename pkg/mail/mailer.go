package mail

import (
	"gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Mailer sends a message synchronously. Implementations block until the
// provider responds; there is no retry on transient failure.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends mail over an authenticated SMTP connection.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer creates an SMTPMailer for the given host and credentials.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, username, password)}
}

func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.HTML {
		gm.SetBody("text/html", msg.Body)
	} else {
		gm.SetBody("text/plain", msg.Body)
	}
	return m.dialer.DialAndSend(gm)
}
