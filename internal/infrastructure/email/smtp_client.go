package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host   string
	Port   int
	Sender string
}

// Client sends plain-text mail over SMTP without authentication, matching a
// relay listening on the local network.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", c.cfg.Sender))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, nil, c.cfg.Sender, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
