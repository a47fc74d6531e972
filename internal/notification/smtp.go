package notification

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPChannel emails the customer directly.
type SMTPChannel struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func NewSMTPChannel(cfg config.SMTPConfig) *SMTPChannel {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPChannel{
		addr:     fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port)),
		from:     strings.TrimSpace(cfg.From),
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

func (c *SMTPChannel) Name() string { return "smtp" }

func (c *SMTPChannel) Deliver(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.Recipient == "" {
		return errors.New("smtp: message has no recipient")
	}
	return c.sendMail(c.addr, c.auth, c.from, []string{msg.Recipient}, buildMessage(c.from, msg))
}

func buildMessage(from string, msg Message) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		msg.Recipient,
		msg.Subject,
		msg.Body,
	))
}
