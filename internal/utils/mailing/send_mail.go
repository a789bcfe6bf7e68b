package mailing

import (
	"fmt"
	"strconv"

	"HomeChef-Backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
	}

	logMailer struct{}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMailer returns an SMTP mailer, or a mailer that only logs when no SMTP
// host is configured.
func NewMailer(config MailConfig) Mailer {
	if config.SMTPHost == "" {
		utils.Log.Warn("SMTP_HOST not set, outgoing mail will only be logged")
		return &logMailer{}
	}
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func (m *logMailer) SendMail(toEmail string, subject string, body string) error {
	utils.Log.WithField("to", toEmail).Infof("mail not sent (SMTP disabled): %s", subject)
	return nil
}

func OtpMailBody(name, code string, ttlMinutes int) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <b>%s</b>.</p><p>It expires in %d minutes.</p>",
		name, code, ttlMinutes,
	)
}
