// services/mail_service.go
package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"
)

// Mailer delivers a single email. Recoverable delivery problems come
// back as the returned error; the caller decides what a failure means.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// MailConfig holds SMTP settings. Mode "log" (the default) prints
// messages instead of delivering them, which keeps local development
// from needing a real mailbox.
type MailConfig struct {
	Mode     string // "log" or "smtp"
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

func NewMailConfigFromEnv() MailConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return MailConfig{
		Mode:     getEnvOrDefault("EMAIL_MODE", "log"),
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnvOrDefault("SMTP_FROM", "noreply@renewal-tracker.local"),
		FromName: getEnvOrDefault("SMTP_FROM_NAME", "Mobile Renewal Tracker"),
	}
}

func NewMailer(cfg MailConfig) Mailer {
	if cfg.Mode == "smtp" {
		return &smtpMailer{config: cfg}
	}
	return &logMailer{}
}

type logMailer struct{}

func (m *logMailer) Send(to, subject, htmlBody string) error {
	log.Printf("[DEV] Email to %s: %s (%d bytes)", to, subject, len(htmlBody))
	return nil
}

type smtpMailer struct {
	config MailConfig
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", m.config.FromName, m.config.From)
	message += fmt.Sprintf("To: %s\r\n", to)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=UTF-8\r\n"
	message += "\r\n"
	message += htmlBody

	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
