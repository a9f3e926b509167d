package utils

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"sync"
	"time"

	"github.com/mxarte/artweek-backend/config"
)

// ======================
// SMTP sender
// ======================

// EmailSender delivers HTML mail over SMTP with STARTTLS. When the host is
// left unconfigured every send is a logged no-op, which keeps local dev and
// tests free of a mail server.
type EmailSender struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
	FromAddr string

	Timeout time.Duration
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
		FromAddr: cfg.SMTPFromEmail,
		Timeout:  10 * time.Second,
	}
}

// Send delivers a single HTML message to one recipient.
func (e *EmailSender) Send(to, subject, htmlBody string) error {
	if e.Host == "" || e.Username == "" || e.Password == "" {
		fmt.Printf("⚠️ SMTP not configured. Skipping email to %s (%q)\n", to, subject)
		return nil
	}

	fromAddr := e.FromAddr
	if fromAddr == "" {
		fromAddr = e.Username
	}
	from := fromAddr
	if e.FromName != "" {
		from = fmt.Sprintf("%s <%s>", e.FromName, fromAddr)
	}

	addr := fmt.Sprintf("%s:%s", e.Host, e.Port)
	client, err := dialSMTP(addr, e.Timeout)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true, // container DNS names rarely match the cert
		ServerName:         e.Host,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", e.Username, e.Password, e.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(fromAddr); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n%s", from, to, subject, htmlBody))

	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		fmt.Printf("⚠️ QUIT command error (non-critical): %v\n", err)
	}
	return nil
}

// SendBulk fans out a message to many recipients concurrently and reports
// per-recipient failures without aborting the batch.
func (e *EmailSender) SendBulk(recipients []string, subject, htmlBody string) {
	var wg sync.WaitGroup
	for _, email := range recipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := e.Send(to, subject, htmlBody); err != nil {
				fmt.Printf("❌ Failed to send email to %s: %v\n", to, err)
			}
		}(email)
	}
	wg.Wait()
}

func dialSMTP(addr string, timeout time.Duration) (*smtp.Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	return smtp.NewClient(conn, host)
}
