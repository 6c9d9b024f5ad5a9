package notifications

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/fasalmbt/complainto/domain"
)

// sendTimeout bounds the whole SMTP session, from dial to quit. A slow
// or unresponsive relay must not hang the request that triggered the
// mail.
const sendTimeout = 10 * time.Second

const otpBody = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <p>Your OTP for account verification is:</p>
  <p style="font-size: 24px; font-weight: bold; color: #4f46e5;">%s</p>
  <p>This OTP is valid for 10 minutes.</p>
</body>
</html>`

const resetBody = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background: #f9fafb; padding: 20px;">
  <div style="max-width: 500px; margin: 0 auto; background: white; border-radius: 8px; padding: 30px;">
    <h2 style="margin-top: 0;">Reset your password</h2>
    <p>Click below to set a new password:</p>
    <p><a href="%[1]s" style="display: inline-block; padding: 12px 24px; background: #4f46e5; color: white; text-decoration: none; border-radius: 6px; font-weight: 600;">Reset Now</a></p>
    <p>Or copy this link:</p>
    <p style="word-break: break-all; font-family: monospace; background: #f3f4f6; padding: 10px; border-radius: 4px; font-size: 13px;">%[1]s</p>
    <p style="color: #ef4444; font-size: 13px;">The link expires soon, use it right away.</p>
  </div>
</body>
</html>`

// SMTPMailerImpl implements domain.Notifier over plain SMTP
type SMTPMailerImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *zap.Logger
}

// NewSMTPMailer creates a new SMTP notifier
func NewSMTPMailer(host string, port int, username, password, from string, logger *zap.Logger) domain.Notifier {
	return &SMTPMailerImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// SendOTP implements domain.Notifier
func (m *SMTPMailerImpl) SendOTP(to, code string) error {
	return m.send(to, "Your OTP for Account Verification", fmt.Sprintf(otpBody, code))
}

// SendPasswordReset implements domain.Notifier
func (m *SMTPMailerImpl) SendPasswordReset(to, resetLink string) error {
	return m.send(to, "Password Reset | Complainto", fmt.Sprintf(resetBody, resetLink))
}

func (m *SMTPMailerImpl) send(to, subject, htmlBody string) error {
	// Without SMTP credentials configured, log the mail instead of
	// sending so local development works end to end.
	if m.host == "" {
		m.logger.Info("mock email delivery",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		htmlBody + "\r\n"

	if err := m.transmit(to, []byte(msg)); err != nil {
		m.logger.Error("email delivery failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// transmit runs one SMTP session under a connection deadline. This is
// smtp.SendMail with a bounded dial and socket deadline, which the
// stdlib helper does not offer.
func (m *SMTPMailerImpl) transmit(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	conn, err := net.DialTimeout("tcp", addr, sendTimeout)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(time.Now().Add(sendTimeout)); err != nil {
		conn.Close()
		return err
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}
	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
