package tools

import (
	"fmt"

	"unilost/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends the out-of-band verification codes over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.Configuration) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Pass),
		from:   cfg.Mail.From,
	}
}

func (m *Mailer) SendVerificationCode(email, code string) error {
	body := fmt.Sprintf(
		"Thank you for registering with UniLost.\n\n"+
			"Your email verification code is: %s\n\n"+
			"The code is valid for 10 minutes. Do not share it with anyone.\n"+
			"If you didn't request this, please ignore this email.",
		code,
	)
	return m.send(email, "UniLost - Email Verification OTP", body)
}

func (m *Mailer) SendPasswordResetCode(email, code string) error {
	body := fmt.Sprintf(
		"We received a request to reset your UniLost password.\n\n"+
			"Your password reset code is: %s\n\n"+
			"The code is valid for 10 minutes. Never share it with anyone.\n"+
			"If you didn't request this, ignore this email and your password "+
			"will remain unchanged.",
		code,
	)
	return m.send(email, "UniLost - Password Reset OTP", body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
