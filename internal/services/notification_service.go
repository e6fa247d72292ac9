// internal/services/notification_service.go
package services

import (
	"fmt"
	"net/smtp"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/typackaging/backend/internal/config"
)

// NotificationService delivers transactional email. Callers treat every
// failure as non-fatal: errors are logged and swallowed at the call site.
type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// SendOrderConfirmation emails the buyer's company after order intake.
// Subject and body follow the recipient's language.
func (s *NotificationService) SendOrderConfirmation(to, locale, orderNumber string, total decimal.Decimal) error {
	var subject, body string
	if locale == "he" {
		subject = fmt.Sprintf("אישור הזמנה %s", orderNumber)
		body = fmt.Sprintf(
			`<html dir="rtl"><body><h1>תודה על הזמנתך!</h1><p>מספר הזמנה: <strong>%s</strong></p><p>סה"כ לתשלום: <strong>₪%s</strong></p><p>ההזמנה שלך התקבלה ותטופל בהקדם.</p></body></html>`,
			orderNumber, total.StringFixed(2),
		)
	} else {
		subject = fmt.Sprintf("Order Confirmation %s", orderNumber)
		body = fmt.Sprintf(
			`<html dir="ltr"><body><h1>Thank you for your order!</h1><p>Order Number: <strong>%s</strong></p><p>Total: <strong>₪%s</strong></p><p>Your order has been received and will be processed shortly.</p></body></html>`,
			orderNumber, total.StringFixed(2),
		)
	}

	return s.sendEmail(to, subject, body)
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	// Without SMTP credentials the message is logged instead of sent,
	// which is the expected mode in development.
	if s.config.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email sending skipped (no SMTP credentials)")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, body,
	)

	addr := s.config.Email.SMTPHost + ":" + s.config.Email.SMTPPort
	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
