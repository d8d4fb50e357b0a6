package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"villamar/config"
	"villamar/utils"

	"go.uber.org/zap"
)

// SMTPMailer sends booking notifications over plain SMTP.
type SMTPMailer struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromName  string
	HostEmail string
}

// NewSMTPMailer builds a mailer from the loaded application config.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromName:  cfg.SMTPFromName,
		HostEmail: cfg.HostEmail,
	}
}

// SendToHost notifies the property owner of a new booking request.
func (m *SMTPMailer) SendToHost(ctx context.Context, email BookingEmail) error {
	b := email.Booking
	subject := fmt.Sprintf("New booking request - %s", b.FullName)

	plain := fmt.Sprintf(
		"New booking request received.\n\n"+
			"Guest: %s\nID number: %s\nPhone: %s\nEmail: %s\n\n"+
			"Check-in: %s\nCheck-out: %s\nNights: %d\nAdults: %d, Children: %d\n\n"+
			"Total: %s\nDeposit: %s\nBalance: %s\n\nBooking ID: %s\n",
		b.FullName, b.IDNumber, b.Phone, b.Email,
		email.CheckIn, email.CheckOut, email.Nights, b.Adults, b.Children,
		email.TotalPrice, email.Deposit, email.Balance, b.ID,
	)
	html := bookingHTML("New booking request", fmt.Sprintf("%s has requested a stay.", b.FullName), email)

	return m.send(ctx, m.HostEmail, subject, plain, html)
}

// SendToGuest sends the guest a copy of their booking request.
func (m *SMTPMailer) SendToGuest(ctx context.Context, email BookingEmail) error {
	b := email.Booking
	subject := "Your booking request at Villamar"

	plain := fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received your booking request and will be in touch shortly.\n\n"+
			"Check-in: %s\nCheck-out: %s\nNights: %d\nAdults: %d, Children: %d\n\n"+
			"Total: %s\n\nThank you,\nVillamar\n",
		b.FullName, email.CheckIn, email.CheckOut, email.Nights, b.Adults, b.Children,
		email.TotalPrice,
	)
	html := bookingHTML("Booking request received",
		fmt.Sprintf("Hi %s, we received your request and will confirm it shortly.", b.FullName), email)

	return m.send(ctx, b.Email, subject, plain, html)
}

func (m *SMTPMailer) send(_ context.Context, recipient, subject, plainBody, htmlBody string) error {
	logger := utils.GetLogger()

	if m.Username == "" || m.Password == "" || m.Host == "" || m.Port == "" {
		logger.Info("[MOCK EMAIL] SMTP not configured, logging instead",
			zap.String("to", recipient), zap.String("subject", subject))
		return nil
	}

	from := fmt.Sprintf("%s <%s>", m.FromName, m.Username)
	to := []string{recipient}
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	boundary := "----=_BOOKING_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.Username, to, []byte(sb.String())); err != nil {
		logger.Error("failed to send booking email",
			zap.String("to", recipient), zap.Error(err))
		return err
	}

	logger.Info("booking email sent", zap.String("to", recipient))
	return nil
}

func bookingHTML(title, intro string, email BookingEmail) string {
	b := email.Booking
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
table { width:100%%; border-collapse:collapse; }
td { padding:6px 0; border-bottom:1px solid #f0f4f8; }
td.label { color:#667; width:40%%; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>%s</h2>
    <p>%s</p>
    <table>
      <tr><td class="label">Guest</td><td>%s</td></tr>
      <tr><td class="label">Check-in</td><td>%s</td></tr>
      <tr><td class="label">Check-out</td><td>%s</td></tr>
      <tr><td class="label">Nights</td><td>%d</td></tr>
      <tr><td class="label">Guests</td><td>%d adults, %d children</td></tr>
      <tr><td class="label">Total</td><td><strong>%s</strong></td></tr>
    </table>
  </div>
</div>
</body>
</html>`,
		title, title, intro,
		b.FullName, email.CheckIn, email.CheckOut, email.Nights,
		b.Adults, b.Children, email.TotalPrice,
	)
}
