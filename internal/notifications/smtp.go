// Package notifications delivers transactional email: address verification,
// password reset and order confirmation with a PDF receipt attached.
package notifications

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/wneessen/go-mail"
)

// Sender delivers prepared messages; *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Config holds the addresses used in outgoing mail.
type Config struct {
	From       string // envelope and header sender
	OwnerEmail string // operator copy of every order confirmation
	WhatsApp   string // optional wa.me number shown in order mail
	TempDir    string // where receipts are rendered; os.TempDir() when empty
}

// SMTPNotifier sends mail through an SMTP relay.
type SMTPNotifier struct {
	sender Sender
	cfg    Config
}

// NewSMTPClient builds a go-mail client with PLAIN auth and opportunistic STARTTLS.
func NewSMTPClient(host string, port int, username, password string) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}
	return mail.NewClient(host, opts...)
}

// NewSMTPNotifier creates a notifier that sends through sender.
func NewSMTPNotifier(sender Sender, cfg Config) *SMTPNotifier {
	return &SMTPNotifier{sender: sender, cfg: cfg}
}

// SendVerification mails the address verification link.
func (n *SMTPNotifier) SendVerification(ctx context.Context, email, link string) error {
	body, err := render(verificationTmpl, struct{ Link string }{link})
	if err != nil {
		return err
	}
	return n.send(ctx, []string{email}, "Email Verification", body, "")
}

// SendPasswordReset mails the password reset link.
func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, email, link string) error {
	body, err := render(resetTmpl, struct{ Link string }{link})
	if err != nil {
		return err
	}
	return n.send(ctx, []string{email}, "Reset Password", body, "")
}

// SendOrderConfirmation mails the receipt to the customer and the owner.
// The rendered PDF is removed whether or not delivery succeeds.
func (n *SMTPNotifier) SendOrderConfirmation(ctx context.Context, c models.OrderConfirmation) error {
	path, err := writeReceiptFile(n.cfg.TempDir, c)
	if err != nil {
		return fmt.Errorf("generate receipt: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.Log.Errorw("failed to delete receipt", "path", path, "error", err)
		}
	}()

	body, err := render(orderTmpl, struct{ Name, WhatsAppLink string }{c.CustomerName, n.whatsAppLink()})
	if err != nil {
		return err
	}

	recipients := []string{c.CustomerEmail}
	if n.cfg.OwnerEmail != "" && !strings.EqualFold(n.cfg.OwnerEmail, c.CustomerEmail) {
		recipients = append(recipients, n.cfg.OwnerEmail)
	}
	return n.send(ctx, recipients, "Detail Pesanan", body, path)
}

func (n *SMTPNotifier) whatsAppLink() string {
	if n.cfg.WhatsApp == "" {
		return ""
	}
	return "https://wa.me/" + strings.TrimPrefix(n.cfg.WhatsApp, "+")
}

func (n *SMTPNotifier) send(ctx context.Context, to []string, subject, html, attachment string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)
	if attachment != "" {
		msg.AttachFile(attachment, mail.WithFileName(ReceiptFileName))
	}

	err := n.sender.DialAndSendWithContext(ctx, msg)
	logger.Log.Infow("mail",
		"to", to,
		"subject", subject,
		"error", err,
	)
	return err
}
