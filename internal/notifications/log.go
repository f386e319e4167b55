package notifications

import (
	"context"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// LogNotifier writes would-be emails to the log. It is used when no SMTP
// relay is configured, e.g. in local development.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) SendVerification(ctx context.Context, email, link string) error {
	logger.Log.Infow("verification email", "email", email, "link", link)
	return nil
}

func (LogNotifier) SendPasswordReset(ctx context.Context, email, link string) error {
	logger.Log.Infow("password reset email", "email", email, "link", link)
	return nil
}

func (LogNotifier) SendOrderConfirmation(ctx context.Context, c models.OrderConfirmation) error {
	logger.Log.Infow("order confirmation email",
		"order_id", c.OrderID,
		"email", c.CustomerEmail,
		"package", c.PackageName,
		"date", c.Date,
		"time", c.Time,
	)
	return nil
}
