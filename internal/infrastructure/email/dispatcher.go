package email

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type Mailer interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// Dispatcher turns queued notification messages into emails.
type Dispatcher struct {
	mailer Mailer
	logger logger.Interface
}

func NewDispatcher(mailer Mailer, logger logger.Interface) *Dispatcher {
	return &Dispatcher{mailer: mailer, logger: logger}
}

// Handle matches pubsub.Handler.
func (d *Dispatcher) Handle(_ context.Context, msg notification.Message) error {
	if msg.To == "" {
		return fmt.Errorf("notification %s has no recipient", msg.Kind)
	}

	rendered, err := Render(msg)
	if err != nil {
		return err
	}

	if err := d.mailer.Send(msg.To, rendered.Subject, rendered.HTML, rendered.Plain); err != nil {
		d.logger.Errorw("failed to send notification email",
			"kind", msg.Kind,
			"to", utils.MaskEmail(msg.To),
			"error", err,
		)
		return err
	}

	d.logger.Infow("notification email sent", "kind", msg.Kind, "to", utils.MaskEmail(msg.To))
	return nil
}
