package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/message"
)

// SendGridSender envía correos a través de la API de SendGrid.
type SendGridSender struct {
	apiKey   string
	fromName string
}

// NewSendGridSender construye el adaptador hacia SendGrid.
func NewSendGridSender(apiKey, fromName string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, fromName: fromName}
}

// Send entrega el mensaje al proveedor. Solo una respuesta 200/202 cuenta
// como aceptada; cualquier otro estado se reporta como error de entrega.
func (s *SendGridSender) Send(ctx context.Context, msg message.EmailMessage) error {
	from := mail.NewEmail(s.fromName, msg.From)
	to := mail.NewEmail("", msg.To)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainTextContent, msg.HtmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmailDelivery, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: status %d", domain.ErrEmailDelivery, resp.StatusCode)
	}
	return nil
}
