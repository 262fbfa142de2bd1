package usecase

import (
	"context"
	"time"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/message"
	"github.com/censudex/clients-service/internal/domain/repository"
)

// MailUseCase despacha correos transaccionales: envío directo al proveedor
// o publicación en la cola durable para entrega asíncrona.
type MailUseCase struct {
	repo      repository.UserRepository
	sender    EmailSender
	publisher EmailPublisher
	now       func() time.Time
}

// NewMailUseCase construye el despachador de correos.
func NewMailUseCase(repo repository.UserRepository, sender EmailSender, publisher EmailPublisher) *MailUseCase {
	return &MailUseCase{repo: repo, sender: sender, publisher: publisher, now: time.Now}
}

// SendDirect envía un correo de forma síncrona. El destinatario debe ser el
// correo de una cuenta registrada; si no lo es, no se llama al proveedor.
func (uc *MailUseCase) SendDirect(ctx context.Context, in dto.SendMailRequest) error {
	registered, err := uc.repo.EmailExists(ctx, in.ToEmail)
	if err != nil {
		return err
	}
	if !registered {
		return domain.ErrRecipientNotRegistered
	}
	return uc.sender.Send(ctx, message.EmailMessage{
		To:               in.ToEmail,
		From:             in.FromEmail,
		Subject:          in.Subject,
		PlainTextContent: in.PlainTextContent,
		HtmlContent:      in.HtmlContent,
		SentAt:           uc.now().UTC(),
	})
}

// Enqueue publica el correo en la cola durable. El llamador no espera
// confirmación de entrega: el consumidor la realizará más tarde.
func (uc *MailUseCase) Enqueue(ctx context.Context, in dto.SendMailRequest) error {
	return uc.publisher.Publish(ctx, message.EmailMessage{
		To:               in.ToEmail,
		From:             in.FromEmail,
		Subject:          in.Subject,
		PlainTextContent: in.PlainTextContent,
		HtmlContent:      in.HtmlContent,
		SentAt:           uc.now().UTC(),
	})
}

// Consume procesa un mensaje de la cola llamando al proveedor. Si el
// proveedor no acepta el mensaje se devuelve error para que el runtime de la
// cola no confirme el offset y el broker lo reentregue.
func (uc *MailUseCase) Consume(ctx context.Context, msg message.EmailMessage) error {
	return uc.sender.Send(ctx, msg)
}
