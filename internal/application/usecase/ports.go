package usecase

import (
	"context"

	"github.com/censudex/clients-service/internal/domain/message"
)

// PasswordHasher capacidad opaca de hasheo y verificación de credenciales.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// EmailSender puerto hacia el proveedor de entrega de correos.
// Devuelve error si el proveedor no acepta el mensaje.
type EmailSender interface {
	Send(ctx context.Context, msg message.EmailMessage) error
}

// EmailPublisher puerto hacia la cola durable de mensajes de correo.
type EmailPublisher interface {
	Publish(ctx context.Context, msg message.EmailMessage) error
}
