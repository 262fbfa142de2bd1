package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"

	"github.com/censudex/clients-service/internal/domain/message"
	"github.com/censudex/clients-service/pkg/config"
	"github.com/censudex/clients-service/pkg/logger"
)

// MessageHandler procesa un mensaje de correo recibido de la cola.
type MessageHandler interface {
	Consume(ctx context.Context, msg message.EmailMessage) error
}

// Consumer lee mensajes del topic de correos y los delega al handler.
// El offset solo se confirma cuando la entrega fue aceptada: un fallo deja
// el mensaje pendiente para que el broker lo reentregue (at-least-once).
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	log     *logger.Logger
}

// NewConsumer construye el consumidor del grupo configurado.
func NewConsumer(cfg config.KafkaConfig, handler MessageHandler, log *logger.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{reader: reader, handler: handler, log: log}
}

// Run consume mensajes hasta que el contexto se cancele o el reader se cierre.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var msg message.EmailMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			// Mensaje malformado: no es recuperable, se confirma para no bloquear la partición.
			c.log.Error().Err(err).Int64("offset", m.Offset).Msg("mensaje de correo malformado, descartado")
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				return err
			}
			continue
		}

		if err := c.handler.Consume(ctx, msg); err != nil {
			// Sin commit: el broker reentregará el mensaje según su política.
			c.log.Error().Err(err).Str("to", msg.To).Msg("entrega de correo fallida")
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			return err
		}
		c.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("correo entregado desde la cola")
	}
}

// Close cierra el reader del grupo.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
