package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/censudex/clients-service/internal/domain/message"
	"github.com/censudex/clients-service/pkg/config"
)

// Publisher publica mensajes de correo en el topic durable del broker.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher construye el escritor Kafka para la cola de correos.
func NewPublisher(cfg config.KafkaConfig) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return &Publisher{writer: writer}
}

// Publish serializa el mensaje como JSON y lo escribe en el topic.
func (p *Publisher) Publish(ctx context.Context, msg message.EmailMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("serializar mensaje de correo: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publicar en %s: %w", p.writer.Topic, err)
	}
	return nil
}

// Close cierra el escritor y vacía los lotes pendientes.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
