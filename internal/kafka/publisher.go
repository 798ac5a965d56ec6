package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/segmentio/kafka-go"
)

// Comprobación de que Publisher cumple el puerto PublicadorEventos.
var _ ports.PublicadorEventos = (*Publisher)(nil)

// writer — contrato mínimo sobre kafka.Writer, para poder sustituirlo en tests.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — publicación best-effort del resumen de cada carga completada.
// Los sistemas aguas abajo la consumen como notificación, no como fuente de verdad.
type Publisher struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — constructor sobre kafka.Writer con acks del líder.
func NewPublisher(cfg PublisherConfig, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{writer: w, topic: cfg.Topic, log: log}
}

// PublicarResumen — un mensaje por carga, con la clave de idempotencia como key
// (las cargas de una misma clave caen en la misma partición).
func (p *Publisher) PublicarResumen(ctx context.Context, evento ports.EventoCarga) error {
	payload, err := json.Marshal(evento)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evento.ClaveIdempotencia),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("publicar en %s: %w", p.topic, err)
	}
	return nil
}

// Close — idempotente; cierra el writer subyacente una sola vez.
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() { err = p.writer.Close() })
	return err
}
