// Package publishers emits domain events to the message broker.
package publishers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/segmentio/kafka-go"
)

// OrderCreatedEventType is set in the "event" header of every order message.
const OrderCreatedEventType = "order.created"

// DefaultPublishTimeout bounds a single publish so a slow broker cannot hold
// up the request that placed the order.
const DefaultPublishTimeout = 2 * time.Second

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter returns a writer for topic that keys messages by hash so all
// events of one order land on the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           time.Second,
	}
}

// OrderPublisher serialises order events as JSON and writes them to Kafka.
type OrderPublisher struct {
	writer  MessageWriter
	timeout time.Duration
}

// Option configures an OrderPublisher.
type Option func(*OrderPublisher)

// WithTimeout overrides DefaultPublishTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *OrderPublisher) { p.timeout = d }
}

func NewOrderPublisher(writer MessageWriter, opts ...Option) *OrderPublisher {
	p := &OrderPublisher{writer: writer, timeout: DefaultPublishTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishOrderCreated writes one order.created message keyed by order id.
// The write is abandoned once the publisher timeout elapses.
func (p *OrderPublisher) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(OrderCreatedEventType)},
		},
		Time: event.CreatedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, msg)
	logger.Log.Infow("publish",
		"event", OrderCreatedEventType,
		"order_id", event.OrderID,
		"error", err,
	)
	return err
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error {
	logger.Log.Debugw("order event not published: no broker configured", "order_id", event.OrderID)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
