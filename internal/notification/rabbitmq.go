package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	RoutingKeyBookingCreated       = "booking.created"
	RoutingKeyBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the message body published for every booking change.
type BookingEvent struct {
	Type       string          `json:"type"`
	Booking    *domain.Booking `json:"booking"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes booking events to a topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
	logger   logger.Logger
}

func NewAMQPPublisher(url, exchange string, timeout time.Duration, logger logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

func (p *AMQPPublisher) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, RoutingKeyBookingCreated, b)
}

func (p *AMQPPublisher) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, RoutingKeyBookingStatusChanged, b)
}

func (p *AMQPPublisher) publish(ctx context.Context, key string, b *domain.Booking) {
	body, err := json.Marshal(BookingEvent{
		Type:       key,
		Booking:    b,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Error("failed to encode booking event",
			logger.String("routing_key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("routing_key", key),
			logger.Int64("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
