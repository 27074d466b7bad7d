package mapping_events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CompletedEvent is the body of a mapping.completed message.
type CompletedEvent struct {
	UploadID      string            `json:"uploadId"`
	Strategy      string            `json:"strategy"`
	Result        app.MappingResult `json:"result"`
	MissingFields []string          `json:"missingFields"`
	CompletedAt   time.Time         `json:"completedAt"`
}

// AmqpPublisher sends finished mappings to a topic exchange.
type AmqpPublisher struct {
	conn       *amqp.Connection
	exchange   string
	routingKey string
	log        *slog.Logger

	mu      sync.Mutex
	channel *amqp.Channel
}

var _ app.MappingPublisher = &AmqpPublisher{}

func NewAmqp(conn *amqp.Connection, exchange, routingKey string, log *slog.Logger) *AmqpPublisher {
	return &AmqpPublisher{conn: conn, exchange: exchange, routingKey: routingKey, log: log}
}

func (p *AmqpPublisher) Publish(ctx context.Context, resp *app.MapResponse) error {
	body, err := json.Marshal(CompletedEvent{
		UploadID:      resp.UploadID,
		Strategy:      resp.Strategy,
		Result:        resp.Result,
		MissingFields: resp.MissingFields,
		CompletedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.openChannel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Type:         "mapping.completed",
		Body:         body,
	})
	if err != nil {
		p.resetChannel()
		return fmt.Errorf("publish %s: %w", p.routingKey, err)
	}
	return nil
}

// openChannel lazily opens the channel and declares the exchange.
func (p *AmqpPublisher) openChannel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.channel = ch
	return ch, nil
}

func (p *AmqpPublisher) resetChannel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
}

// Close releases the channel. The connection is owned by the caller.
func (p *AmqpPublisher) Close() error {
	p.resetChannel()
	return nil
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *app.MapResponse) error {
	return nil
}

// New picks the AMQP publisher when a connection is configured.
func New(cfg *config.Config, conn *amqp.Connection, log *slog.Logger) app.MappingPublisher {
	if conn == nil {
		return NoopPublisher{}
	}
	return NewAmqp(conn, cfg.Broker.Exchange, cfg.Broker.RoutingKey, log)
}
