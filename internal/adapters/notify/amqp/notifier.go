package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	splitlog "github.com/bnema/splitcalc/internal/log"
	"github.com/bnema/splitcalc/internal/ports"
	"github.com/rabbitmq/amqp091-go"
)

const (
	RoutingKeySessionChanged = "session.changed"
	publishTimeout           = 5 * time.Second
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Notifier publishes session changes to a durable topic exchange. Consumers
// bind their own queues.
type Notifier struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	publisher    publisher
	exchangeName string
	logger       *splitlog.Logger
}

var _ ports.SessionNotifier = (*Notifier)(nil)

func Dial(url, exchangeName string, logger *splitlog.Logger) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	notifier := newNotifier(channel, exchangeName, logger)
	notifier.conn = conn
	notifier.channel = channel
	return notifier, nil
}

func newNotifier(p publisher, exchangeName string, logger *splitlog.Logger) *Notifier {
	if logger == nil {
		logger = splitlog.Nop()
	}

	return &Notifier{
		publisher:    p,
		exchangeName: exchangeName,
		logger:       logger.WithComponent(splitlog.ComponentAMQP),
	}
}

func (n *Notifier) SessionChanged(ctx context.Context, session domain.Session, allocation domain.Allocation) error {
	body, err := NewSessionChangedMessage(session, allocation).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.publisher.PublishWithContext(
		ctx,
		n.exchangeName,
		RoutingKeySessionChanged,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    session.UpdatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	n.logger.DebugContext(ctx, "published session change",
		"exchange", n.exchangeName,
		splitlog.FieldTotal, allocation.Total.StringFixed(2))

	return nil
}

func (n *Notifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
