package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	calls    int
}

func (p *recordingPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	p.calls++
	p.exchange = exchange
	p.key = key
	p.msg = msg
	return p.err
}

func pizzaSession() domain.Session {
	return domain.Session{
		Items: []domain.Item{{
			ID:           "i1",
			Name:         "Pizza",
			UnitCost:     decimal.NewFromInt(20),
			Quantity:     1,
			Participants: []domain.ParticipantID{"a", "b"},
		}},
		Participants: []domain.Participant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		TaxApplied:   true,
		CountryCode:  "germany",
		UpdatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewSessionChangedMessage(t *testing.T) {
	session := pizzaSession()

	msg := NewSessionChangedMessage(session, session.Allocate())

	assert.Equal(t, "germany", msg.Country)
	assert.True(t, msg.TaxApplied)
	assert.Equal(t, 1, msg.ItemCount)
	assert.Equal(t, "20.00", msg.Subtotal)
	assert.Equal(t, "3.80", msg.TaxAmount)
	assert.Equal(t, "23.80", msg.Total)
	require.Len(t, msg.Participants, 2)
	assert.Equal(t, ParticipantOwed{ID: "a", Name: "A", Owes: "11.90"}, msg.Participants[0])
}

func TestSessionChangedMessageJSONRoundTrip(t *testing.T) {
	session := pizzaSession()
	msg := NewSessionChangedMessage(session, session.Allocate())

	data, err := msg.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"taxApplied":true`)

	decoded, err := SessionChangedMessageFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg.Total, decoded.Total)
	assert.Equal(t, msg.Participants, decoded.Participants)
	assert.True(t, msg.UpdatedAt.Equal(decoded.UpdatedAt))

	_, err = SessionChangedMessageFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestNotifierPublishesPersistentJSON(t *testing.T) {
	publisher := &recordingPublisher{}
	notifier := newNotifier(publisher, "splitcalc", nil)
	session := pizzaSession()

	err := notifier.SessionChanged(context.Background(), session, session.Allocate())
	require.NoError(t, err)

	assert.Equal(t, 1, publisher.calls)
	assert.Equal(t, "splitcalc", publisher.exchange)
	assert.Equal(t, RoutingKeySessionChanged, publisher.key)
	assert.Equal(t, "application/json", publisher.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, publisher.msg.DeliveryMode)

	decoded, err := SessionChangedMessageFromJSON(publisher.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "23.80", decoded.Total)
}

func TestNotifierWrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	notifier := newNotifier(&recordingPublisher{err: boom}, "splitcalc", nil)
	session := pizzaSession()

	err := notifier.SessionChanged(context.Background(), session, session.Allocate())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "publish message")
}

func TestNotifierCloseWithoutConnection(t *testing.T) {
	notifier := newNotifier(&recordingPublisher{}, "splitcalc", nil)
	assert.NoError(t, notifier.Close())
}
