package amqp

import (
	"encoding/json"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
)

// SessionChangedMessage is published after every saved session mutation.
// Amounts are decimal strings rounded to cents.
type SessionChangedMessage struct {
	Country      string            `json:"country"`
	TaxApplied   bool              `json:"taxApplied"`
	ItemCount    int               `json:"itemCount"`
	Subtotal     string            `json:"subtotal"`
	TaxAmount    string            `json:"taxAmount"`
	Total        string            `json:"total"`
	Participants []ParticipantOwed `json:"participants"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type ParticipantOwed struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Owes string `json:"owes"`
}

func NewSessionChangedMessage(session domain.Session, allocation domain.Allocation) *SessionChangedMessage {
	participants := make([]ParticipantOwed, 0, len(allocation.Participants))
	for _, participant := range allocation.Participants {
		participants = append(participants, ParticipantOwed{
			ID:   string(participant.ID),
			Name: participant.Name,
			Owes: domain.RoundCents(participant.Owed).StringFixed(2),
		})
	}

	return &SessionChangedMessage{
		Country:      session.CountryCode,
		TaxApplied:   allocation.TaxApplied,
		ItemCount:    len(session.Items),
		Subtotal:     allocation.Subtotal.StringFixed(2),
		TaxAmount:    allocation.TaxAmount.StringFixed(2),
		Total:        allocation.Total.StringFixed(2),
		Participants: participants,
		UpdatedAt:    session.UpdatedAt,
	}
}

func (m *SessionChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SessionChangedMessageFromJSON(data []byte) (*SessionChangedMessage, error) {
	var msg SessionChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
