package domain

import (
	"slices"
	"time"
)

type Session struct {
	Items        []Item
	Participants []Participant
	TaxApplied   bool
	CountryCode  string
	UpdatedAt    time.Time
}

// NewSession returns the first-use session: one empty item and one empty
// participant, tax off.
func NewSession(newItemID func() ItemID, newParticipantID func() ParticipantID) Session {
	return Session{
		Items:        []Item{{ID: newItemID()}},
		Participants: []Participant{{ID: newParticipantID()}},
		CountryCode:  DefaultCountryCode,
	}
}

func (s Session) Country() Country {
	return LookupCountry(s.CountryCode)
}

// Allocate runs Compute over the session using its country's tax rate.
func (s Session) Allocate() Allocation {
	return Compute(s.Items, s.Participants, s.TaxApplied, s.Country().TaxRate)
}

// Clone returns a deep copy so callers can mutate it without aliasing the
// receiver's slices.
func (s Session) Clone() Session {
	out := s
	out.Items = make([]Item, len(s.Items))
	for i, item := range s.Items {
		item.Participants = slices.Clone(item.Participants)
		out.Items[i] = item
	}
	out.Participants = slices.Clone(s.Participants)
	return out
}

// DetachParticipant rewrites every item reference to id into a detached
// reference carrying name, so the share stays in the divisor but is no longer
// credited to anyone.
func (s Session) DetachParticipant(id ParticipantID, name string) Session {
	out := s.Clone()
	detached := DetachedParticipantID(id, name)
	for i := range out.Items {
		for j, ref := range out.Items[i].Participants {
			if ref == id {
				out.Items[i].Participants[j] = detached
			}
		}
	}

	return out
}

// NamedParticipantCount counts participants with a non-blank display name.
func (s Session) NamedParticipantCount() int {
	count := 0
	for _, participant := range s.Participants {
		if participant.Name != "" {
			count++
		}
	}

	return count
}
