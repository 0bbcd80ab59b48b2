package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const detachedPrefix = "detached:"

type ParticipantID string

// DetachedParticipantID builds the reference kept on items for a participant
// that no longer exists. It still counts in the item's divisor but is never
// credited to anyone. The former id keeps references from participants that
// shared a name distinct.
func DetachedParticipantID(id ParticipantID, name string) ParticipantID {
	return ParticipantID(detachedPrefix + string(id) + ":" + name)
}

// Detached reports whether id is a detached reference and returns the display
// name it was created from. References written before the id was embedded
// carry the name alone.
func (id ParticipantID) Detached() (string, bool) {
	rest, ok := strings.CutPrefix(string(id), detachedPrefix)
	if !ok {
		return "", false
	}
	if _, name, found := strings.Cut(rest, ":"); found {
		return name, true
	}

	return rest, true
}

type Participant struct {
	ID   ParticipantID
	Name string
	// Owed is derived by Compute and never read as input.
	Owed decimal.Decimal
}

// DisplayName falls back to a positional label for unnamed participants.
func (p Participant) DisplayName(position int) string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}

	return "Person " + strconv.Itoa(position+1)
}

// FindParticipant returns the index of the participant with the given id, or -1.
func FindParticipant(participants []Participant, id ParticipantID) int {
	for i := range participants {
		if participants[i].ID == id {
			return i
		}
	}

	return -1
}

// ParticipantByName resolves a display name to the first participant carrying it.
func ParticipantByName(participants []Participant, name string) (Participant, bool) {
	for _, participant := range participants {
		if participant.Name == name {
			return participant, true
		}
	}

	return Participant{}, false
}
