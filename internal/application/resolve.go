package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/splitcalc/internal/domain"
)

// ResolveItem maps a user reference to an item ID. A reference is tried as an
// exact ID, then as a 1-based position, then as an exact name.
func ResolveItem(session domain.Session, ref string) (domain.ItemID, error) {
	ref = strings.TrimSpace(ref)

	if index := domain.FindItem(session.Items, domain.ItemID(ref)); index >= 0 {
		return session.Items[index].ID, nil
	}
	if position, ok := parsePosition(ref, len(session.Items)); ok {
		return session.Items[position].ID, nil
	}
	for _, item := range session.Items {
		if item.Name == ref {
			return item.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q", domain.ErrItemNotFound, ref)
}

// ResolveParticipant follows the same rules as ResolveItem.
func ResolveParticipant(session domain.Session, ref string) (domain.ParticipantID, error) {
	ref = strings.TrimSpace(ref)

	if index := domain.FindParticipant(session.Participants, domain.ParticipantID(ref)); index >= 0 {
		return session.Participants[index].ID, nil
	}
	if position, ok := parsePosition(ref, len(session.Participants)); ok {
		return session.Participants[position].ID, nil
	}
	if participant, ok := domain.ParticipantByName(session.Participants, ref); ok {
		return participant.ID, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrParticipantNotFound, ref)
}

func parsePosition(ref string, length int) (int, bool) {
	position, err := strconv.Atoi(ref)
	if err != nil || position < 1 || position > length {
		return 0, false
	}

	return position - 1, true
}
