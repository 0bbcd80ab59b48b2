package application

import (
	"testing"

	"github.com/bnema/splitcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSession() domain.Session {
	return domain.Session{
		Items: []domain.Item{
			{ID: "item-a", Name: "Pizza"},
			{ID: "item-b", Name: "1"},
		},
		Participants: []domain.Participant{
			{ID: "p-1", Name: "Sam"},
			{ID: "p-2", Name: "Sam"},
			{ID: "p-3", Name: "Kim"},
		},
	}
}

func TestResolveItem(t *testing.T) {
	session := resolveSession()

	tests := []struct {
		name string
		ref  string
		want domain.ItemID
	}{
		{name: "exact id", ref: "item-b", want: "item-b"},
		{name: "position", ref: "2", want: "item-b"},
		{name: "position wins over name", ref: "1", want: "item-a"},
		{name: "name", ref: " Pizza ", want: "item-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveItem(session, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, ref := range []string{"0", "3", "Soup", ""} {
		_, err := ResolveItem(session, ref)
		assert.ErrorIs(t, err, domain.ErrItemNotFound, ref)
	}
}

func TestResolveParticipant(t *testing.T) {
	session := resolveSession()

	got, err := ResolveParticipant(session, "Sam")
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantID("p-1"), got)

	got, err = ResolveParticipant(session, "3")
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantID("p-3"), got)

	got, err = ResolveParticipant(session, "p-2")
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantID("p-2"), got)

	_, err = ResolveParticipant(session, "Lee")
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}
