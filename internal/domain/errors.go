package domain

import "errors"

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUnknownCountry      = errors.New("unknown country")
)
