package application

import "github.com/bnema/splitcalc/internal/domain"

type Summary struct {
	Session    domain.Session
	Country    domain.Country
	Allocation domain.Allocation
}
