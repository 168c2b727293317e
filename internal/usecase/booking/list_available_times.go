package booking

import (
	"context"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
)

// ======================================================
// QUERY — AVAILABLE TIMES
// ======================================================

type ListAvailableTimes struct {
	ledger domain.SlotLedger
	cache  domain.AvailabilityCache
}

func NewListAvailableTimes(
	ledger domain.SlotLedger,
	cache domain.AvailabilityCache,
) *ListAvailableTimes {
	return &ListAvailableTimes{ledger: ledger, cache: cache}
}

func (uc *ListAvailableTimes) Execute(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]string, error) {

	date, err := domain.CanonicalDate(date)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if times, ok := uc.cache.GetTimes(ctx, professionalID, date); ok {
			return times, nil
		}
	}

	times, err := uc.ledger.ListTimes(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetTimes(ctx, professionalID, date, times)
	}

	return times, nil
}
