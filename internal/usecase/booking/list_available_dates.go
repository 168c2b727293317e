package booking

import (
	"context"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
)

// ======================================================
// QUERY — AVAILABLE DATES
// ======================================================

type ListAvailableDates struct {
	ledger domain.SlotLedger
	cache  domain.AvailabilityCache
}

func NewListAvailableDates(
	ledger domain.SlotLedger,
	cache domain.AvailabilityCache,
) *ListAvailableDates {
	return &ListAvailableDates{ledger: ledger, cache: cache}
}

// Execute lista as datas distintas com pelo menos um slot, a partir de
// "from" (default: hoje), em ordem ascendente.
func (uc *ListAvailableDates) Execute(
	ctx context.Context,
	professionalID uint,
	from string,
) ([]string, error) {

	if from == "" {
		from = domain.Today()
	} else {
		var err error
		if from, err = domain.CanonicalDate(from); err != nil {
			return nil, err
		}
	}

	if uc.cache != nil {
		if dates, ok := uc.cache.GetDates(ctx, professionalID, from); ok {
			return dates, nil
		}
	}

	dates, err := uc.ledger.ListDates(ctx, professionalID, from)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetDates(ctx, professionalID, from, dates)
	}

	return dates, nil
}
