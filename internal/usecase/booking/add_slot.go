package booking

import (
	"context"
	"strings"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// ======================================================
// USE CASE — ADD SLOT
// ======================================================

type AddSlot struct {
	ledger domain.SlotLedger
	audit  *audit.Dispatcher
	cache  domain.AvailabilityCache
}

func NewAddSlot(
	ledger domain.SlotLedger,
	audit *audit.Dispatcher,
	cache domain.AvailabilityCache,
) *AddSlot {
	return &AddSlot{
		ledger: ledger,
		audit:  audit,
		cache:  cache,
	}
}

func (uc *AddSlot) Execute(
	ctx context.Context,
	in domain.AddSlotInput,
) (*models.Slot, error) {

	date, err := domain.CanonicalDate(in.Date)
	if err != nil {
		return nil, err
	}

	timeStr := strings.TrimSpace(in.Time)
	if timeStr == "" {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	slot := &models.Slot{
		ProfessionalID: in.ProfessionalID,
		Date:           date,
		Time:           timeStr,
	}

	// O ledger rejeita a tupla duplicada ("availability_exists")
	// de forma atômica com a inserção.
	if err := uc.ledger.Insert(ctx, slot); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ProfessionalID)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "slot_added",
			Entity:   "slot",
			EntityID: &slot.ID,
		})
	}

	return slot, nil
}
