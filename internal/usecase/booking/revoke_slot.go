package booking

import (
	"context"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// ======================================================
// USE CASE — REVOKE SLOT
// ======================================================

type RevokeSlot struct {
	ledger domain.SlotLedger
	audit  *audit.Dispatcher
	cache  domain.AvailabilityCache
}

func NewRevokeSlot(
	ledger domain.SlotLedger,
	audit *audit.Dispatcher,
	cache domain.AvailabilityCache,
) *RevokeSlot {
	return &RevokeSlot{
		ledger: ledger,
		audit:  audit,
		cache:  cache,
	}
}

// Execute remove o slot incondicionalmente. Uma reserva existente
// sobre a mesma tupla não é consultada nem cancelada.
func (uc *RevokeSlot) Execute(
	ctx context.Context,
	slotID uint,
) (*models.Slot, error) {

	slot, err := uc.ledger.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.Delete(ctx, slotID); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, slot.ProfessionalID)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "slot_revoked",
			Entity:   "slot",
			EntityID: &slot.ID,
		})
	}

	return slot, nil
}
