package booking

import (
	"context"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
)

// ======================================================
// USE CASE — CANCEL RESERVATION
// ======================================================

type CancelReservation struct {
	registry domain.ReservationRegistry
	audit    *audit.Dispatcher
}

func NewCancelReservation(
	registry domain.ReservationRegistry,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{registry: registry, audit: audit}
}

// Execute apaga a reserva. O slot correspondente não é tocado: ele
// continua existindo e a tupla volta a ficar reservável.
func (uc *CancelReservation) Execute(ctx context.Context, id uint) error {

	res, err := uc.registry.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.registry.Delete(ctx, id); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &res.UserID,
			Action:   "reservation_cancelled",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}

	return nil
}
