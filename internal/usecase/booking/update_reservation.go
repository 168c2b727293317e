package booking

import (
	"context"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// ======================================================
// USE CASE — UPDATE RESERVATION
// ======================================================

type UpdateReservation struct {
	registry domain.ReservationRegistry
	audit    *audit.Dispatcher
}

func NewUpdateReservation(
	registry domain.ReservationRegistry,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{registry: registry, audit: audit}
}

// Execute aplica campos parciais; o professional_id é imutável.
// A nova tupla NÃO é revalidada contra o ledger nem contra outras
// reservas — assimetria deliberada com a criação, mantida até
// decisão de produto em contrário.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id uint,
	fields domain.ReservationUpdate,
) (*models.Reservation, error) {

	if fields.Date != nil {
		date, err := domain.CanonicalDate(*fields.Date)
		if err != nil {
			return nil, err
		}
		fields.Date = &date
	}

	res, err := uc.registry.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &res.UserID,
			Action:   "reservation_updated",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}

	return res, nil
}
