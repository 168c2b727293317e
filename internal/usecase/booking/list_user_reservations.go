package booking

import (
	"context"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/dto"
)

// ======================================================
// QUERY — RESERVATIONS BY USER
// ======================================================

type ListUserReservations struct {
	registry domain.ReservationRegistry
	dir      domain.Directory
}

func NewListUserReservations(
	registry domain.ReservationRegistry,
	dir domain.Directory,
) *ListUserReservations {
	return &ListUserReservations{registry: registry, dir: dir}
}

// Execute devolve as reservas do usuário com o nome do profissional
// resolvido em best-effort; usuário sem reservas recebe lista vazia.
func (uc *ListUserReservations) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.registry.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		name := domain.ProfessionalUnavailable
		if prof, err := uc.dir.GetProfessional(ctx, res.ProfessionalID); err == nil {
			name = prof.Name
		}

		out = append(out, dto.ReservationListDTO{
			ID:               res.ID,
			Date:             res.Date,
			Time:             res.Time,
			Status:           res.Status,
			ProfessionalName: name,
		})
	}

	return out, nil
}
