package booking

import (
	"context"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

// ======================================================
// USE CASE — CREATE RESERVATION
// ======================================================

type CreateReservation struct {
	ledger   domain.SlotLedger
	registry domain.ReservationRegistry
	dir      domain.Directory
	audit    *audit.Dispatcher
}

func NewCreateReservation(
	ledger domain.SlotLedger,
	registry domain.ReservationRegistry,
	dir domain.Directory,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		ledger:   ledger,
		registry: registry,
		dir:      dir,
		audit:    audit,
	}
}

// Execute valida na ordem: data → usuário → profissional → slot →
// conflito. A checagem de conflito aqui é apenas cortesia para a
// mensagem de erro; quem fecha a corrida é a constraint de unicidade
// da tupla, que o registry devolve como "slot_already_booked".
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in domain.CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Data canônica
	// --------------------------------------------------
	date, err := domain.CanonicalDate(in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Usuário existe
	// --------------------------------------------------
	ok, err := uc.dir.UserExists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("unknown_user")
	}

	// --------------------------------------------------
	// 3. Profissional existe
	// --------------------------------------------------
	ok, err = uc.dir.ProfessionalExists(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("unknown_professional")
	}

	// --------------------------------------------------
	// 4. Slot declarado pelo profissional
	// --------------------------------------------------
	ok, err = uc.ledger.ExistsByTuple(ctx, in.ProfessionalID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5. Tupla ainda livre
	// --------------------------------------------------
	taken, err := uc.registry.ExistsByTuple(ctx, in.ProfessionalID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}

	// --------------------------------------------------
	// 6. Inserção (a constraint decide empates concorrentes)
	// --------------------------------------------------
	res := &models.Reservation{
		UserID:         in.UserID,
		ProfessionalID: in.ProfessionalID,
		Date:           date,
		Time:           in.Time,
		Status:         domain.Normalize(in.Status),
	}

	if err := uc.registry.Insert(ctx, res); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}

	return res, nil
}
