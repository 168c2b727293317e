package booking

import (
	"context"

	"github.com/salusbook/api-prenotazioni/internal/models"
)

// As três abstrações de armazenamento injetadas nos use cases.
// Implementações devem devolver httperr.BusinessError com os códigos
// "availability_not_found", "reservation_not_found",
// "availability_exists" e "slot_already_booked"; violações de unicidade
// devem ser atômicas com a própria inserção.

// -------- Slot Ledger --------

type SlotLedger interface {
	Insert(ctx context.Context, slot *models.Slot) error

	GetByID(ctx context.Context, id uint) (*models.Slot, error)

	Delete(ctx context.Context, id uint) error

	ExistsByTuple(
		ctx context.Context,
		professionalID uint,
		date string,
		timeStr string,
	) (bool, error)

	// ListDates: datas distintas >= from, ordem ascendente.
	ListDates(
		ctx context.Context,
		professionalID uint,
		from string,
	) ([]string, error)

	// ListTimes: horários na ordem de inserção, sem deduplicação.
	ListTimes(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]string, error)
}

// -------- Reservation Registry --------

type ReservationUpdate struct {
	UserID *uint
	Date   *string
	Time   *string
	Status *string
}

type ReservationRegistry interface {
	Get(ctx context.Context, id uint) (*models.Reservation, error)

	ListAll(ctx context.Context) ([]models.Reservation, error)

	ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error)

	Insert(ctx context.Context, res *models.Reservation) error

	Update(
		ctx context.Context,
		id uint,
		fields ReservationUpdate,
	) (*models.Reservation, error)

	Delete(ctx context.Context, id uint) error

	ExistsByTuple(
		ctx context.Context,
		professionalID uint,
		date string,
		timeStr string,
	) (bool, error)
}

// -------- Directory (entidades de referência) --------

type Directory interface {
	UserExists(ctx context.Context, id uint) (bool, error)

	ProfessionalExists(ctx context.Context, id uint) (bool, error)

	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)
}
