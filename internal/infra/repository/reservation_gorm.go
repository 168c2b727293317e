package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

type ReservationGormRegistry struct {
	db *gorm.DB
}

func NewReservationGormRegistry(db *gorm.DB) *ReservationGormRegistry {
	return &ReservationGormRegistry{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ReservationGormRegistry) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRegistry) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRegistry) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRegistry) ExistsByTuple(
	ctx context.Context,
	professionalID uint,
	date string,
	timeStr string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"professional_id = ? AND date = ? AND time = ?",
			professionalID, date, timeStr,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *ReservationGormRegistry) Insert(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_already_booked")
		}
		return err
	}
	return nil
}

func (r *ReservationGormRegistry) Update(
	ctx context.Context,
	id uint,
	fields domain.ReservationUpdate,
) (*models.Reservation, error) {

	res, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.UserID != nil {
		res.UserID = *fields.UserID
	}
	if fields.Date != nil {
		res.Date = *fields.Date
	}
	if fields.Time != nil {
		res.Time = *fields.Time
	}
	if fields.Status != nil {
		res.Status = *fields.Status
	}

	if err := r.db.WithContext(ctx).Save(res).Error; err != nil {
		// A engine não revalida a tupla no update; quem barra uma
		// colisão aqui é só a constraint do banco.
		if isUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
		return nil, err
	}

	return res, nil
}

func (r *ReservationGormRegistry) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("reservation_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.ReservationRegistry = (*ReservationGormRegistry)(nil)
