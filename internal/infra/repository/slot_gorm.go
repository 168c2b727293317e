package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/httperr"
	"github.com/salusbook/api-prenotazioni/internal/models"
)

type SlotGormLedger struct {
	db *gorm.DB
}

func NewSlotGormLedger(db *gorm.DB) *SlotGormLedger {
	return &SlotGormLedger{db: db}
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *SlotGormLedger) Insert(ctx context.Context, slot *models.Slot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("availability_exists")
		}
		return err
	}
	return nil
}

func (r *SlotGormLedger) GetByID(ctx context.Context, id uint) (*models.Slot, error) {
	var slot models.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("availability_not_found")
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotGormLedger) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Slot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("availability_not_found")
	}
	return nil
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *SlotGormLedger) ExistsByTuple(
	ctx context.Context,
	professionalID uint,
	date string,
	timeStr string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where(
			"professional_id = ? AND date = ? AND time = ?",
			professionalID, date, timeStr,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SlotGormLedger) ListDates(
	ctx context.Context,
	professionalID uint,
	from string,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("professional_id = ? AND date >= ?", professionalID, from).
		Distinct().
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *SlotGormLedger) ListTimes(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("id ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.SlotLedger = (*SlotGormLedger)(nil)
